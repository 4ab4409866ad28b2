package cli

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantamisecode-hub/groona/internal/infrastructure/watch"
	"github.com/quantamisecode-hub/groona/pkg/storage"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recompute the sprint report whenever the snapshot changes",
	Long: `Watch monitors the workspace snapshot file and reprints the report
summary after each change, debounced so bursts of writes compute once.
Runs until interrupted.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	services, err := buildServices()
	if err != nil {
		return err
	}

	recompute := func() {
		report, err := services.Analytics.BuildReport("", time.Time{})
		if err != nil {
			fmt.Printf("recompute failed: %v\n", err)
			return
		}
		fmt.Printf("\n[%s] snapshot changed\n", time.Now().Format("15:04:05"))
		outputReportSummary(report)
	}

	dir := filepath.Join(viper.GetString("workspace"), storage.WorkspaceDir)
	watcher, err := watch.NewSnapshotWatcher(
		dir,
		[]string{storage.SnapshotJSONFile, storage.SnapshotYAMLFile},
		time.Duration(services.Settings.WatchDebounceMs)*time.Millisecond,
		func(string) { recompute() },
	)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	fmt.Printf("Watching %s (ctrl-c to stop)\n", dir)
	recompute()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func init() {
	RootCmd.AddCommand(watchCmd)
}
