package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantamisecode-hub/groona/pkg/storage"
)

var initCmd = &cobra.Command{
	Use:   "init [project-name]",
	Short: "Initialize a new groona workspace",
	Long: `Init creates the .groona directory and a starter snapshot.json so the
analytics commands have a snapshot to read. Point your tracker export at
.groona/snapshot.json (or snapshot.yaml) to replace the starter file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := storage.NewFilesystemRepository(viper.GetString("workspace"), newLogger())

		projectName := "new-project"
		if len(args) > 0 {
			projectName = args[0]
		}

		if err := repo.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize workspace: %w", err)
		}
		if err := repo.WriteStarterSnapshot(projectName); err != nil {
			return fmt.Errorf("failed to write starter snapshot: %w", err)
		}

		fmt.Printf("Successfully initialized groona workspace: %s\n", projectName)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
