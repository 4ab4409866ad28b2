package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantamisecode-hub/groona/pkg/infrastructure/dashboard"
)

var dashboardAddr string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Serve a web dashboard for the sprint report",
	Long: `Dashboard starts an HTTP server that renders the burndown, velocity
and capacity reports for the current workspace. The report is recomputed
from the snapshot on every request, so edits to the snapshot file show up
on reload without restarting the server.

JSON endpoints are exposed under /api for scripting:
  GET /api/report
  GET /api/burndown
  GET /api/velocity
  GET /api/capacity

A ?sprint=<id> query selects a sprint other than the active one.`,
	Example: `  # Serve on the configured address (default :8090)
  groona dashboard

  # Serve on a specific address
  groona dashboard --addr :9000`,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	services, err := buildServices()
	if err != nil {
		return err
	}

	addr := dashboardAddr
	if addr == "" {
		addr = services.Settings.DashboardAddr
	}

	server, err := dashboard.NewServer(addr, services.Analytics, newLogger())
	if err != nil {
		return fmt.Errorf("create dashboard server: %w", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		fmt.Println("\nShutting down dashboard...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}()

	fmt.Printf("Dashboard listening on %s\n", addr)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Start(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().StringVar(&dashboardAddr, "addr", "", "Listen address (overrides configured dashboard_addr)")
}
