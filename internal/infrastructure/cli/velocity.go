package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/quantamisecode-hub/groona/pkg/domain/analytics"
)

var velocityCmd = &cobra.Command{
	Use:   "velocity",
	Short: "Committed vs completed points across sprints",
	Long: `Velocity reports committed and completed story points per sprint, the
average velocity over completed sprints, commitment accuracy, and the trend
across the most recent completed sprints. Only completed or scope-locked
sprints participate.`,
	RunE: runVelocity,
}

func runVelocity(cmd *cobra.Command, args []string) error {
	services, err := buildServices()
	if err != nil {
		return err
	}

	report, err := services.Analytics.Velocity()
	if err != nil {
		return fmt.Errorf("compute velocity: %w", err)
	}

	if jsonOutput() {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return outputVelocityText(report)
}

func outputVelocityText(report analytics.VelocityReport) error {
	if len(report.PerSprint) == 0 {
		fmt.Println("No committed sprints to analyze.")
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Sprint", "Start", "Status", "Committed", "Completed"})
	for _, sv := range report.PerSprint {
		tw.AppendRow(table.Row{
			sv.Name,
			sv.StartDate,
			sv.Status,
			fmt.Sprintf("%.1f", sv.CommittedPoints),
			fmt.Sprintf("%.1f", sv.CompletedPoints),
		})
	}
	tw.Render()

	fmt.Printf("\nAverage Velocity:    %.1f points/sprint\n", report.AverageVelocity)
	fmt.Printf("Commitment Accuracy: %.0f%%\n", report.CommitmentAccuracy)
	fmt.Printf("Trend:               %s\n", formatTrend(report.Trend))
	return nil
}

func formatTrend(t analytics.Trend) string {
	switch t {
	case analytics.TrendIncreasing:
		return "increasing (delivering more)"
	case analytics.TrendDecreasing:
		return "decreasing (delivering less)"
	case analytics.TrendStable:
		return "stable"
	case analytics.TrendInsufficientData:
		return "insufficient data (need 2+ completed sprints)"
	default:
		return string(t)
	}
}

func init() {
	RootCmd.AddCommand(velocityCmd)
}
