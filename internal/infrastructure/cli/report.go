package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantamisecode-hub/groona/pkg/application"
	"github.com/quantamisecode-hub/groona/pkg/domain/analytics"
)

var (
	reportSprint string
	reportAsOf   string
	reportSave   bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Combined burndown, velocity, and capacity report for a sprint",
	Long: `Report computes all metrics for a sprint in one pass and optionally
persists the result as .groona/report.json for dashboards and later
inspection.

Flags:
  --sprint   Sprint ID (defaults to the active sprint)
  --as-of    Treat this date as "today"
  --save     Write the report into the workspace`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	services, err := buildServices()
	if err != nil {
		return err
	}
	asOf, ok := parseAsOf(reportAsOf)
	if !ok {
		return fmt.Errorf("unparseable --as-of date: %q", reportAsOf)
	}

	report, err := services.Analytics.BuildReport(sprintArg(reportSprint), asOf)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	if reportSave {
		if err := services.Analytics.PersistReport(report); err != nil {
			return err
		}
	}

	if jsonOutput() {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	outputReportSummary(report)
	if reportSave {
		fmt.Println("\nReport saved to .groona/report.json")
	}
	return nil
}

func outputReportSummary(r *application.SprintReport) {
	fmt.Printf("Sprint Report: %s (%s)\n", r.SprintName, r.SprintID)
	fmt.Printf("Generated:     %s (as of %s)\n", r.GeneratedAt.Format("2006-01-02 15:04"), r.AsOf)
	fmt.Println("-------------------------------------")

	if len(r.Burndown) > 0 {
		first := r.Burndown[0]
		last := r.Burndown[len(r.Burndown)-1]
		fmt.Printf("Burndown:  %.1f total effort, %.1f remaining (%d days)\n",
			first.Ideal, last.Actual, len(r.Burndown))
	} else {
		fmt.Println("Burndown:  no valid sprint date range")
	}

	fmt.Printf("Velocity:  %.1f avg points/sprint, %.0f%% commitment accuracy, trend %s\n",
		r.Velocity.AverageVelocity, r.Velocity.CommitmentAccuracy, r.Velocity.Trend)
	fmt.Printf("Capacity:  %.0f team hours across %d people\n",
		r.Capacity.TotalCapacityHours, len(r.Capacity.PerPerson))

	overloaded := 0
	for _, pc := range r.Capacity.PerPerson {
		if pc.Workload == analytics.WorkloadOverloaded {
			overloaded++
		}
	}
	if overloaded > 0 {
		fmt.Printf("Warning:   %d overloaded team member(s)\n", overloaded)
	}
}

func init() {
	reportCmd.Flags().StringVar(&reportSprint, "sprint", "", "sprint ID (defaults to active sprint)")
	reportCmd.Flags().StringVar(&reportAsOf, "as-of", "", "reference date (YYYY-MM-DD)")
	reportCmd.Flags().BoolVar(&reportSave, "save", false, "persist the report into the workspace")
	RootCmd.AddCommand(reportCmd)
}
