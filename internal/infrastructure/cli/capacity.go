package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/quantamisecode-hub/groona/pkg/domain/analytics"
)

var capacitySprint string

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Per-person available hours and workload for a sprint",
	Long: `Capacity reports each roster member's available hours for the sprint,
after business days, approved leave, and per-person hour overrides, capped
at the 40-hour sprint ceiling. Assigned hours and a workload level are shown
alongside.`,
	RunE: runCapacity,
}

func runCapacity(cmd *cobra.Command, args []string) error {
	services, err := buildServices()
	if err != nil {
		return err
	}

	report, err := services.Analytics.Capacity(sprintArg(capacitySprint))
	if err != nil {
		return fmt.Errorf("compute capacity: %w", err)
	}

	if jsonOutput() {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return outputCapacityText(report)
}

func outputCapacityText(report analytics.CapacityReport) error {
	if len(report.PerPerson) == 0 {
		fmt.Println("No team members or task assignees found.")
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Person", "Days", "Leave", "Capacity (h)", "Assigned (h)", "Workload"})
	for _, pc := range report.PerPerson {
		name := pc.Email
		if pc.DisplayName != "" {
			name = fmt.Sprintf("%s <%s>", pc.DisplayName, pc.Email)
		}
		tw.AppendRow(table.Row{
			name,
			pc.EffectiveDays,
			pc.LeaveDays,
			fmt.Sprintf("%.0f", pc.CapacityHours),
			fmt.Sprintf("%.1f", pc.AssignedHours),
			pc.Workload,
		})
	}
	tw.Render()

	fmt.Printf("\nTotal Capacity: %.0f hours\n", report.TotalCapacityHours)
	return nil
}

func init() {
	capacityCmd.Flags().StringVar(&capacitySprint, "sprint", "", "sprint ID (defaults to active sprint)")
	RootCmd.AddCommand(capacityCmd)
}
