package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantamisecode-hub/groona/pkg/domain/analytics"
)

var (
	burndownSprint string
	burndownAsOf   string
)

var burndownCmd = &cobra.Command{
	Use:   "burndown",
	Short: "Daily ideal-vs-actual remaining effort for a sprint",
	Long: `Burndown prints one point per calendar day of the sprint: the straight-line
ideal remaining effort and the actual remaining effort. Days after --as-of
hold flat at the current remaining value.

Flags:
  --sprint   Sprint ID (defaults to the active sprint)
  --as-of    Treat this date as "today" (defaults to the current day)`,
	RunE: runBurndown,
}

func runBurndown(cmd *cobra.Command, args []string) error {
	services, err := buildServices()
	if err != nil {
		return err
	}
	asOf, ok := parseAsOf(burndownAsOf)
	if !ok {
		return fmt.Errorf("unparseable --as-of date: %q", burndownAsOf)
	}

	series, err := services.Analytics.Burndown(sprintArg(burndownSprint), asOf)
	if err != nil {
		return fmt.Errorf("compute burndown: %w", err)
	}

	if jsonOutput() {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(series)
	}
	return outputBurndownText(series)
}

func outputBurndownText(series []analytics.BurndownPoint) error {
	if len(series) == 0 {
		fmt.Println("No burndown data: sprint has no valid date range.")
		return nil
	}

	fmt.Println("Sprint Burndown")
	fmt.Println("---------------")
	for _, p := range series {
		marker := ""
		if p.Actual > p.Ideal {
			marker = "  (behind)"
		}
		fmt.Printf("%s  ideal %6.1f  actual %6.1f%s\n", p.Date, p.Ideal, p.Actual, marker)
	}
	return nil
}

func init() {
	burndownCmd.Flags().StringVar(&burndownSprint, "sprint", "", "sprint ID (defaults to active sprint)")
	burndownCmd.Flags().StringVar(&burndownAsOf, "as-of", "", "reference date for the past/future split (YYYY-MM-DD)")
	RootCmd.AddCommand(burndownCmd)
}
