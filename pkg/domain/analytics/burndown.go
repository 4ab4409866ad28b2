package analytics

import (
	"math"
	"time"

	"github.com/quantamisecode-hub/groona/pkg/domain/calendar"
	"github.com/quantamisecode-hub/groona/pkg/domain/tracker"
)

// BurndownPoint is one day of a burndown series: the straight-line ideal
// and the actual remaining effort, both rounded to one decimal and ready
// for charting.
type BurndownPoint struct {
	Date   string  `json:"date"`
	Ideal  float64 `json:"ideal"`
	Actual float64 `json:"actual"`
}

// ComputeBurndown produces one point per calendar day of the sprint. The
// ideal line decays linearly from total effort to zero; the actual line
// subtracts the effort of tasks completed by end of each day. Days after
// asOf hold flat at the current remaining effort rather than extrapolating.
//
// A sprint with an unparseable or inverted date range yields a nil series.
// A zero-effort sprint still yields a full series of zeros.
func ComputeBurndown(sprint tracker.Sprint, tasks []tracker.Task, asOf time.Time) []BurndownPoint {
	start, end, ok := sprint.DateRange()
	if !ok {
		return nil
	}
	days := calendar.EnumerateDays(start, end)

	var totalEffort float64
	for _, t := range tasks {
		totalEffort += t.Effort()
	}

	idealBurnRate := totalEffort / float64(max(len(days)-1, 1))
	today := calendar.DayOf(asOf)
	remainingNow := totalEffort - completedEffortBy(tasks, start, calendar.EndOfDay(today))

	series := make([]BurndownPoint, 0, len(days))
	for i, d := range days {
		ideal := totalEffort - idealBurnRate*float64(i)
		if ideal < 0 {
			ideal = 0
		}

		var actual float64
		if d.After(today) {
			actual = remainingNow
		} else {
			actual = totalEffort - completedEffortBy(tasks, start, calendar.EndOfDay(d))
		}

		series = append(series, BurndownPoint{
			Date:   d.Format("2006-01-02"),
			Ideal:  round1(ideal),
			Actual: round1(actual),
		})
	}
	return series
}

// completedEffortBy sums the effort of completed tasks whose completion day
// falls on or before the cutoff. Tasks whose completion date never parsed
// fall back to the sprint start, counting against remaining effort as early
// as possible instead of being dropped.
func completedEffortBy(tasks []tracker.Task, sprintStart, cutoff time.Time) float64 {
	var sum float64
	for _, t := range tasks {
		if !t.Status.IsCompleted() {
			continue
		}
		if !t.CompletedOn(sprintStart).After(cutoff) {
			sum += t.Effort()
		}
	}
	return sum
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
