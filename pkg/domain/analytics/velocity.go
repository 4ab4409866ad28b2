package analytics

import (
	"sort"

	"github.com/quantamisecode-hub/groona/pkg/domain/tracker"
)

// Trend classifies the direction of completed points across recent sprints.
type Trend string

const (
	TrendIncreasing       Trend = "increasing"
	TrendDecreasing       Trend = "decreasing"
	TrendStable           Trend = "stable"
	TrendInsufficientData Trend = "insufficient-data"
)

// SprintVelocity is the committed/completed point pair for one sprint.
type SprintVelocity struct {
	SprintID        tracker.EntityID     `json:"sprint_id"`
	Name            string               `json:"name"`
	Status          tracker.SprintStatus `json:"status"`
	StartDate       string               `json:"start_date,omitempty"`
	CommittedPoints float64              `json:"committed_points"`
	CompletedPoints float64              `json:"completed_points"`
}

// VelocityReport aggregates velocity across a set of sprints.
type VelocityReport struct {
	PerSprint          []SprintVelocity `json:"per_sprint"`
	AverageVelocity    float64          `json:"average_velocity"`
	CommitmentAccuracy float64          `json:"commitment_accuracy"`
	Trend              Trend            `json:"trend"`
}

// ComputeVelocity measures delivered story points against commitments. Only
// sprints representing committed work participate: completed sprints, and
// active sprints whose scope was locked. The average covers completed
// sprints only, since locked-but-active sprints are still in flight.
//
// Committed points come from the snapshot taken at lock time when one
// exists; sprints predating that feature fall back to the live sum of
// points over their assigned stories. Completed points are the sum of
// earned points per StoryCompletion over each sprint's stories, using each
// story's own task set.
func ComputeVelocity(sprints []tracker.Sprint, stories []tracker.Story, tasks []tracker.Task) VelocityReport {
	included := make([]tracker.Sprint, 0, len(sprints))
	for _, sp := range sprints {
		if sp.CountsTowardVelocity() {
			included = append(included, sp)
		}
	}
	sort.SliceStable(included, func(i, j int) bool {
		return included[i].StartOrEpoch().Before(included[j].StartOrEpoch())
	})

	report := VelocityReport{Trend: TrendInsufficientData}
	var sumCommitted, sumCompleted float64
	var completedSprintPoints []float64

	for _, sp := range included {
		sprintStories := tracker.StoriesForSprint(stories, sp.ID)

		committed := 0.0
		if sp.CommittedPoints != nil {
			committed = sp.CommittedPoints.Float64()
		} else {
			for _, st := range sprintStories {
				committed += st.StoryPoints.Float64()
			}
		}

		completed := 0.0
		for _, st := range sprintStories {
			completed += StoryCompletion(st, tracker.TasksForStory(tasks, st.ID)).EarnedPoints
		}

		report.PerSprint = append(report.PerSprint, SprintVelocity{
			SprintID:        sp.ID,
			Name:            sp.Name,
			Status:          sp.Status,
			StartDate:       sp.StartDate.String(),
			CommittedPoints: committed,
			CompletedPoints: completed,
		})
		sumCommitted += committed
		sumCompleted += completed
		if sp.Status == tracker.SprintCompleted {
			completedSprintPoints = append(completedSprintPoints, completed)
		}
	}

	if n := len(completedSprintPoints); n > 0 {
		var sum float64
		for _, p := range completedSprintPoints {
			sum += p
		}
		report.AverageVelocity = sum / float64(n)
	}
	if sumCommitted > 0 {
		report.CommitmentAccuracy = 100 * sumCompleted / sumCommitted
	}
	report.Trend = classifyTrend(completedSprintPoints)
	return report
}

// classifyTrend compares the oldest and newest of the last three completed
// sprints' completed points. points must already be in chronological order.
func classifyTrend(points []float64) Trend {
	if len(points) < 2 {
		return TrendInsufficientData
	}
	window := points
	if len(window) > 3 {
		window = window[len(window)-3:]
	}
	oldest, newest := window[0], window[len(window)-1]
	switch {
	case newest > oldest:
		return TrendIncreasing
	case newest < oldest:
		return TrendDecreasing
	default:
		return TrendStable
	}
}
