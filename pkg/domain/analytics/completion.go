// Package analytics derives planning metrics from entity snapshots:
// story completion weighting, sprint burndown series, velocity and
// commitment statistics, and per-person capacity. Every function is a pure
// transformation over its inputs; nothing here reads a clock, caches, or
// mutates the snapshot.
package analytics

import (
	"github.com/quantamisecode-hub/groona/pkg/domain/tracker"
)

// Completion is the weighted completion of a single story.
type Completion struct {
	Fraction     float64 `json:"fraction"`
	EarnedPoints float64 `json:"earned_points"`
}

// StoryCompletion computes how much of a story is done and how many of its
// points it has earned. The rules apply in order, first match wins:
//
//  1. A story in a terminal-success status is fully complete regardless of
//     its tasks.
//  2. A story with no tasks and a non-terminal status has earned nothing.
//  3. Otherwise the fraction is the share of its tasks that are completed.
//
// This proportional weighting is the single source of truth for partial
// completion; both the burndown and velocity calculators defer to it so the
// two metrics cannot drift apart.
func StoryCompletion(story tracker.Story, tasksOfStory []tracker.Task) Completion {
	points := story.StoryPoints.Float64()
	if story.Status.IsDone() {
		return Completion{Fraction: 1, EarnedPoints: points}
	}
	if len(tasksOfStory) == 0 {
		return Completion{}
	}
	done := 0
	for _, t := range tasksOfStory {
		if t.Status.IsCompleted() {
			done++
		}
	}
	fraction := float64(done) / float64(len(tasksOfStory))
	return Completion{Fraction: fraction, EarnedPoints: fraction * points}
}
