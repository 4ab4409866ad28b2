package tracker

import "time"

// Task is a unit of execution under a story. Tasks carry effort in either
// story points or estimated hours depending on the era of the record.
type Task struct {
	ID             EntityID     `json:"id" yaml:"id"`
	ProjectID      EntityID     `json:"project_id" yaml:"project_id"`
	StoryID        EntityID     `json:"story_id,omitempty" yaml:"story_id,omitempty"`
	SprintID       EntityID     `json:"sprint_id,omitempty" yaml:"sprint_id,omitempty"`
	Title          string       `json:"title" yaml:"title"`
	Status         TaskStatus   `json:"status" yaml:"status"`
	StoryPoints    Quantity     `json:"story_points" yaml:"story_points"`
	EstimatedHours Quantity     `json:"estimated_hours" yaml:"estimated_hours"`
	CompletedDate  FlexibleDate `json:"completed_date,omitempty" yaml:"completed_date,omitempty"`
	UpdatedDate    FlexibleDate `json:"updated_date,omitempty" yaml:"updated_date,omitempty"`
	AssignedTo     StringList   `json:"assigned_to,omitempty" yaml:"assigned_to,omitempty"`
}

// Effort returns the task's effort in whichever unit it carries: story
// points when non-zero, estimated hours otherwise. Tasks with neither
// contribute nothing to burndown totals.
func (t Task) Effort() float64 {
	if t.StoryPoints > 0 {
		return t.StoryPoints.Float64()
	}
	return t.EstimatedHours.Float64()
}

// CompletedOn returns the day the task finished: the completion date when
// parseable, else the last-updated date, else the given fallback. Legacy
// records missing both dates count as done at the fallback so they are
// never silently dropped.
func (t Task) CompletedOn(fallback time.Time) time.Time {
	if d, ok := t.CompletedDate.Time(); ok {
		return d
	}
	if d, ok := t.UpdatedDate.Time(); ok {
		return d
	}
	return fallback
}

// AssignedToUser reports whether the task is assigned to the given email.
func (t Task) AssignedToUser(email string) bool {
	for _, a := range t.AssignedTo {
		if a == email {
			return true
		}
	}
	return false
}

// TasksForStory selects the tasks belonging to a story, regardless of which
// sprint the tasks sit in. A story's completion stays well-defined even
// when its tasks were re-sprinted.
func TasksForStory(tasks []Task, storyID EntityID) []Task {
	if storyID.IsZero() {
		return nil
	}
	var out []Task
	for _, t := range tasks {
		if t.StoryID == storyID {
			out = append(out, t)
		}
	}
	return out
}

// TasksForSprint selects the tasks currently assigned to a sprint.
func TasksForSprint(tasks []Task, sprintID EntityID) []Task {
	var out []Task
	for _, t := range tasks {
		if !sprintID.IsZero() && t.SprintID == sprintID {
			out = append(out, t)
		}
	}
	return out
}
