package tracker

// Story is a unit of user-facing value, sized in story points and
// decomposed into tasks.
type Story struct {
	ID          EntityID    `json:"id" yaml:"id"`
	ProjectID   EntityID    `json:"project_id" yaml:"project_id"`
	EpicID      EntityID    `json:"epic_id,omitempty" yaml:"epic_id,omitempty"`
	SprintID    EntityID    `json:"sprint_id,omitempty" yaml:"sprint_id,omitempty"`
	Title       string      `json:"title" yaml:"title"`
	Status      StoryStatus `json:"status" yaml:"status"`
	StoryPoints Quantity    `json:"story_points" yaml:"story_points"`
	AssignedTo  StringList  `json:"assigned_to,omitempty" yaml:"assigned_to,omitempty"`
}

// InSprint reports whether the story is currently assigned to the sprint.
func (s Story) InSprint(sprintID EntityID) bool {
	return !sprintID.IsZero() && s.SprintID == sprintID
}

// StoriesForSprint selects the stories currently assigned to a sprint.
func StoriesForSprint(stories []Story, sprintID EntityID) []Story {
	var out []Story
	for _, s := range stories {
		if s.InSprint(sprintID) {
			out = append(out, s)
		}
	}
	return out
}
