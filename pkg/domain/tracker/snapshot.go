package tracker

// Snapshot is a point-in-time export of the entities the analytics engine
// consumes. The persistence layer that owns these records lives elsewhere;
// a snapshot is read-only input and is never mutated by this module.
type Snapshot struct {
	Project Project  `json:"project" yaml:"project"`
	Sprints []Sprint `json:"sprints,omitempty" yaml:"sprints,omitempty"`
	Stories []Story  `json:"stories,omitempty" yaml:"stories,omitempty"`
	Tasks   []Task   `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	Leaves  []Leave  `json:"leaves,omitempty" yaml:"leaves,omitempty"`
}

// SprintByID finds a sprint in the snapshot. The second return value is
// false when no sprint matches.
func (s *Snapshot) SprintByID(id EntityID) (Sprint, bool) {
	for _, sp := range s.Sprints {
		if sp.ID == id {
			return sp, true
		}
	}
	return Sprint{}, false
}

// ActiveSprint returns the first active sprint, falling back to the most
// recently started sprint of any status. Used when a caller does not name a
// sprint explicitly.
func (s *Snapshot) ActiveSprint() (Sprint, bool) {
	for _, sp := range s.Sprints {
		if sp.Status == SprintActive {
			return sp, true
		}
	}
	var best Sprint
	found := false
	for _, sp := range s.Sprints {
		if !found || sp.StartOrEpoch().After(best.StartOrEpoch()) {
			best = sp
			found = true
		}
	}
	return best, found
}
