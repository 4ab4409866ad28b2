// Package tracker defines the read-only entity snapshots the analytics
// packages consume: sprints, stories, tasks, leave requests, and the
// project roster. All coercion of legacy data shapes happens here, at the
// decoding boundary, so the analytics code only ever sees normalized
// values.
package tracker

import "time"

// Sprint is a time-boxed iteration. Dates are calendar dates with no
// time-of-day semantics.
type Sprint struct {
	ID               EntityID            `json:"id" yaml:"id"`
	Name             string              `json:"name" yaml:"name"`
	Status           SprintStatus        `json:"status" yaml:"status"`
	StartDate        FlexibleDate        `json:"start_date" yaml:"start_date"`
	EndDate          FlexibleDate        `json:"end_date" yaml:"end_date"`
	LockedDate       FlexibleDate        `json:"locked_date" yaml:"locked_date"`
	CommittedPoints  *Quantity           `json:"committed_points,omitempty" yaml:"committed_points,omitempty"`
	CapacityOverride map[string]Quantity `json:"capacity_override,omitempty" yaml:"capacity_override,omitempty"`
}

// DateRange returns the sprint's start and end days. ok is false when
// either date is unparseable or the end precedes the start; callers treat
// such sprints as having no calendar extent.
func (s Sprint) DateRange() (start, end time.Time, ok bool) {
	start, startOK := s.StartDate.Time()
	end, endOK := s.EndDate.Time()
	if !startOK || !endOK || end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// IsLocked reports whether the sprint's scope was frozen.
func (s Sprint) IsLocked() bool {
	return s.LockedDate.Valid()
}

// CountsTowardVelocity reports whether the sprint represents committed
// work: either finished, or still running with a frozen scope. Planned and
// unlocked-active sprints are speculative and excluded.
func (s Sprint) CountsTowardVelocity() bool {
	return s.Status == SprintCompleted || s.IsLocked()
}

// StartOrEpoch returns the start day, or the unix epoch when the date is
// missing so that undated sprints sort before dated ones.
func (s Sprint) StartOrEpoch() time.Time {
	if t, ok := s.StartDate.Time(); ok {
		return t
	}
	return time.Unix(0, 0).UTC()
}
