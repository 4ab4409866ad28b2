package analytics

import (
	"github.com/quantamisecode-hub/groona/pkg/domain/calendar"
	"github.com/quantamisecode-hub/groona/pkg/domain/tracker"
)

// Capacity policy constants. The per-sprint ceiling is policy, not a
// derived value: no one is planned beyond 40 hours in a sprint regardless
// of what the calendar says is available.
const (
	SprintCapacityCeilingHours = 40.0
	DefaultHoursPerDay         = 8.0
)

// WorkloadLevel labels a person's assigned hours relative to capacity.
type WorkloadLevel string

const (
	WorkloadUnderutilized WorkloadLevel = "underutilized"
	WorkloadOptimal       WorkloadLevel = "optimal"
	WorkloadHigh          WorkloadLevel = "high"
	WorkloadOverloaded    WorkloadLevel = "overloaded"
)

// PersonCapacity is the capacity breakdown for one roster member.
type PersonCapacity struct {
	Email         string        `json:"email"`
	DisplayName   string        `json:"display_name,omitempty"`
	Role          string        `json:"role,omitempty"`
	BusinessDays  int           `json:"business_days"`
	LeaveDays     int           `json:"leave_days"`
	EffectiveDays int           `json:"effective_days"`
	HoursPerDay   float64       `json:"hours_per_day"`
	CapacityHours float64       `json:"capacity_hours"`
	AssignedHours float64       `json:"assigned_hours"`
	Workload      WorkloadLevel `json:"workload"`
}

// CapacityReport is the per-person and aggregate capacity for a sprint.
type CapacityReport struct {
	PerPerson          []PersonCapacity `json:"per_person"`
	TotalCapacityHours float64          `json:"total_capacity_hours"`
}

// CapacityOptions adjusts capacity computation. The zero value applies the
// defaults: 8 hours per day with no per-person overrides.
type CapacityOptions struct {
	// DefaultHoursPerDay replaces the 8h/day default when positive.
	DefaultHoursPerDay float64
	// Overrides maps user email to that person's hours per day, taking
	// precedence over the default. A present override is authoritative
	// even at zero, which marks someone as sitting the sprint out.
	// Typically sourced from the sprint's capacity_override field.
	Overrides map[string]float64
}

func (o CapacityOptions) hoursPerDay(email string) float64 {
	if h, ok := o.Overrides[email]; ok {
		return max(h, 0)
	}
	if o.DefaultHoursPerDay > 0 {
		return o.DefaultHoursPerDay
	}
	return DefaultHoursPerDay
}

// ComputeCapacity computes available hours per person for a sprint. The
// roster is the project's declared members plus any ad-hoc task assignee.
// Each person's capacity is their effective business days (business days in
// the sprint minus approved leave-day overlap) times their hours per day,
// capped at the 40h ceiling. When the sprint has no valid date range,
// day-based capacity cannot be computed and every person defaults to the
// full ceiling.
//
// Assigned hours sum the estimated hours of every task assigned to the
// person, regardless of sprint. The aggregate total sums the capped
// per-person capacities, never the uncapped values, so overbooking of one
// person cannot hide inside an average.
func ComputeCapacity(project tracker.Project, sprint tracker.Sprint, leaves []tracker.Leave, tasks []tracker.Task, opts CapacityOptions) CapacityReport {
	start, end, rangeOK := sprint.DateRange()
	businessDays := 0
	if rangeOK {
		businessDays = calendar.BusinessDaysInclusive(start, end)
	}

	var report CapacityReport
	for _, member := range tracker.Roster(project, tasks) {
		pc := PersonCapacity{
			Email:       member.Email,
			DisplayName: member.DisplayName,
			Role:        member.Role,
			HoursPerDay: opts.hoursPerDay(member.Email),
		}

		if rangeOK {
			pc.BusinessDays = businessDays
			for _, l := range tracker.ApprovedLeavesFor(leaves, member.Email) {
				ls, lsOK := l.StartDate.Time()
				le, leOK := l.EndDate.Time()
				if !lsOK || !leOK {
					continue
				}
				pc.LeaveDays += calendar.OverlapDays(ls, le, start, end)
			}
			pc.EffectiveDays = max(0, pc.BusinessDays-pc.LeaveDays)
			pc.CapacityHours = min(float64(pc.EffectiveDays)*pc.HoursPerDay, SprintCapacityCeilingHours)
		} else {
			pc.CapacityHours = SprintCapacityCeilingHours
		}

		for _, t := range tasks {
			if t.AssignedToUser(member.Email) {
				pc.AssignedHours += t.EstimatedHours.Float64()
			}
		}
		pc.Workload = classifyWorkload(pc.AssignedHours, pc.CapacityHours)

		report.PerPerson = append(report.PerPerson, pc)
		report.TotalCapacityHours += pc.CapacityHours
	}
	return report
}

// classifyWorkload applies the workload thresholds in order, first match
// wins.
func classifyWorkload(assignedHours, capacity float64) WorkloadLevel {
	switch {
	case capacity == 0 && assignedHours > 0:
		return WorkloadOverloaded
	case assignedHours > capacity*1.1:
		return WorkloadOverloaded
	case assignedHours > capacity*0.85:
		return WorkloadHigh
	case assignedHours < capacity*0.5:
		return WorkloadUnderutilized
	default:
		return WorkloadOptimal
	}
}
