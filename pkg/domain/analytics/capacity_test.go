package analytics

import (
	"testing"

	"github.com/quantamisecode-hub/groona/pkg/domain/tracker"
)

func member(email string) tracker.TeamMember {
	return tracker.TeamMember{Email: email}
}

// twoWeekSprint runs Mon Jan 6 through Fri Jan 17: 10 business days.
func twoWeekSprint() tracker.Sprint {
	return tracker.Sprint{
		ID:        "sp1",
		Status:    tracker.SprintActive,
		StartDate: tracker.NewFlexibleDate(asOf("2025-01-06")),
		EndDate:   tracker.NewFlexibleDate(asOf("2025-01-17")),
	}
}

func TestComputeCapacity_LeaveAdjusted(t *testing.T) {
	project := tracker.Project{TeamMembers: []tracker.TeamMember{member("ana@x.io")}}
	leaves := []tracker.Leave{{
		UserEmail: "ana@x.io",
		Status:    tracker.LeaveApproved,
		StartDate: tracker.NewFlexibleDate(asOf("2025-01-08")),
		EndDate:   tracker.NewFlexibleDate(asOf("2025-01-09")),
	}}

	report := ComputeCapacity(project, twoWeekSprint(), leaves, nil, CapacityOptions{})
	if len(report.PerPerson) != 1 {
		t.Fatalf("PerPerson has %d entries, want 1", len(report.PerPerson))
	}
	pc := report.PerPerson[0]
	if pc.BusinessDays != 10 {
		t.Errorf("BusinessDays = %d, want 10", pc.BusinessDays)
	}
	if pc.LeaveDays != 2 {
		t.Errorf("LeaveDays = %d, want 2", pc.LeaveDays)
	}
	if pc.EffectiveDays != 8 {
		t.Errorf("EffectiveDays = %d, want 8", pc.EffectiveDays)
	}
	// 8 days x 8h = 64, capped at the 40h ceiling.
	if pc.CapacityHours != 40 {
		t.Errorf("CapacityHours = %v, want 40", pc.CapacityHours)
	}
}

func TestComputeCapacity_CeilingHolds(t *testing.T) {
	project := tracker.Project{TeamMembers: []tracker.TeamMember{member("ana@x.io"), member("bo@x.io")}}
	sprint := twoWeekSprint()
	sprint.CapacityOverride = map[string]tracker.Quantity{"bo@x.io": 12}

	report := ComputeCapacity(project, sprint, nil, nil, CapacityOptions{
		Overrides: map[string]float64{"bo@x.io": 12},
	})
	for _, pc := range report.PerPerson {
		if pc.CapacityHours > SprintCapacityCeilingHours {
			t.Errorf("%s capacity = %v exceeds ceiling", pc.Email, pc.CapacityHours)
		}
	}
	if report.TotalCapacityHours != 80 {
		t.Errorf("TotalCapacityHours = %v, want sum of capped capacities 80", report.TotalCapacityHours)
	}
}

func TestComputeCapacity_InvalidRangeDefaultsToCeiling(t *testing.T) {
	project := tracker.Project{TeamMembers: []tracker.TeamMember{member("ana@x.io"), member("bo@x.io")}}
	sprint := tracker.Sprint{ID: "sp1"} // no dates

	report := ComputeCapacity(project, sprint, nil, nil, CapacityOptions{})
	for _, pc := range report.PerPerson {
		if pc.CapacityHours != SprintCapacityCeilingHours {
			t.Errorf("%s capacity = %v, want flat 40h ceiling", pc.Email, pc.CapacityHours)
		}
		if pc.BusinessDays != 0 || pc.EffectiveDays != 0 {
			t.Errorf("%s day counts = %d/%d, want zeros without a date range", pc.Email, pc.BusinessDays, pc.EffectiveDays)
		}
	}
	if report.TotalCapacityHours != 80 {
		t.Errorf("TotalCapacityHours = %v, want team size x ceiling = 80", report.TotalCapacityHours)
	}
}

func TestComputeCapacity_HoursPerDayOverrides(t *testing.T) {
	// One week sprint: 5 business days, so hours/day choices stay below the cap.
	sprint := tracker.Sprint{
		ID:        "sp1",
		StartDate: tracker.NewFlexibleDate(asOf("2025-01-06")),
		EndDate:   tracker.NewFlexibleDate(asOf("2025-01-10")),
	}
	project := tracker.Project{TeamMembers: []tracker.TeamMember{member("ana@x.io"), member("bo@x.io"), member("cy@x.io")}}

	report := ComputeCapacity(project, sprint, nil, nil, CapacityOptions{
		DefaultHoursPerDay: 6,
		Overrides:          map[string]float64{"bo@x.io": 4},
	})

	want := map[string]float64{
		"ana@x.io": 30, // 5 x 6 (configured default)
		"bo@x.io":  20, // 5 x 4 (override)
		"cy@x.io":  30,
	}
	for _, pc := range report.PerPerson {
		if pc.CapacityHours != want[pc.Email] {
			t.Errorf("%s capacity = %v, want %v", pc.Email, pc.CapacityHours, want[pc.Email])
		}
	}
}

func TestComputeCapacity_ZeroOverrideSitsOut(t *testing.T) {
	// An explicit 0 h/day override means the person contributes nothing
	// this sprint; it must not fall back to the default rate.
	sprint := tracker.Sprint{
		ID:        "sp1",
		StartDate: tracker.NewFlexibleDate(asOf("2025-01-06")),
		EndDate:   tracker.NewFlexibleDate(asOf("2025-01-10")),
	}
	project := tracker.Project{TeamMembers: []tracker.TeamMember{member("ana@x.io")}}
	tasks := []tracker.Task{
		{ID: "t1", SprintID: "sp1", EstimatedHours: 6, AssignedTo: tracker.StringList{"ana@x.io"}},
	}

	report := ComputeCapacity(project, sprint, nil, tasks, CapacityOptions{
		Overrides: map[string]float64{"ana@x.io": 0},
	})

	pc := report.PerPerson[0]
	if pc.HoursPerDay != 0 {
		t.Errorf("HoursPerDay = %v, want 0 from the explicit override", pc.HoursPerDay)
	}
	if pc.CapacityHours != 0 {
		t.Errorf("CapacityHours = %v, want 0", pc.CapacityHours)
	}
	if pc.Workload != WorkloadOverloaded {
		t.Errorf("Workload = %q, want %q with work assigned against zero capacity", pc.Workload, WorkloadOverloaded)
	}
}

func TestComputeCapacity_AssignedHoursSpanSprints(t *testing.T) {
	project := tracker.Project{TeamMembers: []tracker.TeamMember{member("ana@x.io")}}
	tasks := []tracker.Task{
		{ID: "t1", SprintID: "sp1", EstimatedHours: 10, AssignedTo: tracker.StringList{"ana@x.io"}},
		{ID: "t2", SprintID: "other", EstimatedHours: 7, AssignedTo: tracker.StringList{"ana@x.io"}},
		{ID: "t3", SprintID: "sp1", EstimatedHours: 99, AssignedTo: tracker.StringList{"bo@x.io"}},
	}

	report := ComputeCapacity(project, twoWeekSprint(), nil, tasks, CapacityOptions{})
	for _, pc := range report.PerPerson {
		if pc.Email == "ana@x.io" && pc.AssignedHours != 17 {
			t.Errorf("ana assigned = %v, want 17 across all sprints", pc.AssignedHours)
		}
	}
}

func TestComputeCapacity_AdHocAssigneesAppear(t *testing.T) {
	project := tracker.Project{TeamMembers: []tracker.TeamMember{member("ana@x.io")}}
	tasks := []tracker.Task{
		{ID: "t1", EstimatedHours: 5, AssignedTo: tracker.StringList{"ghost@x.io"}},
	}

	report := ComputeCapacity(project, twoWeekSprint(), nil, tasks, CapacityOptions{})
	found := false
	for _, pc := range report.PerPerson {
		if pc.Email == "ghost@x.io" {
			found = true
			if pc.AssignedHours != 5 {
				t.Errorf("ghost assigned = %v, want 5", pc.AssignedHours)
			}
		}
	}
	if !found {
		t.Error("ad-hoc assignee missing from capacity report")
	}
}

func TestComputeCapacity_PendingLeaveIgnored(t *testing.T) {
	project := tracker.Project{TeamMembers: []tracker.TeamMember{member("ana@x.io")}}
	leaves := []tracker.Leave{
		{
			UserEmail: "ana@x.io",
			Status:    tracker.LeavePending,
			StartDate: tracker.NewFlexibleDate(asOf("2025-01-06")),
			EndDate:   tracker.NewFlexibleDate(asOf("2025-01-17")),
		},
		{
			// Approved but with unparseable dates: zero overlap.
			UserEmail: "ana@x.io",
			Status:    tracker.LeaveApproved,
		},
	}

	report := ComputeCapacity(project, twoWeekSprint(), leaves, nil, CapacityOptions{})
	if report.PerPerson[0].LeaveDays != 0 {
		t.Errorf("LeaveDays = %d, want 0", report.PerPerson[0].LeaveDays)
	}
}

func TestClassifyWorkload(t *testing.T) {
	tests := []struct {
		name     string
		assigned float64
		capacity float64
		want     WorkloadLevel
	}{
		{"no capacity but assigned", 1, 0, WorkloadOverloaded},
		{"no capacity no work", 0, 0, WorkloadOptimal},
		{"above 110 percent", 45, 40, WorkloadOverloaded},
		{"above 85 percent", 36, 40, WorkloadHigh},
		{"below half", 19, 40, WorkloadUnderutilized},
		{"comfortable", 30, 40, WorkloadOptimal},
		{"exactly 110 percent", 44, 40, WorkloadHigh},
		{"exactly half", 20, 40, WorkloadOptimal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyWorkload(tt.assigned, tt.capacity); got != tt.want {
				t.Errorf("classifyWorkload(%v, %v) = %q, want %q", tt.assigned, tt.capacity, got, tt.want)
			}
		})
	}
}
