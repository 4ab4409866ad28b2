package analytics

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/quantamisecode-hub/groona/pkg/domain/tracker"
)

func jsonField[T any](t *testing.T, doc string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(doc), &v); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return v
}

func sprintJanuary(t *testing.T) tracker.Sprint {
	return jsonField[tracker.Sprint](t, `{
		"id": "sp1", "name": "Sprint 1", "status": "active",
		"start_date": "2025-01-01", "end_date": "2025-01-05"
	}`)
}

func asOf(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestComputeBurndown_SimpleScenario(t *testing.T) {
	// One 10-point task completed Jan 3 in a Jan 1-5 sprint.
	sprint := sprintJanuary(t)
	tasks := []tracker.Task{jsonField[tracker.Task](t, `{
		"id": "t1", "status": "completed", "story_points": 10,
		"completed_date": "2025-01-03"
	}`)}

	series := ComputeBurndown(sprint, tasks, asOf("2025-01-05"))
	if len(series) != 5 {
		t.Fatalf("series has %d points, want 5", len(series))
	}

	wantIdeal := []float64{10, 7.5, 5, 2.5, 0}
	wantActual := []float64{10, 10, 0, 0, 0}
	for i, p := range series {
		if p.Ideal != wantIdeal[i] {
			t.Errorf("day %d ideal = %v, want %v", i, p.Ideal, wantIdeal[i])
		}
		if p.Actual != wantActual[i] {
			t.Errorf("day %d actual = %v, want %v", i, p.Actual, wantActual[i])
		}
	}
	if series[0].Date != "2025-01-01" || series[4].Date != "2025-01-05" {
		t.Errorf("date range = %s..%s, want 2025-01-01..2025-01-05", series[0].Date, series[4].Date)
	}
}

func TestComputeBurndown_Conservation(t *testing.T) {
	sprint := sprintJanuary(t)
	tasks := []tracker.Task{
		{Status: tracker.TaskTodo, StoryPoints: 3},
		{Status: tracker.TaskCompleted, StoryPoints: 5, CompletedDate: tracker.NewFlexibleDate(asOf("2025-01-02"))},
		{Status: tracker.TaskInProgress, EstimatedHours: 2},
	}

	series := ComputeBurndown(sprint, tasks, asOf("2025-01-05"))
	if series[0].Ideal != 10 {
		t.Errorf("ideal[0] = %v, want total effort 10", series[0].Ideal)
	}
	if series[len(series)-1].Ideal != 0 {
		t.Errorf("ideal[last] = %v, want 0", series[len(series)-1].Ideal)
	}
	for i := 1; i < len(series); i++ {
		if series[i].Actual > series[i-1].Actual {
			t.Errorf("actual increased on day %d: %v -> %v", i, series[i-1].Actual, series[i].Actual)
		}
	}
}

func TestComputeBurndown_FlatProjectionAfterAsOf(t *testing.T) {
	sprint := sprintJanuary(t)
	tasks := []tracker.Task{
		{Status: tracker.TaskCompleted, StoryPoints: 4, CompletedDate: tracker.NewFlexibleDate(asOf("2025-01-02"))},
		{Status: tracker.TaskTodo, StoryPoints: 6},
	}

	// Midway through the sprint: Jan 3.
	series := ComputeBurndown(sprint, tasks, asOf("2025-01-03"))
	wantActual := []float64{10, 6, 6, 6, 6}
	for i, p := range series {
		if p.Actual != wantActual[i] {
			t.Errorf("day %d actual = %v, want %v", i, p.Actual, wantActual[i])
		}
	}
}

func TestComputeBurndown_EmptySprint(t *testing.T) {
	series := ComputeBurndown(sprintJanuary(t), nil, asOf("2025-01-03"))
	if len(series) != 5 {
		t.Fatalf("series has %d points, want full 5-day series", len(series))
	}
	for i, p := range series {
		if p.Ideal != 0 || p.Actual != 0 {
			t.Errorf("day %d = {ideal %v, actual %v}, want zeros", i, p.Ideal, p.Actual)
		}
	}
}

func TestComputeBurndown_InvalidRange(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"inverted", `{"id": "sp", "start_date": "2025-01-05", "end_date": "2025-01-01"}`},
		{"unparseable start", `{"id": "sp", "start_date": "whenever", "end_date": "2025-01-05"}`},
		{"missing dates", `{"id": "sp"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sprint := jsonField[tracker.Sprint](t, tt.doc)
			if got := ComputeBurndown(sprint, nil, asOf("2025-01-03")); got != nil {
				t.Errorf("ComputeBurndown = %v, want nil series", got)
			}
		})
	}
}

func TestComputeBurndown_UndatedCompletionCountsAtSprintStart(t *testing.T) {
	sprint := sprintJanuary(t)
	tasks := []tracker.Task{
		// Completed but with no parseable completion or update date.
		{Status: tracker.TaskCompleted, StoryPoints: 6},
		{Status: tracker.TaskTodo, StoryPoints: 4},
	}

	series := ComputeBurndown(sprint, tasks, asOf("2025-01-05"))
	// The undated completion burns on day one.
	if series[0].Actual != 4 {
		t.Errorf("day 0 actual = %v, want 4 (undated completion burned at start)", series[0].Actual)
	}
}

func TestComputeBurndown_SingleDaySprint(t *testing.T) {
	sprint := jsonField[tracker.Sprint](t, `{
		"id": "sp", "start_date": "2025-01-01", "end_date": "2025-01-01"
	}`)
	tasks := []tracker.Task{{Status: tracker.TaskTodo, StoryPoints: 5}}

	series := ComputeBurndown(sprint, tasks, asOf("2025-01-01"))
	if len(series) != 1 {
		t.Fatalf("series has %d points, want 1", len(series))
	}
	if series[0].Ideal != 5 || series[0].Actual != 5 {
		t.Errorf("point = %+v, want ideal 5 actual 5", series[0])
	}
}

func TestComputeBurndown_RoundsToOneDecimal(t *testing.T) {
	sprint := jsonField[tracker.Sprint](t, `{
		"id": "sp", "start_date": "2025-01-01", "end_date": "2025-01-04"
	}`)
	tasks := []tracker.Task{{Status: tracker.TaskTodo, StoryPoints: 10}}

	// Burn rate 10/3 per day: ideal day 1 is 6.666... -> 6.7.
	series := ComputeBurndown(sprint, tasks, asOf("2025-01-04"))
	if series[1].Ideal != 6.7 {
		t.Errorf("day 1 ideal = %v, want 6.7", series[1].Ideal)
	}
	if series[2].Ideal != 3.3 {
		t.Errorf("day 2 ideal = %v, want 3.3", series[2].Ideal)
	}
}

func TestComputeBurndown_Idempotent(t *testing.T) {
	sprint := sprintJanuary(t)
	tasks := []tracker.Task{
		{Status: tracker.TaskCompleted, StoryPoints: 4, CompletedDate: tracker.NewFlexibleDate(asOf("2025-01-02"))},
		{Status: tracker.TaskTodo, EstimatedHours: 6},
	}
	now := asOf("2025-01-03")

	first := ComputeBurndown(sprint, tasks, now)
	second := ComputeBurndown(sprint, tasks, now)
	if len(first) != len(second) {
		t.Fatalf("series lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("point %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
