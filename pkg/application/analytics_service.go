// Package application wires the analytics domain to snapshot storage and
// exposes the operations the CLI and dashboard consume.
package application

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quantamisecode-hub/groona/pkg/domain/analytics"
	"github.com/quantamisecode-hub/groona/pkg/domain/tracker"
)

// SnapshotRepository loads the point-in-time entity snapshot the engine
// computes from. Implementations own freshness; the service treats every
// load as an independent, immutable input.
type SnapshotRepository interface {
	LoadSnapshot() (*tracker.Snapshot, error)
}

// ReportRepository persists generated report artifacts.
type ReportRepository interface {
	SaveReport(report *SprintReport) error
}

// SprintReport is the combined analytics output for one sprint: a burndown
// series plus project-wide velocity and sprint capacity.
type SprintReport struct {
	ID          string                    `json:"id"`
	GeneratedAt time.Time                 `json:"generated_at"`
	ProjectName string                    `json:"project_name"`
	SprintID    tracker.EntityID          `json:"sprint_id"`
	SprintName  string                    `json:"sprint_name"`
	AsOf        string                    `json:"as_of"`
	Burndown    []analytics.BurndownPoint `json:"burndown"`
	Velocity    analytics.VelocityReport  `json:"velocity"`
	Capacity    analytics.CapacityReport  `json:"capacity"`
}

// Config holds the tunables the surrounding application may override.
type Config struct {
	// DefaultHoursPerDay replaces the engine's 8h/day default when positive.
	DefaultHoursPerDay float64
}

// AnalyticsService computes metrics over snapshots. It recomputes from
// scratch on every call; there is no cross-call cache to go stale.
type AnalyticsService struct {
	repo    SnapshotRepository
	reports ReportRepository
	cfg     Config
	clock   func() time.Time
	logger  *slog.Logger
}

// NewAnalyticsService creates the service. reports may be nil when report
// persistence is not needed. clock may be nil, defaulting to time.Now; tests
// pin it to make burndown's past/future split deterministic.
func NewAnalyticsService(repo SnapshotRepository, reports ReportRepository, cfg Config, clock func() time.Time, logger *slog.Logger) *AnalyticsService {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsService{
		repo:    repo,
		reports: reports,
		cfg:     cfg,
		clock:   clock,
		logger:  logger,
	}
}

// Snapshot loads the current entity snapshot.
func (s *AnalyticsService) Snapshot() (*tracker.Snapshot, error) {
	snap, err := s.repo.LoadSnapshot()
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return snap, nil
}

// resolveSprint finds the requested sprint, or the active one when no ID is
// given.
func (s *AnalyticsService) resolveSprint(snap *tracker.Snapshot, sprintID tracker.EntityID) (tracker.Sprint, error) {
	if sprintID.IsZero() {
		sprint, ok := snap.ActiveSprint()
		if !ok {
			return tracker.Sprint{}, fmt.Errorf("snapshot has no sprints")
		}
		return sprint, nil
	}
	sprint, ok := snap.SprintByID(sprintID)
	if !ok {
		return tracker.Sprint{}, fmt.Errorf("sprint %q not found in snapshot", sprintID)
	}
	return sprint, nil
}

// Burndown computes the daily burndown series for a sprint. An empty
// sprintID targets the active sprint; a zero asOf uses the service clock.
func (s *AnalyticsService) Burndown(sprintID tracker.EntityID, asOf time.Time) ([]analytics.BurndownPoint, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	sprint, err := s.resolveSprint(snap, sprintID)
	if err != nil {
		return nil, err
	}
	if asOf.IsZero() {
		asOf = s.clock()
	}
	return analytics.ComputeBurndown(sprint, tracker.TasksForSprint(snap.Tasks, sprint.ID), asOf), nil
}

// Velocity computes the project-wide velocity report.
func (s *AnalyticsService) Velocity() (analytics.VelocityReport, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return analytics.VelocityReport{}, err
	}
	return analytics.ComputeVelocity(snap.Sprints, snap.Stories, snap.Tasks), nil
}

// Capacity computes the capacity report for a sprint, applying the sprint's
// per-person hour overrides on top of the configured daily default.
func (s *AnalyticsService) Capacity(sprintID tracker.EntityID) (analytics.CapacityReport, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return analytics.CapacityReport{}, err
	}
	sprint, err := s.resolveSprint(snap, sprintID)
	if err != nil {
		return analytics.CapacityReport{}, err
	}
	return analytics.ComputeCapacity(snap.Project, sprint, snap.Leaves, snap.Tasks, s.capacityOptions(sprint)), nil
}

func (s *AnalyticsService) capacityOptions(sprint tracker.Sprint) analytics.CapacityOptions {
	opts := analytics.CapacityOptions{DefaultHoursPerDay: s.cfg.DefaultHoursPerDay}
	if len(sprint.CapacityOverride) > 0 {
		opts.Overrides = make(map[string]float64, len(sprint.CapacityOverride))
		for email, hours := range sprint.CapacityOverride {
			opts.Overrides[email] = hours.Float64()
		}
	}
	return opts
}

// BuildReport computes the combined report for a sprint. The report carries
// a fresh ID and generation timestamp; the analytics values themselves are
// pure functions of the snapshot and asOf.
func (s *AnalyticsService) BuildReport(sprintID tracker.EntityID, asOf time.Time) (*SprintReport, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	sprint, err := s.resolveSprint(snap, sprintID)
	if err != nil {
		return nil, err
	}
	if asOf.IsZero() {
		asOf = s.clock()
	}

	report := &SprintReport{
		ID:          uuid.NewString(),
		GeneratedAt: s.clock().UTC(),
		ProjectName: snap.Project.Name,
		SprintID:    sprint.ID,
		SprintName:  sprint.Name,
		AsOf:        asOf.UTC().Format("2006-01-02"),
		Burndown:    analytics.ComputeBurndown(sprint, tracker.TasksForSprint(snap.Tasks, sprint.ID), asOf),
		Velocity:    analytics.ComputeVelocity(snap.Sprints, snap.Stories, snap.Tasks),
		Capacity:    analytics.ComputeCapacity(snap.Project, sprint, snap.Leaves, snap.Tasks, s.capacityOptions(sprint)),
	}

	s.logger.Debug("built sprint report",
		"sprint", sprint.ID.String(),
		"burndown_days", len(report.Burndown),
		"sprints_in_velocity", len(report.Velocity.PerSprint),
		"roster_size", len(report.Capacity.PerPerson))
	return report, nil
}

// PersistReport writes a report through the configured report repository.
func (s *AnalyticsService) PersistReport(report *SprintReport) error {
	if s.reports == nil {
		return fmt.Errorf("no report repository configured")
	}
	if err := s.reports.SaveReport(report); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}
