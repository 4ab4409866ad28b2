// Package wiring assembles the service graph for a workspace root.
package wiring

import (
	"log/slog"

	"github.com/quantamisecode-hub/groona/internal/infrastructure/config"
	"github.com/quantamisecode-hub/groona/pkg/application"
	"github.com/quantamisecode-hub/groona/pkg/storage"
)

// AppServices bundles everything a command needs.
type AppServices struct {
	Settings  *config.Settings
	Repo      *storage.FilesystemRepository
	Analytics *application.AnalyticsService
}

// BuildAppServices constructs the repository and analytics service for the
// given workspace root. logger may be nil.
func BuildAppServices(root string, logger *slog.Logger) (*AppServices, error) {
	settings, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	repo := storage.NewFilesystemRepository(root, logger)
	svc := application.NewAnalyticsService(repo, repo, application.Config{
		DefaultHoursPerDay: settings.HoursPerDay,
	}, nil, logger)

	return &AppServices{
		Settings:  settings,
		Repo:      repo,
		Analytics: svc,
	}, nil
}
