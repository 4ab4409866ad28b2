// Package storage reads entity snapshots from a .groona workspace
// directory and persists generated report artifacts. It is the file-backed
// stand-in for the entity-fetch layer that owns the records; everything it
// loads is treated as an immutable point-in-time export.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"gopkg.in/yaml.v3"

	"github.com/quantamisecode-hub/groona/pkg/application"
	"github.com/quantamisecode-hub/groona/pkg/domain/tracker"
)

const WorkspaceDir = ".groona"
const SnapshotJSONFile = "snapshot.json"
const SnapshotYAMLFile = "snapshot.yaml"
const ReportFile = "report.json"
const ConfigFile = "config.yaml"

type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
	logger      *slog.Logger
}

func NewFilesystemRepository(root string, logger *slog.Logger) *FilesystemRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
		logger: logger,
	}
}

// Root returns the workspace root directory.
func (r *FilesystemRepository) Root() string {
	return r.root
}

// ResolvePath ensures the path stays within the .groona directory and
// prevents traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}
	baseDir := filepath.Join(r.root, WorkspaceDir)
	cleanPath := filepath.Clean(filepath.Join(baseDir, filename))
	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}
	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.root, WorkspaceDir)
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", WorkspaceDir, err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.root, WorkspaceDir))
	return err == nil
}

// WriteStarterSnapshot writes a minimal JSON snapshot so a fresh workspace
// has something to compute against. It refuses to overwrite an existing
// snapshot in either format.
func (r *FilesystemRepository) WriteStarterSnapshot(projectName string) error {
	if _, err := r.SnapshotPath(); err == nil {
		return fmt.Errorf("workspace already has a snapshot")
	}

	snap := tracker.Snapshot{
		Project: tracker.Project{Name: projectName},
	}
	data, err := json.MarshalIndent(&snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal starter snapshot: %w", err)
	}

	path, err := r.ResolvePath(SnapshotJSONFile)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write starter snapshot: %w", err)
	}
	return nil
}

// SnapshotPath returns the snapshot file in use: the JSON export when
// present, else the YAML one.
func (r *FilesystemRepository) SnapshotPath() (string, error) {
	jsonPath, err := r.ResolvePath(SnapshotJSONFile)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath, nil
	}
	yamlPath, err := r.ResolvePath(SnapshotYAMLFile)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath, nil
	}
	return "", fmt.Errorf("no %s or %s found under %s", SnapshotJSONFile, SnapshotYAMLFile, filepath.Join(r.root, WorkspaceDir))
}

// LoadSnapshot reads and decodes the workspace snapshot. JSON snapshots are
// checked against the embedded schema first; violations are logged as
// warnings and decoding proceeds on whatever is usable, since a malformed
// field degrades to its zero value rather than failing the computation.
func (r *FilesystemRepository) LoadSnapshot() (*tracker.Snapshot, error) {
	retryer := retry.New[*tracker.Snapshot](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (*tracker.Snapshot, error) {
		path, err := r.SnapshotPath()
		if err != nil {
			return nil, err
		}

		// #nosec G304 -- Path is resolved and validated via ResolvePath
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read snapshot: %w", err)
		}

		var snap tracker.Snapshot
		if strings.HasSuffix(path, ".json") {
			for _, issue := range ValidateSnapshotJSON(data) {
				r.logger.Warn("snapshot schema violation", "issue", issue)
			}
			if err := json.Unmarshal(data, &snap); err != nil {
				return nil, fmt.Errorf("failed to decode snapshot json: %w", err)
			}
		} else {
			if err := yaml.Unmarshal(data, &snap); err != nil {
				return nil, fmt.Errorf("failed to decode snapshot yaml: %w", err)
			}
		}
		return &snap, nil
	})
}

// SaveReport writes the report artifact, retrying transient filesystem
// failures the same way snapshot loads are retried.
func (r *FilesystemRepository) SaveReport(report *application.SprintReport) error {
	path, err := r.ResolvePath(ReportFile)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	retryer := retry.New[string](r.retryConfig)
	_, err = retryer.Do(context.Background(), func(ctx context.Context) (string, error) {
		// G306: Use 0600 for files
		if err := os.WriteFile(path, data, 0600); err != nil {
			return "", fmt.Errorf("failed to write report: %w", err)
		}
		return path, nil
	})
	return err
}
