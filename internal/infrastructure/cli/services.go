package cli

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/quantamisecode-hub/groona/internal/infrastructure/wiring"
	"github.com/quantamisecode-hub/groona/pkg/domain/calendar"
	"github.com/quantamisecode-hub/groona/pkg/domain/tracker"
)

// buildServices assembles the service graph for the workspace named on the
// command line (or GROONA_WORKSPACE).
func buildServices() (*wiring.AppServices, error) {
	return wiring.BuildAppServices(viper.GetString("workspace"), newLogger())
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func jsonOutput() bool {
	return viper.GetBool("json")
}

// parseAsOf interprets an --as-of flag value. Empty means "now"; anything
// unparseable is an error at the flag boundary rather than a silent
// default, since the user asked for a specific day.
func parseAsOf(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	t, ok := calendar.ParseDate(value)
	if !ok {
		return time.Time{}, false
	}
	return t, true
}

func sprintArg(value string) tracker.EntityID {
	return tracker.EntityID(value)
}
