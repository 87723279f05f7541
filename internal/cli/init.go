// Package cli provides the command line entry point: environment and config
// loading, logger setup, the session bootstrap and the interactive menu.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/joho/godotenv"

	"expensetracker/internal/backend"
	"expensetracker/internal/config"
	applog "expensetracker/internal/log"
	"expensetracker/internal/services"
)

// SetupLogger initializes structured logging at the given level, writing to w.
// Returns the configured logger and sets it as the default logger.
func SetupLogger(level string, w io.Writer) (*applog.Logger, error) {
	lvl, err := applog.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := applog.New(applog.Config{
		Level:     lvl,
		Component: applog.ComponentCLI,
		Output:    w,
	})
	slog.SetDefault(logger.Logger)
	return logger, nil
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration from the environment, applies
// overrides in order and validates the result.
func LoadAndValidateConfig(overrides ...func(*config.Config)) (*config.Config, error) {
	cfg := config.Load()
	for _, override := range overrides {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OpenSession opens the store for username and returns a report service
// bound to it. The caller closes the service.
func OpenSession(ctx context.Context, logger *applog.Logger, cfg *config.Config, username string, now func() time.Time) (*services.ReportService, error) {
	bcfg, err := backend.FromAppConfig(cfg, username)
	if err != nil {
		return nil, err
	}
	res, err := backend.NewFactory(logger.Logger).CreateBackend(ctx, bcfg)
	if err != nil {
		return nil, fmt.Errorf("open store for %s: %w", username, err)
	}

	logger.InfoContext(ctx, "Session started",
		applog.FieldOperation, applog.OpStartup,
		applog.FieldUser, res.Name,
		applog.FieldBackend, bcfg.Type.String())

	return services.NewReportService(services.Session{
		Username: res.Name,
		Store:    res.Store,
		Now:      now,
	}, logger), nil
}
