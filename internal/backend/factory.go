package backend

import (
	"context"
	"fmt"
	"log/slog"

	applog "expensetracker/internal/log"
	"expensetracker/internal/storage"
	"expensetracker/internal/store"
	"expensetracker/internal/store/memory"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{
		logger: logger.With(applog.FieldComponent, applog.ComponentBackend),
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	name := store.Name(config.Username)

	var (
		s   store.Store
		err error
	)
	switch config.Type {
	case SQLiteBackend:
		s, err = f.createSQLiteBackend(ctx, config, name)
	case MemoryBackend:
		s, err = f.createMemoryBackend(ctx, name)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
	if err != nil {
		return nil, err
	}

	if err := s.CreateIfAbsent(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("initialize %s store %s: %w", config.Type, name, err)
	}

	return &BackendResult{
		Store:   s,
		Name:    name,
		Cleanup: s.Close,
	}, nil
}

func (f *DefaultFactory) createSQLiteBackend(ctx context.Context, config Config, name string) (store.Store, error) {
	path := storage.PathFor(config.DataDir, name)
	repo, err := storage.NewSQLiteRepository(path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	f.logger.InfoContext(ctx, "Initialized SQLite backend",
		applog.FieldUser, name,
		applog.FieldPath, path)

	return repo, nil
}

func (f *DefaultFactory) createMemoryBackend(ctx context.Context, name string) (store.Store, error) {
	f.logger.InfoContext(ctx, "Initialized memory backend", applog.FieldUser, name)
	return memory.New(), nil
}
