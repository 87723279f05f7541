package memory

import (
	"context"
	"fmt"
	"sync"

	"expensetracker/internal/core"
)

// Store keeps transactions in process memory. Nothing survives Close.
type Store struct {
	mu    sync.Mutex
	items []core.Transaction
}

func New(seed ...core.Transaction) *Store {
	return &Store{items: append([]core.Transaction(nil), seed...)}
}

func (s *Store) CreateIfAbsent(_ context.Context) error {
	return nil
}

// Append validates and stores the transaction.
func (s *Store) Append(_ context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: %w", core.ErrStorageWrite, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, t)
	return nil
}

func (s *Store) QueryAll(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.items...), nil
}

func (s *Store) QueryByCategory(_ context.Context, category string) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.FilterByCategory(category, s.items), nil
}

func (s *Store) RenameCategory(_ context.Context, oldName, newName string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for i := range s.items {
		if s.items[i].Category == oldName {
			s.items[i].Category = newName
			n++
		}
	}
	return n, nil
}

func (s *Store) Close() error {
	return nil
}
