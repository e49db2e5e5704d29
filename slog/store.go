// Package slog provides logging decorators for inventory services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/inventory"
)

// Ensure LoggingStore implements inventory.Store.
var _ inventory.Store = (*LoggingStore)(nil)

// LoggingStore wraps a Store with logging. Successful calls are logged at
// Info, failures at Error.
type LoggingStore struct {
	next   inventory.Store
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next inventory.Store, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Load(ctx context.Context) (inv inventory.Inventory, err error) {
	defer func(begin time.Time) {
		s.logger.Log(ctx, level(err), "inventory load",
			"items", len(inv),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx)
}

// Save delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Save(ctx context.Context, inv inventory.Inventory) (err error) {
	defer func(begin time.Time) {
		s.logger.Log(ctx, level(err), "inventory save",
			"items", len(inv),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, inv)
}

func level(err error) slog.Level {
	if err != nil {
		return slog.LevelError
	}
	return slog.LevelInfo
}
