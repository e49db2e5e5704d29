package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/inventory"
	"github.com/fwojciec/inventory/mock"
	invslog "github.com/fwojciec/inventory/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("logs item count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Store{
			LoadFn: func(ctx context.Context) (inventory.Inventory, error) {
				return inventory.Inventory{
					"Bolt": {Name: "Bolt"},
					"Nut":  {Name: "Nut"},
				}, nil
			},
		}

		store := invslog.NewLoggingStore(inner, logger)
		inv, err := store.Load(context.Background())

		require.NoError(t, err)
		assert.Len(t, inv, 2)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "inventory load")
		assert.Contains(t, output, "items=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Store{
			LoadFn: func(ctx context.Context) (inventory.Inventory, error) {
				return nil, errors.New("permission denied")
			},
		}

		store := invslog.NewLoggingStore(inner, logger)
		_, err := store.Load(context.Background())

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "err=\"permission denied\"")
	})
}

func TestLoggingStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("passes snapshot through and logs it", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var saved inventory.Inventory
		inner := &mock.Store{
			SaveFn: func(ctx context.Context, inv inventory.Inventory) error {
				saved = inv
				return nil
			},
		}
		snapshot := inventory.Inventory{"Bolt": {Name: "Bolt"}}

		store := invslog.NewLoggingStore(inner, logger)
		err := store.Save(context.Background(), snapshot)

		require.NoError(t, err)
		assert.Equal(t, snapshot, saved)
		output := buf.String()
		assert.Contains(t, output, "inventory save")
		assert.Contains(t, output, "items=1")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
		inner := &mock.Store{
			SaveFn: func(ctx context.Context, inv inventory.Inventory) error {
				return errors.New("disk full")
			},
		}

		store := invslog.NewLoggingStore(inner, logger)
		err := store.Save(context.Background(), inventory.Inventory{})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "err=\"disk full\"")
	})
}
