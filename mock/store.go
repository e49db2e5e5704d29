package mock

import (
	"context"

	"github.com/fwojciec/inventory"
)

var _ inventory.Store = (*Store)(nil)

// Store is a mock implementation of inventory.Store.
type Store struct {
	LoadFn func(ctx context.Context) (inventory.Inventory, error)
	SaveFn func(ctx context.Context, inv inventory.Inventory) error
}

func (s *Store) Load(ctx context.Context) (inventory.Inventory, error) {
	return s.LoadFn(ctx)
}

func (s *Store) Save(ctx context.Context, inv inventory.Inventory) error {
	return s.SaveFn(ctx, inv)
}
