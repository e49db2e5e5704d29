package sqlite

import (
	"context"
	"fmt"

	"github.com/fwojciec/inventory"
)

// Compile-time interface verification.
var _ inventory.Store = (*Store)(nil)

// Store implements inventory.Store using SQLite. Each Save replaces the
// stored snapshot inside one transaction.
type Store struct {
	db *DB
}

// NewStore creates a new Store.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// Load reads every item and its location records.
func (s *Store) Load(ctx context.Context) (inventory.Inventory, error) {
	inv := inventory.Inventory{}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM items`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			rows.Close()
			return nil, err
		}
		inv[id] = &inventory.Item{Name: name, Locations: make(map[string]*inventory.Location)}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx, `SELECT item_id, location, quantity FROM locations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		var loc inventory.Location
		if err := rows.Scan(&id, &loc.Location, &loc.Quantity); err != nil {
			return nil, err
		}
		item, ok := inv[id]
		if !ok {
			return nil, fmt.Errorf("location %q references unknown item %q", loc.Location, id)
		}
		item.Locations[loc.Location] = &loc
	}
	return inv, rows.Err()
}

// Save replaces the stored inventory with inv.
func (s *Store) Save(ctx context.Context, inv inventory.Inventory) error {
	if err := inv.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return err
	}
	for id, item := range inv {
		if _, err := tx.ExecContext(ctx, `INSERT INTO items (id, name) VALUES (?, ?)`, id, item.Name); err != nil {
			return fmt.Errorf("insert item %q: %w", id, err)
		}
		for _, loc := range item.Locations {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO locations (item_id, location, quantity)
				VALUES (?, ?, ?)
			`, id, loc.Location, loc.Quantity); err != nil {
				return fmt.Errorf("insert location %q for %q: %w", loc.Location, id, err)
			}
		}
	}

	return tx.Commit()
}
