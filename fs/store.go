// Package fs provides file-based storage for the inventory.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/inventory"
)

// Ensure Store implements inventory.Store at compile time.
var _ inventory.Store = (*Store)(nil)

// Store keeps the inventory as a single pretty-printed JSON object mapping
// identifiers to items. Writes go to a temporary file that is renamed over
// the target, so readers never observe a partial snapshot.
type Store struct {
	path string

	mu   sync.Mutex
	last uint64 // xxhash of the last snapshot written or loaded
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the inventory file. A missing file yields an empty inventory.
func (s *Store) Load(ctx context.Context) (inventory.Inventory, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return inventory.Inventory{}, nil
	} else if err != nil {
		return nil, err
	}

	inv := inventory.Inventory{}
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, inventory.Errorf(inventory.EINVALID, "%s: malformed inventory: %v", s.path, err)
	}
	for id, item := range inv {
		if item == nil {
			delete(inv, id)
			continue
		}
		if item.Locations == nil {
			item.Locations = make(map[string]*inventory.Location)
		}
	}

	s.mu.Lock()
	s.last = xxhash.Sum64(data)
	s.mu.Unlock()

	return inv, nil
}

// Save writes inv to disk. A snapshot identical to the last one written
// is skipped.
func (s *Store) Save(ctx context.Context, inv inventory.Inventory) error {
	if inv == nil {
		inv = inventory.Inventory{}
	}
	data, err := Encode(inv)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sum := xxhash.Sum64(data)
	if sum == s.last {
		if _, err := os.Stat(s.path); err == nil {
			return nil
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.write(data); err != nil {
		return err
	}
	s.last = sum
	return nil
}

// Ensure creates the inventory file holding an empty object if it does
// not exist yet.
func (s *Store) Ensure() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write([]byte("{}"))
}

func (s *Store) write(data []byte) error {
	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// Encode formats inv as JSON indented with two spaces.
func Encode(inv inventory.Inventory) ([]byte, error) {
	return json.MarshalIndent(inv, "", "  ")
}
