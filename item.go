package inventory

import (
	"context"
	"slices"
	"strings"
)

// NormalizeName converts a raw item name into its identifier by trimming
// surrounding whitespace and collapsing internal whitespace runs to a single
// space. Returns ErrCanceled if nothing remains.
func NormalizeName(name string) (string, error) {
	id := strings.Join(strings.Fields(name), " ")
	if id == "" {
		return "", ErrCanceled
	}
	return id, nil
}

// Keywords returns the lowercased tokens of a name. Indexing and querying
// tokenize identically. Repeated words are kept.
func Keywords(name string) ([]string, error) {
	id, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.ToLower(id), " "), nil
}

// Location records how many of an item are stored at one place.
type Location struct {
	Location string `json:"location"`
	Quantity int    `json:"quantity"`
}

// Item is a physical thing tracked across one or more locations.
type Item struct {
	// Name as first entered. The identifier is NormalizeName(Name).
	Name      string               `json:"name"`
	Locations map[string]*Location `json:"locations"`
}

// ID returns the item's identifier.
func (i *Item) ID() string {
	return strings.Join(strings.Fields(i.Name), " ")
}

// LocationNames returns the item's location keys in sorted order.
func (i *Item) LocationNames() []string {
	names := make([]string, 0, len(i.Locations))
	for name := range i.Locations {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate returns an error if the item contains invalid fields.
func (i *Item) Validate() error {
	if i.ID() == "" {
		return Errorf(EINVALID, "item name required")
	}
	for key, loc := range i.Locations {
		if loc == nil {
			return Errorf(EINVALID, "item %q: location %q has no record", i.Name, key)
		}
		if loc.Location != key {
			return Errorf(EINVALID, "item %q: location record %q stored under %q", i.Name, loc.Location, key)
		}
		if loc.Quantity < 0 {
			return Errorf(EINVALID, "item %q: negative quantity at %q", i.Name, key)
		}
	}
	return nil
}

// Inventory maps identifiers to items.
type Inventory map[string]*Item

// Validate returns an error if any item is invalid or filed under the
// wrong identifier.
func (inv Inventory) Validate() error {
	for id, item := range inv {
		if item == nil {
			return Errorf(EINVALID, "item %q is empty", id)
		}
		if err := item.Validate(); err != nil {
			return err
		}
		if item.ID() != id {
			return Errorf(EINVALID, "item %q stored under identifier %q", item.Name, id)
		}
	}
	return nil
}

// AllLocations returns every distinct location in the inventory, sorted.
func (inv Inventory) AllLocations() []string {
	seen := make(map[string]struct{})
	for _, item := range inv {
		for _, loc := range item.Locations {
			seen[loc.Location] = struct{}{}
		}
	}
	locations := make([]string, 0, len(seen))
	for loc := range seen {
		locations = append(locations, loc)
	}
	slices.Sort(locations)
	return locations
}

// Store persists the inventory snapshot.
type Store interface {
	// Load returns the persisted inventory.
	// A store with nothing persisted yet returns an empty inventory.
	Load(ctx context.Context) (Inventory, error)

	// Save replaces the persisted inventory with inv.
	Save(ctx context.Context, inv Inventory) error
}
