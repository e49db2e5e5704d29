package inventory

// Catalog owns an inventory and the search index built over it.
// It is not safe for concurrent use.
type Catalog struct {
	items Inventory
	index *SearchIndex
}

// NewCatalog returns a catalog over inv and indexes every item.
// A nil inv starts an empty catalog.
func NewCatalog(inv Inventory) *Catalog {
	if inv == nil {
		inv = make(Inventory)
	}
	c := &Catalog{items: inv, index: NewSearchIndex()}
	c.index.Build(inv)
	return c
}

// AddItem records quantity of the named item at location. A new item is
// created under the normalized name; an existing item gains the location
// or has that location's record replaced. The item is re-indexed either way.
func (c *Catalog) AddItem(name, location string, quantity int) (*Item, error) {
	id, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}
	if location == "" {
		return nil, Errorf(EINVALID, "Please enter a location")
	}
	if quantity < 0 {
		return nil, Errorf(EINVALID, "quantity must not be negative")
	}

	record := &Location{Location: location, Quantity: quantity}
	item, ok := c.items[id]
	if !ok {
		item = &Item{Name: name, Locations: make(map[string]*Location)}
		c.items[id] = item
	} else if item.Locations == nil {
		item.Locations = make(map[string]*Location)
	}
	item.Locations[location] = record

	c.index.Add(item)
	return item, nil
}

// Search returns items sharing keywords with query, most relevant first.
// Returns ErrCanceled if query is blank.
func (c *Catalog) Search(query string) ([]*Item, error) {
	keywords, err := Keywords(query)
	if err != nil {
		return nil, err
	}

	ids := Rank(c.index.Lookup(keywords))
	items := make([]*Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := c.items[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// Find returns the item stored under name's identifier.
func (c *Catalog) Find(name string) (*Item, bool) {
	id, err := NormalizeName(name)
	if err != nil {
		return nil, false
	}
	item, ok := c.items[id]
	return item, ok
}

// Quantity returns how many of the named item are at location, or zero.
func (c *Catalog) Quantity(name, location string) int {
	item, ok := c.Find(name)
	if !ok {
		return 0
	}
	if loc, ok := item.Locations[location]; ok {
		return loc.Quantity
	}
	return 0
}

// Locations returns every distinct location in the catalog, sorted.
func (c *Catalog) Locations() []string {
	return c.items.AllLocations()
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Snapshot returns a deep copy of the inventory that stays valid while the
// catalog keeps changing.
func (c *Catalog) Snapshot() Inventory {
	inv := make(Inventory, len(c.items))
	for id, item := range c.items {
		cp := &Item{Name: item.Name, Locations: make(map[string]*Location, len(item.Locations))}
		for key, loc := range item.Locations {
			l := *loc
			cp.Locations[key] = &l
		}
		inv[id] = cp
	}
	return inv
}
