package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/inventory"
)

// Run executes the add command. It repeatedly asks for a name, a location
// and a quantity, records the entry and queues the inventory for saving.
func (c *AddCmd) Run(deps *Dependencies) error {
	history := &inventory.LocationHistory{}

	for {
		name, err := deps.Prompt.Ask("Enter thing name", "", validateName)
		if err != nil {
			return err
		}
		if isExit(name) {
			return nil
		}

		// Known items default to where they already are
		initial := history.Suggest()
		if item, ok := deps.Catalog.Find(name); ok {
			locations := item.LocationNames()
			fmt.Fprintf(deps.Stdout, "Found in %s\n", strings.Join(locations, ", "))
			if len(locations) > 0 {
				initial = locations[0]
			}
		}

		location, err := deps.Prompt.Ask("Set Location", initial, validateLocation)
		if err != nil {
			return err
		}
		location = strings.TrimSpace(location)
		history.Push(location)

		current := deps.Catalog.Quantity(name, location)
		label := fmt.Sprintf("Set Quantity in %s (currently %d)", location, current)
		answer, err := deps.Prompt.Ask(label, strconv.Itoa(current+1), validateQuantity)
		if err != nil {
			return err
		}
		quantity, err := parseQuantity(answer)
		if err != nil {
			return err
		}

		item, err := deps.Catalog.AddItem(name, location, quantity)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", inventory.ErrorMessage(err))
			return err
		}
		deps.Logger.Debug("item recorded",
			"item", item.Name,
			"location", location,
			"quantity", quantity,
		)

		if err := deps.Saves.Submit(deps.Catalog.Snapshot()); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", inventory.ErrorMessage(err))
			return err
		}
	}
}
