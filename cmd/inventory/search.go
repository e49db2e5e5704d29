package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/inventory"
)

// locationsCommand lists every location from within a search session.
const locationsCommand = "locations"

// Run executes the search command. Each query shows the matching item
// directly when it is unambiguous, otherwise a numbered menu to pick from.
func (c *SearchCmd) Run(deps *Dependencies) error {
	for {
		query, err := deps.Prompt.Ask(`Search thing name (or type "locations")`, "", validateName)
		if err != nil {
			return err
		}
		if isExit(query) {
			return nil
		}
		if strings.TrimSpace(query) == locationsCommand {
			fmt.Fprint(deps.Stdout, deps.Format.FormatLocations(deps.Catalog.Locations()))
			continue
		}

		results, err := deps.Catalog.Search(query)
		if err != nil {
			return err
		}
		deps.Logger.Debug("search", "query", query, "results", len(results))

		if len(results) == 0 {
			fmt.Fprint(deps.Stdout, deps.Format.FormatNotice("No matches found!"))
			continue
		}

		if item, ok := inventory.Resolve(query, results); ok {
			fmt.Fprint(deps.Stdout, deps.Format.FormatItem(item))
			continue
		}

		fmt.Fprint(deps.Stdout, deps.Format.FormatMatches(results))
		answer, err := deps.Prompt.Ask("Select a result", "1", validateSelection(len(results)))
		if err != nil {
			return err
		}
		n, err := parseSelection(answer, len(results))
		if err != nil {
			return err
		}
		item, err := inventory.SelectFromMenu(results, n)
		if err != nil {
			return err
		}
		fmt.Fprint(deps.Stdout, deps.Format.FormatItem(item))
	}
}
