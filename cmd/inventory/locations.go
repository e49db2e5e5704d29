package main

import "fmt"

// Run executes the locations command.
func (c *LocationsCmd) Run(deps *Dependencies) error {
	locations := deps.Catalog.Locations()
	if len(locations) == 0 {
		fmt.Fprintln(deps.Stdout, "No locations found. Use 'inventory add' to stock items.")
		return nil
	}
	fmt.Fprint(deps.Stdout, deps.Format.FormatLocations(locations))
	return nil
}
