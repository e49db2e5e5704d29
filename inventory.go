// Package inventory tracks physical items, where they are stored and how
// many of each are on hand. It provides keyword search over item names and
// a location suggestion heuristic for stocking shelves in sequence.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, sqlite/, lipgloss/).
package inventory
