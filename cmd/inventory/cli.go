package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/inventory"
	"github.com/fwojciec/inventory/lipgloss"
)

// SnapshotSaver accepts inventory snapshots for background persistence.
type SnapshotSaver interface {
	Submit(inv inventory.Inventory) error
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Prompt  *Prompter
	Format  *lipgloss.Formatter
	Catalog *inventory.Catalog
	Saves   SnapshotSaver
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	File    string `short:"f" env:"INVENTORY_FILE" default:"${default_file}" help:"Inventory file path"`
	Backend string `env:"INVENTORY_BACKEND" enum:"json,sqlite" default:"json" help:"Storage backend (json or sqlite)"`
	Verbose bool   `short:"v" help:"Log storage operations"`

	Add       AddCmd       `cmd:"" help:"Add items interactively"`
	Search    SearchCmd    `cmd:"" help:"Search items interactively"`
	Locations LocationsCmd `cmd:"" help:"List all known locations"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct{}

// LocationsCmd is the "locations" subcommand.
type LocationsCmd struct{}
