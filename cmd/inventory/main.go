package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/inventory"
	"github.com/fwojciec/inventory/fs"
	"github.com/fwojciec/inventory/lipgloss"
	"github.com/fwojciec/inventory/queue"
	invslog "github.com/fwojciec/inventory/slog"
	"github.com/fwojciec/inventory/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default inventory path, overridden by --file or INVENTORY_FILE.
	Path string

	// SQLite database, opened only for the sqlite backend.
	DB *sqlite.DB

	// Store used by the commands, for end-to-end testing.
	Store inventory.Store
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Path: defaultInventoryPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments. Interactive answers are
// read from stdin.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Kong "exits" after printing help; remember that instead of exiting.
	exited := false
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("inventory"),
		kong.Description("Track where things are stored and find them again."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
		kong.Vars{"default_file": m.Path},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'inventory --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	store, err := m.openStore(cli, kongCtx.Command())
	if err != nil {
		return err
	}
	defer m.Close()
	m.Store = invslog.NewLoggingStore(store, logger)

	inv, err := m.Store.Load(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set INVENTORY_FILE to use a different inventory\n")
		return fmt.Errorf("failed to load inventory from %q: %w", cli.File, err)
	}

	saves := queue.New(ctx, m.Store)
	saves.OnError = func(err error) {
		fmt.Fprintf(stderr, "error: failed to save inventory: %v\n", err)
	}

	format := lipgloss.NewFormatter(stdout)
	deps.Logger = logger
	deps.Format = format
	deps.Prompt = NewPrompter(stdin, stdout, format)
	deps.Catalog = inventory.NewCatalog(inv)
	deps.Saves = saves

	runErr := kongCtx.Run(deps)

	// Pending writes finish before the program exits.
	if err := saves.Close(); err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}

	if errors.Is(runErr, inventory.ErrCanceled) {
		fmt.Fprintln(stdout, "Exiting...")
		return nil
	}
	return runErr
}

// openStore opens the configured backend. The add command creates an empty
// JSON inventory file up front.
func (m *Main) openStore(cli *CLI, command string) (inventory.Store, error) {
	switch cli.Backend {
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cli.File), 0755); err != nil {
			return nil, err
		}
		m.DB = sqlite.NewDB(cli.File)
		if err := m.DB.Open(); err != nil {
			return nil, fmt.Errorf("failed to open database at %q: %w", cli.File, err)
		}
		return sqlite.NewStore(m.DB), nil
	default:
		store := fs.NewStore(cli.File)
		if command == "add" {
			if err := store.Ensure(); err != nil {
				return nil, fmt.Errorf("failed to create inventory at %q: %w", cli.File, err)
			}
		}
		return store, nil
	}
}

func defaultInventoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "inventory.json"
	}
	return filepath.Join(home, ".inventory", "inventory.json")
}
