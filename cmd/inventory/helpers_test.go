package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/inventory"
	main "github.com/fwojciec/inventory/cmd/inventory"
	"github.com/fwojciec/inventory/lipgloss"
	"github.com/stretchr/testify/require"
)

// recordingSaver keeps every submitted snapshot.
type recordingSaver struct {
	snapshots []inventory.Inventory
}

func (s *recordingSaver) Submit(inv inventory.Inventory) error {
	s.snapshots = append(s.snapshots, inv)
	return nil
}

// session holds the dependencies of one interactive command run.
type session struct {
	deps   *main.Dependencies
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	saves  *recordingSaver
}

// newSession wires a catalog to scripted input.
func newSession(catalog *inventory.Catalog, input string) *session {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	saves := &recordingSaver{}
	format := lipgloss.NewFormatter(stdout)

	return &session{
		deps: &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
			Prompt:  main.NewPrompter(strings.NewReader(input), stdout, format),
			Format:  format,
			Catalog: catalog,
			Saves:   saves,
		},
		stdout: stdout,
		stderr: stderr,
		saves:  saves,
	}
}

// add records name at location with quantity, failing the test on error.
func add(t *testing.T, c *inventory.Catalog, name, location string, quantity int) {
	t.Helper()

	_, err := c.AddItem(name, location, quantity)
	require.NoError(t, err)
}
