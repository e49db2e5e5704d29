package main_test

import (
	"testing"

	"github.com/fwojciec/inventory"
	main "github.com/fwojciec/inventory/cmd/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastenerCatalog(t *testing.T) *inventory.Catalog {
	t.Helper()

	c := inventory.NewCatalog(nil)
	add(t, c, "Bolt M4", "A1", 10)
	add(t, c, "Bolt M5", "A2", 4)
	add(t, c, "Nut M4", "B1", 3)
	return c
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("single match is shown directly", func(t *testing.T) {
		t.Parallel()

		c := inventory.NewCatalog(nil)
		add(t, c, "Bolt M4", "A1", 10)
		add(t, c, "Bolt M4", "A2", 5)
		s := newSession(c, "bolt\nexit\n")

		err := (&main.SearchCmd{}).Run(s.deps)

		require.NoError(t, err)
		output := s.stdout.String()
		assert.Contains(t, output, "Bolt M4\n\nQuantity of 10 @A1\nQuantity of 5 @A2\n")
		assert.NotContains(t, output, "Top Matches")
	})

	t.Run("several matches show a reverse-numbered menu", func(t *testing.T) {
		t.Parallel()

		// Given two items sharing the keyword "m4"
		s := newSession(fastenerCatalog(t), "m4\n2\nexit\n")

		// When I search and pick number 2
		err := (&main.SearchCmd{}).Run(s.deps)

		// Then the best match is listed as 2 and is the one shown
		require.NoError(t, err)
		output := s.stdout.String()
		assert.Contains(t, output, "Top Matches:\n\n2). Bolt M4\n1). Nut M4\n")
		assert.Contains(t, output, "Quantity of 10 @A1")
		assert.NotContains(t, output, "Quantity of 3 @B1")
	})

	t.Run("selection defaults to 1", func(t *testing.T) {
		t.Parallel()

		s := newSession(fastenerCatalog(t), "m4\n\nexit\n")

		err := (&main.SearchCmd{}).Run(s.deps)

		require.NoError(t, err)
		output := s.stdout.String()
		assert.Contains(t, output, "? Select a result (1): ")
		assert.Contains(t, output, "Quantity of 3 @B1")
		assert.NotContains(t, output, "Quantity of 10 @A1")
	})

	t.Run("out-of-range selection asks again", func(t *testing.T) {
		t.Parallel()

		s := newSession(fastenerCatalog(t), "m4\n5\nzero\n1\nexit\n")

		err := (&main.SearchCmd{}).Run(s.deps)

		require.NoError(t, err)
		output := s.stdout.String()
		assert.Contains(t, output, "Please pick between 1 and 2")
		assert.Contains(t, output, "Quantity of 3 @B1")
	})

	t.Run("exact name of last match is shown directly", func(t *testing.T) {
		t.Parallel()

		c := inventory.NewCatalog(nil)
		add(t, c, "Bolt Long", "C1", 2)
		add(t, c, "Bolt", "A1", 7)
		s := newSession(c, "Bolt\nexit\n")

		err := (&main.SearchCmd{}).Run(s.deps)

		require.NoError(t, err)
		output := s.stdout.String()
		assert.NotContains(t, output, "Top Matches")
		assert.Contains(t, output, "Quantity of 7 @A1")
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		t.Parallel()

		lower := newSession(fastenerCatalog(t), "bolt\n1\nexit\n")
		upper := newSession(fastenerCatalog(t), "BOLT\n1\nexit\n")

		require.NoError(t, (&main.SearchCmd{}).Run(lower.deps))
		require.NoError(t, (&main.SearchCmd{}).Run(upper.deps))

		assert.Contains(t, lower.stdout.String(), "2). Bolt M4\n1). Bolt M5\n")
		assert.Contains(t, upper.stdout.String(), "2). Bolt M4\n1). Bolt M5\n")
	})

	t.Run("reports no matches", func(t *testing.T) {
		t.Parallel()

		s := newSession(fastenerCatalog(t), "washer\nexit\n")

		err := (&main.SearchCmd{}).Run(s.deps)

		require.NoError(t, err)
		assert.Contains(t, s.stdout.String(), "No matches found!")
	})

	t.Run("lists locations on request", func(t *testing.T) {
		t.Parallel()

		s := newSession(fastenerCatalog(t), "locations\nexit\n")

		err := (&main.SearchCmd{}).Run(s.deps)

		require.NoError(t, err)
		assert.Contains(t, s.stdout.String(), "All Locations:\nA1\nA2\nB1\n")
	})

	t.Run("rejects one-character query", func(t *testing.T) {
		t.Parallel()

		s := newSession(fastenerCatalog(t), "m\nexit\n")

		err := (&main.SearchCmd{}).Run(s.deps)

		require.NoError(t, err)
		assert.Contains(t, s.stdout.String(), "Please enter a name with > 1 character")
	})

	t.Run("blank query cancels", func(t *testing.T) {
		t.Parallel()

		s := newSession(fastenerCatalog(t), "   \nbolt\n")

		err := (&main.SearchCmd{}).Run(s.deps)

		assert.ErrorIs(t, err, inventory.ErrCanceled)
		assert.NotContains(t, s.stdout.String(), "Top Matches")
	})

	t.Run("end of input cancels", func(t *testing.T) {
		t.Parallel()

		s := newSession(fastenerCatalog(t), "")

		err := (&main.SearchCmd{}).Run(s.deps)

		assert.ErrorIs(t, err, inventory.ErrCanceled)
	})
}
