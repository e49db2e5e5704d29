// Package lipgloss renders inventory results for the terminal.
package lipgloss

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/inventory"
)

const rule = "==============================="

var (
	accent = lipgloss.Color("#00D4AA")
	dim    = lipgloss.Color("#3a3a4e")
	warn   = lipgloss.Color("#FFAF00")
)

// Formatter renders results with styles adapted to the output's color
// support. Output that is not a terminal gets plain text.
type Formatter struct {
	rule   lipgloss.Style
	title  lipgloss.Style
	number lipgloss.Style
	notice lipgloss.Style
}

// NewFormatter returns a Formatter for text written to w.
func NewFormatter(w io.Writer) *Formatter {
	r := lipgloss.NewRenderer(w)
	return &Formatter{
		rule:   r.NewStyle().Foreground(dim),
		title:  r.NewStyle().Foreground(accent).Bold(true),
		number: r.NewStyle().Bold(true),
		notice: r.NewStyle().Foreground(warn),
	}
}

// FormatItem renders an item and the quantity held at each of its
// locations, in location order.
func (f *Formatter) FormatItem(item *inventory.Item) string {
	var b strings.Builder
	b.WriteString(f.rule.Render(rule))
	b.WriteString("\n")
	b.WriteString(f.title.Render(item.Name))
	b.WriteString("\n\n")
	for _, name := range item.LocationNames() {
		loc := item.Locations[name]
		fmt.Fprintf(&b, "Quantity of %d @%s\n", loc.Quantity, loc.Location)
	}
	b.WriteString(f.rule.Render(rule))
	b.WriteString("\n")
	return b.String()
}

// FormatMatches renders ranked results as a menu numbered from
// len(ranked) down to 1.
func (f *Formatter) FormatMatches(ranked []*inventory.Item) string {
	var b strings.Builder
	b.WriteString("\nTop Matches:\n\n")
	for i, item := range ranked {
		n := inventory.MenuNumber(i, len(ranked))
		b.WriteString(f.number.Render(fmt.Sprintf("%d).", n)))
		b.WriteString(" ")
		b.WriteString(item.Name)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatLocations renders the list of all known locations.
func (f *Formatter) FormatLocations(locations []string) string {
	var b strings.Builder
	b.WriteString(f.title.Render("All Locations:"))
	b.WriteString("\n")
	for _, loc := range locations {
		b.WriteString(loc)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatNotice renders a one-line message such as a validation hint.
func (f *Formatter) FormatNotice(msg string) string {
	return f.notice.Render(msg) + "\n"
}
