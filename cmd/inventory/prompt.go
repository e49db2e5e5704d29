package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/inventory"
	"github.com/fwojciec/inventory/lipgloss"
)

// Prompter asks for one line of input at a time.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	format *lipgloss.Formatter
}

// NewPrompter returns a Prompter reading answers from r and writing
// questions to w.
func NewPrompter(r io.Reader, w io.Writer, format *lipgloss.Formatter) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w, format: format}
}

// Ask shows label and reads an answer. An empty answer takes initial.
// When validate returns an EINVALID error its message is shown and the
// question repeated; any other error is returned. End of input returns
// inventory.ErrCanceled.
func (p *Prompter) Ask(label, initial string, validate func(string) error) (string, error) {
	for {
		if initial != "" {
			fmt.Fprintf(p.out, "? %s (%s): ", label, initial)
		} else {
			fmt.Fprintf(p.out, "? %s: ", label)
		}

		line, err := p.in.ReadString('\n')
		if errors.Is(err, io.EOF) && line == "" {
			fmt.Fprintln(p.out)
			return "", inventory.ErrCanceled
		} else if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}

		value := strings.TrimRight(line, "\r\n")
		if value == "" {
			value = initial
		}

		if validate != nil {
			if err := validate(value); err != nil {
				if inventory.ErrorCode(err) == inventory.EINVALID {
					fmt.Fprint(p.out, p.format.FormatNotice(inventory.ErrorMessage(err)))
					continue
				}
				return "", err
			}
		}
		return value, nil
	}
}
