package main

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/inventory"
)

// exitCommand ends an interactive session.
const exitCommand = "exit"

// validateName accepts names of two or more characters. A blank name
// cancels the session.
func validateName(value string) error {
	id, err := inventory.NormalizeName(value)
	if err != nil {
		return err
	}
	if utf8.RuneCountInString(id) <= 1 {
		return inventory.Errorf(inventory.EINVALID, "Please enter a name with > 1 character")
	}
	return nil
}

func validateLocation(value string) error {
	if strings.TrimSpace(value) == "" {
		return inventory.Errorf(inventory.EINVALID, "Please enter a location")
	}
	return nil
}

func validateQuantity(value string) error {
	_, err := parseQuantity(value)
	return err
}

func parseQuantity(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, inventory.Errorf(inventory.EINVALID, "Please enter a number")
	}
	if n < 0 {
		return 0, inventory.Errorf(inventory.EINVALID, "Please enter a number of 0 or more")
	}
	return n, nil
}

// validateSelection accepts menu numbers 1 through n.
func validateSelection(n int) func(string) error {
	return func(value string) error {
		_, err := parseSelection(value, n)
		return err
	}
}

func parseSelection(value string, n int) (int, error) {
	k, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || k < 1 || k > n {
		return 0, inventory.Errorf(inventory.EINVALID, "Please pick between 1 and %d", n)
	}
	return k, nil
}

// isExit reports whether a session input asks to quit.
func isExit(value string) bool {
	id, err := inventory.NormalizeName(value)
	return err == nil && id == exitCommand
}
