package inventory

import (
	"math"
	"regexp"
	"strconv"
)

// sequentialLocation splits a location into a prefix that does not end in a
// digit and a trailing integer.
var sequentialLocation = regexp.MustCompile(`^(.*\D)?(\d+)$`)

// LocationHistory remembers the two most recently entered locations,
// oldest first.
type LocationHistory struct {
	last [2]string
}

// NewLocationHistory returns a history seeded with older and newer.
func NewLocationHistory(older, newer string) *LocationHistory {
	return &LocationHistory{last: [2]string{older, newer}}
}

// Push records location as the newest entry and drops the oldest.
func (h *LocationHistory) Push(location string) {
	h.last[0], h.last[1] = h.last[1], location
}

// Last returns the history, oldest first.
func (h *LocationHistory) Last() [2]string {
	return h.last
}

// Suggest predicts the next location. A repeated location is suggested
// again. Two locations sharing a prefix whose numbers step up by one, like
// "A1" then "A2", continue the sequence ("A3"). Anything else suggests the
// newest location.
func (h *LocationHistory) Suggest() string {
	older, newer := h.last[0], h.last[1]
	if older == newer {
		return newer
	}

	a := sequentialLocation.FindStringSubmatch(older)
	b := sequentialLocation.FindStringSubmatch(newer)
	if a == nil || b == nil || a[1] != b[1] {
		return newer
	}

	n1, err := strconv.Atoi(a[2])
	if err != nil {
		return newer
	}
	n2, err := strconv.Atoi(b[2])
	if err != nil {
		return newer
	}
	if n1+1 != n2 || n2 == math.MaxInt {
		return newer
	}
	return b[1] + strconv.Itoa(n2+1)
}
