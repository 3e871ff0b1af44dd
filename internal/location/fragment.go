// Package location models the presentation's addressable location: a
// "slide-N" fragment plus a back/forward history of visited addresses.
package location

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const fragmentPrefix = "slide-"

var (
	// ErrMalformedFragment is returned for fragments that are not "#slide-N".
	ErrMalformedFragment = errors.New("malformed fragment")
	// ErrOutOfRange is returned when N does not name a slide of the deck.
	ErrOutOfRange = errors.New("fragment out of range")
)

// Format returns the 1-based fragment for a zero-based slide index, without
// the leading '#'.
func Format(index int) string {
	return fragmentPrefix + strconv.Itoa(index+1)
}

// Parse converts "#slide-N" (or "slide-N") into a zero-based index in
// [0, total).
func Parse(fragment string, total int) (int, error) {
	s := strings.TrimPrefix(fragment, "#")
	digits, ok := strings.CutPrefix(s, fragmentPrefix)
	if !ok || digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrMalformedFragment, fragment)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrMalformedFragment, fragment)
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedFragment, fragment)
	}
	idx := n - 1
	if idx < 0 || idx >= total {
		return 0, fmt.Errorf("%w: %q (deck has %d slides)", ErrOutOfRange, fragment, total)
	}
	return idx, nil
}

// InitialIndex resolves the slide to open at startup. Anything that does not
// parse falls back to the first slide.
func InitialIndex(fragment string, total int) int {
	if fragment == "" {
		return 0
	}
	idx, err := Parse(fragment, total)
	if err != nil {
		return 0
	}
	return idx
}

// SplitTarget splits "path/to/deck.yaml#slide-3" into the file and fragment.
func SplitTarget(target string) (path string, fragment string) {
	if i := strings.LastIndexByte(target, '#'); i >= 0 {
		return target[:i], target[i:]
	}
	return target, ""
}
