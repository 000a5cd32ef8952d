package filter

import (
	"fmt"
	"strings"
)

// CountryMode selects the focus-country constraint applied after the base filter.
type CountryMode int

const (
	// All applies no country constraint.
	All CountryMode = iota
	// OnlyExactMatch keeps titles whose country is exactly the focus country.
	OnlyExactMatch
	// CoOccursButNotExact keeps multi-country titles that list the focus
	// country alongside others.
	CoOccursButNotExact
)

// CountryModes lists every mode in display order.
var CountryModes = []CountryMode{All, OnlyExactMatch, CoOccursButNotExact}

// String returns the stable key used in URLs and flags.
func (m CountryMode) String() string {
	switch m {
	case OnlyExactMatch:
		return "only"
	case CoOccursButNotExact:
		return "with_others"
	default:
		return "all"
	}
}

// Label returns the human-readable option label for target.
func (m CountryMode) Label(target string) string {
	switch m {
	case OnlyExactMatch:
		return fmt.Sprintf("Only when '%s' is the sole country", target)
	case CoOccursButNotExact:
		return fmt.Sprintf("When '%s' appears with other countries", target)
	default:
		return "All"
	}
}

// ParseCountryMode accepts a mode key ("all", "only", "with_others") or a
// label as returned by Label for target. Empty input means All.
func ParseCountryMode(s, target string) (CountryMode, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return All, nil
	}
	for _, m := range CountryModes {
		if strings.EqualFold(in, m.String()) || strings.EqualFold(in, m.Label(target)) {
			return m, nil
		}
	}
	return All, fmt.Errorf("unknown country mode %q: want one of all, only, with_others", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m CountryMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
