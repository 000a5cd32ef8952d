// Package filter narrows catalog titles by user selections.
package filter

import (
	"sort"
	"strings"

	"github.com/vmunix/catalogdash/internal/catalog"
)

// DefaultTarget is the focus country when none is configured.
const DefaultTarget = "Brazil"

// Selection holds the user's filter choices.
//
// A nil value slice means "every observed value" (the default); a non-nil
// empty slice selects nothing, so no title passes.
type Selection struct {
	Types      []string
	Continents []string
	Categories []string // category base values
	Country    CountryMode
	Target     string // focus country; DefaultTarget when empty
}

// FocusCountry returns the focus country of the selection.
func (s Selection) FocusCountry() string {
	if s.Target == "" {
		return DefaultTarget
	}
	return s.Target
}

// Options are the values a user can choose from, sorted ascending.
type Options struct {
	Types      []string      `json:"types"`
	Continents []string      `json:"continents"`
	Categories []string      `json:"categories"`
	Modes      []CountryMode `json:"modes"`
}

// Available returns the distinct observed values per filterable column.
func Available(titles []catalog.Title) Options {
	types := make(map[string]struct{})
	continents := make(map[string]struct{})
	categories := make(map[string]struct{})
	for i := range titles {
		types[titles[i].Type] = struct{}{}
		continents[titles[i].Continent] = struct{}{}
		categories[titles[i].CategoryBase] = struct{}{}
	}
	return Options{
		Types:      sortedKeys(types),
		Continents: sortedKeys(continents),
		Categories: sortedKeys(categories),
		Modes:      CountryModes,
	}
}

// Defaults returns a selection with every available value chosen explicitly.
func (o Options) Defaults(target string) Selection {
	return Selection{
		Types:      append([]string{}, o.Types...),
		Continents: append([]string{}, o.Continents...),
		Categories: append([]string{}, o.Categories...),
		Country:    All,
		Target:     target,
	}
}

// Apply returns the titles passing sel, in their original order.
func Apply(titles []catalog.Title, sel Selection) []catalog.Title {
	types := toSet(sel.Types)
	continents := toSet(sel.Continents)
	categories := toSet(sel.Categories)
	target := sel.FocusCountry()

	out := make([]catalog.Title, 0, len(titles))
	for i := range titles {
		t := &titles[i]
		if !types.has(t.Type) || !continents.has(t.Continent) || !categories.has(t.CategoryBase) {
			continue
		}
		if !MatchesCountry(t.Country, sel.Country, target) {
			continue
		}
		out = append(out, *t)
	}
	return out
}

// MatchesCountry reports whether a country value passes mode for target.
// OnlyExactMatch compares the whole value, so "Brazil, France" is not a
// match for "Brazil". CoOccursButNotExact is a substring match that
// excludes the exact value.
func MatchesCountry(country string, mode CountryMode, target string) bool {
	switch mode {
	case OnlyExactMatch:
		return country == target
	case CoOccursButNotExact:
		return strings.Contains(country, target) && country != target
	default:
		return true
	}
}

// valueSet is a membership set; a nil set admits every value.
type valueSet map[string]struct{}

func toSet(values []string) valueSet {
	if values == nil {
		return nil
	}
	set := make(valueSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func (s valueSet) has(v string) bool {
	if s == nil {
		return true
	}
	_, ok := s[v]
	return ok
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
