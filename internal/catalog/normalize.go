package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normalizes a value for fuzzy comparison: lower-cased, accents
// removed and whitespace collapsed. "  Comédias  Românticas" -> "comedias romanticas".
func Fold(s string) string {
	s = strings.ToLower(removeAccents(s))
	return strings.Join(strings.Fields(s), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// SplitCountries splits a multi-country value on the ", " separator.
func SplitCountries(country string) []string {
	return strings.Split(country, ", ")
}
