package filter

import (
	"github.com/hbollon/go-edlib"

	"github.com/vmunix/catalogdash/internal/catalog"
)

// minSuggestScore is the Jaro-Winkler similarity below which no suggestion is made.
const minSuggestScore = 0.80

// Warning describes a selected value that was never observed in the data.
type Warning struct {
	Field      string `json:"field"`
	Value      string `json:"value"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Suggest returns the candidate closest to value, comparing accent-folded,
// lower-cased strings with Jaro-Winkler similarity. It returns "" when
// nothing scores at least minSuggestScore.
func Suggest(value string, candidates []string) string {
	folded := catalog.Fold(value)
	if folded == "" {
		return ""
	}

	best, bestScore := "", 0.0
	for _, c := range candidates {
		score := float64(edlib.JaroWinklerSimilarity(folded, catalog.Fold(c)))
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	if bestScore < minSuggestScore {
		return ""
	}
	return best
}

// Unknown reports selected values that do not appear in opts. They still
// take part in filtering and simply match nothing.
func Unknown(sel Selection, opts Options) []Warning {
	var warnings []Warning
	check := func(field string, selected, available []string) {
		known := make(map[string]bool, len(available))
		for _, v := range available {
			known[v] = true
		}
		for _, v := range selected {
			if known[v] {
				continue
			}
			warnings = append(warnings, Warning{
				Field:      field,
				Value:      v,
				Suggestion: Suggest(v, available),
			})
		}
	}
	check("type", sel.Types, opts.Types)
	check("continent", sel.Continents, opts.Continents)
	check("category", sel.Categories, opts.Categories)
	return warnings
}
