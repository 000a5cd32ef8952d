package dashboard

import (
	"sort"

	"github.com/vmunix/catalogdash/internal/catalog"
)

// Count is the number of titles sharing one key.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// PairCount is the number of titles sharing an (outer, inner) key pair.
type PairCount struct {
	Outer string `json:"outer"`
	Inner string `json:"inner"`
	Count int    `json:"count"`
}

// CountValues counts occurrences of each distinct value. Results are
// ordered by count descending; ties keep first-appearance order.
func CountValues(values []string) []Count {
	index := make(map[string]int)
	var counts []Count
	for _, v := range values {
		i, ok := index[v]
		if !ok {
			i = len(counts)
			index[v] = i
			counts = append(counts, Count{Key: v})
		}
		counts[i].Count++
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// CountBy counts titles per key.
func CountBy(titles []catalog.Title, key func(catalog.Title) string) []Count {
	values := make([]string, len(titles))
	for i := range titles {
		values[i] = key(titles[i])
	}
	return CountValues(values)
}

// CrossCount counts titles per (outer, inner) pair, ordered by outer then
// inner ascending. Pairs that never occur are absent.
func CrossCount(titles []catalog.Title, outer, inner func(catalog.Title) string) []PairCount {
	type pair struct{ outer, inner string }
	counts := make(map[pair]int)
	for i := range titles {
		counts[pair{outer(titles[i]), inner(titles[i])}]++
	}

	out := make([]PairCount, 0, len(counts))
	for p, n := range counts {
		out = append(out, PairCount{Outer: p.outer, Inner: p.inner, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Outer != out[j].Outer {
			return out[i].Outer < out[j].Outer
		}
		return out[i].Inner < out[j].Inner
	})
	return out
}

// PartnerCounts splits every country value on ", ", drops the target token
// and counts the remaining countries across all titles.
// "Brazil, France, Japan" contributes one to France and one to Japan.
func PartnerCounts(titles []catalog.Title, target string) []Count {
	var partners []string
	for i := range titles {
		for _, c := range catalog.SplitCountries(titles[i].Country) {
			if c != target {
				partners = append(partners, c)
			}
		}
	}
	return CountValues(partners)
}

// DistinctCountries counts distinct non-empty country values. Multi-country
// values count as one value each.
func DistinctCountries(titles []catalog.Title) int {
	seen := make(map[string]struct{})
	for i := range titles {
		if c := titles[i].Country; c != "" {
			seen[c] = struct{}{}
		}
	}
	return len(seen)
}

func byCountry(t catalog.Title) string      { return t.Country }
func byContinent(t catalog.Title) string    { return t.Continent }
func byCategoryBase(t catalog.Title) string { return t.CategoryBase }
