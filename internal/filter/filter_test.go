package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/catalogdash/internal/catalog"
)

func testTitles() []catalog.Title {
	titles := []catalog.Title{
		{Type: "Movie", Country: "Brazil", Continent: "América do Sul", Category: "Dramas"},
		{Type: "TV Show", Country: "Brazil, France", Continent: "América do Sul", Category: "Comédias"},
		{Type: "Movie", Country: "Japan", Continent: "Ásia", Category: "Animes"},
		{Type: "Movie", Country: "France, Brazil", Continent: "Europa", Category: "Dramas"},
		{Type: "TV Show", Country: "Germany", Continent: "Europa", Category: ""},
		{Type: "Movie", Country: "", Continent: "", Category: "123"},
	}
	catalog.Derive(titles)
	return titles
}

func countries(titles []catalog.Title) []string {
	out := make([]string, len(titles))
	for i, t := range titles {
		out[i] = t.Country
	}
	return out
}

func TestAvailable(t *testing.T) {
	opts := Available(testTitles())

	assert.Equal(t, []string{"Movie", "TV Show"}, opts.Types)
	assert.Equal(t, []string{"", "América do Sul", "Europa", "Ásia"}, opts.Continents)
	assert.Equal(t, []string{"", "Animes", "Comédias", "Dramas"}, opts.Categories)
	assert.Equal(t, CountryModes, opts.Modes)
}

func TestAvailable_Empty(t *testing.T) {
	opts := Available(nil)
	assert.Empty(t, opts.Types)
	assert.Empty(t, opts.Continents)
	assert.Empty(t, opts.Categories)
}

func TestApply_NilSelectionKeepsAll(t *testing.T) {
	titles := testTitles()
	assert.Equal(t, titles, Apply(titles, Selection{}))
}

func TestApply_DefaultsReproduceUnfiltered(t *testing.T) {
	titles := testTitles()
	sel := Available(titles).Defaults("Brazil")
	assert.Equal(t, titles, Apply(titles, sel))
}

func TestApply_EmptySelectionKeepsNothing(t *testing.T) {
	titles := testTitles()
	assert.Empty(t, Apply(titles, Selection{Types: []string{}}))
	assert.Empty(t, Apply(titles, Selection{Continents: []string{}}))
	assert.Empty(t, Apply(titles, Selection{Categories: []string{}}))
}

func TestApply_BaseFilter(t *testing.T) {
	titles := testTitles()

	got := Apply(titles, Selection{
		Types:      []string{"Movie"},
		Continents: []string{"América do Sul", "Europa"},
		Categories: []string{"Dramas"},
	})

	assert.Equal(t, []string{"Brazil", "France, Brazil"}, countries(got))
}

func TestApply_UnknownValueMatchesNothing(t *testing.T) {
	assert.Empty(t, Apply(testTitles(), Selection{Types: []string{"Documentary"}}))
}

func TestApply_PreservesOrderAndSubset(t *testing.T) {
	titles := testTitles()
	selections := []Selection{
		{Types: []string{"TV Show"}},
		{Country: OnlyExactMatch},
		{Country: CoOccursButNotExact},
		{Categories: []string{"", "Dramas"}, Country: CoOccursButNotExact},
	}

	for _, sel := range selections {
		got := Apply(titles, sel)
		j := 0
		for _, g := range got {
			for j < len(titles) && titles[j] != g {
				j++
			}
			require.Less(t, j, len(titles), "result must be an ordered subsequence of the input")
			j++
		}
	}
}

func TestApply_CountryModes(t *testing.T) {
	titles := []catalog.Title{
		{Country: "Brazil"},
		{Country: "Brazil, France"},
		{Country: "Japan"},
	}

	only := Apply(titles, Selection{Country: OnlyExactMatch})
	assert.Equal(t, []string{"Brazil"}, countries(only))

	withOthers := Apply(titles, Selection{Country: CoOccursButNotExact})
	assert.Equal(t, []string{"Brazil, France"}, countries(withOthers))

	all := Apply(titles, Selection{Country: All})
	assert.Len(t, all, 3)
}

func TestApply_CountryModesPartition(t *testing.T) {
	titles := testTitles()

	only := Apply(titles, Selection{Country: OnlyExactMatch})
	withOthers := Apply(titles, Selection{Country: CoOccursButNotExact})

	onlySet := make(map[string]bool)
	for _, title := range only {
		onlySet[title.Country] = true
	}
	for _, title := range withOthers {
		assert.False(t, onlySet[title.Country], "modes must be disjoint")
	}

	var containing []string
	for _, title := range titles {
		if strings.Contains(title.Country, "Brazil") {
			containing = append(containing, title.Country)
		}
	}
	assert.ElementsMatch(t, containing, append(countries(only), countries(withOthers)...))
	assert.ElementsMatch(t, []string{"Brazil", "Brazil, France", "France, Brazil"}, containing)
}

func TestApply_CustomTarget(t *testing.T) {
	titles := testTitles()

	got := Apply(titles, Selection{Country: OnlyExactMatch, Target: "Japan"})
	assert.Equal(t, []string{"Japan"}, countries(got))

	got = Apply(titles, Selection{Country: CoOccursButNotExact, Target: "France"})
	assert.Equal(t, []string{"Brazil, France", "France, Brazil"}, countries(got))
}

func TestMatchesCountry(t *testing.T) {
	tests := []struct {
		country string
		mode    CountryMode
		want    bool
	}{
		{"Brazil", All, true},
		{"Japan", All, true},
		{"", All, true},
		{"Brazil", OnlyExactMatch, true},
		{"Brazil, France", OnlyExactMatch, false},
		{"brazil", OnlyExactMatch, false},
		{"Brazil", CoOccursButNotExact, false},
		{"Brazil, France", CoOccursButNotExact, true},
		{"France, Brazil, Japan", CoOccursButNotExact, true},
		{"Japan", CoOccursButNotExact, false},
		{"", CoOccursButNotExact, false},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String()+"/"+tt.country, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesCountry(tt.country, tt.mode, "Brazil"))
		})
	}
}

func TestSelection_FocusCountry(t *testing.T) {
	assert.Equal(t, "Brazil", Selection{}.FocusCountry())
	assert.Equal(t, "Chile", Selection{Target: "Chile"}.FocusCountry())
}
