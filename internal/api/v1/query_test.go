package v1

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/catalogdash/internal/catalog"
	"github.com/vmunix/catalogdash/internal/dashboard"
	"github.com/vmunix/catalogdash/internal/filter"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  filter.Selection
	}{
		{"absent", "", filter.Selection{Target: "Brazil"}},
		{"empty means none", "type=", filter.Selection{Types: []string{}, Target: "Brazil"}},
		{"hidden plus values", "type=&type=Movie", filter.Selection{Types: []string{"Movie"}, Target: "Brazil"}},
		{"none label", "continent=(none)", filter.Selection{Continents: []string{""}, Target: "Brazil"}},
		{"mode by key", "country=with_others", filter.Selection{Country: filter.CoOccursButNotExact, Target: "Brazil"}},
		{
			"mode by label",
			"country=" + url.QueryEscape("Only when 'Brazil' is the sole country"),
			filter.Selection{Country: filter.OnlyExactMatch, Target: "Brazil"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/v1/dashboard?"+tt.query, nil)
			got, err := parseSelection(r, "Brazil")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSelection_BadMode(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/dashboard?country=maybe", nil)
	_, err := parseSelection(r, "Brazil")
	assert.Error(t, err)
}

func TestSelectionQuery_RoundTrip(t *testing.T) {
	sel := filter.Selection{
		Types:      []string{},
		Continents: []string{"Europa", ""},
		Country:    filter.OnlyExactMatch,
		Target:     "Brazil",
	}

	r := httptest.NewRequest("GET", "/?"+selectionQuery(sel), nil)
	got, err := parseSelection(r, "Brazil")
	require.NoError(t, err)
	assert.Equal(t, sel, got)
}

func TestSelectionQuery_Defaults(t *testing.T) {
	assert.Empty(t, selectionQuery(filter.Selection{}))
}

func TestSelectionQuery_AllSelectedKeepsEveryRow(t *testing.T) {
	titles := []catalog.Title{
		{Type: "Movie", Country: "France", Continent: "Europa ", Category: "Dramas", CategoryBase: "Dramas"},
		{Type: " TV Show", Country: "Japan", Continent: "Ásia", CategoryBase: ""},
	}
	sel := filter.Available(titles).Defaults("Brazil")

	r := httptest.NewRequest("GET", "/?"+selectionQuery(sel), nil)
	got, err := parseSelection(r, "Brazil")
	require.NoError(t, err)
	assert.ElementsMatch(t, sel.Continents, got.Continents)
	assert.ElementsMatch(t, sel.Types, got.Types)

	report := dashboard.Build(titles, got)
	assert.Equal(t, len(titles), report.Metrics.Titles)
}
