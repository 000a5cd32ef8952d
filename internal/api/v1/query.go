package v1

import (
	"net/http"
	"net/url"

	"github.com/vmunix/catalogdash/internal/dashboard"
	"github.com/vmunix/catalogdash/internal/filter"
)

// parseSelection reads the type, continent, category and country query
// parameters. An absent list parameter selects every value; a parameter
// present only with empty values selects none. The label "(none)" selects
// rows where the column is empty. Values are matched verbatim, surrounding
// whitespace included.
func parseSelection(r *http.Request, target string) (filter.Selection, error) {
	q := r.URL.Query()

	mode, err := filter.ParseCountryMode(q.Get("country"), target)
	if err != nil {
		return filter.Selection{}, err
	}

	return filter.Selection{
		Types:      queryList(q, "type"),
		Continents: queryList(q, "continent"),
		Categories: queryList(q, "category"),
		Country:    mode,
		Target:     target,
	}, nil
}

func queryList(q url.Values, name string) []string {
	raw, ok := q[name]
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		switch v {
		case "":
			continue
		case dashboard.DisplayLabel(""):
			v = ""
		}
		values = append(values, v)
	}
	return values
}

// selectionQuery encodes sel back into query parameters for chart URLs.
func selectionQuery(sel filter.Selection) string {
	q := url.Values{}
	add := func(name string, values []string) {
		if values == nil {
			return
		}
		if len(values) == 0 {
			q.Set(name, "")
			return
		}
		for _, v := range values {
			q.Add(name, dashboard.DisplayLabel(v))
		}
	}
	add("type", sel.Types)
	add("continent", sel.Continents)
	add("category", sel.Categories)
	if sel.Country != filter.All {
		q.Set("country", sel.Country.String())
	}
	return q.Encode()
}
