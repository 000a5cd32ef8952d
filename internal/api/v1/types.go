package v1

import (
	"time"

	"github.com/vmunix/catalogdash/internal/dashboard"
	"github.com/vmunix/catalogdash/internal/filter"
)

// statusResponse is the response for GET /status and POST /refresh.
type statusResponse struct {
	Status    string     `json:"status"`
	Version   string     `json:"version,omitempty"`
	Source    string     `json:"source"`
	Rows      int        `json:"rows"`
	Cached    bool       `json:"cached"`
	FetchedAt *time.Time `json:"fetched_at,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// modeResponse is one country filter choice.
type modeResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// optionsResponse is the response for GET /options.
type optionsResponse struct {
	Types        []string       `json:"types"`
	Continents   []string       `json:"continents"`
	Categories   []string       `json:"categories"`
	Modes        []modeResponse `json:"modes"`
	FocusCountry string         `json:"focus_country"`
}

func newOptionsResponse(opts filter.Options, target string) optionsResponse {
	modes := make([]modeResponse, len(opts.Modes))
	for i, m := range opts.Modes {
		modes[i] = modeResponse{Key: m.String(), Label: m.Label(target)}
	}
	return optionsResponse{
		Types:        opts.Types,
		Continents:   opts.Continents,
		Categories:   opts.Categories,
		Modes:        modes,
		FocusCountry: target,
	}
}

// selectionResponse echoes the applied filters. Null lists mean "all".
type selectionResponse struct {
	Types      []string `json:"types"`
	Continents []string `json:"continents"`
	Categories []string `json:"categories"`
	Country    string   `json:"country"`
	Target     string   `json:"target"`
}

func newSelectionResponse(sel filter.Selection) selectionResponse {
	return selectionResponse{
		Types:      sel.Types,
		Continents: sel.Continents,
		Categories: sel.Categories,
		Country:    sel.Country.String(),
		Target:     sel.FocusCountry(),
	}
}

// dashboardResponse is the response for GET /dashboard.
type dashboardResponse struct {
	Source    string            `json:"source"`
	FetchedAt time.Time         `json:"fetched_at"`
	Cached    bool              `json:"cached"`
	Selection selectionResponse `json:"selection"`
	Total     int               `json:"total"`
	Metrics   dashboard.Metrics `json:"metrics"`
	Charts    []dashboard.Chart `json:"charts"`
	Warnings  []filter.Warning  `json:"warnings,omitempty"`
}
