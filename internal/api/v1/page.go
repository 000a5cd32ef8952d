package v1

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/vmunix/catalogdash/internal/catalog"
	"github.com/vmunix/catalogdash/internal/dashboard"
	"github.com/vmunix/catalogdash/internal/filter"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageOption struct {
	Value    string
	Label    string
	Selected bool
}

type pageChart struct {
	Heading string
	Title   string
	URL     string
	Empty   bool
}

type pageData struct {
	Source     string
	FetchedAt  time.Time
	Cached     bool
	Focus      string
	Metrics    dashboard.Metrics
	Types      []pageOption
	Continents []pageOption
	Categories []pageOption
	Modes      []pageOption
	Charts     []pageChart
	Warnings   []filter.Warning
	Error      string
}

func (s *Server) getPage(w http.ResponseWriter, r *http.Request, ds *catalog.Dataset) {
	opts := filter.Available(ds.Titles)
	data := pageData{
		Source:    ds.Source,
		FetchedAt: ds.FetchedAt,
		Cached:    ds.Cached,
		Focus:     s.deps.FocusCountry,
	}

	sel, err := parseSelection(r, s.deps.FocusCountry)
	if err != nil {
		data.Error = err.Error()
		sel = filter.Selection{Target: s.deps.FocusCountry}
	}

	report := dashboard.Build(ds.Titles, sel)
	data.Metrics = report.Metrics
	data.Warnings = filter.Unknown(sel, opts)
	data.Types = pageOptions(opts.Types, sel.Types)
	data.Continents = pageOptions(opts.Continents, sel.Continents)
	data.Categories = pageOptions(opts.Categories, sel.Categories)
	for _, m := range opts.Modes {
		data.Modes = append(data.Modes, pageOption{
			Value:    m.String(),
			Label:    m.Label(sel.FocusCountry()),
			Selected: m == sel.Country,
		})
	}

	query := selectionQuery(sel)
	for _, c := range report.Charts {
		url := "/api/v1/charts/" + c.ID + ".png"
		if query != "" {
			url += "?" + query
		}
		data.Charts = append(data.Charts, pageChart{
			Heading: c.Heading,
			Title:   c.Title,
			URL:     url,
			Empty:   c.Empty(),
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.log.Error("page render failed", "error", err)
		writeError(w, http.StatusInternalServerError, "RENDER_ERROR", err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// pageOptions marks the selected values; a nil selection selects all.
func pageOptions(available, selected []string) []pageOption {
	chosen := make(map[string]bool, len(selected))
	for _, v := range selected {
		chosen[v] = true
	}
	out := make([]pageOption, len(available))
	for i, v := range available {
		out[i] = pageOption{
			Value:    dashboard.DisplayLabel(v),
			Label:    dashboard.DisplayLabel(v),
			Selected: selected == nil || chosen[v],
		}
	}
	return out
}
