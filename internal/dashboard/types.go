// Package dashboard aggregates filtered titles into metrics and chart specs.
package dashboard

// Chart identifiers, in display order.
const (
	ChartByCountry           = "by_country"
	ChartFocusCategories     = "focus_categories"
	ChartByContinent         = "by_continent"
	ChartCategoryByContinent = "category_by_continent"
	ChartFocusPartners       = "focus_partners"
)

// ChartKind is the rendering style of a chart.
type ChartKind string

const (
	KindBar        ChartKind = "bar"
	KindStackedBar ChartKind = "stacked_bar"
)

// Orientation of the bars.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Report is the render-ready result for one selection.
type Report struct {
	Total   int     `json:"total"` // titles before filtering
	Metrics Metrics `json:"metrics"`
	Charts  []Chart `json:"charts"`
}

// Metrics are the headline numbers shown above the charts.
type Metrics struct {
	Titles    int `json:"titles"`
	Countries int `json:"countries"` // distinct non-empty country values
}

// Chart describes one bar chart.
type Chart struct {
	ID           string      `json:"id"`
	Heading      string      `json:"heading"`
	Title        string      `json:"title"`
	Kind         ChartKind   `json:"kind"`
	Orientation  Orientation `json:"orientation"`
	CategoryAxis string      `json:"category_axis"`
	ValueAxis    string      `json:"value_axis"`
	Series       []Series    `json:"series"`
}

// Series is a named run of bars. Single-series charts use the chart title
// as the series name; stacked charts have one series per stack segment.
type Series struct {
	Name   string  `json:"name"`
	Color  string  `json:"color,omitempty"`
	Points []Point `json:"points"`
}

// Point is one bar (or bar segment).
type Point struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Empty reports whether the chart has no bars.
func (c Chart) Empty() bool {
	for _, s := range c.Series {
		if len(s.Points) > 0 {
			return false
		}
	}
	return true
}

// Chart returns the chart with the given id, if the report contains it.
func (r *Report) Chart(id string) (Chart, bool) {
	for _, c := range r.Charts {
		if c.ID == id {
			return c, true
		}
	}
	return Chart{}, false
}

// DisplayLabel renders a missing value readably.
func DisplayLabel(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
