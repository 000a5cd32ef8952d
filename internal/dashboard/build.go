package dashboard

import (
	"fmt"
	"sort"

	"github.com/vmunix/catalogdash/internal/catalog"
	"github.com/vmunix/catalogdash/internal/filter"
)

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// Build filters titles by sel and aggregates the result.
func Build(titles []catalog.Title, sel filter.Selection) *Report {
	report := Summarize(filter.Apply(titles, sel), sel)
	report.Total = len(titles)
	return report
}

// Summarize aggregates already-filtered titles. The focus-country charts
// are only produced for their country mode and a non-empty set.
func Summarize(filtered []catalog.Title, sel filter.Selection) *Report {
	target := sel.FocusCountry()

	report := &Report{
		Total: len(filtered),
		Metrics: Metrics{
			Titles:    len(filtered),
			Countries: DistinctCountries(filtered),
		},
	}

	report.Charts = append(report.Charts, singleSeries(Chart{
		ID:           ChartByCountry,
		Heading:      "Distribution by country",
		Title:        "Titles by country",
		Orientation:  Horizontal,
		CategoryAxis: "Country",
		ValueAxis:    "Titles",
	}, CountBy(filtered, byCountry)))

	if sel.Country == filter.OnlyExactMatch && len(filtered) > 0 {
		report.Charts = append(report.Charts, singleSeries(Chart{
			ID:           ChartFocusCategories,
			Heading:      fmt.Sprintf("Categories of %s-only titles", target),
			Title:        fmt.Sprintf("Titles by category (%s only)", target),
			Orientation:  Vertical,
			CategoryAxis: "Category",
			ValueAxis:    "Titles",
		}, CountBy(filtered, byCategoryBase)))
	}

	report.Charts = append(report.Charts, singleSeries(Chart{
		ID:           ChartByContinent,
		Heading:      "Distribution by continent",
		Title:        "Titles by continent",
		Orientation:  Horizontal,
		CategoryAxis: "Continent",
		ValueAxis:    "Titles",
	}, CountBy(filtered, byContinent)))

	report.Charts = append(report.Charts, stacked(Chart{
		ID:           ChartCategoryByContinent,
		Heading:      "Distribution of categories by continent",
		Title:        "Category distribution by continent",
		Orientation:  Vertical,
		CategoryAxis: "Continent",
		ValueAxis:    "Titles",
	}, CrossCount(filtered, byContinent, byCategoryBase)))

	if sel.Country == filter.CoOccursButNotExact && len(filtered) > 0 {
		report.Charts = append(report.Charts, singleSeries(Chart{
			ID:           ChartFocusPartners,
			Heading:      fmt.Sprintf("Countries appearing with %s", target),
			Title:        fmt.Sprintf("Titles by country (together with %s)", target),
			Orientation:  Vertical,
			CategoryAxis: "Country",
			ValueAxis:    "Titles",
		}, PartnerCounts(filtered, target)))
	}

	return report
}

func singleSeries(c Chart, counts []Count) Chart {
	points := make([]Point, len(counts))
	for i, n := range counts {
		points[i] = Point{Label: n.Key, Value: n.Count}
	}
	c.Kind = KindBar
	c.Series = []Series{{Name: c.Title, Color: defaultColors[0], Points: points}}
	return c
}

// stacked builds one series per inner key; each point is labeled by the
// outer key. Series follow inner-key order.
func stacked(c Chart, counts []PairCount) Chart {
	index := make(map[string]int)
	var names []string
	for _, pc := range counts {
		if _, ok := index[pc.Inner]; !ok {
			index[pc.Inner] = -1
			names = append(names, pc.Inner)
		}
	}
	sort.Strings(names)

	series := make([]Series, len(names))
	for i, name := range names {
		index[name] = i
		series[i] = Series{Name: name, Color: defaultColors[i%len(defaultColors)]}
	}
	for _, pc := range counts {
		s := &series[index[pc.Inner]]
		s.Points = append(s.Points, Point{Label: pc.Outer, Value: pc.Count})
	}

	c.Kind = KindStackedBar
	c.Series = series
	return c
}
