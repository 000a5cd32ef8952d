// Package catalog defines catalog title records and loads them from CSV.
package catalog

import "time"

// Title is one catalog entry. Missing values are empty strings.
type Title struct {
	Type      string `json:"type"`
	Country   string `json:"country"` // may list several countries joined by ", "
	Continent string `json:"continent"`
	Category  string `json:"category"`

	// CategoryBase is derived from Category when the title is loaded.
	CategoryBase string `json:"category_base"`
}

// Dataset is a loaded set of titles plus where and when it came from.
type Dataset struct {
	Titles    []Title
	Source    string
	FetchedAt time.Time
	Cached    bool // served from the local cache rather than the source
}

// Len returns the number of titles.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Titles)
}
