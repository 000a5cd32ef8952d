package main

import (
	"github.com/spf13/cobra"

	"github.com/vmunix/catalogdash/internal/dashboard"
	"github.com/vmunix/catalogdash/internal/filter"
)

// addFilterFlags registers the selection flags shared by summary and render.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("type", nil, "Title type to include (repeatable; default all)")
	cmd.Flags().StringArray("continent", nil, "Continent to include (repeatable; default all)")
	cmd.Flags().StringArray("category", nil, "Category base to include (repeatable; default all)")
	cmd.Flags().String("country", "all", "Focus country mode: all, only, with_others")
}

// selectionFromFlags builds a selection. An unset list flag selects every
// value; --type "" selects none; "(none)" selects empty cells. Values are
// not trimmed.
func selectionFromFlags(cmd *cobra.Command, target string) (filter.Selection, error) {
	country, _ := cmd.Flags().GetString("country")
	mode, err := filter.ParseCountryMode(country, target)
	if err != nil {
		return filter.Selection{}, err
	}
	return filter.Selection{
		Types:      listFlag(cmd, "type"),
		Continents: listFlag(cmd, "continent"),
		Categories: listFlag(cmd, "category"),
		Country:    mode,
		Target:     target,
	}, nil
}

func listFlag(cmd *cobra.Command, name string) []string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	raw, _ := cmd.Flags().GetStringArray(name)
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
