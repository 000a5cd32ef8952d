package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/catalogdash/internal/dashboard"
	"github.com/vmunix/catalogdash/internal/filter"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the available filter values",
	Args:  cobra.NoArgs,
	RunE:  runOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

type modeOutput struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type optionsOutput struct {
	Types      []string     `json:"types"`
	Continents []string     `json:"continents"`
	Categories []string     `json:"categories"`
	Modes      []modeOutput `json:"modes"`
}

func runOptions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger := newLogger(cfg, cmd.ErrOrStderr())
	loader, closeCache, err := openLoader(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	ds, err := loader.Load(cmd.Context())
	if err != nil {
		return err
	}

	opts := filter.Available(ds.Titles)
	target := cfg.Dashboard.FocusCountry
	result := optionsOutput{
		Types:      opts.Types,
		Continents: opts.Continents,
		Categories: opts.Categories,
	}
	for _, m := range opts.Modes {
		result.Modes = append(result.Modes, modeOutput{Key: m.String(), Label: m.Label(target)})
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, result)
	}

	section := func(name string, values []string) {
		labels := make([]string, len(values))
		for i, v := range values {
			labels[i] = dashboard.DisplayLabel(v)
		}
		fmt.Fprintln(out, headingStyle.Render(name))
		fmt.Fprintln(out, "  "+strings.Join(labels, ", "))
	}
	section("Types", result.Types)
	section("Continents", result.Continents)
	section("Categories", result.Categories)

	fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("Country modes for '%s'", target)))
	for _, m := range result.Modes {
		fmt.Fprintf(out, "  %-12s %s\n", m.Key, m.Label)
	}
	return nil
}
