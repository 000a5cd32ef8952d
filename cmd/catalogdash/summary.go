package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/catalogdash/internal/catalog"
	"github.com/vmunix/catalogdash/internal/config"
	"github.com/vmunix/catalogdash/internal/dashboard"
	"github.com/vmunix/catalogdash/internal/filter"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print metrics and chart tables",
	Long: `Print the dashboard for a selection as text tables.

Examples:
  catalogdash summary
  catalogdash summary --type Movie --continent Europa --continent Ásia
  catalogdash summary --country only --json`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	addFilterFlags(summaryCmd)
}

type summaryOutput struct {
	Source   string            `json:"source"`
	Total    int               `json:"total"`
	Metrics  dashboard.Metrics `json:"metrics"`
	Charts   []dashboard.Chart `json:"charts"`
	Warnings []filter.Warning  `json:"warnings,omitempty"`
}

func runSummary(cmd *cobra.Command, args []string) error {
	_, ds, sel, err := loadSelection(cmd)
	if err != nil {
		return err
	}

	report := dashboard.Build(ds.Titles, sel)
	warnings := filter.Unknown(sel, filter.Available(ds.Titles))
	out := cmd.OutOrStdout()

	if jsonOutput {
		return printJSON(out, summaryOutput{
			Source:   ds.Source,
			Total:    report.Total,
			Metrics:  report.Metrics,
			Charts:   report.Charts,
			Warnings: warnings,
		})
	}

	printSummary(out, ds, sel, report, warnings)
	return nil
}

func printSummary(w io.Writer, ds *catalog.Dataset, sel filter.Selection, report *dashboard.Report, warnings []filter.Warning) {
	fmt.Fprintln(w, titleStyle.Render("Catalog nationality dashboard"))
	fmt.Fprintln(w, labelStyle.Render(fmt.Sprintf("%s (%d titles) · %s", ds.Source, report.Total, sel.Country.Label(sel.FocusCountry()))))
	printWarnings(w, warnings)
	printMetrics(w, report.Metrics)
	for _, c := range report.Charts {
		printChart(w, c)
	}
}

// loadSelection loads the config and dataset and reads the filter flags.
func loadSelection(cmd *cobra.Command) (*config.Config, *catalog.Dataset, filter.Selection, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, filter.Selection{}, fmt.Errorf("config: %w", err)
	}
	sel, err := selectionFromFlags(cmd, cfg.Dashboard.FocusCountry)
	if err != nil {
		return nil, nil, filter.Selection{}, err
	}

	logger := newLogger(cfg, cmd.ErrOrStderr())
	loader, closeCache, err := openLoader(cmd.Context(), cfg, logger)
	if err != nil {
		return nil, nil, filter.Selection{}, err
	}
	defer closeCache()

	ds, err := loader.Load(cmd.Context())
	if err != nil {
		return nil, nil, filter.Selection{}, err
	}
	return cfg, ds, sel, nil
}
