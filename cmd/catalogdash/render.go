package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vmunix/catalogdash/internal/dashboard"
	"github.com/vmunix/catalogdash/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write each chart as a PNG file",
	Long: `Render the dashboard charts for a selection to PNG files named
<chart-id>.png in the output directory. Empty charts are skipped.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addFilterFlags(renderCmd)
	renderCmd.Flags().String("out", ".", "Output directory")
}

type renderedChart struct {
	ID      string `json:"id"`
	Path    string `json:"path,omitempty"`
	Skipped bool   `json:"skipped,omitempty"`
}

func runRender(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out")

	cfg, ds, sel, err := loadSelection(cmd)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	opts := render.Options{Width: cfg.Dashboard.ChartWidth, Height: cfg.Dashboard.ChartHeight}
	report := dashboard.Build(ds.Titles, sel)

	var results []renderedChart
	for _, c := range report.Charts {
		var buf bytes.Buffer
		if err := render.PNG(&buf, c, opts); err != nil {
			if errors.Is(err, render.ErrEmptyChart) {
				results = append(results, renderedChart{ID: c.ID, Skipped: true})
				continue
			}
			return err
		}

		path := filepath.Join(outDir, c.ID+".png")
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		results = append(results, renderedChart{ID: c.ID, Path: path})
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, results)
	}
	for _, r := range results {
		if r.Skipped {
			fmt.Fprintf(out, "%-24s %s\n", r.ID, labelStyle.Render("skipped (no titles)"))
			continue
		}
		fmt.Fprintf(out, "%-24s %s\n", r.ID, r.Path)
	}
	return nil
}
