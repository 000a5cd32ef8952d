package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/catalogdash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, required fields, and environment variable substitution without fetching the catalog.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd)
	configTestCmd.Flags().Bool("lenient", false, "Report validation problems as warnings and exit successfully")
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return err
		}
		path = found
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n\n", path)

	if lenient, _ := cmd.Flags().GetBool("lenient"); lenient {
		return runConfigTestLenient(out, path)
	}

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

// runConfigTestLenient parses path without failing on unset variables or
// invalid values, printing them as warnings instead.
func runConfigTestLenient(out io.Writer, path string) error {
	cfg, err := config.LoadWithoutValidation(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		fmt.Fprintln(out, "Warnings:")
		for _, e := range errs {
			fmt.Fprintf(out, "  - %s\n", e)
		}
		fmt.Fprintln(out)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration parsed (lenient).")
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	fmt.Fprintf(w, "%s has %d problem(s)\n\n", e.Path, len(e.Missing)+len(e.Errors))
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Server:     %s (log: %s)\n", cfg.Addr(), cfg.Server.LogLevel)
	fmt.Fprintf(w, "  Source:     %s (timeout %s)\n", cfg.Source.URL, cfg.Source.Timeout)
	if ttl := cfg.Cache.CacheTTL(); ttl > 0 {
		fmt.Fprintf(w, "  Cache:      %s (ttl %s)\n", cfg.Cache.Path, ttl)
	} else {
		fmt.Fprintln(w, "  Cache:      disabled")
	}
	if cfg.Refresh.Enabled {
		fmt.Fprintf(w, "  Refresh:    %s\n", cfg.Refresh.Schedule)
	} else {
		fmt.Fprintln(w, "  Refresh:    disabled")
	}
	fmt.Fprintf(w, "  Focus:      %s\n", cfg.Dashboard.FocusCountry)
	fmt.Fprintf(w, "  Charts:     %dx%d\n", cfg.Dashboard.ChartWidth, cfg.Dashboard.ChartHeight)
}
