// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the quote-analyzer CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mutual-axioms/internal/analyze"
	"github.com/pdiddy/mutual-axioms/internal/report"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd runs the full analysis and prints the report.
var rootCmd = &cobra.Command{
	Use:   "quote-analyzer",
	Short: "Report duplicates, missing dates, and shared quotes across quote files",
	Long: `quote-analyzer reads the configured quote files (by default
adrian_quotes.md, ernesto_quotes.md, shared_favorites.md, and
retired_quotes.md in the working directory), extracts every quote block,
and reports:

  - every quote, grouped by file, with its Added date
  - quotes that appear more than once
  - quotes without a date
  - the most recently added quote
  - quotes both participants hold, as candidates for the shared file

Files that cannot be read are skipped with a warning on stderr.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAnalyze,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./quote-analyzer.yaml or ~/.config/quote-analyzer/quote-analyzer.yaml)")
	flags.String("dir", ".", "directory the quote files are read from")
	flags.StringSlice("source", nil, "quote file to read, repeatable; replaces the configured list")
	flags.String("color", string(defaultColor), "colour output: auto, always, or never")
	flags.String("log-level", "warn", "diagnostic level on stderr: debug, info, warn, error")
	rootCmd.Flags().String("format", "text", "report format: text, yaml, or json")

	mustBind("dir", flags.Lookup("dir"))
	mustBind("sources", flags.Lookup("source"))
	mustBind("color", flags.Lookup("color"))
	mustBind("log_level", flags.Lookup("log-level"))
	mustBind("format", rootCmd.Flags().Lookup("format"))

	setDefaults(viper.GetViper())
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("quote-analyzer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "quote-analyzer"))
		}
	}

	viper.SetEnvPrefix("QUOTE_ANALYZER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	run, err := collect(cmd)
	if err != nil {
		return err
	}

	r, err := report.New(run.cfg.Format, cmd.OutOrStdout(), run.cfg.Color)
	if err != nil {
		return err
	}

	result := analyze.Run(run.cfg, run.sources, run.records)
	run.logger.Info("analysis complete",
		"total", result.Total,
		"duplicates", len(result.Duplicates),
		"undated", len(result.MissingDates),
		"shared", len(result.Shared),
	)
	return r.Render(result)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
