// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/mutual-axioms/internal/extract"
	"github.com/pdiddy/mutual-axioms/internal/loader"
	"github.com/pdiddy/mutual-axioms/internal/logging"
	"github.com/pdiddy/mutual-axioms/internal/report"
	"github.com/pdiddy/mutual-axioms/pkg/types"
)

var defaultColor = types.ColorAuto

// setDefaults registers the built-in configuration on v.
func setDefaults(v *viper.Viper) {
	d := types.DefaultConfig()
	v.SetDefault("dir", d.Dir)
	v.SetDefault("sources", d.Sources)
	v.SetDefault("participants.a", d.Participants.A)
	v.SetDefault("participants.b", d.Participants.B)
	v.SetDefault("consolidate_into", d.ConsolidateInto)
	v.SetDefault("format", string(d.Format))
	v.SetDefault("color", string(d.Color))
	v.SetDefault("log_level", d.LogLevel)
}

func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag for %s: %v", key, err))
	}
}

// resolveConfig reads the analyzer configuration from v and validates the
// enumerated settings.
func resolveConfig(v *viper.Viper) (types.AnalyzerConfig, error) {
	cfg := types.AnalyzerConfig{
		Dir:     v.GetString("dir"),
		Sources: v.GetStringSlice("sources"),
		Participants: types.Participants{
			A: v.GetString("participants.a"),
			B: v.GetString("participants.b"),
		},
		ConsolidateInto: v.GetString("consolidate_into"),
		Format:          types.OutputFormat(v.GetString("format")),
		LogLevel:        v.GetString("log_level"),
	}

	switch cfg.Format {
	case "":
		cfg.Format = types.FormatText
	case types.FormatText, types.FormatYAML, types.FormatJSON:
	default:
		return cfg, fmt.Errorf("unknown output format %q (want text, yaml, or json)", cfg.Format)
	}

	mode, err := report.ParseColorMode(v.GetString("color"))
	if err != nil {
		return cfg, err
	}
	cfg.Color = mode

	return cfg, nil
}

// runInputs holds everything loaded for one invocation.
type runInputs struct {
	cfg     types.AnalyzerConfig
	logger  *log.Logger
	sources []loader.Source
	records []types.QuoteRecord
}

// collect resolves configuration, reads the sources, and extracts records.
func collect(cmd *cobra.Command) (runInputs, error) {
	cfg, err := resolveConfig(viper.GetViper())
	if err != nil {
		return runInputs{}, err
	}

	logger := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	sources := loader.Load(cfg, logger)
	records := extract.FromSources(sources)
	logger.Debug("extracted records", "sources", len(sources), "records", len(records))

	return runInputs{cfg: cfg, logger: logger, sources: sources, records: records}, nil
}
