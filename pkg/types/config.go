// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultSources is the source list used when no configuration overrides it.
var DefaultSources = []string{
	"adrian_quotes.md",
	"ernesto_quotes.md",
	"shared_favorites.md",
	"retired_quotes.md",
}

const (
	DefaultParticipantA    = "adrian_quotes.md"
	DefaultParticipantB    = "ernesto_quotes.md"
	DefaultConsolidateInto = "shared_favorites.md"
)

// Participants names the two sources compared for shared quotes.
type Participants struct {
	A string `json:"a" yaml:"a" mapstructure:"a"`
	B string `json:"b" yaml:"b" mapstructure:"b"`
}

// OutputFormat selects the report renderer.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)

// ColorMode controls ANSI colour in console output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// AnalyzerConfig holds the settings for one analyzer run.
type AnalyzerConfig struct {
	// Dir is the directory relative source names are resolved against.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// Sources lists the files to read, in report order.
	Sources []string `json:"sources" yaml:"sources" mapstructure:"sources"`

	// Participants names the two sources compared for shared quotes.
	Participants Participants `json:"participants" yaml:"participants" mapstructure:"participants"`

	// ConsolidateInto is the file suggested as the home for shared quotes.
	ConsolidateInto string `json:"consolidate_into" yaml:"consolidate_into" mapstructure:"consolidate_into"`

	// Format selects the report renderer: text, yaml, or json.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// Color controls ANSI colour for the text renderer: auto, always, never.
	Color ColorMode `json:"color" yaml:"color" mapstructure:"color"`

	// LogLevel is the minimum level for diagnostics on stderr.
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// DefaultConfig returns the configuration that reproduces the built-in
// behaviour: four files in the working directory, colour when on a terminal.
func DefaultConfig() AnalyzerConfig {
	return AnalyzerConfig{
		Dir:     ".",
		Sources: append([]string(nil), DefaultSources...),
		Participants: Participants{
			A: DefaultParticipantA,
			B: DefaultParticipantB,
		},
		ConsolidateInto: DefaultConsolidateInto,
		Format:          FormatText,
		Color:           ColorAuto,
		LogLevel:        "warn",
	}
}
