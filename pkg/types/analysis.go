// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SourceSummary describes one configured source after loading and extraction.
type SourceSummary struct {
	// Name is the configured source name, normally a file base name.
	Name string `json:"name" yaml:"name"`

	// Count is the number of records extracted from the source.
	Count int `json:"count" yaml:"count"`

	// Records lists the extracted records in document order.
	Records []QuoteRecord `json:"records" yaml:"records"`

	// Error records a read failure. Empty when the source was read.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Analysis holds the results of one analyzer run over the full record set.
type Analysis struct {
	// Total is the number of records across all sources.
	Total int `json:"total" yaml:"total"`

	// Sources lists per-source results in configured order.
	Sources []SourceSummary `json:"sources" yaml:"sources"`

	// Duplicates lists repeated quotes in order of discovery.
	Duplicates []Duplicate `json:"duplicates" yaml:"duplicates"`

	// MissingDates lists records without an Added date, in record order.
	MissingDates []QuoteRecord `json:"missing_dates" yaml:"missing_dates"`

	// Newest is the record with the latest date. Nil when no record is dated.
	Newest *QuoteRecord `json:"newest,omitempty" yaml:"newest,omitempty"`

	// Participants names the two sources compared for shared quotes.
	Participants Participants `json:"participants" yaml:"participants"`

	// Shared lists quotes held by both participants, in the first
	// participant's order.
	Shared []SharedQuote `json:"shared" yaml:"shared"`

	// ConsolidateInto is the suggested home for shared quotes.
	ConsolidateInto string `json:"consolidate_into" yaml:"consolidate_into"`
}
