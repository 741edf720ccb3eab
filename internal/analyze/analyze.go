// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze computes summary results over a full record set:
// repeated quotes, undated quotes, the newest quote, and quotes two
// participants share. Every function is pure and accepts an empty or nil
// record set.
package analyze

import (
	"github.com/pdiddy/mutual-axioms/internal/loader"
	"github.com/pdiddy/mutual-axioms/pkg/types"
)

// Duplicates reports every repeat of a (text, author) pair. The first
// occurrence is canonical; each later occurrence yields one entry pairing
// the first occurrence's file with its own file.
func Duplicates(records []types.QuoteRecord) []types.Duplicate {
	firstFile := make(map[types.QuoteKey]string, len(records))
	var dupes []types.Duplicate

	for _, rec := range records {
		key := rec.Key()
		file, seen := firstFile[key]
		if !seen {
			firstFile[key] = rec.SourceFile
			continue
		}
		dupes = append(dupes, types.Duplicate{
			Text:   rec.Text,
			Author: rec.Author,
			Files:  [2]string{file, rec.SourceFile},
		})
	}
	return dupes
}

// MissingDates returns the records without an Added date, in order.
func MissingDates(records []types.QuoteRecord) []types.QuoteRecord {
	var undated []types.QuoteRecord
	for _, rec := range records {
		if !rec.HasDate() {
			undated = append(undated, rec)
		}
	}
	return undated
}

// Newest returns the dated record with the greatest date. ISO dates compare
// correctly as strings. On a tie the first record wins. It reports false
// when no record carries a date.
func Newest(records []types.QuoteRecord) (types.QuoteRecord, bool) {
	var (
		best  types.QuoteRecord
		found bool
	)
	for _, rec := range records {
		if !rec.HasDate() {
			continue
		}
		if !found || rec.Date > best.Date {
			best = rec
			found = true
		}
	}
	return best, found
}

// Shared returns, for each record from participant a that participant b
// also holds verbatim, one SharedQuote. Results follow a's order; a quote
// a lists twice appears twice.
func Shared(records []types.QuoteRecord, a, b string) []types.SharedQuote {
	var fromA, fromB []types.QuoteRecord
	for _, rec := range records {
		switch rec.SourceFile {
		case a:
			fromA = append(fromA, rec)
		case b:
			fromB = append(fromB, rec)
		}
	}

	var shared []types.SharedQuote
	for _, ra := range fromA {
		for _, rb := range fromB {
			if ra.Key() == rb.Key() {
				shared = append(shared, types.SharedQuote{Text: ra.Text, Author: ra.Author})
				break
			}
		}
	}
	return shared
}

// Run builds the complete Analysis for one run. sources supplies the
// per-source listing and read errors; records is the extracted record set
// in source order.
func Run(cfg types.AnalyzerConfig, sources []loader.Source, records []types.QuoteRecord) types.Analysis {
	result := types.Analysis{
		Total:           len(records),
		Sources:         summarize(sources, records),
		Duplicates:      Duplicates(records),
		MissingDates:    MissingDates(records),
		Participants:    cfg.Participants,
		Shared:          Shared(records, cfg.Participants.A, cfg.Participants.B),
		ConsolidateInto: cfg.ConsolidateInto,
	}
	if newest, ok := Newest(records); ok {
		result.Newest = &newest
	}
	return result
}

func summarize(sources []loader.Source, records []types.QuoteRecord) []types.SourceSummary {
	byFile := make(map[string][]types.QuoteRecord)
	for _, rec := range records {
		byFile[rec.SourceFile] = append(byFile[rec.SourceFile], rec)
	}

	summaries := make([]types.SourceSummary, 0, len(sources))
	seen := make(map[string]bool, len(sources))
	for _, src := range sources {
		if seen[src.Name] {
			continue
		}
		seen[src.Name] = true

		s := types.SourceSummary{
			Name:    src.Name,
			Records: byFile[src.Name],
			Count:   len(byFile[src.Name]),
		}
		if src.Err != nil {
			s.Error = src.Err.Error()
		}
		summaries = append(summaries, s)
	}
	return summaries
}
