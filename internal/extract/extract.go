// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract scans source text for quote blocks and turns each one into
// a QuoteRecord. A quote block looks like:
//
//	> "Quote text, possibly over several lines"
//	> — Author
//
//	📅 Added: 2024-03-01
//
// The blank line and date line are optional. Text that does not form a
// complete quote plus attribution is skipped without error. A quote body
// never spans a blank line, so an unattributed quote is dropped instead of
// running into the next block.
//
// A quote containing a literal `"` that is followed by a newline and an
// attribution line ends at that quote mark. Continuation lines of a
// multi-line quote keep their leading `>` markers.
package extract

import (
	"iter"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdiddy/mutual-axioms/internal/loader"
	"github.com/pdiddy/mutual-axioms/pkg/types"
)

// quoteBlock matches one block. Group 1 is the quote body (non-greedy, may
// span lines but not blank ones), group 2 the rest of the attribution line, group 3 the
// optional date. The calendar marker is 📅 or 🗓 (with optional variation
// selector).
var quoteBlock = regexp.MustCompile(
	`>[ \t]*"((?:[^\n]|\n[ \t]*\S)*?)"\s*\n>[ \t]*—[ \t]*([^\n]+)` +
		`(?:\n[ \t]*\n[ \t]*(?:\x{1F4C5}|\x{1F5D3}\x{FE0F}?)[ \t]*Added:[ \t]*(\d{4}-\d{2}-\d{2})\b)?`)

// Quotes returns the records in content in order of appearance. The
// sequence holds no state between iterations: each range rescans content
// from the start.
func Quotes(content, file string) iter.Seq[types.QuoteRecord] {
	source := filepath.Base(file)
	return func(yield func(types.QuoteRecord) bool) {
		text := strings.ReplaceAll(content, "\r\n", "\n")
		for pos := 0; pos < len(text); {
			loc := quoteBlock.FindStringSubmatchIndex(text[pos:])
			if loc == nil {
				return
			}
			rec, ok := record(text[pos:], loc, source)

			next := pos + loc[1]
			if loc[1] == loc[0] {
				next++
			}
			pos = next

			if ok && !yield(rec) {
				return
			}
		}
	}
}

// All collects Quotes into a slice.
func All(content, file string) []types.QuoteRecord {
	var records []types.QuoteRecord
	for rec := range Quotes(content, file) {
		records = append(records, rec)
	}
	return records
}

// FromSources extracts records from every readable source, in source order.
func FromSources(sources []loader.Source) []types.QuoteRecord {
	var records []types.QuoteRecord
	for _, src := range sources {
		if !src.OK() {
			continue
		}
		records = append(records, All(src.Content, src.Name)...)
	}
	return records
}

// record builds a QuoteRecord from a match location. It reports false when
// the trimmed text or author is empty.
func record(text string, loc []int, source string) (types.QuoteRecord, bool) {
	rec := types.QuoteRecord{
		Text:       strings.TrimSpace(group(text, loc, 1)),
		Author:     strings.TrimSpace(group(text, loc, 2)),
		Date:       group(text, loc, 3),
		SourceFile: source,
	}
	if rec.Text == "" || rec.Author == "" {
		return types.QuoteRecord{}, false
	}
	return rec, true
}

func group(text string, loc []int, n int) string {
	start, end := loc[2*n], loc[2*n+1]
	if start < 0 {
		return ""
	}
	return text[start:end]
}
