// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the quote analyzer
// pipeline: sources are read, quote records are extracted, and the record
// set is analyzed and rendered.
package types

// QuoteRecord is one quotation parsed from a source file.
type QuoteRecord struct {
	// Text is the trimmed quotation body. Never empty.
	Text string `json:"text" yaml:"text"`

	// Author is the trimmed attribution. Never empty.
	Author string `json:"author" yaml:"author"`

	// Date is the "Added" date in YYYY-MM-DD form. Empty when the source
	// block carries no date line.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`

	// SourceFile is the base name of the file the record came from.
	SourceFile string `json:"source_file" yaml:"source_file"`
}

// QuoteKey is the structural identity of a quote. Two records are the same
// quote when text and author are equal, regardless of date or file.
type QuoteKey struct {
	Text   string
	Author string
}

// Key returns the record's structural identity.
func (q QuoteRecord) Key() QuoteKey {
	return QuoteKey{Text: q.Text, Author: q.Author}
}

// HasDate reports whether the record carries an Added date.
func (q QuoteRecord) HasDate() bool {
	return q.Date != ""
}

// Duplicate reports a quote seen more than once across the record set.
type Duplicate struct {
	Text   string `json:"text" yaml:"text"`
	Author string `json:"author" yaml:"author"`

	// Files holds the file of the first occurrence followed by the file of
	// the repeated occurrence.
	Files [2]string `json:"files" yaml:"files,flow"`
}

// SharedQuote is a quote that both participants hold verbatim.
type SharedQuote struct {
	Text   string `json:"text" yaml:"text"`
	Author string `json:"author" yaml:"author"`
}
