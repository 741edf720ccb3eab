// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/mutual-axioms/pkg/types"
)

const dateFmt = "2006-01-02"

// QueryOptions holds the filters for Retrieve. Zero values disable a filter.
type QueryOptions struct {
	// Query matches a case-insensitive substring of the text or the author.
	Query string

	// Author matches the author exactly, ignoring case.
	Author string

	// SourceFile restricts results to one file.
	SourceFile string

	// Undated keeps only records without a date.
	Undated bool

	// Since and Until bound the date, inclusive, in YYYY-MM-DD form.
	// Either one excludes undated records.
	Since string
	Until string

	// NewestFirst orders by date descending instead of document order.
	NewestFirst bool

	// MaxResults limits the result count. Zero uses the store default.
	MaxResults int
}

// Validate checks the date bounds.
func (q QueryOptions) Validate() error {
	bounds := []struct{ name, value string }{{"since", q.Since}, {"until", q.Until}}
	for _, b := range bounds {
		if b.value == "" {
			continue
		}
		if _, err := time.Parse(dateFmt, b.value); err != nil {
			return fmt.Errorf("invalid %s date %q: want YYYY-MM-DD", b.name, b.value)
		}
	}
	if q.Undated && (q.Since != "" || q.Until != "") {
		return fmt.Errorf("undated cannot be combined with a date range")
	}
	return nil
}

// Retrieve returns the records matching opts.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]types.QuoteRecord, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT text, author, date, source_file FROM quotes WHERE 1=1`)

	if opts.Query != "" {
		pattern := "%" + escapeLike(strings.ToLower(opts.Query)) + "%"
		qb.WriteString(` AND (lower(text) LIKE ? ESCAPE '\' OR lower(author) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}
	if opts.Author != "" {
		qb.WriteString(` AND author = ? COLLATE NOCASE`)
		args = append(args, opts.Author)
	}
	if opts.SourceFile != "" {
		qb.WriteString(` AND source_file = ?`)
		args = append(args, opts.SourceFile)
	}
	if opts.Undated {
		qb.WriteString(` AND date IS NULL`)
	}
	if opts.Since != "" {
		qb.WriteString(` AND date >= ?`)
		args = append(args, opts.Since)
	}
	if opts.Until != "" {
		qb.WriteString(` AND date <= ?`)
		args = append(args, opts.Until)
	}

	if opts.NewestFirst {
		qb.WriteString(` ORDER BY date IS NULL, date DESC, seq`)
	} else {
		qb.WriteString(` ORDER BY seq`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying quotes: %w", err)
	}
	defer rows.Close()

	var results []types.QuoteRecord
	for rows.Next() {
		var (
			rec  types.QuoteRecord
			date sql.NullString
		)
		if err := rows.Scan(&rec.Text, &rec.Author, &date, &rec.SourceFile); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		rec.Date = date.String
		results = append(results, rec)
	}
	return results, rows.Err()
}

// AuthorSummary aggregates the records attributed to one author.
type AuthorSummary struct {
	Author string   `json:"author" yaml:"author"`
	Count  int      `json:"count" yaml:"count"`
	Dated  int      `json:"dated" yaml:"dated"`
	Files  []string `json:"files" yaml:"files"`
}

// Authors returns one summary per author, most quoted first, then by name.
// Files are listed in order of the author's first appearance in each.
func (s *Store) Authors(ctx context.Context) ([]AuthorSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT author, COUNT(*), COUNT(date) FROM quotes
		GROUP BY author
		ORDER BY COUNT(*) DESC, author`)
	if err != nil {
		return nil, fmt.Errorf("querying authors: %w", err)
	}

	var summaries []AuthorSummary
	byAuthor := make(map[string]int)
	for rows.Next() {
		var a AuthorSummary
		if err := rows.Scan(&a.Author, &a.Count, &a.Dated); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		byAuthor[a.Author] = len(summaries)
		summaries = append(summaries, a)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	fileRows, err := s.db.QueryContext(ctx,
		`SELECT author, source_file FROM quotes
		GROUP BY author, source_file
		ORDER BY MIN(seq)`)
	if err != nil {
		return nil, fmt.Errorf("querying author files: %w", err)
	}
	defer fileRows.Close()

	for fileRows.Next() {
		var author, file string
		if err := fileRows.Scan(&author, &file); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if i, ok := byAuthor[author]; ok {
			summaries[i].Files = append(summaries[i].Files, file)
		}
	}
	return summaries, fileRows.Err()
}

// escapeLike escapes LIKE wildcards so the query matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
