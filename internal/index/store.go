// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index loads a record set into an in-memory SQLite database so it
// can be filtered and aggregated with SQL. Nothing is written to disk; the
// database lives for the lifetime of the Store.
package index

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/mutual-axioms/pkg/types"
)

const defaultMaxResults = 20

// Store wraps the in-memory quote database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens an empty in-memory database and creates the schema.
// maxResults is the default Retrieve limit; zero or less uses 20.
func NewStore(ctx context.Context, maxResults int) (*Store, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	s := &Store{db: db, maxResults: maxResults}

	if err := s.createSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE quotes (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			seq INTEGER NOT NULL,
			text TEXT NOT NULL,
			author TEXT NOT NULL,
			date TEXT,
			source_file TEXT NOT NULL
		)`,
		`CREATE INDEX idx_quotes_author ON quotes(author COLLATE NOCASE)`,
		`CREATE INDEX idx_quotes_date ON quotes(date)`,
		`CREATE INDEX idx_quotes_source ON quotes(source_file)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Ingest inserts records in one transaction, keeping their order as the
// sequence number. It returns the number of rows inserted.
func (s *Store) Ingest(ctx context.Context, records []types.QuoteRecord) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var next int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq) + 1, 0) FROM quotes`).Scan(&next); err != nil {
		return 0, fmt.Errorf("reading sequence: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO quotes (seq, text, author, date, source_file) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		var date sql.NullString
		if rec.HasDate() {
			date = sql.NullString{String: rec.Date, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, next+i, rec.Text, rec.Author, date, rec.SourceFile); err != nil {
			return 0, fmt.Errorf("inserting quote from %s: %w", rec.SourceFile, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return len(records), nil
}
