// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mutual-axioms/internal/index"
	"github.com/pdiddy/mutual-axioms/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Find quotes by text, author, file, or date",
	Long: `Search loads every quote from the configured files into an in-memory
index and lists those matching the filters. The optional text argument
matches any part of the quote or the author, ignoring case.

Without filters every quote is listed in file order, up to --limit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("author", "", "exact author, ignoring case")
	searchCmd.Flags().String("file", "", "restrict to one source file")
	searchCmd.Flags().Bool("undated", false, "only quotes without an Added date")
	searchCmd.Flags().String("since", "", "only quotes added on or after YYYY-MM-DD")
	searchCmd.Flags().String("until", "", "only quotes added on or before YYYY-MM-DD")
	searchCmd.Flags().Bool("newest-first", false, "order by Added date, newest first")
	searchCmd.Flags().Int("limit", 20, "maximum number of results")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	opts := queryOptsFromFlags(cmd, args)
	if err := opts.Validate(); err != nil {
		return err
	}

	store, err := openIndex(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Retrieve(cmd.Context(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(cmd.OutOrStdout(), results, jsonOutput)
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) index.QueryOptions {
	var opts index.QueryOptions
	if len(args) > 0 {
		opts.Query = args[0]
	}
	opts.Author, _ = cmd.Flags().GetString("author")
	opts.SourceFile, _ = cmd.Flags().GetString("file")
	opts.Undated, _ = cmd.Flags().GetBool("undated")
	opts.Since, _ = cmd.Flags().GetString("since")
	opts.Until, _ = cmd.Flags().GetString("until")
	opts.NewestFirst, _ = cmd.Flags().GetBool("newest-first")
	opts.MaxResults, _ = cmd.Flags().GetInt("limit")
	return opts
}

// openIndex loads the configured sources into a fresh in-memory index.
func openIndex(cmd *cobra.Command) (*index.Store, error) {
	run, err := collect(cmd)
	if err != nil {
		return nil, err
	}

	store, err := index.NewStore(cmd.Context(), 0)
	if err != nil {
		return nil, err
	}
	n, err := store.Ingest(cmd.Context(), run.records)
	if err != nil {
		store.Close()
		return nil, err
	}
	run.logger.Debug("indexed records", "count", n)
	return store, nil
}

func formatSearchOutput(w io.Writer, results []types.QuoteRecord, jsonOutput bool) error {
	if jsonOutput {
		if results == nil {
			results = []types.QuoteRecord{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No quotes found.")
		return nil
	}

	fmt.Fprintf(w, "%-4s  %-50s  %-20s  %-10s  %s\n", "#", "Quote", "Author", "Added", "File")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, r := range results {
		date := r.Date
		if date == "" {
			date = "-"
		}
		fmt.Fprintf(w, "%-4d  %-50s  %-20s  %-10s  %s\n",
			i+1, truncate(oneLine(r.Text), 50), truncate(r.Author, 20), date, r.SourceFile)
	}

	fmt.Fprintf(w, "\n%d results\n", len(results))
	return nil
}

// truncate shortens s to max runes, marking the cut with "...".
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
