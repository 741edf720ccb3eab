// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mutual-axioms/internal/index"
)

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "List authors with their quote counts",
	Long: `Authors lists every attributed author across the configured files,
most quoted first, with how many of their quotes carry a date and which
files they appear in.`,
	Args: cobra.NoArgs,
	RunE: runAuthors,
}

func init() {
	authorsCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(authorsCmd)
}

func runAuthors(cmd *cobra.Command, args []string) error {
	store, err := openIndex(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	summaries, err := store.Authors(cmd.Context())
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatAuthorsOutput(cmd.OutOrStdout(), summaries, jsonOutput)
}

func formatAuthorsOutput(w io.Writer, summaries []index.AuthorSummary, jsonOutput bool) error {
	if jsonOutput {
		if summaries == nil {
			summaries = []index.AuthorSummary{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	if len(summaries) == 0 {
		fmt.Fprintln(w, "No authors found.")
		return nil
	}

	fmt.Fprintf(w, "%-30s  %-6s  %-6s  %s\n", "Author", "Quotes", "Dated", "Files")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, a := range summaries {
		fmt.Fprintf(w, "%-30s  %-6d  %-6d  %s\n",
			truncate(a.Author, 30), a.Count, a.Dated, strings.Join(a.Files, ", "))
	}

	fmt.Fprintf(w, "\n%d authors\n", len(summaries))
	return nil
}
