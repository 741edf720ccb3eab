// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/pdiddy/mutual-axioms/pkg/types"
)

// palette holds the colours for each report section.
type palette struct {
	banner  *color.Color
	total   *color.Color
	heading *color.Color
	bullet  *color.Color
	date    *color.Color
	noDate  *color.Color
	dupe    *color.Color
	missing *color.Color
	newest  *color.Color
	shared  *color.Color
	hint    *color.Color

	dupeTitle    *color.Color
	missingTitle *color.Color
	newestTitle  *color.Color
	sharedTitle  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		banner:  color.New(color.Bold, color.FgBlue),
		total:   color.New(color.Bold, color.FgWhite),
		heading: color.New(color.Bold, color.FgCyan),
		bullet:  color.New(color.FgGreen),
		date:    color.New(color.FgYellow),
		noDate:  color.New(color.FgRed),
		dupe:    color.New(color.FgRed),
		missing: color.New(color.FgYellow),
		newest:  color.New(color.FgGreen),
		shared:  color.New(color.FgMagenta),
		hint:    color.New(color.Italic),

		dupeTitle:    color.New(color.Bold, color.FgRed),
		missingTitle: color.New(color.Bold, color.FgYellow),
		newestTitle:  color.New(color.Bold, color.FgGreen),
		sharedTitle:  color.New(color.Bold, color.FgMagenta),
	}
	for _, c := range []*color.Color{
		p.banner, p.total, p.heading, p.bullet, p.date, p.noDate,
		p.dupe, p.missing, p.newest, p.shared, p.hint,
		p.dupeTitle, p.missingTitle, p.newestTitle, p.sharedTitle,
	} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Console renders the human-readable report. Sections appear in a fixed
// order and empty sections are left out.
type Console struct {
	w io.Writer
	p palette
}

// NewConsole returns a console renderer. colour toggles ANSI escapes.
func NewConsole(w io.Writer, colour bool) *Console {
	return &Console{w: w, p: newPalette(colour)}
}

// Render implements Renderer.
func (c *Console) Render(a types.Analysis) error {
	c.banner()
	c.listing(a)
	c.duplicates(a.Duplicates)
	c.missingDates(a.MissingDates)
	c.newest(a.Newest)
	c.shared(a.Shared, a.ConsolidateInto)
	return nil
}

func (c *Console) banner() {
	fmt.Fprintf(c.w, "\n%s\n\n", c.p.banner.Sprint("📚 MUTUAL AXIOMS QUOTE ANALYZER 📚"))
}

func (c *Console) listing(a types.Analysis) {
	fmt.Fprintf(c.w, "%s\n\n", c.p.total.Sprintf("Found %d total quotes:", a.Total))

	for _, src := range a.Sources {
		if src.Count == 0 {
			continue
		}
		fmt.Fprintf(c.w, "\n%s\n", c.p.heading.Sprintf("%s (%d):", sourceTitle(src.Name), src.Count))
		for _, q := range src.Records {
			c.quoteLine(c.p.bullet, q.Text, q.Author)
			if q.HasDate() {
				fmt.Fprintf(c.w, "    %s\n", c.p.date.Sprintf("Added: %s", q.Date))
			} else {
				fmt.Fprintf(c.w, "    %s\n", c.p.noDate.Sprint("No date found"))
			}
		}
	}
}

func (c *Console) duplicates(dupes []types.Duplicate) {
	if len(dupes) == 0 {
		return
	}
	c.section(c.p.dupeTitle, "🔄 DUPLICATE QUOTES:")
	for _, d := range dupes {
		c.quoteLine(c.p.dupe, d.Text, d.Author)
		fmt.Fprintf(c.w, "    Found in: %s\n", strings.Join(d.Files[:], ", "))
	}
}

func (c *Console) missingDates(undated []types.QuoteRecord) {
	if len(undated) == 0 {
		return
	}
	c.section(c.p.missingTitle, "📅 QUOTES MISSING DATES:")
	for _, q := range undated {
		c.quoteLine(c.p.missing, q.Text, q.Author)
		fmt.Fprintf(c.w, "    File: %s\n", q.SourceFile)
	}
}

func (c *Console) newest(q *types.QuoteRecord) {
	if q == nil {
		return
	}
	c.section(c.p.newestTitle, "✨ NEWEST QUOTE:")
	c.quoteLine(c.p.newest, q.Text, q.Author)
	fmt.Fprintf(c.w, "    Added: %s (in %s)\n", q.Date, q.SourceFile)
}

func (c *Console) shared(shared []types.SharedQuote, target string) {
	if len(shared) == 0 {
		return
	}
	c.section(c.p.sharedTitle, "💖 QUOTES SHARED BY BOTH:")
	if target != "" {
		fmt.Fprintf(c.w, "  %s\n", c.p.hint.Sprintf("Consider moving these to %s", target))
	}
	for _, q := range shared {
		c.quoteLine(c.p.shared, q.Text, q.Author)
	}
}

// section prints a section heading preceded by a blank line.
func (c *Console) section(heading *color.Color, title string) {
	fmt.Fprintf(c.w, "\n%s\n", heading.Sprint(title))
}

func (c *Console) quoteLine(bullet *color.Color, text, author string) {
	fmt.Fprintf(c.w, "  %s \"%s\" — %s\n", bullet.Sprint("•"), text, author)
}

// sourceTitle turns "adrian_quotes.md" into "ADRIAN_QUOTES".
func sourceTitle(name string) string {
	return strings.ToUpper(strings.TrimSuffix(name, filepath.Ext(name)))
}
