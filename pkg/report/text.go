package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/citeorder/pkg/papers"
)

// page accumulates report lines. Every line ends with a newline.
type page struct {
	b strings.Builder
}

func (p *page) line(format string, args ...any) {
	fmt.Fprintf(&p.b, format, args...)
	p.b.WriteByte('\n')
}

// text writes s verbatim as one line.
func (p *page) text(s string) {
	p.b.WriteString(s)
	p.b.WriteByte('\n')
}

func (p *page) blank() { p.b.WriteByte('\n') }

// banner writes a title framed by rules of the given width.
func (p *page) banner(width int, title string) {
	rule := strings.Repeat("=", width)
	p.text(rule)
	p.text(title)
	p.text(rule)
}

func (p *page) String() string { return p.b.String() }

// shorten cuts s to keep runes plus "..." when it is longer than limit runes.
func shorten(s string, limit, keep int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:keep]) + "..."
}

// prefix returns the first n runes of s followed by "...", regardless of
// the length of s.
func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r) + "..."
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// catalog resolves node IDs to paper metadata, tolerating a nil dataset and
// IDs that are not papers.
type catalog struct {
	ds *papers.Dataset
}

func (c catalog) paper(id string) papers.Paper {
	if c.ds != nil {
		if p, ok := c.ds.Paper(id); ok {
			return p
		}
	}
	return papers.Paper{ID: id, Title: id}
}

func (c catalog) known(id string) bool {
	if c.ds == nil {
		return false
	}
	_, ok := c.ds.Paper(id)
	return ok
}

func year(p papers.Paper) string {
	if p.Year == 0 {
		return "n/a"
	}
	return strconv.Itoa(p.Year)
}

// period formats the research period line shared by several reports, or
// returns "" when there is no dataset to take years from.
func period(ds *papers.Dataset) string {
	if ds == nil || ds.Len() == 0 {
		return ""
	}
	s := ds.Stats()
	return fmt.Sprintf("Research Period: %d years (%d-%d)", s.ResearchSpan+1, s.FirstYear, s.LastYear)
}
