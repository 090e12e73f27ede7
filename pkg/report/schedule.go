package report

import (
	"strings"

	"github.com/matzehuels/citeorder/pkg/dag"
	"github.com/matzehuels/citeorder/pkg/papers"
)

// ReadingSchedule lists papers foundational first. order is a topological
// order of g (citing papers first), so the schedule walks it backwards.
//
// Each entry shows the paper metadata and the titles of the papers it cites
// that are part of ds. Titles longer than 50 characters are shortened.
func ReadingSchedule(g *dag.Graph, ds *papers.Dataset, order []string) string {
	cat := catalog{ds: ds}

	var p page
	p.banner(100, "OPTIMAL RESEARCH PAPER READING SCHEDULE")
	p.line("Based on topological sorting of citation dependencies")
	p.line("Total Papers: %d | Citation Relationships: %d", len(order), g.EdgeCount())
	if s := period(ds); s != "" {
		p.text(s)
	}
	p.blank()
	p.line("READING ORDER (Foundational to Advanced):")
	p.blank()

	for i := range order {
		id := order[len(order)-1-i]
		paper := cat.paper(id)
		p.line("%2d. %s", i+1, paper.Title)
		p.line("    Authors: %s", paper.Authors)
		p.line("    Year: %s | Publication: %s", year(paper), paper.Venue)
		p.line("    DOI: %s", paper.URL)

		var prereqs []string
		for _, dep := range g.Successors(id) {
			if cat.known(dep) {
				prereqs = append(prereqs, shorten(cat.paper(dep).Title, 50, 47))
			}
		}
		if len(prereqs) > 0 {
			p.line("    Prerequisites: %s", strings.Join(prereqs, ", "))
		}
		p.blank()
	}
	return p.String()
}
