package report

import (
	"github.com/matzehuels/citeorder/pkg/papers"
)

// DatasetOverview describes the research collection: its period and size,
// the papers published each year, and the citation breakdown.
func DatasetOverview(ds *papers.Dataset) string {
	stats := ds.Stats()
	cat := catalog{ds: ds}

	var p page
	p.line("=== NANOTECHNOLOGY IN AGRICULTURE RESEARCH EVOLUTION ===")
	if s := period(ds); s != "" {
		p.text(s)
	}
	p.line("Total Papers: %d", stats.TotalPapers)
	p.line("Citation Relationships: %d", stats.TotalCitations)
	p.blank()

	p.line("Research Timeline:")
	for _, yg := range ds.Timeline() {
		p.line("  %d: %d paper(s)", yg.Year, len(yg.Papers))
		for _, id := range yg.Papers {
			p.line("    - %s", shorten(cat.paper(id).Title, 60, 60))
		}
	}
	p.blank()

	a := ds.CitationAnalysis()
	p.line("ADDITIONAL ANALYSIS:")
	p.line("Foundational Papers: %d", len(a.Foundational))
	p.line("Most Cited Paper: %d citations", a.MaxCitations)
	p.line("Average Citations per Paper: %.1f", a.AverageCitations)
	p.blank()

	p.line("MOST CITED PAPERS:")
	for _, c := range a.MostCited {
		p.line("  %d citations: %s", c.Count, prefix(cat.paper(c.Paper).Title, 50))
	}
	return p.String()
}
