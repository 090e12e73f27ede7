package papers

import (
	"cmp"
	"slices"
)

// Stats summarizes a dataset.
type Stats struct {
	TotalPapers        int `json:"total_papers"`
	TotalCitations     int `json:"total_citations"`
	FoundationalPapers int `json:"foundational_papers"`
	MostCited          int `json:"most_cited"`
	ResearchSpan       int `json:"research_span"`
	FirstYear          int `json:"first_year"`
	LastYear           int `json:"last_year"`
}

// Stats computes summary counts. Foundational papers are those that cite
// nothing in the set; MostCited is the highest number of incoming citations
// any single paper has; ResearchSpan is LastYear-FirstYear.
func (d *Dataset) Stats() Stats {
	s := Stats{
		TotalPapers:        len(d.papers),
		FoundationalPapers: len(d.Graph().Sinks()),
	}
	for i, p := range d.papers {
		s.TotalCitations += len(p.Cites)
		if i == 0 || p.Year < s.FirstYear {
			s.FirstYear = p.Year
		}
		if i == 0 || p.Year > s.LastYear {
			s.LastYear = p.Year
		}
	}
	for _, c := range d.citationCounts() {
		s.MostCited = max(s.MostCited, c.Count)
	}
	s.ResearchSpan = s.LastYear - s.FirstYear
	return s
}

// CitationCount is the number of papers in the set citing Paper.
type CitationCount struct {
	Paper string `json:"paper"`
	Count int    `json:"count"`
}

// CitationAnalysis is a breakdown of who cites whom.
type CitationAnalysis struct {
	// MostCited holds up to three papers with the most incoming citations,
	// highest first. Ties keep the order in which papers were first cited.
	MostCited []CitationCount `json:"most_cited"`
	// Foundational lists papers that cite nothing in the set.
	Foundational []string `json:"foundational"`
	// Leaf lists papers no other paper in the set cites.
	Leaf []string `json:"leaf"`
	// AverageCitations is the mean over papers cited at least once.
	AverageCitations float64 `json:"average_citations"`
	MaxCitations     int     `json:"max_citations"`
}

// CitationAnalysis computes the citation breakdown.
func (d *Dataset) CitationAnalysis() CitationAnalysis {
	counts := d.citationCounts()

	ranked := slices.Clone(counts)
	slices.SortStableFunc(ranked, func(a, b CitationCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	a := CitationAnalysis{MostCited: ranked[:min(3, len(ranked))]}

	total := 0
	for _, c := range counts {
		total += c.Count
		a.MaxCitations = max(a.MaxCitations, c.Count)
	}
	if len(counts) > 0 {
		a.AverageCitations = float64(total) / float64(len(counts))
	}

	// Every cited ID belongs to the dataset, so the sinks of its graph are the
	// papers citing nothing and the sources the papers nobody cites.
	g := d.Graph()
	a.Foundational = g.Sinks()
	a.Leaf = g.Sources()
	return a
}

// citationCounts returns incoming citation counts for every cited paper, in
// the order each paper is first cited while scanning the dataset.
func (d *Dataset) citationCounts() []CitationCount {
	var out []CitationCount
	index := make(map[string]int)
	for _, p := range d.papers {
		for _, c := range p.Cites {
			i, ok := index[c]
			if !ok {
				i = len(out)
				index[c] = i
				out = append(out, CitationCount{Paper: c})
			}
			out[i].Count++
		}
	}
	return out
}

// YearGroup is one entry of [Dataset.Timeline].
type YearGroup struct {
	Year   int      `json:"year"`
	Papers []string `json:"papers"`
}

// Timeline groups paper IDs by publication year, oldest year first. Papers
// within a year keep dataset order.
func (d *Dataset) Timeline() []YearGroup {
	byYear := make(map[int][]string)
	for _, p := range d.papers {
		byYear[p.Year] = append(byYear[p.Year], p.ID)
	}
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	slices.Sort(years)

	out := make([]YearGroup, len(years))
	for i, y := range years {
		out[i] = YearGroup{Year: y, Papers: byYear[y]}
	}
	return out
}
