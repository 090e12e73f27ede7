// Package papers provides the citation dataset that citeorder analyzes.
//
// A dataset is a TOML document with one [[paper]] table per paper. The "cites"
// array of a paper lists the IDs of papers in the same set that it builds on;
// those lists become the edges of the citation graph, in file order.
//
//	[[paper]]
//	id = "crop_protection_2019"
//	title = "Nano-enabled strategies to enhance crop nutrition and protection"
//	authors = "Melanie Kah, Nathalie Tufenkji, Jason C. White"
//	year = 2019
//	venue = "Nature Nanotechnology"
//	url = "https://doi.org/10.1038/s41565-019-0439-5"
//	cites = ["microbiome_study_2017"]
//
// [Default] returns the built-in set of ten papers on nanotechnology in
// agriculture.
package papers

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/citeorder/pkg/dag"
	"github.com/matzehuels/citeorder/pkg/errors"
)

//go:embed papers.toml
var defaultTOML []byte

// Paper is the metadata of one paper. The sorters never look at it; reports
// use it to turn node IDs into readable entries.
type Paper struct {
	ID          string   `toml:"id" json:"id"`
	Title       string   `toml:"title" json:"title"`
	Authors     string   `toml:"authors" json:"authors"`
	Year        int      `toml:"year" json:"year"`
	Venue       string   `toml:"venue" json:"venue"`
	URL         string   `toml:"url" json:"url"`
	Description string   `toml:"description" json:"description,omitempty"`
	Cites       []string `toml:"cites" json:"cites"`
}

// Dataset is an ordered collection of papers.
type Dataset struct {
	papers []Paper
	byID   map[string]int
}

type document struct {
	Papers []Paper `toml:"paper"`
}

var (
	defaultOnce sync.Once
	defaultSet  *Dataset
)

// Default returns the embedded reference dataset. The embedded file is
// validated by tests, so a parse failure here is a build defect and panics.
func Default() *Dataset {
	defaultOnce.Do(func() {
		ds, err := Parse(defaultTOML)
		if err != nil {
			panic(fmt.Sprintf("papers: embedded dataset: %v", err))
		}
		defaultSet = ds
	})
	return defaultSet
}

// Load reads and parses a dataset file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "dataset %s", path)
	}
	if err != nil {
		return nil, err
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes a TOML dataset and validates it: IDs must be well formed and
// unique, titles non-empty, URLs http(s), and every cited ID must belong to
// the dataset.
func Parse(data []byte) (*Dataset, error) {
	var doc document
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode dataset")
	}
	return New(doc.Papers)
}

// New builds a dataset from papers in the given order and validates it the
// same way [Parse] does.
func New(papers []Paper) (*Dataset, error) {
	ds := &Dataset{
		papers: make([]Paper, 0, len(papers)),
		byID:   make(map[string]int, len(papers)),
	}
	for _, p := range papers {
		if err := errors.ValidatePaperID(p.ID); err != nil {
			return nil, err
		}
		if _, dup := ds.byID[p.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "duplicate paper %q", p.ID)
		}
		if p.Title == "" {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "paper %q has no title", p.ID)
		}
		if p.URL != "" {
			if err := errors.ValidateURL(p.URL); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "paper %q", p.ID)
			}
		}
		if p.Cites == nil {
			p.Cites = []string{}
		}
		ds.byID[p.ID] = len(ds.papers)
		ds.papers = append(ds.papers, p)
	}
	for _, p := range ds.papers {
		for _, c := range p.Cites {
			if _, ok := ds.byID[c]; !ok {
				return nil, errors.New(errors.ErrCodeInvalidDataset, "paper %q cites unknown paper %q", p.ID, c)
			}
		}
	}
	return ds, nil
}

// Len returns the number of papers.
func (d *Dataset) Len() int { return len(d.papers) }

// Papers returns all papers in file order.
func (d *Dataset) Papers() []Paper {
	out := make([]Paper, len(d.papers))
	copy(out, d.papers)
	return out
}

// Paper returns the paper with the given ID.
func (d *Dataset) Paper(id string) (Paper, bool) {
	i, ok := d.byID[id]
	if !ok {
		return Paper{}, false
	}
	return d.papers[i], true
}

// Title returns the title of id, or id itself for unknown papers.
func (d *Dataset) Title(id string) string {
	if p, ok := d.Paper(id); ok {
		return p.Title
	}
	return id
}

// Graph returns the citation graph: one key per paper in file order, with
// its cites list as successors.
func (d *Dataset) Graph() *dag.Graph {
	g := dag.New()
	for _, p := range d.papers {
		// IDs were validated and deduplicated in New.
		_ = g.AddNode(p.ID, p.Cites...)
	}
	return g
}
