package nodelink

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/citeorder/pkg/dag"
	"github.com/matzehuels/citeorder/pkg/toposort"
)

func diamond(t *testing.T) (*dag.Graph, *toposort.Levels) {
	t.Helper()
	g := dag.New()
	for _, n := range []struct {
		id   string
		deps []string
	}{
		{"review", []string{"left", "right"}},
		{"left", []string{"root"}},
		{"right", []string{"root"}},
		{"root", nil},
	} {
		if err := g.AddNode(n.id, n.deps...); err != nil {
			t.Fatal(err)
		}
	}
	res, err := toposort.BFS(g)
	if err != nil {
		t.Fatal(err)
	}
	return g, res.Levels
}

func TestToDOT(t *testing.T) {
	g, levels := diamond(t)
	dot := ToDOT(g, levels, Options{
		Years: map[string]int{"review": 2024, "left": 2020, "right": 2021, "root": 2017},
	})

	for _, want := range []string{
		"digraph citations {",
		"rankdir=BT;",
		`label="` + DefaultTitle + `";`,
		`"root" [label="root\n2017"`,
		`{ rank=same; "review"; }`,
		`{ rank=same; "left"; "right"; }`,
		`{ rank=same; "root"; }`,
		`"review" -> "left";`,
		`"review" -> "right";`,
		`"left" -> "root";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q\n%s", want, dot)
		}
	}

	if dot != ToDOT(g, levels, Options{Years: map[string]int{"review": 2024, "left": 2020, "right": 2021, "root": 2017}}) {
		t.Error("ToDOT() should be deterministic")
	}
}

func TestToDOTColors(t *testing.T) {
	g, levels := diamond(t)
	dot := ToDOT(g, levels, Options{
		Title: "Custom",
		Years: map[string]int{"review": 2024, "root": 2017},
	})

	lines := strings.Split(dot, "\n")
	attrs := func(id string) string {
		for _, l := range lines {
			if strings.HasPrefix(strings.TrimSpace(l), `"`+id+`" [`) {
				return l
			}
		}
		t.Fatalf("no node line for %s", id)
		return ""
	}

	if !strings.Contains(dot, `label="Custom";`) {
		t.Error("custom title not used")
	}
	if root := attrs("root"); !strings.Contains(root, "fontcolor=white") {
		t.Errorf("oldest paper should be dark with white text: %s", root)
	}
	if review := attrs("review"); !strings.Contains(review, "fontcolor=black") {
		t.Errorf("newest paper should be light with black text: %s", review)
	}
	if left := attrs("left"); !strings.Contains(left, `fillcolor="#dddddd"`) || strings.Contains(left, `\n`) {
		t.Errorf("node without a year should be grey and unlabelled: %s", left)
	}
}

func TestYearPaletteSingleYear(t *testing.T) {
	p := newYearPalette(map[string]int{"a": 2020, "b": 2020})
	if got, want := p.color(2020).Hex(), p.color(1990).Hex(); got != want {
		t.Errorf("single-year palette should be constant, got %s and %s", got, want)
	}
}

func TestRender(t *testing.T) {
	g, levels := diamond(t)
	dot := ToDOT(g, levels, Options{})
	ctx := context.Background()

	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !bytes.Contains(svg, []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `)) {
		t.Errorf("RenderSVG() root not normalized: %.200s", svg)
	}

	png, err := RenderPNG(ctx, dot)
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("RenderPNG() is not a PNG: % x", png[:min(8, len(png))])
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); !bytes.Equal(got, plain) {
		t.Errorf("normalizeViewBox() without viewBox changed input: %s", got)
	}
}
