package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/citeorder/pkg/cache"
	"github.com/matzehuels/citeorder/pkg/observability"
)

// kahnOrder is the order Kahn's algorithm finds on the built-in dataset.
var kahnOrder = []string{
	"climate_review_2024",
	"microbe_interactions_2024",
	"bionano_fertilizers_2024",
	"innovations_review_2023",
	"precision_ag_2023",
	"carrot_experiment_2021",
	"nanofertilizers_2022",
	"sustainable_ag_2020",
	"crop_protection_2019",
	"microbiome_study_2017",
}

// execute runs the root command with args and returns what it printed to
// stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(observability.Reset)

	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&logs)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeGraph(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAnalyzeWritesArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")

	out, err := execute(t, "analyze", "--no-images", "-o", dir)
	if err != nil {
		t.Fatalf("analyze error = %v\n%s", err, out)
	}

	for _, name := range []string{
		fileComplexity, fileSchedule, fileDependency, fileVisualization,
		fileComparison, filePerformance, "summary.json",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, fileCitationGraph)); !os.IsNotExist(err) {
		t.Errorf("--no-images should not write %s", fileCitationGraph)
	}

	for _, want := range []string{"Kahn: SUCCESS", "DFS: SUCCESS", "BFS: SUCCESS", "Analysis complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q\n%s", want, out)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "summary.json"))
	if err != nil {
		t.Fatal(err)
	}
	var summary struct {
		Vertices   int `json:"vertices"`
		Edges      int `json:"edges"`
		Algorithms []struct {
			Name  string `json:"name"`
			Valid bool   `json:"valid"`
		} `json:"algorithms"`
	}
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("summary.json: %v", err)
	}
	if summary.Vertices != 10 || summary.Edges != 13 || len(summary.Algorithms) != 3 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestAnalyzeYAMLSummary(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "analyze", "--no-images", "--summary-format", "yaml", "-o", dir); err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "summary.yaml")); err != nil {
		t.Errorf("summary.yaml: %v", err)
	}
}

func TestAnalyzeRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "summary format", args: []string{"--summary-format", "xml"}},
		{name: "cache backend", args: []string{"--cache-backend", "redis"}},
		{name: "negative bench", args: []string{"--bench", "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"analyze", "--no-images", "-o", t.TempDir()}, tt.args...)
			if _, err := execute(t, args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestAnalyzeCyclicGraphWritesThenFails(t *testing.T) {
	dir := t.TempDir()
	graph := writeGraph(t, `{"nodes": [{"id": "a", "cites": ["b"]}, {"id": "b", "cites": ["a"]}]}`)

	out, err := execute(t, "analyze", "--no-images", "-g", graph, "-o", dir)
	if err == nil {
		t.Fatal("analyze on a cyclic graph should fail")
	}
	if !strings.Contains(out, "Kahn: ERROR") {
		t.Errorf("output should report the Kahn failure\n%s", out)
	}
	for _, name := range []string{fileComplexity, fileComparison, "summary.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, fileSchedule)); !os.IsNotExist(err) {
		t.Errorf("no reading schedule should be written without a Kahn order")
	}
}

func TestSortJSON(t *testing.T) {
	out, err := execute(t, "sort", "kahn", "--json")
	if err != nil {
		t.Fatalf("sort error = %v", err)
	}
	var res sortResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if res.Algorithm != "Kahn" || !res.Valid {
		t.Errorf("result = %+v", res)
	}
	if strings.Join(res.Order, ",") != strings.Join(kahnOrder, ",") {
		t.Errorf("Order = %v, want %v", res.Order, kahnOrder)
	}
}

func TestSortBFSText(t *testing.T) {
	out, err := execute(t, "sort", "BFS")
	if err != nil {
		t.Fatalf("sort error = %v", err)
	}
	if !strings.Contains(out, " 1. climate_review_2024") {
		t.Errorf("output should start with the climate review\n%s", out)
	}
	if !strings.Contains(out, "[level 6]") {
		t.Errorf("output should show BFS levels\n%s", out)
	}
}

func TestSortUnknownAlgorithm(t *testing.T) {
	if _, err := execute(t, "sort", "quick"); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

func TestValidate(t *testing.T) {
	out, err := execute(t, append([]string{"validate"}, kahnOrder...)...)
	if err != nil {
		t.Fatalf("validate error = %v", err)
	}
	if !strings.Contains(out, "Valid topological order") {
		t.Errorf("output = %q", out)
	}

	reversed := make([]string, len(kahnOrder))
	for i, id := range kahnOrder {
		reversed[len(kahnOrder)-1-i] = id
	}
	out, err = execute(t, append([]string{"validate"}, reversed...)...)
	if err == nil {
		t.Error("reversed order should be invalid")
	}
	if !strings.Contains(out, "Invalid order") {
		t.Errorf("output = %q", out)
	}
}

func TestLevels(t *testing.T) {
	out, err := execute(t, "levels", "--flow")
	if err != nil {
		t.Fatalf("levels error = %v", err)
	}
	for _, want := range []string{"RESEARCH DEPENDENCY LEVEL ANALYSIS", "LEVEL 0", "LEVEL 6", "FOUNDATIONAL"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q", want)
		}
	}
}

func TestDataset(t *testing.T) {
	out, err := execute(t, "dataset", "--papers")
	if err != nil {
		t.Fatalf("dataset error = %v", err)
	}
	if !strings.Contains(out, "MOST CITED PAPERS") || !strings.Contains(out, "carrot_experiment_2021") {
		t.Errorf("output = %s", out)
	}

	out, err = execute(t, "dataset", "--paper", "crop_protection_2019")
	if err != nil {
		t.Fatalf("dataset --paper error = %v", err)
	}
	if !strings.Contains(out, "Nature Nanotechnology") {
		t.Errorf("output = %s", out)
	}

	if _, err := execute(t, "dataset", "--paper", "unknown_2000"); err == nil {
		t.Error("expected error for unknown paper")
	}
}

func TestBench(t *testing.T) {
	out, err := execute(t, "bench", "-n", "3", "--warmup", "1", "-a", "kahn", "-a", "bfs")
	if err != nil {
		t.Fatalf("bench error = %v", err)
	}
	if !strings.Contains(out, "Kahn") || !strings.Contains(out, "BFS") || strings.Contains(out, "DFS ") {
		t.Errorf("output = %s", out)
	}

	if _, err := execute(t, "bench", "-n", "0"); err == nil {
		t.Error("expected error for zero iterations")
	}
}

func TestExport(t *testing.T) {
	out, err := execute(t, "export")
	if err != nil {
		t.Fatalf("export error = %v", err)
	}
	if !strings.Contains(out, `"climate_review_2024"`) {
		t.Errorf("output = %s", out)
	}

	path := filepath.Join(t.TempDir(), "graph.json")
	if _, err := execute(t, "export", "-o", path); err != nil {
		t.Fatalf("export -o error = %v", err)
	}
	// The exported file must be readable as --graph input.
	out, err = execute(t, "sort", "dfs", "-g", path)
	if err != nil {
		t.Fatalf("sort on exported graph error = %v", err)
	}
	if !strings.Contains(out, "DFS: Valid topological order") {
		t.Errorf("output = %s", out)
	}
}

func TestExportClose(t *testing.T) {
	graph := writeGraph(t, `{"nodes": [{"id": "review", "cites": ["outside_2001"]}]}`)

	out, err := execute(t, "export", "-g", graph)
	if err != nil {
		t.Fatalf("export error = %v", err)
	}
	if strings.Contains(out, `"id": "outside_2001"`) {
		t.Errorf("dangling citation should stay a citation without --close\n%s", out)
	}

	out, err = execute(t, "export", "-g", graph, "--close")
	if err != nil {
		t.Fatalf("export --close error = %v", err)
	}
	if !strings.Contains(out, `"id": "outside_2001"`) {
		t.Errorf("--close should write the dangling citation as a node\n%s", out)
	}
}

func TestCacheClear(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	out, err := execute(t, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear error = %v", err)
	}
	if !strings.Contains(out, "Cache is empty") {
		t.Errorf("output = %q", out)
	}

	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	fc, err := cache.NewFileCache(filepath.Join(dir, filesDir))
	if err != nil {
		t.Fatal(err)
	}
	if err := fc.Set(context.Background(), "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}

	out, err = execute(t, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear error = %v", err)
	}
	if !strings.Contains(out, "Cleared 1 cache backend") {
		t.Errorf("output = %q", out)
	}
	if _, ok, _ := fc.Get(context.Background(), "k"); ok {
		t.Error("entry should be gone after clear")
	}

	out, err = execute(t, "cache", "path")
	if err != nil || strings.TrimSpace(out) != dir {
		t.Errorf("cache path = %q, %v; want %q", out, err, dir)
	}
}

func TestCompletion(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error = %v", err)
	}
	if !strings.Contains(out, "citeorder") {
		t.Error("bash completion should mention the program name")
	}
	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("expected error for unsupported shell")
	}
}
