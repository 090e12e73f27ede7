package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/citeorder/pkg/observability"
)

var (
	_ observability.AnalysisHooks = (*logHooks)(nil)
	_ observability.CacheHooks    = (*logHooks)(nil)
)

func TestLogHooksLevels(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		fire    func(h *logHooks)
		wantLog string // empty means nothing at info level
	}{
		{
			name: "sort start is debug",
			fire: func(h *logHooks) { h.OnSortStart(ctx, "Kahn", 10) },
		},
		{
			name: "valid order is debug",
			fire: func(h *logHooks) { h.OnValidate(ctx, "Kahn", true, "Valid topological order") },
		},
		{
			name:    "invalid order warns",
			fire:    func(h *logHooks) { h.OnValidate(ctx, "DFS", false, "Invalid order: a must come before b") },
			wantLog: "invalid order",
		},
		{
			name:    "render failure errors",
			fire:    func(h *logHooks) { h.OnRenderComplete(ctx, "citation_graph", "png", time.Millisecond, errors.New("no dot")) },
			wantLog: "render failed",
		},
		{
			name: "cache hit is debug",
			fire: func(h *logHooks) { h.OnCacheHit(ctx, "render") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.fire(newLogHooks(newLogger(&buf, log.InfoLevel)))

			got := buf.String()
			if tt.wantLog == "" {
				if got != "" {
					t.Errorf("unexpected output at info level: %q", got)
				}
				return
			}
			if !strings.Contains(got, tt.wantLog) {
				t.Errorf("output %q should contain %q", got, tt.wantLog)
			}
		})
	}
}

func TestLogHooksDebug(t *testing.T) {
	var buf bytes.Buffer
	h := newLogHooks(newLogger(&buf, log.DebugLevel))
	h.OnSortComplete(context.Background(), "BFS", 2*time.Millisecond, nil)

	if !strings.Contains(buf.String(), "sort finished") {
		t.Errorf("output %q should contain %q", buf.String(), "sort finished")
	}
}
