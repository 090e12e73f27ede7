package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks forwards analysis and cache events to the CLI logger. Everything
// is logged at debug level except failures.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnSortStart(_ context.Context, algorithm string, vertices int) {
	h.logger.Debug("sort started", "algorithm", algorithm, "vertices", vertices)
}

func (h *logHooks) OnSortComplete(_ context.Context, algorithm string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("sort failed", "algorithm", algorithm, "duration", d, "error", err)
		return
	}
	h.logger.Debug("sort finished", "algorithm", algorithm, "duration", d)
}

func (h *logHooks) OnValidate(_ context.Context, algorithm string, valid bool, message string) {
	if !valid {
		h.logger.Warn("invalid order", "algorithm", algorithm, "reason", message)
		return
	}
	h.logger.Debug("order validated", "algorithm", algorithm)
}

func (h *logHooks) OnRenderStart(_ context.Context, artifact, format string) {
	h.logger.Debug("rendering", "artifact", artifact, "format", format)
}

func (h *logHooks) OnRenderComplete(_ context.Context, artifact, format string, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("render failed", "artifact", artifact, "format", format, "error", err)
		return
	}
	h.logger.Debug("rendered", "artifact", artifact, "format", format, "duration", d)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
