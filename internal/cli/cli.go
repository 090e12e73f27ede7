package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/citeorder/pkg/buildinfo"
	"github.com/matzehuels/citeorder/pkg/cache"
	"github.com/matzehuels/citeorder/pkg/errors"
	"github.com/matzehuels/citeorder/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "citeorder"

	// defaultOutputDir is where analyze writes its artifacts.
	defaultOutputDir = "results"

	// boltFile is the database file of the bolt cache backend.
	boltFile = "cache.db"

	// filesDir is the subdirectory of the file cache backend.
	filesDir = "files"
)

// Cache backends.
const (
	backendFile = "file"
	backendBolt = "bolt"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Citeorder finds reading orders for citation graphs",
		Long: `Citeorder computes topological orders of a citation graph with Kahn's
algorithm, depth-first search and breadth-first level batches, validates them,
and reports a reading schedule, dependency levels and performance metrics.

Without --graph, commands work on the built-in dataset of ten papers on
nanotechnology in sustainable agriculture.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			hooks := newLogHooks(c.Logger)
			observability.SetAnalysisHooks(hooks)
			observability.SetCacheHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.sortCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.levelsCommand())
	root.AddCommand(c.datasetCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache opens the artifact cache for backend. Caching is best effort: a
// missing home directory or a locked bolt file falls back to no cache with
// a warning.
func newCache(ctx context.Context, backend string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if err := errors.ValidateChoice(errors.ErrCodeInvalidInput, "cache backend", backend, backendFile, backendBolt); err != nil {
		return nil, err
	}
	logger := loggerFromContext(ctx)

	dir, err := cacheDir()
	if err != nil {
		logger.Warn("cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}

	if strings.EqualFold(backend, backendBolt) {
		bc, err := cache.OpenBoltCache(ctx, filepath.Join(dir, boltFile), cache.BoltOptions{})
		if err != nil {
			logger.Warn("cache disabled", "backend", backend, "error", err)
			return cache.NewNullCache(), nil
		}
		return bc, nil
	}
	return cache.NewFileCache(filepath.Join(dir, filesDir))
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/citeorder/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
