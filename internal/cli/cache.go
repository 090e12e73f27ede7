package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/matzehuels/citeorder/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached graph and chart renders",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			return clearCache(cmd.Context(), cmd.OutOrStdout(), dir)
		},
	}
}

// clearCache empties both backends under dir. A backend whose files do not
// exist is skipped; failures of one backend do not stop the other.
func clearCache(ctx context.Context, out io.Writer, dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		printInfo(out, "Cache is empty")
		return nil
	}

	var result *multierror.Error
	cleared := 0

	if files := filepath.Join(dir, filesDir); exists(files) {
		fc, err := cache.NewFileCache(files)
		if err == nil {
			err = clearBackend(ctx, fc)
		}
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s backend: %w", backendFile, err))
		} else {
			cleared++
		}
	}

	if db := filepath.Join(dir, boltFile); exists(db) {
		bc, err := cache.OpenBoltCache(ctx, db, cache.BoltOptions{})
		if err == nil {
			err = clearBackend(ctx, bc)
		}
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s backend: %w", backendBolt, err))
		} else {
			cleared++
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return err
	}
	if cleared == 0 {
		printInfo(out, "Cache is empty")
		return nil
	}
	printSuccess(out, "Cleared %d cache %s", cleared, plural(cleared, "backend", "backends"))
	printDetail(out, "Directory: %s", dir)
	return nil
}

func clearBackend(ctx context.Context, c interface {
	cache.Cache
	cache.Clearer
}) error {
	defer c.Close()
	return c.Clear(ctx)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
