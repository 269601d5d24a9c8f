// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfsplit/internal/fetch"
	"github.com/pdiddy/pdfsplit/internal/outline"
	"github.com/pdiddy/pdfsplit/internal/runlog"
	"github.com/pdiddy/pdfsplit/internal/splitter"
	"github.com/pdiddy/pdfsplit/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "pdfsplit/0.1"
)

func init() {
	f := rootCmd.Flags()
	f.StringP("output-dir", "o", "", "destination root (default: the input's directory)")
	f.Int("min-level", 1, "minimum outline level to extract (0 = top-level chapters)")
	f.Int("max-level", 1, "maximum outline level to extract")
	f.Int("min-pages", 1, "minimum pages per output file")
	f.BoolP("quiet", "q", false, "suppress per-unit status lines")
	f.String("run-log", "", "directory for the SQLite run log (empty: disabled)")
	f.Duration("timeout", defaultTimeout, "HTTP timeout for URL inputs")
}

func splitConfig(cmd *cobra.Command) types.SplitConfig {
	return types.SplitConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   durationSetting(cmd, "timeout", "timeout"),
			UserAgent: defaultUserAgent,
		},
		OutputDir: stringSetting(cmd, "output-dir", "output_dir"),
		MinLevel:  intSetting(cmd, "min-level", "min_level"),
		MaxLevel:  intSetting(cmd, "max-level", "max_level"),
		MinPages:  intSetting(cmd, "min-pages", "min_pages"),
		Quiet:     boolSetting(cmd, "quiet", "quiet"),
		RunLogDir: stringSetting(cmd, "run-log", "run_log_dir"),
	}
}

func runSplit(cmd *cobra.Command, args []string) error {
	input := args[0]
	cfg := splitConfig(cmd)
	if cfg.MinLevel > cfg.MaxLevel {
		return fmt.Errorf("--min-level %d exceeds --max-level %d", cfg.MinLevel, cfg.MaxLevel)
	}
	started := time.Now().UTC()

	localPath := input
	if fetch.IsURL(input) {
		tmpDir, err := os.MkdirTemp("", "pdfsplit-*")
		if err != nil {
			return fmt.Errorf("creating temp directory: %w", err)
		}
		defer os.RemoveAll(tmpDir)

		client := &http.Client{Timeout: cfg.Timeout}
		localPath, err = fetch.Fetch(cmd.Context(), client, input, tmpDir, cfg.HTTPConfig)
		if err != nil {
			return fmt.Errorf("fetching %s: %w", input, err)
		}
		// The temp download dir vanishes after the run; URL inputs default
		// their output root to the working directory instead.
		if cfg.OutputDir == "" {
			cfg.OutputDir = "."
		}
	}

	doc, err := outline.Open(localPath, cfg.MinPages)
	fallback := false
	switch {
	case errors.Is(err, outline.ErrNoOutline):
		fallback = true
	case err != nil:
		return fmt.Errorf("%w (check that the file is a valid PDF and carries a bookmark structure)", err)
	}
	defer doc.Close()

	var plan *splitter.Plan
	if fallback {
		fmt.Fprintln(os.Stderr, "no bookmarks found; writing the whole document as one file")
		plan = splitter.WholeDocument(doc, cfg)
	} else {
		plan, err = splitter.Build(doc, cfg)
		if err != nil {
			return err
		}
	}

	result := splitter.Write(doc, plan, cmd.OutOrStdout(), cfg.Quiet)

	run := types.RunRecord{
		Input:     input,
		OutputDir: plan.RootDir,
		StartedAt: started,
		MinLevel:  cfg.MinLevel,
		MaxLevel:  cfg.MaxLevel,
		Written:   result.Written,
		Failed:    result.Failed,
		Units:     result.Units,
	}
	if err := splitter.WriteManifest(run, plan.RootDir); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if cfg.RunLogDir != "" {
		if err := recordRun(cmd.Context(), cfg.RunLogDir, run); err != nil {
			fmt.Fprintf(os.Stderr, "warning: recording run: %v\n", err)
		}
	}

	if result.HasFailures() {
		return fmt.Errorf("%d unit(s) failed to write", result.Failed)
	}
	return nil
}

func recordRun(ctx context.Context, dir string, run types.RunRecord) error {
	store, err := runlog.Open(dir)
	if err != nil {
		return err
	}
	defer store.Close()
	_, err = store.Record(ctx, run)
	return err
}
