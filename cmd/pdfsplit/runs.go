package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfsplit/internal/runlog"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded split runs",
	Long: `Runs lists past split runs from the SQLite run log, newest first.
Pass --units with a run ID to see that run's output files.`,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().String("run-log", "", "directory holding the SQLite run log")
	runsCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	runsCmd.Flags().Int64("units", 0, "show the units of the run with this ID")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	dir := stringSetting(cmd, "run-log", "run_log_dir")
	if dir == "" {
		return fmt.Errorf("no run log configured; pass --run-log or set run_log_dir")
	}

	store, err := runlog.Open(dir)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if runID, _ := cmd.Flags().GetInt64("units"); runID != 0 {
		units, err := store.Units(cmd.Context(), runID)
		if err != nil {
			return err
		}
		if len(units) == 0 {
			fmt.Fprintf(out, "no units recorded for run %d\n", runID)
			return nil
		}
		for _, u := range units {
			fmt.Fprintf(out, "%-8s %s (pages %d-%d)\n", u.Status, u.Path, u.StartPage, u.EndPage)
			if u.Error != "" {
				fmt.Fprintf(out, "         %s\n", u.Error)
			}
		}
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs recorded")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(out, "#%d  %s  %s -> %s  levels %d-%d  %d written, %d failed\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04"), r.Input, r.OutputDir,
			r.MinLevel, r.MaxLevel, r.Written, r.Failed)
	}
	return nil
}
