package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// errNoResults is returned by stats when no results log is configured.
var errNoResults = errors.New("no results log: set DB_PATH or --db")

// statsOptions holds options for the stats command.
type statsOptions struct {
	dbPath     string
	limit      int
	jsonOutput bool
}

// newStatsCmd creates the stats command.
func (a *App) newStatsCmd() *cobra.Command {
	opts := &statsOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarise finished rounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStats(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.dbPath, "db", a.cfg.DBPath, "SQLite results log (default: DB_PATH)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", 10, "Recent rounds to list")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func (a *App) runStats(ctx context.Context, opts *statsOptions) error {
	res, err := openResults(opts.dbPath)
	if err != nil {
		return err
	}
	if res == nil {
		return errNoResults
	}
	defer res.Close()

	sum, err := res.Summary(ctx)
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	recent, err := res.Recent(ctx, opts.limit)
	if err != nil {
		return fmt.Errorf("recent: %w", err)
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"summary": sum, "recent": recent})
	}

	fmt.Fprintf(a.stdout, "Played:         %d\n", sum.Played)
	fmt.Fprintf(a.stdout, "Wins:           %d (%.0f%%)\n", sum.Wins, sum.WinRate*100)
	fmt.Fprintf(a.stdout, "Current streak: %d\n", sum.CurrentStreak)
	fmt.Fprintf(a.stdout, "Best streak:    %d\n", sum.BestStreak)

	if len(sum.Distribution) > 0 {
		fmt.Fprintln(a.stdout, "\nGuess distribution:")
		keys := make([]int, 0, len(sum.Distribution))
		for k := range sum.Distribution {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		for _, k := range keys {
			fmt.Fprintf(a.stdout, "  %d: %d\n", k, sum.Distribution[k])
		}
	}

	if len(recent) > 0 {
		fmt.Fprintln(a.stdout, "\nRecent:")
		for _, e := range recent {
			fmt.Fprintf(a.stdout, "  %s  %-6s %-4s %d/%d\n",
				e.FinishedAt.Format("2006-01-02 15:04"), e.Mode, e.Outcome, e.Attempts, e.MaxAttempts)
		}
	}
	return nil
}
