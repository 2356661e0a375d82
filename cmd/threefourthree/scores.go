package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/blubits/threefourthree/internal/storage"
)

func (a *app) scoresCmd() *cobra.Command {
	var clearScores bool

	cmd := &cobra.Command{
		Use:   "scores [variant]",
		Short: "Show high scores",
		Long: `Display the top 10 scores for a variant, or a summary of every variant
played when none is given. With --clear, delete the variant's scores instead.

Examples:
  threefourthree scores
  threefourthree scores classic
  threefourthree scores --clear classic`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if clearScores && len(args) == 0 {
				return fmt.Errorf("--clear needs a variant")
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			switch {
			case clearScores:
				if err := store.ClearScores(args[0]); err != nil {
					return err
				}
				a.logger.Info("cleared scores", "variant", args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared scores for %s.\n", args[0])
				return nil
			case len(args) == 0:
				return printStats(cmd.OutOrStdout(), store)
			default:
				return a.printTopScores(cmd.OutOrStdout(), store, args[0])
			}
		},
	}
	cmd.Flags().BoolVar(&clearScores, "clear", false, "Delete all scores for the variant")
	return cmd
}

func (a *app) printTopScores(out io.Writer, store *storage.Store, variantID string) error {
	title := variantID
	if v, err := a.variants.Lookup(variantID); err == nil {
		title = v.Title
	}

	scores, err := store.TopScores(variantID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %-12s  %s\n", "Rank", "Score", "Tile", "Status", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %-12s  %s\n", "----", "-----", "----", "------", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %-8d  %-12s  %s\n",
			i+1, e.Score, e.MaxTile, e.Status, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	high, err := store.HighScore(variantID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", high)
	return nil
}

func printStats(out io.Writer, store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(out, "  %-10s  %-6s  %-5s  %-8s  %-8s  %s\n", "Variant", "Games", "Wins", "Best", "Average", "Top tile")
	fmt.Fprintf(out, "  %-10s  %-6s  %-5s  %-8s  %-8s  %s\n", "-------", "-----", "----", "----", "-------", "--------")
	for _, id := range ids {
		s := stats[id]
		fmt.Fprintf(out, "  %-10s  %-6d  %-5d  %-8d  %-8.1f  %d\n",
			id, s.GamesCount, s.Wins, s.HighScore, s.AvgScore, s.BestTile)
	}
	return nil
}
