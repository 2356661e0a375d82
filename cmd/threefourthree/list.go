package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blubits/threefourthree/internal/games/t343"
)

func (a *app) variantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List playable variants",
		Long:  `Shows the built-in presets and any variants defined in the config file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			variants := a.variants.List()

			// Calculate column widths
			maxIDLen := 2 // "ID" header
			for _, v := range variants {
				if len(v.ID) > maxIDLen {
					maxIDLen = len(v.ID)
				}
			}

			fmt.Fprintln(out, "Available variants:")
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  %-*s  %-5s  %-4s  %-8s  %s\n", maxIDLen, "ID", "Board", "Base", "Goal", "Title")
			fmt.Fprintf(out, "  %-*s  %-5s  %-4s  %-8s  %s\n", maxIDLen, "--", "-----", "----", "----", "-----")
			for _, v := range variants {
				s := v.Settings
				board := fmt.Sprintf("%dx%d", s.Size, s.Size)
				fmt.Fprintf(out, "  %-*s  %-5s  %-4d  %-8d  %s\n", maxIDLen, v.ID, board, s.InitialValue, s.WinTile(), v.Title)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Run 'threefourthree new --variant <id>' to start a game.")
			return nil
		},
	}
}

func (a *app) savesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "saves",
		Short: "List saved games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			saves, err := store.ListGames()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(saves) == 0 {
				fmt.Fprintln(out, "No saved games.")
				return nil
			}

			fmt.Fprintf(out, "  %-12s  %-10s  %-8s  %-12s  %s\n", "Slot", "Variant", "Score", "Status", "Updated")
			fmt.Fprintf(out, "  %-12s  %-10s  %-8s  %-12s  %s\n", "----", "-------", "-----", "------", "-------")
			for _, s := range saves {
				snap, err := t343.DecodeSnapshot(s.Snapshot)
				if err != nil {
					a.logger.Warn("unreadable save", "slot", s.Slot, "err", err)
					continue
				}
				fmt.Fprintf(out, "  %-12s  %-10s  %-8d  %-12s  %s\n",
					s.Slot, s.Variant, snap.Score, snap.Status, s.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
