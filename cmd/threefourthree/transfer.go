package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/blubits/threefourthree/internal/session"
)

func (a *app) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the current game as JSON",
		Long: `Write the game in the current slot as a JSON snapshot. Use "-" for stdout.

Examples:
  threefourthree export game.json
  threefourthree export - --slot quick`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(true, func(ctrl *session.Controller) error {
				data, err := ctrl.Export()
				if err != nil {
					return err
				}
				data = append(data, '\n')

				if args[0] == "-" {
					_, err = cmd.OutOrStdout().Write(data)
					return err
				}
				if err := os.WriteFile(args[0], data, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", args[0], err)
				}
				a.logger.Info("exported game", "slot", ctrl.Slot(), "file", args[0])
				return nil
			})
		},
	}
}

func (a *app) importCmd() *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Load a game from JSON",
		Long: `Load a JSON snapshot into the current slot. Use "-" for stdin. Without
--variant the game is matched to a variant by its settings.

Examples:
  threefourthree import game.json
  cat game.json | threefourthree import - --slot other`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			if variant != "" && !a.variants.Exists(variant) {
				return fmt.Errorf("unknown variant %q", variant)
			}

			return a.withSession(false, func(ctrl *session.Controller) error {
				if err := ctrl.Import(a.cfg.DefaultSlot, variant, data); err != nil {
					return err
				}
				a.printer(cmd.OutOrStdout()).Game(ctrl.Variant(), ctrl.Game())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "", "Variant to file the game under")
	return cmd
}
