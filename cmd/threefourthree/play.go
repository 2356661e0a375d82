package main

import (
	"github.com/spf13/cobra"

	"github.com/blubits/threefourthree/internal/session"
)

func (a *app) newCmd() *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new game",
		Long: `Start a new game in the current slot, replacing any game saved there.

Examples:
  threefourthree new
  threefourthree new --variant grand --slot big`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if variant == "" {
				variant = a.cfg.DefaultVariant
			}
			return a.withSession(false, func(ctrl *session.Controller) error {
				if err := ctrl.Start(a.cfg.DefaultSlot, variant); err != nil {
					return err
				}
				a.printer(cmd.OutOrStdout()).Game(ctrl.Variant(), ctrl.Game())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "", "Variant to play (default from config)")
	return cmd
}

func (a *app) moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <direction>...",
		Short: "Slide the tiles",
		Long: `Slide every tile up, down, left or right. Several directions are applied
in order; the sequence stops when the game is won or lost. A lost game is
recorded in the high scores and its slot is cleared.

Examples:
  threefourthree move left
  threefourthree move up up right`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(true, func(ctrl *session.Controller) error {
				game := ctrl.Game()
				p := a.printer(cmd.OutOrStdout())

				var last session.Outcome
				for _, token := range args {
					out, err := ctrl.Move(token)
					if err != nil {
						return err
					}
					last = out
					if out.Event != session.EventNone {
						break
					}
				}

				p.Game(ctrl.Variant(), game)
				switch last.Event {
				case session.EventWon:
					p.Message("You reached %d! Run 'threefourthree continue' to keep playing or 'threefourthree end' to record your score.", game.WinTile())
				case session.EventLost:
					if _, err := ctrl.End(); err != nil {
						return err
					}
					p.Message("You lost :( Final score: %d", last.Score)
				default:
					if !last.Report.Changed() {
						p.Message("Nothing moved.")
					}
				}
				return nil
			})
		},
	}
}

func (a *app) continueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "continue",
		Short: "Keep playing after reaching the goal tile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withSession(true, func(ctrl *session.Controller) error {
				if err := ctrl.KeepPlaying(); err != nil {
					return err
				}
				a.printer(cmd.OutOrStdout()).Game(ctrl.Variant(), ctrl.Game())
				return nil
			})
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withSession(true, func(ctrl *session.Controller) error {
				a.printer(cmd.OutOrStdout()).Game(ctrl.Variant(), ctrl.Game())
				return nil
			})
		},
	}
}

func (a *app) endCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "Record the score and clear the slot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withSession(true, func(ctrl *session.Controller) error {
				game, variant := ctrl.Game(), ctrl.Variant()
				if _, err := ctrl.End(); err != nil {
					return err
				}
				a.printer(cmd.OutOrStdout()).Message("Recorded %d points (%s) for %s.", game.Score(), game.Status(), variant)
				return nil
			})
		},
	}
}
