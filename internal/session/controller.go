// Package session drives one saved game on behalf of a front end: it
// creates or resumes the game, applies moves, persists every change and
// reports status transitions as return values.
package session

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/blubits/threefourthree/internal/core"
	"github.com/blubits/threefourthree/internal/games/t343"
	"github.com/blubits/threefourthree/internal/registry"
	"github.com/blubits/threefourthree/internal/storage"
)

// CustomVariant labels imported games whose settings match no registered variant.
const CustomVariant = "custom"

// ErrNoActiveGame is returned when an operation needs a game and none is loaded.
var ErrNoActiveGame = errors.New("session: no active game")

// Store is the persistence the controller needs.
type Store interface {
	SaveGame(slot, variant string, snapshot []byte) error
	LoadGame(slot string) (*storage.SavedGame, error)
	DeleteGame(slot string) error
	SaveScore(gameID string, score int, status string, maxTile int) (int64, error)
}

var _ Store = (*storage.Store)(nil)

// Event is a status transition caused by a move.
type Event string

const (
	EventNone Event = ""
	EventWon  Event = "won"
	EventLost Event = "lost"
)

// Outcome is the result of one move.
type Outcome struct {
	Report t343.MoveReport
	Score  int
	Status t343.Status
	Event  Event
}

// Controller owns at most one game at a time.
type Controller struct {
	store    Store
	variants *registry.Registry
	logger   *log.Logger
	cfg      core.RuntimeConfig

	slot    string
	variant string
	game    *t343.Game
}

// New creates a controller with no active game.
func New(store Store, variants *registry.Registry, logger *log.Logger, cfg core.RuntimeConfig) *Controller {
	return &Controller{
		store:    store,
		variants: variants,
		logger:   logger,
		cfg:      cfg,
	}
}

// Game returns the active game, or nil.
func (c *Controller) Game() *t343.Game { return c.game }

// Slot returns the save slot of the active game.
func (c *Controller) Slot() string { return c.slot }

// Variant returns the variant ID of the active game.
func (c *Controller) Variant() string { return c.variant }

// Start creates a new game of variantID in slot, replacing whatever was saved there.
func (c *Controller) Start(slot, variantID string) error {
	game, err := c.variants.Create(variantID, c.cfg)
	if err != nil {
		return err
	}
	c.slot, c.variant, c.game = slot, variantID, game

	c.logger.Info("new game", "slot", slot, "variant", variantID, "win_tile", game.WinTile())
	return c.save()
}

// Resume loads the game saved in slot.
func (c *Controller) Resume(slot string) error {
	saved, err := c.store.LoadGame(slot)
	if err != nil {
		return err
	}
	snapshot, err := t343.DecodeSnapshot(saved.Snapshot)
	if err != nil {
		return fmt.Errorf("session: slot %q: %w", slot, err)
	}
	game, err := t343.FromSnapshot(snapshot, c.cfg)
	if err != nil {
		return fmt.Errorf("session: slot %q: %w", slot, err)
	}
	c.slot, c.variant, c.game = slot, saved.Variant, game

	c.logger.Debug("resumed game", "slot", slot, "variant", saved.Variant, "status", game.Status())
	return nil
}

// Import restores a game from snapshot JSON into slot. An empty variantID
// picks the registered variant with matching settings, or CustomVariant.
func (c *Controller) Import(slot, variantID string, data []byte) error {
	snapshot, err := t343.DecodeSnapshot(data)
	if err != nil {
		return err
	}
	game, err := t343.FromSnapshot(snapshot, c.cfg)
	if err != nil {
		return err
	}
	if variantID == "" {
		variantID = c.matchVariant(snapshot)
	}
	c.slot, c.variant, c.game = slot, variantID, game

	c.logger.Info("imported game", "slot", slot, "variant", variantID, "score", game.Score())
	return c.save()
}

func (c *Controller) matchVariant(s t343.Snapshot) string {
	for _, v := range c.variants.List() {
		if v.Settings.Size == s.Size &&
			v.Settings.InitialValue == s.InitialValue &&
			v.Settings.WinCondition == s.WinCondition {
			return v.ID
		}
	}
	return CustomVariant
}

// Export returns the active game's snapshot as JSON.
func (c *Controller) Export() ([]byte, error) {
	if c.game == nil {
		return nil, ErrNoActiveGame
	}
	return t343.EncodeSnapshot(c.game.Snapshot())
}

// Move applies a direction token and saves the result.
func (c *Controller) Move(token string) (Outcome, error) {
	if c.game == nil {
		return Outcome{}, ErrNoActiveGame
	}

	before := c.game.Status()
	report, err := c.game.MoveToken(token)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{
		Report: report,
		Score:  c.game.Score(),
		Status: c.game.Status(),
	}
	if out.Status != before {
		switch out.Status {
		case t343.StatusWon:
			out.Event = EventWon
			c.logger.Info("game won", "slot", c.slot, "score", out.Score, "win_tile", c.game.WinTile())
		case t343.StatusLost:
			out.Event = EventLost
			c.logger.Info("game lost", "slot", c.slot, "score", out.Score)
		}
	}

	c.logger.Debug("move",
		"slot", c.slot,
		"direction", token,
		"moved", report.Moved,
		"merges", len(report.Merged),
		"delta", report.ScoreDelta,
		"score", out.Score,
	)

	if err := c.save(); err != nil {
		return out, err
	}
	return out, nil
}

// KeepPlaying continues a won game and saves it.
func (c *Controller) KeepPlaying() error {
	if c.game == nil {
		return ErrNoActiveGame
	}
	if err := c.game.KeepPlaying(); err != nil {
		return err
	}
	c.logger.Info("keep playing", "slot", c.slot, "score", c.game.Score())
	return c.save()
}

// End records the final score, removes the save and drops the game.
// It returns the ID of the recorded score.
func (c *Controller) End() (int64, error) {
	if c.game == nil {
		return 0, ErrNoActiveGame
	}

	// A score is written only once its slot is gone.
	if err := c.store.DeleteGame(c.slot); err != nil {
		return 0, err
	}
	id, err := c.store.SaveScore(c.variant, c.game.Score(), string(c.game.Status()), c.game.Board().MaxValue())
	if err != nil {
		return 0, err
	}

	c.logger.Info("game ended", "slot", c.slot, "variant", c.variant, "score", c.game.Score(), "status", c.game.Status())
	c.slot, c.variant, c.game = "", "", nil
	return id, nil
}

func (c *Controller) save() error {
	data, err := t343.EncodeSnapshot(c.game.Snapshot())
	if err != nil {
		return fmt.Errorf("session: encode snapshot: %w", err)
	}
	return c.store.SaveGame(c.slot, c.variant, data)
}
