// Package t343 implements threefourthree, a sliding-tile puzzle where three
// equal tiles in a line merge into one tile of the next power.
package t343

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/blubits/threefourthree/internal/core"
)

// Settings configures a new game.
type Settings struct {
	Size         int // Board side length
	InitialValue int // Value of freshly inserted tiles and the merge multiplier
	InitialTiles int // Random tiles placed when the game starts
	WinCondition int // Exponent: the win tile is InitialValue^WinCondition
}

// Validate checks that the settings describe a playable board.
func (s Settings) Validate() error {
	switch {
	case s.Size < 1:
		return fmt.Errorf("%w: board size %d", ErrInvalidSettings, s.Size)
	case s.InitialValue < 2:
		return fmt.Errorf("%w: initial value %d", ErrInvalidSettings, s.InitialValue)
	case s.InitialTiles < 0:
		return fmt.Errorf("%w: initial tiles %d", ErrInvalidSettings, s.InitialTiles)
	case s.WinCondition < 1:
		return fmt.Errorf("%w: win condition %d", ErrInvalidSettings, s.WinCondition)
	case s.InitialTiles > s.Size*s.Size:
		return fmt.Errorf("%w: %d tiles on a %dx%d board", ErrTooManyInitialTiles, s.InitialTiles, s.Size, s.Size)
	}
	if _, ok := power(s.InitialValue, s.WinCondition); !ok {
		return fmt.Errorf("%w: win tile %d^%d overflows", ErrInvalidSettings, s.InitialValue, s.WinCondition)
	}
	return nil
}

// WinTile returns InitialValue^WinCondition.
func (s Settings) WinTile() int {
	v, _ := power(s.InitialValue, s.WinCondition)
	return v
}

// power returns base^exp and whether it fits in an int.
func power(base, exp int) (int, bool) {
	result := 1
	for range exp {
		if result > math.MaxInt/base {
			return 0, false
		}
		result *= base
	}
	return result, true
}

// Game is one play session on top of a Board.
type Game struct {
	rng      *rand.Rand
	board    *Board
	settings Settings
	winTile  int
	score    int
	status   Status
}

// New creates a game and seeds the board with the initial random tiles.
func New(settings Settings, cfg core.RuntimeConfig) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	board, err := NewBoard(settings.Size, settings.InitialValue)
	if err != nil {
		return nil, err
	}

	g := &Game{
		rng:      rand.New(rand.NewSource(cfg.ResolvedSeed())),
		board:    board,
		settings: settings,
		winTile:  settings.WinTile(),
		status:   StatusPlaying,
	}
	if err := g.board.InsertRandom(g.rng, settings.InitialTiles); err != nil {
		return nil, err
	}
	return g, nil
}

// FromSnapshot restores a game from a persisted snapshot. No tiles are
// added; the board is exactly the snapshot's.
func FromSnapshot(s Snapshot, cfg core.RuntimeConfig) (*Game, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	settings := Settings{
		Size:         s.Size,
		InitialValue: s.InitialValue,
		WinCondition: s.WinCondition,
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	board, err := NewBoard(s.Size, s.InitialValue)
	if err != nil {
		return nil, err
	}
	for row, values := range s.Board {
		for col, v := range values {
			if v == 0 {
				continue
			}
			if _, err := board.Place(v, row, col); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
			}
		}
	}

	return &Game{
		rng:      rand.New(rand.NewSource(cfg.ResolvedSeed())),
		board:    board,
		settings: settings,
		winTile:  settings.WinTile(),
		score:    s.Score,
		status:   s.Status,
	}, nil
}

// Board returns the game's board for read-only inspection.
func (g *Game) Board() *Board { return g.board }

// Settings returns the settings the game was created with.
func (g *Game) Settings() Settings { return g.settings }

// Score returns the accumulated score.
func (g *Game) Score() int { return g.score }

// Status returns the current lifecycle status.
func (g *Game) Status() Status { return g.status }

// WinTile returns the tile value that wins the game.
func (g *Game) WinTile() int { return g.winTile }

// IsOver reports whether the game refuses moves (won or lost).
func (g *Game) IsOver() bool {
	return g.status == StatusWon || g.status == StatusLost
}

// Move slides the board toward dir, updates score and status, and inserts
// one random tile if anything changed and the game is still running.
func (g *Game) Move(dir core.Direction) (MoveReport, error) {
	if g.IsOver() {
		return MoveReport{}, fmt.Errorf("%w: status %s", ErrGameAlreadyOver, g.status)
	}
	if !dir.Valid() {
		return MoveReport{}, fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}

	report := g.board.MoveAll(dir)
	g.score += report.ScoreDelta

	if g.board.NoMovesPossible() {
		g.status = StatusLost
	} else if g.status != StatusKeepPlaying && g.mergedWinTile(report) {
		g.status = StatusWon
	}

	if !g.IsOver() && report.Changed() {
		// A full board here is fine; the lose check runs on the next move.
		if err := g.board.InsertRandom(g.rng, 1); err != nil && !errors.Is(err, ErrInsufficientSpace) {
			return report, err
		}
	}
	return report, nil
}

// MoveToken parses a direction token such as "Left" and applies it.
func (g *Game) MoveToken(token string) (MoveReport, error) {
	if g.IsOver() {
		return MoveReport{}, fmt.Errorf("%w: status %s", ErrGameAlreadyOver, g.status)
	}
	dir, err := core.ParseDirection(token)
	if err != nil {
		return MoveReport{}, fmt.Errorf("%w: %v", ErrInvalidDirection, err)
	}
	return g.Move(dir)
}

// mergedWinTile reports whether this move's merges produced the win tile.
// Win tiles already on the board from earlier moves do not count.
func (g *Game) mergedWinTile(report MoveReport) bool {
	for _, t := range report.Merged {
		if t.Value == g.winTile {
			return true
		}
	}
	return false
}

// KeepPlaying resumes a won game.
func (g *Game) KeepPlaying() error {
	if g.status != StatusWon {
		return fmt.Errorf("%w: status %s", ErrNotInWonState, g.status)
	}
	g.status = StatusKeepPlaying
	return nil
}

// Peek returns the board values without tile identity.
func (g *Game) Peek() Grid {
	return g.board.Values()
}
