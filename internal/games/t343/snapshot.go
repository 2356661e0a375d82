package t343

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status is the coarse lifecycle state of a game.
type Status string

const (
	StatusPlaying     Status = "PLAYING"
	StatusLost        Status = "LOST"
	StatusWon         Status = "WON"
	StatusKeepPlaying Status = "KEEP_PLAYING"
)

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPlaying, StatusLost, StatusWon, StatusKeepPlaying:
		return true
	}
	return false
}

// ParseStatus converts a status string, case-insensitively, into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return status, nil
}

// Grid is a value-only view of the board. Empty cells are 0 in memory and
// null once encoded.
type Grid [][]int

// MarshalJSON encodes empty cells as null.
func (g Grid) MarshalJSON() ([]byte, error) {
	rows := make([][]*int, len(g))
	for r, row := range g {
		rows[r] = make([]*int, len(row))
		for c, v := range row {
			if v != 0 {
				v := v
				rows[r][c] = &v
			}
		}
	}
	return json.Marshal(rows)
}

// UnmarshalJSON decodes null cells as 0.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows [][]*int
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	grid := make(Grid, len(rows))
	for r, row := range rows {
		grid[r] = make([]int, len(row))
		for c, v := range row {
			if v != nil {
				grid[r][c] = *v
			}
		}
	}
	*g = grid
	return nil
}

// Snapshot is the persisted representation of a game.
type Snapshot struct {
	Board        Grid   `json:"board"`
	Score        int    `json:"score"`
	Status       Status `json:"status"`
	Size         int    `json:"size"`
	InitialValue int    `json:"initial_value"`
	WinCondition int    `json:"win_condition"`
}

// Snapshot returns the full persisted representation of the game.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:        g.Peek(),
		Score:        g.score,
		Status:       g.status,
		Size:         g.board.Size(),
		InitialValue: g.board.InitialValue(),
		WinCondition: g.settings.WinCondition,
	}
}

// Validate checks the snapshot's shape and values.
func (s Snapshot) Validate() error {
	if !s.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidSnapshot, s.Status)
	}
	if s.Score < 0 {
		return fmt.Errorf("%w: negative score %d", ErrInvalidSnapshot, s.Score)
	}
	if s.Size < 1 {
		return fmt.Errorf("%w: size %d", ErrInvalidSnapshot, s.Size)
	}
	if s.InitialValue < 2 {
		return fmt.Errorf("%w: initial value %d", ErrInvalidSnapshot, s.InitialValue)
	}
	if s.WinCondition < 1 {
		return fmt.Errorf("%w: win condition %d", ErrInvalidSnapshot, s.WinCondition)
	}
	if len(s.Board) != s.Size {
		return fmt.Errorf("%w: board has %d rows, want %d", ErrInvalidSnapshot, len(s.Board), s.Size)
	}
	for r, row := range s.Board {
		if len(row) != s.Size {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSnapshot, r, len(row), s.Size)
		}
		for c, v := range row {
			if v != 0 && !isPowerOf(v, s.InitialValue) {
				return fmt.Errorf("%w: cell (%d, %d) value %d is not a power of %d",
					ErrInvalidSnapshot, r, c, v, s.InitialValue)
			}
		}
	}
	return nil
}

// EncodeSnapshot serializes a snapshot to JSON.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// DecodeSnapshot parses and validates a JSON snapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	status, err := ParseStatus(string(s.Status))
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	s.Status = status
	if err := s.Validate(); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// isPowerOf reports whether v is base^k for some k >= 1.
func isPowerOf(v, base int) bool {
	if v < base {
		return false
	}
	for v%base == 0 {
		v /= base
	}
	return v == 1
}
