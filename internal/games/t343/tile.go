package t343

import "fmt"

// Tile is a numbered board occupant. Its identity is stable for its whole
// lifetime; only the value changes, and only through Merge.
type Tile struct {
	value int
	base  int
	row   int
	col   int
}

// TileSnapshot is the value and position of a tile at a point in time.
type TileSnapshot struct {
	Value int `json:"value"`
	Row   int `json:"row"`
	Col   int `json:"col"`
}

func newTile(value, base, row, col int) *Tile {
	return &Tile{value: value, base: base, row: row, col: col}
}

// Value returns the current tile value.
func (t *Tile) Value() int { return t.value }

// Position returns the tile's row and column.
func (t *Tile) Position() (row, col int) { return t.row, t.col }

// Merge absorbs other into t, multiplying t's value by its base.
// The caller removes other from the board.
func (t *Tile) Merge(other *Tile) error {
	if other == nil {
		return fmt.Errorf("%w: nil tile", ErrIncompatibleMerge)
	}
	if other.value != t.value {
		return fmt.Errorf("%w: %d and %d", ErrIncompatibleMerge, t.value, other.value)
	}
	t.value *= t.base
	return nil
}

// Snapshot returns the tile's value and coordinates.
func (t *Tile) Snapshot() TileSnapshot {
	return TileSnapshot{Value: t.value, Row: t.row, Col: t.col}
}

func (t *Tile) String() string {
	return fmt.Sprintf("[%4d]", t.value)
}
