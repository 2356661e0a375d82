package t343

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/blubits/threefourthree/internal/core"
)

// BonusTileProbability is the chance that a random insertion places
// initial_value squared instead of initial_value.
const BonusTileProbability = 0.1

// Coord is a (row, col) position on the board.
type Coord struct {
	Row, Col int
}

// MoveReport summarizes one call to MoveAll.
type MoveReport struct {
	ScoreDelta int
	Merged     []TileSnapshot // Resulting tiles of each merge, in merge order
	Moved      bool           // At least one tile slid to a new cell
}

// Changed reports whether the move altered the board at all.
func (r MoveReport) Changed() bool {
	return r.Moved || len(r.Merged) > 0
}

// Board is a square grid of tiles stored row-major in a flat slice.
// A tile's coordinates always match the slot holding it; relocation only
// happens in move, which updates both.
type Board struct {
	size         int
	initialValue int
	cells        []*Tile
}

// NewBoard creates an empty board.
func NewBoard(size, initialValue int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: board size %d", ErrInvalidSettings, size)
	}
	if initialValue < 2 {
		return nil, fmt.Errorf("%w: initial value %d", ErrInvalidSettings, initialValue)
	}
	return &Board{
		size:         size,
		initialValue: initialValue,
		cells:        make([]*Tile, size*size),
	}, nil
}

// Size returns the side length of the board.
func (b *Board) Size() int { return b.size }

// InitialValue returns the base tile value, which is also the merge multiplier.
func (b *Board) InitialValue() int { return b.initialValue }

func (b *Board) index(row, col int) int {
	return row*b.size + col
}

// IsOutOfBounds reports whether (row, col) lies outside the grid.
func (b *Board) IsOutOfBounds(row, col int) bool {
	return row < 0 || row >= b.size || col < 0 || col >= b.size
}

// IsEmpty reports whether (row, col) is inside the grid and holds no tile.
func (b *Board) IsEmpty(row, col int) bool {
	return !b.IsOutOfBounds(row, col) && b.cells[b.index(row, col)] == nil
}

// IsFull reports whether every cell holds a tile.
func (b *Board) IsFull() bool {
	for _, t := range b.cells {
		if t == nil {
			return false
		}
	}
	return true
}

// Tile returns the tile at (row, col), or nil if empty or out of bounds.
func (b *Board) Tile(row, col int) *Tile {
	if b.IsOutOfBounds(row, col) {
		return nil
	}
	return b.cells[b.index(row, col)]
}

// AvailableCells returns all empty coordinates in row-major order.
func (b *Board) AvailableCells() []Coord {
	var cells []Coord
	for i, t := range b.cells {
		if t == nil {
			cells = append(cells, Coord{Row: i / b.size, Col: i % b.size})
		}
	}
	return cells
}

// Place puts a new tile with the given value at (row, col).
func (b *Board) Place(value, row, col int) (*Tile, error) {
	if b.IsOutOfBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	if !b.IsEmpty(row, col) {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrCellOccupied, row, col)
	}
	t := newTile(value, b.initialValue, row, col)
	b.cells[b.index(row, col)] = t
	return t, nil
}

// InsertRandom places n new tiles on distinct empty cells chosen uniformly
// at random. Each tile is initial_value, or initial_value squared with
// probability BonusTileProbability. Either all n tiles are placed or none.
func (b *Board) InsertRandom(rng *rand.Rand, n int) error {
	if n <= 0 {
		return nil
	}
	available := b.AvailableCells()
	if len(available) < n {
		return fmt.Errorf("%w: need %d cells, have %d", ErrInsufficientSpace, n, len(available))
	}

	// Partial Fisher-Yates: the first n entries become the sample.
	for i := range n {
		j := i + rng.Intn(len(available)-i)
		available[i], available[j] = available[j], available[i]
	}

	for _, c := range available[:n] {
		value := b.initialValue
		if rng.Float64() < BonusTileProbability {
			value = b.initialValue * b.initialValue
		}
		b.cells[b.index(c.Row, c.Col)] = newTile(value, b.initialValue, c.Row, c.Col)
	}
	return nil
}

func (b *Board) remove(t *Tile) {
	b.cells[b.index(t.row, t.col)] = nil
}

// move relocates t to (row, col), updating the slot and the tile together.
func (b *Board) move(t *Tile, row, col int) error {
	if b.IsOutOfBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	if !b.IsEmpty(row, col) {
		return fmt.Errorf("%w: (%d, %d)", ErrCellOccupied, row, col)
	}
	b.cells[b.index(t.row, t.col)] = nil
	t.row, t.col = row, col
	b.cells[b.index(row, col)] = t
	return nil
}

// traversal returns the cell visiting order for a slide in dir. Cells
// nearest the destination wall come first so one forward pass settles the
// whole board.
func (b *Board) traversal(dir core.Direction) []Coord {
	order := make([]Coord, 0, b.size*b.size)
	n := b.size
	switch dir {
	case core.DirUp:
		for col := range n {
			for row := range n {
				order = append(order, Coord{row, col})
			}
		}
	case core.DirDown:
		for col := range n {
			for row := n - 1; row >= 0; row-- {
				order = append(order, Coord{row, col})
			}
		}
	case core.DirLeft:
		for row := range n {
			for col := range n {
				order = append(order, Coord{row, col})
			}
		}
	case core.DirRight:
		for row := range n {
			for col := n - 1; col >= 0; col-- {
				order = append(order, Coord{row, col})
			}
		}
	}
	return order
}

// MoveAll slides every tile toward dir and collapses three equal tiles in a
// line into one. The farthest of the three keeps its identity and is
// multiplied by the base once; the other two are removed.
func (b *Board) MoveAll(dir core.Direction) MoveReport {
	var report MoveReport
	dr, dc := dir.Vector()
	if dr == 0 && dc == 0 {
		return report
	}

	for _, c := range b.traversal(dir) {
		t := b.cells[b.index(c.Row, c.Col)]
		if t == nil {
			continue
		}

		row, col := t.row, t.col
		for b.IsEmpty(row+dr, col+dc) {
			row += dr
			col += dc
		}
		if row != t.row || col != t.col {
			if err := b.move(t, row, col); err != nil {
				panic(fmt.Sprintf("t343: corrupted board: %v", err))
			}
			report.Moved = true
		}

		middle := b.Tile(row+dr, col+dc)
		far := b.Tile(row+2*dr, col+2*dc)
		if middle == nil || far == nil || middle.value != t.value || far.value != t.value {
			continue
		}
		if err := far.Merge(middle); err != nil {
			panic(fmt.Sprintf("t343: corrupted board: %v", err))
		}
		b.remove(middle)
		b.remove(t)

		report.Merged = append(report.Merged, far.Snapshot())
		report.ScoreDelta += far.value
	}

	return report
}

// hasChain reports whether the tile at (row, col) and its next two
// neighbours along (dr, dc) share the same value.
func (b *Board) hasChain(row, col, dr, dc int) bool {
	t := b.Tile(row, col)
	next := b.Tile(row+dr, col+dc)
	last := b.Tile(row+2*dr, col+2*dc)
	return t != nil && next != nil && last != nil &&
		next.value == t.value && last.value == t.value
}

// NoMovesPossible reports whether the board is full and no three equal
// tiles line up in any direction.
func (b *Board) NoMovesPossible() bool {
	if !b.IsFull() {
		return false
	}
	for row := range b.size {
		for col := range b.size {
			for _, dir := range core.Directions {
				dr, dc := dir.Vector()
				if b.hasChain(row, col, dr, dc) {
					return false
				}
			}
		}
	}
	return true
}

// Values returns the tile values as a grid, with 0 for empty cells.
func (b *Board) Values() Grid {
	grid := make(Grid, b.size)
	for row := range b.size {
		grid[row] = make([]int, b.size)
		for col := range b.size {
			if t := b.cells[b.index(row, col)]; t != nil {
				grid[row][col] = t.value
			}
		}
	}
	return grid
}

// MaxValue returns the highest tile value on the board, or 0 if empty.
func (b *Board) MaxValue() int {
	maxVal := 0
	for _, t := range b.cells {
		if t != nil && t.value > maxVal {
			maxVal = t.value
		}
	}
	return maxVal
}

// String renders the board as fixed-width text, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.size {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range b.size {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if t := b.cells[b.index(row, col)]; t != nil {
				sb.WriteString(t.String())
			} else {
				sb.WriteString("[    ]")
			}
		}
	}
	return sb.String()
}
