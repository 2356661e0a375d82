package t343

import (
	"errors"
	"math/rand"
	"reflect"
	"slices"
	"testing"

	"github.com/blubits/threefourthree/internal/core"
)

// boardFrom builds a board from a value grid (0 = empty).
func boardFrom(t *testing.T, base int, grid Grid) *Board {
	t.Helper()
	b, err := NewBoard(len(grid), base)
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}
	for row, values := range grid {
		for col, v := range values {
			if v == 0 {
				continue
			}
			if _, err := b.Place(v, row, col); err != nil {
				t.Fatalf("Place(%d, %d, %d) error = %v", v, row, col, err)
			}
		}
	}
	return b
}

// checkCoordinates verifies every tile's coordinates match its slot.
func checkCoordinates(t *testing.T, b *Board) {
	t.Helper()
	for row := range b.Size() {
		for col := range b.Size() {
			tile := b.Tile(row, col)
			if tile == nil {
				continue
			}
			if r, c := tile.Position(); r != row || c != col {
				t.Errorf("tile in (%d, %d) reports position (%d, %d)", row, col, r, c)
			}
		}
	}
}

func TestNewBoardRejectsBadSettings(t *testing.T) {
	if _, err := NewBoard(0, 3); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("NewBoard(0, 3) error = %v, want ErrInvalidSettings", err)
	}
	if _, err := NewBoard(4, 1); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("NewBoard(4, 1) error = %v, want ErrInvalidSettings", err)
	}
}

func TestBoardQueries(t *testing.T) {
	b := boardFrom(t, 3, Grid{
		{3, 0},
		{0, 9},
	})

	if !b.IsOutOfBounds(-1, 0) || !b.IsOutOfBounds(0, 2) || b.IsOutOfBounds(1, 1) {
		t.Error("IsOutOfBounds gave wrong answers")
	}
	if b.IsEmpty(0, 0) || !b.IsEmpty(0, 1) || b.IsEmpty(5, 5) {
		t.Error("IsEmpty gave wrong answers")
	}
	if b.IsFull() {
		t.Error("IsFull() = true on a half-empty board")
	}

	want := []Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}}
	if got := b.AvailableCells(); !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableCells() = %v, want %v", got, want)
	}
	if b.MaxValue() != 9 {
		t.Errorf("MaxValue() = %d, want 9", b.MaxValue())
	}
}

func TestBoardPlaceErrors(t *testing.T) {
	b := boardFrom(t, 3, Grid{{3, 0}, {0, 0}})

	if _, err := b.Place(3, 2, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Place out of bounds error = %v, want ErrOutOfBounds", err)
	}
	if _, err := b.Place(3, 0, 0); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("Place on occupied cell error = %v, want ErrCellOccupied", err)
	}
}

func TestBoardMovePrimitive(t *testing.T) {
	b := boardFrom(t, 3, Grid{{3, 9}, {0, 0}})
	tile := b.Tile(0, 0)

	if err := b.move(tile, 0, 2); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("move out of bounds error = %v, want ErrOutOfBounds", err)
	}
	if err := b.move(tile, 0, 1); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("move onto tile error = %v, want ErrCellOccupied", err)
	}
	if err := b.move(tile, 1, 0); err != nil {
		t.Fatalf("move() error = %v", err)
	}
	if b.Tile(1, 0) != tile || b.Tile(0, 0) != nil {
		t.Error("move did not relocate the tile")
	}
	checkCoordinates(t, b)
}

func TestMoveAllThreeInColumn(t *testing.T) {
	b := boardFrom(t, 2, Grid{
		{0, 0, 0, 0},
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{2, 0, 0, 0},
	})

	report := b.MoveAll(core.DirUp)

	want := Grid{
		{4, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	if got := b.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("board after up:\n%v\nwant\n%v", got, want)
	}
	if report.ScoreDelta != 4 {
		t.Errorf("ScoreDelta = %d, want 4", report.ScoreDelta)
	}
	if !report.Moved {
		t.Error("Moved = false, want true")
	}
	wantMerged := []TileSnapshot{{Value: 4, Row: 0, Col: 0}}
	if !reflect.DeepEqual(report.Merged, wantMerged) {
		t.Errorf("Merged = %v, want %v", report.Merged, wantMerged)
	}
	checkCoordinates(t, b)
}

func TestMoveAllDirections(t *testing.T) {
	tests := []struct {
		name  string
		dir   core.Direction
		input Grid
		want  Grid
		score int
	}{
		{
			name:  "left four equal keeps trailing tile",
			dir:   core.DirLeft,
			input: Grid{{3, 3, 3, 3}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			want:  Grid{{9, 3, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			score: 9,
		},
		{
			name:  "right four equal",
			dir:   core.DirRight,
			input: Grid{{3, 3, 3, 3}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			want:  Grid{{0, 0, 3, 9}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			score: 9,
		},
		{
			name:  "down with gap",
			dir:   core.DirDown,
			input: Grid{{3, 0, 0, 0}, {0, 0, 0, 0}, {3, 0, 0, 0}, {3, 0, 0, 0}},
			want:  Grid{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {9, 0, 0, 0}},
			score: 9,
		},
		{
			name:  "two equal tiles never merge",
			dir:   core.DirLeft,
			input: Grid{{0, 3, 0, 3}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			want:  Grid{{3, 3, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			score: 0,
		},
		{
			name:  "slide only",
			dir:   core.DirUp,
			input: Grid{{0, 0, 0, 0}, {0, 9, 0, 0}, {0, 0, 0, 0}, {0, 3, 0, 27}},
			want:  Grid{{0, 9, 0, 27}, {0, 3, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			score: 0,
		},
		{
			name:  "mixed values block chain",
			dir:   core.DirLeft,
			input: Grid{{3, 9, 3, 3}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			want:  Grid{{3, 9, 3, 3}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			score: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFrom(t, 3, tt.input)
			report := b.MoveAll(tt.dir)
			if got := b.Values(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("board after %s:\n%v\nwant\n%v", tt.dir, got, tt.want)
			}
			if report.ScoreDelta != tt.score {
				t.Errorf("ScoreDelta = %d, want %d", report.ScoreDelta, tt.score)
			}
			checkCoordinates(t, b)
		})
	}
}

func TestMoveAllCascadesInOnePass(t *testing.T) {
	b := boardFrom(t, 3, Grid{
		{3, 3, 3, 9, 9},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})

	report := b.MoveAll(core.DirLeft)

	if got := b.Values()[0]; !reflect.DeepEqual(got, []int{27, 0, 0, 0, 0}) {
		t.Errorf("row after left = %v, want [27 0 0 0 0]", got)
	}
	if report.ScoreDelta != 9+27 {
		t.Errorf("ScoreDelta = %d, want 36", report.ScoreDelta)
	}
	wantMerged := []TileSnapshot{{Value: 9, Row: 0, Col: 0}, {Value: 27, Row: 0, Col: 0}}
	if !reflect.DeepEqual(report.Merged, wantMerged) {
		t.Errorf("Merged = %v, want %v", report.Merged, wantMerged)
	}
}

func TestMoveAllKeepsFarTileIdentity(t *testing.T) {
	b := boardFrom(t, 3, Grid{{3, 3, 3}, {0, 0, 0}, {0, 0, 0}})
	far := b.Tile(0, 0)

	b.MoveAll(core.DirLeft)

	if b.Tile(0, 0) != far {
		t.Error("merge replaced the wall tile instead of growing it")
	}
	if far.Value() != 9 {
		t.Errorf("wall tile value = %d, want 9", far.Value())
	}
}

func TestMoveAllNoChangeIsNoOp(t *testing.T) {
	input := Grid{
		{3, 9, 0},
		{9, 0, 0},
		{27, 3, 0},
	}
	b := boardFrom(t, 3, input)

	report := b.MoveAll(core.DirLeft)

	if report.Changed() || report.Moved || len(report.Merged) != 0 || report.ScoreDelta != 0 {
		t.Errorf("report = %+v, want empty", report)
	}
	if got := b.Values(); !reflect.DeepEqual(got, input) {
		t.Errorf("board changed:\n%v", got)
	}
}

func TestMoveAllConservesTilesWithoutMerge(t *testing.T) {
	input := Grid{
		{3, 0, 9, 0},
		{0, 27, 0, 3},
		{9, 0, 0, 9},
		{0, 3, 81, 0},
	}

	collect := func(g Grid) []int {
		var vals []int
		for _, row := range g {
			for _, v := range row {
				if v != 0 {
					vals = append(vals, v)
				}
			}
		}
		slices.Sort(vals)
		return vals
	}

	for _, dir := range core.Directions {
		b := boardFrom(t, 3, input)
		report := b.MoveAll(dir)
		if len(report.Merged) != 0 {
			t.Fatalf("%s: unexpected merges %v", dir, report.Merged)
		}
		if got, want := collect(b.Values()), collect(input); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: values %v, want %v", dir, got, want)
		}
		checkCoordinates(t, b)
	}
}

func TestMoveAllDeterministic(t *testing.T) {
	input := Grid{
		{3, 3, 0, 3},
		{9, 3, 9, 9},
		{3, 0, 3, 3},
		{3, 9, 3, 0},
	}
	for _, dir := range core.Directions {
		b1 := boardFrom(t, 3, input)
		b2 := boardFrom(t, 3, input)
		r1 := b1.MoveAll(dir)
		r2 := b2.MoveAll(dir)
		if !reflect.DeepEqual(r1, r2) {
			t.Errorf("%s: reports differ: %+v vs %+v", dir, r1, r2)
		}
		if !reflect.DeepEqual(b1.Values(), b2.Values()) {
			t.Errorf("%s: boards differ", dir)
		}
	}
}

func TestMoveAllInvalidDirection(t *testing.T) {
	b := boardFrom(t, 3, Grid{{0, 3}, {3, 3}})
	report := b.MoveAll(core.DirNone)
	if report.Changed() {
		t.Errorf("MoveAll(DirNone) changed the board: %+v", report)
	}
}

func TestNoMovesPossible(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		want bool
	}{
		{
			name: "full without chains",
			grid: Grid{{3, 9, 3}, {9, 3, 9}, {3, 9, 3}},
			want: true,
		},
		{
			name: "full with row chain",
			grid: Grid{{3, 3, 3}, {9, 27, 9}, {27, 9, 27}},
			want: false,
		},
		{
			name: "full with column chain",
			grid: Grid{{9, 3, 27}, {27, 3, 9}, {9, 3, 27}},
			want: false,
		},
		{
			name: "pairs only",
			grid: Grid{{3, 3, 9}, {9, 9, 3}, {3, 3, 9}},
			want: true,
		},
		{
			name: "not full",
			grid: Grid{{3, 9, 3}, {9, 0, 9}, {3, 9, 3}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFrom(t, 3, tt.grid)
			if got := b.NoMovesPossible(); got != tt.want {
				t.Errorf("NoMovesPossible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInsertRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b, _ := NewBoard(2, 2)

	if err := b.InsertRandom(rng, 4); err != nil {
		t.Fatalf("InsertRandom(4) error = %v", err)
	}
	if !b.IsFull() {
		t.Error("board should be full after inserting 4 tiles on 2x2")
	}
	for _, row := range b.Values() {
		for _, v := range row {
			if v != 2 && v != 4 {
				t.Errorf("inserted value %d, want 2 or 4", v)
			}
		}
	}
	checkCoordinates(t, b)

	if err := b.InsertRandom(rng, 1); !errors.Is(err, ErrInsufficientSpace) {
		t.Errorf("InsertRandom on full board error = %v, want ErrInsufficientSpace", err)
	}
}

func TestInsertRandomAllOrNothing(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := boardFrom(t, 3, Grid{
		{3, 9, 3},
		{9, 0, 9},
		{3, 0, 3},
	})

	if err := b.InsertRandom(rng, 3); !errors.Is(err, ErrInsufficientSpace) {
		t.Fatalf("InsertRandom(3) error = %v, want ErrInsufficientSpace", err)
	}
	if got := len(b.AvailableCells()); got != 2 {
		t.Errorf("available cells = %d after failed insert, want 2", got)
	}
}

func TestInsertRandomBonusRate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b, _ := NewBoard(100, 3)

	if err := b.InsertRandom(rng, 10000); err != nil {
		t.Fatalf("InsertRandom() error = %v", err)
	}

	bonus := 0
	for _, row := range b.Values() {
		for _, v := range row {
			if v == 9 {
				bonus++
			}
		}
	}
	// Expected 1000 with a standard deviation of 30.
	if bonus < 850 || bonus > 1150 {
		t.Errorf("bonus tiles = %d, want about 1000", bonus)
	}
}

func TestBoardString(t *testing.T) {
	b := boardFrom(t, 3, Grid{{3, 0}, {0, 243}})
	want := "[   3] [    ]\n[    ] [ 243]"
	if got := b.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
