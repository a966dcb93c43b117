package tetris

import (
	"fmt"
	"strings"
)

const (
	Cols = 10
	Rows = 20
)

// Cell is one square of the board. A filled cell remembers the kind of the
// piece that locked into it so renderers can color it.
type Cell struct {
	Kind Kind
}

// Filled reports whether the cell is occupied.
func (c Cell) Filled() bool {
	return c.Kind != KindNone
}

// Board is the grid of locked cells. Row 0 is the top row.
// Board is a value type: every mutating operation returns a new Board.
type Board [Rows][Cols]Cell

// InBounds reports whether (x, y) lies on the board.
func (b Board) InBounds(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

// Occupied reports whether the cell at (x, y) is filled.
// It panics if (x, y) is off the board; callers bounds-check first.
func (b Board) Occupied(x, y int) bool {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("tetris: Occupied(%d, %d) out of bounds", x, y))
	}
	return b[y][x].Filled()
}

// Merge returns a copy of the board with every filled cell of shape at pos
// set to kind. It panics if any of those cells is off the board.
func (b Board) Merge(shape Shape, pos Position, kind Kind) Board {
	for c := range shape.Cells() {
		x, y := pos.X+c.X, pos.Y+c.Y
		if !b.InBounds(x, y) {
			panic(fmt.Sprintf("tetris: merging %v at %v puts a cell at (%d, %d)", kind, pos, x, y))
		}
		b[y][x] = Cell{Kind: kind}
	}
	return b
}

// FullRows returns the indices of all completely filled rows, top to bottom.
func (b Board) FullRows() []int {
	var full []int
	for y := range Rows {
		if b.rowFull(y) {
			full = append(full, y)
		}
	}
	return full
}

func (b Board) rowFull(y int) bool {
	for x := range Cols {
		if !b[y][x].Filled() {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row and drops the rows above them,
// keeping their order, then pads the top with empty rows.
// All full rows are found before anything moves.
func (b Board) ClearFullRows() (Board, int) {
	full := b.FullRows()
	if len(full) == 0 {
		return b, 0
	}

	var out Board
	dst := Rows - 1
	for y := Rows - 1; y >= 0; y-- {
		if b.rowFull(y) {
			continue
		}
		out[dst] = b[y]
		dst--
	}

	return out, len(full)
}

// Reset returns an empty board.
func (b Board) Reset() Board {
	return Board{}
}

// Filled counts the occupied cells.
func (b Board) Filled() int {
	n := 0
	for y := range Rows {
		for x := range Cols {
			if b[y][x].Filled() {
				n++
			}
		}
	}
	return n
}

// String renders one line per row, '.' for empty cells and the kind letter
// for filled ones. ParseBoard reads the same format.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols + 1))
	for y := range Rows {
		for x := range Cols {
			sb.WriteByte(b[y][x].Kind.Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard reads a board drawn with one line per row. Lines may be fewer
// than Rows, in which case they describe the bottom of the board. Blank
// lines are ignored. '#' is accepted as a filled cell of unknown kind and is
// stored as KindI.
func ParseBoard(text string) (Board, error) {
	var lines []string
	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	var b Board
	if len(lines) > Rows {
		return b, fmt.Errorf("parse board: %d rows, want at most %d", len(lines), Rows)
	}

	offset := Rows - len(lines)
	for i, line := range lines {
		if len(line) != Cols {
			return b, fmt.Errorf("parse board: row %d has %d columns, want %d", i, len(line), Cols)
		}
		for x := range Cols {
			switch ch := line[x]; ch {
			case '.':
			case '#':
				b[offset+i][x] = Cell{Kind: KindI}
			default:
				k, ok := KindFromLetter(ch)
				if !ok {
					return b, fmt.Errorf("parse board: row %d column %d: unknown cell %q", i, x, ch)
				}
				b[offset+i][x] = Cell{Kind: k}
			}
		}
	}

	return b, nil
}
