package tetris

import (
	"fmt"
	"iter"
	"strings"
)

// maxShapeSize bounds every tetromino's bounding box.
const maxShapeSize = 4

// Shape is an immutable boolean matrix tight to the filled cells of a piece.
// Shapes are comparable values; rotating returns a new Shape.
type Shape struct {
	w, h  int
	cells [maxShapeSize][maxShapeSize]bool
}

// NewShape builds a Shape from rows of '#' (filled) and '.' (empty).
// All rows must have the same width and the matrix must fit in a 4x4 box.
func NewShape(rows ...string) (Shape, error) {
	var s Shape
	if len(rows) == 0 || len(rows) > maxShapeSize {
		return s, fmt.Errorf("shape has %d rows, want 1..%d", len(rows), maxShapeSize)
	}

	s.h = len(rows)
	s.w = len(rows[0])
	if s.w == 0 || s.w > maxShapeSize {
		return s, fmt.Errorf("shape has %d columns, want 1..%d", s.w, maxShapeSize)
	}

	for y, row := range rows {
		if len(row) != s.w {
			return s, fmt.Errorf("shape row %d has width %d, want %d", y, len(row), s.w)
		}
		for x := range len(row) {
			switch row[x] {
			case '#':
				s.cells[y][x] = true
			case '.':
			default:
				return s, fmt.Errorf("shape row %d: unexpected %q", y, row[x])
			}
		}
	}

	return s, nil
}

func mustShape(rows ...string) Shape {
	s, err := NewShape(rows...)
	if err != nil {
		panic("tetris: " + err.Error())
	}
	return s
}

// Width is the number of columns of the bounding box.
func (s Shape) Width() int { return s.w }

// Height is the number of rows of the bounding box.
func (s Shape) Height() int { return s.h }

// Filled reports whether the cell at column x, row y of the bounding box is set.
// Coordinates outside the box are empty.
func (s Shape) Filled(x, y int) bool {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return false
	}
	return s.cells[y][x]
}

// Cells yields the offsets of every filled cell relative to the top-left corner.
func (s Shape) Cells() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for y := range s.h {
			for x := range s.w {
				if s.cells[y][x] && !yield(Position{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Rotate returns s turned 90 degrees clockwise: row r, column c moves to
// row c, column h-1-r.
func (s Shape) Rotate() Shape {
	r := Shape{w: s.h, h: s.w}
	for y := range s.h {
		for x := range s.w {
			r.cells[x][s.h-1-y] = s.cells[y][x]
		}
	}
	return r
}

func (s Shape) String() string {
	var sb strings.Builder
	for y := range s.h {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range s.w {
			if s.cells[y][x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
