package tetris

import (
	"fmt"
	"iter"
)

// Position is the board coordinate of a shape's top-left bounding-box corner.
type Position struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// ActivePiece is the falling, controllable piece.
type ActivePiece struct {
	Kind  Kind
	Shape Shape
	Pos   Position
}

// NextPiece is the preview of the piece that becomes active on the next lock.
type NextPiece struct {
	Kind  Kind
	Shape Shape
}

// SpawnPosition centers shape horizontally on the top row.
func SpawnPosition(shape Shape) Position {
	return Position{X: (Cols - shape.Width()) / 2, Y: 0}
}

// Promote places a preview piece at its spawn position.
func Promote(next NextPiece) ActivePiece {
	return ActivePiece{
		Kind:  next.Kind,
		Shape: next.Shape,
		Pos:   SpawnPosition(next.Shape),
	}
}

// Cells yields the absolute board coordinates covered by the piece.
func (p ActivePiece) Cells() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for c := range p.Shape.Cells() {
			if !yield(p.Pos.Add(c.X, c.Y)) {
				return
			}
		}
	}
}
