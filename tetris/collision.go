package tetris

// Collides reports whether shape placed at pos leaves the board sideways or
// through the floor, or overlaps a filled cell. Cells above row 0 only check
// the side walls, so a piece may poke above the top while rotating.
func Collides(board Board, shape Shape, pos Position) bool {
	for c := range shape.Cells() {
		x, y := pos.X+c.X, pos.Y+c.Y
		if x < 0 || x >= Cols || y >= Rows {
			return true
		}
		if y >= 0 && board.Occupied(x, y) {
			return true
		}
	}
	return false
}

// Fits reports whether the piece is collision free on board.
func (p ActivePiece) Fits(board Board) bool {
	return !Collides(board, p.Shape, p.Pos)
}
