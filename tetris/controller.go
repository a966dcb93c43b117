package tetris

// PointsPerLine is awarded for every cleared row, regardless of how many rows
// clear at once.
const PointsPerLine = 10

// AttemptMove shifts the active piece by (dx, dy), rotating it clockwise first
// when rotate is set. Rotation has no wall kick. A collision-free move is
// committed. A blocked pure downward move locks the piece. Any other blocked
// move leaves the state unchanged. Outside Running the call is a no-op.
func AttemptMove(s State, f *Factory, dx, dy int, rotate bool) State {
	if s.Lifecycle != Running || s.Active == nil {
		return s
	}

	piece := *s.Active
	shape := piece.Shape
	if rotate {
		shape = shape.Rotate()
	}
	pos := piece.Pos.Add(dx, dy)

	if !Collides(s.Board, shape, pos) {
		piece.Shape = shape
		piece.Pos = pos
		s.Active = &piece
		return s
	}

	if dx == 0 && dy > 0 && !rotate {
		return lock(s, f)
	}

	return s
}

// lock merges the active piece into the board, clears full rows, scores them
// and promotes the preview piece. If the promoted piece does not fit the game
// is over.
func lock(s State, f *Factory) State {
	piece := *s.Active

	board, lines := s.Board.Merge(piece.Shape, piece.Pos, piece.Kind).ClearFullRows()
	s.Board = board
	s.Score += lines * PointsPerLine
	s.Lines += lines
	s.Locked++
	s.Active = nil

	var next ActivePiece
	if s.Next != nil {
		next = Promote(*s.Next)
		s.Next = nil
		if !next.Fits(s.Board) {
			s.Lifecycle = GameOver
			return s
		}
	} else {
		var ok bool
		next, ok = f.Spawn(s.Board)
		if !ok {
			s.Lifecycle = GameOver
			return s
		}
	}

	s.Active = &next
	preview := f.Preview()
	s.Next = &preview
	return s
}
