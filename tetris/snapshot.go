package tetris

// Snapshot is a read-only copy of the state handed to renderers.
type Snapshot struct {
	Board     Board
	Active    *ActivePiece
	Next      *NextPiece
	Score     int
	Lines     int
	Session   int
	Lifecycle Lifecycle
}

// Snapshot copies the renderer-visible part of s.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Board:     s.Board,
		Score:     s.Score,
		Lines:     s.Lines,
		Session:   s.Session,
		Lifecycle: s.Lifecycle,
	}
	if s.Active != nil {
		active := *s.Active
		snap.Active = &active
	}
	if s.Next != nil {
		next := *s.Next
		snap.Next = &next
	}
	return snap
}

// Cells returns the board with the active piece drawn in. Piece cells above
// the top row are dropped.
func (s Snapshot) Cells() Board {
	b := s.Board
	if s.Active == nil {
		return b
	}
	for p := range s.Active.Cells() {
		if b.InBounds(p.X, p.Y) {
			b[p.Y][p.X] = Cell{Kind: s.Active.Kind}
		}
	}
	return b
}
