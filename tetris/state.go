package tetris

// Lifecycle is the coarse phase of a game session.
type Lifecycle uint8

const (
	// Idle is the state before the first start. Nothing moves.
	Idle Lifecycle = iota
	// Running accepts input and gravity.
	Running
	// GameOver is terminal until the next StartOrRestart.
	GameOver
)

func (l Lifecycle) String() string {
	switch l {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Action is an abstract input understood by Apply.
type Action uint8

const (
	ActionNone Action = iota
	MoveLeft
	MoveRight
	SoftDrop
	Rotate
	StartOrRestart
	// Tick is the gravity step. It behaves like SoftDrop but is only ever
	// issued by the Gravity scheduler.
	Tick
)

func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case SoftDrop:
		return "soft-drop"
	case Rotate:
		return "rotate"
	case StartOrRestart:
		return "start"
	case Tick:
		return "tick"
	default:
		return "none"
	}
}

// State is the complete game state. It is treated as immutable: transitions
// return a new State and never write through the Active or Next pointers.
type State struct {
	Board     Board
	Active    *ActivePiece
	Next      *NextPiece
	Score     int
	Lines     int
	Locked    int
	Session   int
	Lifecycle Lifecycle
}

// Start begins a fresh session from any lifecycle: empty board, score zero,
// a new active piece and a new preview. If the first piece cannot spawn the
// session goes straight to GameOver.
func Start(s State, f *Factory) State {
	next := State{
		Board:   s.Board.Reset(),
		Session: s.Session + 1,
	}

	piece, ok := f.Spawn(next.Board)
	if !ok {
		next.Lifecycle = GameOver
		return next
	}
	preview := f.Preview()

	next.Active = &piece
	next.Next = &preview
	next.Lifecycle = Running
	return next
}

// Apply performs one action. StartOrRestart is honored in every lifecycle;
// everything else only while Running.
func Apply(s State, a Action, f *Factory) State {
	if a == StartOrRestart {
		return Start(s, f)
	}
	if s.Lifecycle != Running {
		return s
	}

	switch a {
	case MoveLeft:
		return AttemptMove(s, f, -1, 0, false)
	case MoveRight:
		return AttemptMove(s, f, 1, 0, false)
	case SoftDrop, Tick:
		return AttemptMove(s, f, 0, 1, false)
	case Rotate:
		return AttemptMove(s, f, 0, 0, true)
	default:
		return s
	}
}
