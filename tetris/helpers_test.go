package tetris_test

import (
	"sync"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/require"
)

// seqRand replays a fixed sequence of catalog kinds.
type seqRand struct {
	mu   sync.Mutex
	seq  []tetris.Kind
	next int
}

func kinds(ks ...tetris.Kind) *seqRand {
	return &seqRand{seq: ks}
}

func (r *seqRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := r.seq[r.next%len(r.seq)]
	r.next++
	return (int(k) - 1) % n
}

func (r *seqRand) draws() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next
}

func mustBoard(t *testing.T, text string) tetris.Board {
	t.Helper()
	b, err := tetris.ParseBoard(text)
	require.NoError(t, err)
	return b
}

// running builds a Running state with the given piece spawned at pos.
func running(board tetris.Board, kind tetris.Kind, pos tetris.Position, next tetris.Kind) tetris.State {
	active := tetris.ActivePiece{Kind: kind, Shape: kind.Shape(), Pos: pos}
	preview := tetris.NextPiece{Kind: next, Shape: next.Shape()}
	return tetris.State{
		Board:     board,
		Active:    &active,
		Next:      &preview,
		Session:   1,
		Lifecycle: tetris.Running,
	}
}

// dropUntilLocked soft-drops until the active piece locks and returns the
// resulting state with the number of successful drops.
func dropUntilLocked(t *testing.T, s tetris.State, f *tetris.Factory) (tetris.State, int) {
	t.Helper()
	locked := s.Locked
	for steps := 0; steps <= tetris.Rows; steps++ {
		s = tetris.AttemptMove(s, f, 0, 1, false)
		if s.Locked != locked {
			return s, steps
		}
	}
	t.Fatalf("piece did not lock within %d drops", tetris.Rows)
	return s, 0
}

// manualTicker is a gravity clock driven by the test.
type manualTicker struct {
	c       chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (m *manualTicker) C() <-chan time.Time { return m.c }

func (m *manualTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

func (m *manualTicker) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

// manualClock hands out manual tickers and remembers them in creation order.
type manualClock struct {
	mu      sync.Mutex
	tickers []*manualTicker
	periods []time.Duration
}

func (c *manualClock) source(d time.Duration) tetris.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	tk := &manualTicker{c: make(chan time.Time)}
	c.tickers = append(c.tickers, tk)
	c.periods = append(c.periods, d)
	return tk
}

func (c *manualClock) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

func (c *manualClock) ticker(i int) *manualTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tickers[i]
}

// last returns the most recently created ticker.
func (c *manualClock) last() *manualTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tickers[len(c.tickers)-1]
}
