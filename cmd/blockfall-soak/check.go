package main

import (
	"fmt"
	"sync"

	"github.com/plus3/blockfall/tetris"
)

// maxViolations bounds how many violations are kept for the report.
const maxViolations = 20

// Checker validates every transition the engine reports. It is installed as
// an engine listener and may be called from the gravity goroutine.
type Checker struct {
	mu          sync.Mutex
	transitions int64
	violations  []string
	dropped     int
}

func (c *Checker) Observe(prev, next tetris.Snapshot) {
	errs := checkTransition(prev, next)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.transitions++
	for _, err := range errs {
		if len(c.violations) >= maxViolations {
			c.dropped++
			continue
		}
		c.violations = append(c.violations, fmt.Sprintf("transition %d: %v", c.transitions, err))
	}
}

// Violations returns the recorded violations.
func (c *Checker) Violations() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := append([]string(nil), c.violations...)
	if c.dropped > 0 {
		out = append(out, fmt.Sprintf("... and %d more", c.dropped))
	}
	return out
}

func checkTransition(prev, next tetris.Snapshot) []error {
	var errs []error

	if next.Session == prev.Session && next.Score < prev.Score {
		errs = append(errs, fmt.Errorf("score dropped from %d to %d", prev.Score, next.Score))
	}
	if next.Score != next.Lines*tetris.PointsPerLine {
		errs = append(errs, fmt.Errorf("score %d does not match %d lines", next.Score, next.Lines))
	}
	if rows := next.Board.FullRows(); len(rows) > 0 {
		errs = append(errs, fmt.Errorf("full rows %v left on the board", rows))
	}

	switch next.Lifecycle {
	case tetris.Running:
		if next.Active == nil || next.Next == nil {
			errs = append(errs, fmt.Errorf("running without an active piece and preview"))
			break
		}
		for p := range next.Active.Cells() {
			if !next.Board.InBounds(p.X, p.Y) {
				errs = append(errs, fmt.Errorf("active cell %v is off the board", p))
			} else if next.Board.Occupied(p.X, p.Y) {
				errs = append(errs, fmt.Errorf("active cell %v overlaps the board", p))
			}
		}
	case tetris.GameOver:
		if next.Active != nil {
			errs = append(errs, fmt.Errorf("game over with an active piece"))
		}
	default:
		if prev.Lifecycle != tetris.Idle {
			errs = append(errs, fmt.Errorf("returned to %v from %v", next.Lifecycle, prev.Lifecycle))
		}
	}

	return errs
}
