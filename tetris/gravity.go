package tetris

import (
	"context"
	"sync"
	"time"
)

// GravityPeriod is the default interval between gravity ticks.
const GravityPeriod = time.Second

// Ticker delivers ticks on C until stopped. *time.Ticker is adapted by the
// default ticker source; tests substitute a manual one.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerSource creates a Ticker firing every d.
type TickerSource func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

func newTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// GravityStats describes the ticks delivered since the scheduler was created,
// accumulated across every arming.
type GravityStats struct {
	Armed        bool
	Epoch        uint64
	Arms         int64
	Fires        int64
	MinInterval  time.Duration
	MaxInterval  time.Duration
	AvgInterval  time.Duration
	LastInterval time.Duration
}

// Gravity is the single periodic trigger that drives the falling piece.
// Each Arm starts one tick goroutine tagged with a fresh epoch; Disarm
// cancels it without waiting. A tick can still be in flight after Disarm,
// so receivers compare its epoch against Current.
type Gravity struct {
	period  time.Duration
	tickers TickerSource
	fire    func(epoch uint64)

	mu     sync.Mutex
	armed  bool
	epoch  uint64
	cancel context.CancelFunc
	wg     sync.WaitGroup

	arms          int64
	fires         int64
	minInterval   time.Duration
	maxInterval   time.Duration
	totalInterval time.Duration
	lastInterval  time.Duration
}

// NewGravity creates a disarmed scheduler that calls fire once per period
// while armed. A nil tickers uses time.NewTicker.
func NewGravity(period time.Duration, tickers TickerSource, fire func(epoch uint64)) *Gravity {
	if period <= 0 {
		period = GravityPeriod
	}
	if tickers == nil {
		tickers = newTimeTicker
	}
	return &Gravity{
		period:      period,
		tickers:     tickers,
		fire:        fire,
		minInterval: time.Duration(1<<63 - 1),
	}
}

// Period returns the tick interval.
func (g *Gravity) Period() time.Duration {
	return g.period
}

// Arm starts ticking. Arming an armed scheduler is a programming error and panics.
func (g *Gravity) Arm() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.armed {
		panic("tetris: gravity armed twice")
	}

	g.armed = true
	g.epoch++
	g.arms++

	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel

	armedAt := time.Now()
	ticker := g.tickers(g.period)
	g.wg.Add(1)
	go g.run(ctx, g.epoch, ticker, armedAt)
}

// Disarm stops ticking. Disarming a disarmed scheduler panics.
func (g *Gravity) Disarm() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.armed {
		panic("tetris: gravity disarmed while not armed")
	}

	g.armed = false
	g.cancel()
	g.cancel = nil
}

// Armed reports whether the scheduler is ticking.
func (g *Gravity) Armed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.armed
}

// Current reports whether epoch belongs to the arming that is still active.
func (g *Gravity) Current(epoch uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.armed && g.epoch == epoch
}

// Wait blocks until every tick goroutine started by Arm has exited.
// Call it after Disarm, without holding locks the tick callback takes.
func (g *Gravity) Wait() {
	g.wg.Wait()
}

// run measures intervals on the local monotonic clock at receipt. The
// ticker's own timestamps may predate armedAt.
func (g *Gravity) run(ctx context.Context, epoch uint64, ticker Ticker, armedAt time.Time) {
	defer g.wg.Done()
	defer ticker.Stop()

	last := armedAt

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			if ctx.Err() != nil {
				return
			}
			now := time.Now()
			g.record(now.Sub(last))
			last = now
			g.fire(epoch)
		}
	}
}

func (g *Gravity) record(interval time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.fires++
	g.lastInterval = interval
	g.totalInterval += interval
	if interval < g.minInterval {
		g.minInterval = interval
	}
	if interval > g.maxInterval {
		g.maxInterval = interval
	}
}

// Stats returns tick statistics.
func (g *Gravity) Stats() GravityStats {
	g.mu.Lock()
	defer g.mu.Unlock()

	stats := GravityStats{
		Armed:        g.armed,
		Epoch:        g.epoch,
		Arms:         g.arms,
		Fires:        g.fires,
		MaxInterval:  g.maxInterval,
		LastInterval: g.lastInterval,
	}
	if g.fires > 0 {
		stats.MinInterval = g.minInterval
		stats.AvgInterval = g.totalInterval / time.Duration(g.fires)
	}
	return stats
}
