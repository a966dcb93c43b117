package tetris

import (
	"sync"
	"time"
)

// Listener observes every applied transition. It runs while the engine lock
// is held and must not call back into the Engine.
type Listener func(prev, next Snapshot)

type engineConfig struct {
	rng       Rand
	period    time.Duration
	tickers   TickerSource
	listeners []Listener
}

// Option configures an Engine.
type Option func(*engineConfig)

// WithRand sets the source of piece draws. Use NewRand for a seeded one.
func WithRand(rng Rand) Option {
	return func(c *engineConfig) { c.rng = rng }
}

// WithGravityPeriod overrides GravityPeriod.
func WithGravityPeriod(d time.Duration) Option {
	return func(c *engineConfig) { c.period = d }
}

// WithTicker replaces time.NewTicker as the gravity clock.
func WithTicker(src TickerSource) Option {
	return func(c *engineConfig) { c.tickers = src }
}

// WithListener registers l to be called after every transition.
func WithListener(l Listener) Option {
	return func(c *engineConfig) { c.listeners = append(c.listeners, l) }
}

// Engine owns the single current State. Input actions and gravity ticks are
// serialized by one mutex, so each transition sees the result of the one
// before it. Gravity is armed when the game enters Running and disarmed when
// it leaves, inside the same critical section as the transition.
type Engine struct {
	mu        sync.Mutex
	state     State
	factory   *Factory
	gravity   *Gravity
	listeners []Listener
	stats     *Stats
	closed    bool
}

// NewEngine creates an idle engine.
func NewEngine(opts ...Option) *Engine {
	cfg := engineConfig{period: GravityPeriod}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		factory:   NewFactory(cfg.rng),
		listeners: cfg.listeners,
		stats:     newStats(),
	}
	e.gravity = NewGravity(cfg.period, cfg.tickers, e.tick)
	return e
}

// Dispatch applies one action and returns the resulting snapshot.
// Dispatch after Close is ignored.
func (e *Engine) Dispatch(a Action) Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.closed {
		e.apply(a)
	}
	return e.state.Snapshot()
}

// tick is the gravity callback. Ticks from an earlier arming are dropped.
func (e *Engine) tick(epoch uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || !e.gravity.Current(epoch) {
		e.stats.StaleTicks++
		return
	}
	e.apply(Tick)
}

func (e *Engine) apply(a Action) {
	prev := e.state
	next := Apply(prev, a, e.factory)
	e.state = next

	restarted := next.Session != prev.Session
	if prev.Lifecycle == Running && (next.Lifecycle != Running || restarted) {
		e.gravity.Disarm()
	}
	if next.Lifecycle == Running && (prev.Lifecycle != Running || restarted) {
		e.gravity.Arm()
	}

	e.stats.observe(prev, next, a)

	if len(e.listeners) == 0 {
		return
	}
	ps, ns := prev.Snapshot(), next.Snapshot()
	for _, l := range e.listeners {
		l(ps, ns)
	}
}

// Snapshot returns a copy of the current state for rendering.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Snapshot()
}

// State returns the current state value.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Stats returns a copy of the engine counters.
func (e *Engine) Stats() *Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats.clone()
}

// Gravity exposes the scheduler for inspection.
func (e *Engine) Gravity() *Gravity {
	return e.gravity
}

// Close disarms gravity and waits for the tick goroutine to exit. The state
// stays readable; further actions are ignored.
func (e *Engine) Close() {
	e.mu.Lock()
	if !e.closed {
		e.closed = true
		if e.gravity.Armed() {
			e.gravity.Disarm()
		}
	}
	e.mu.Unlock()

	e.gravity.Wait()
}
