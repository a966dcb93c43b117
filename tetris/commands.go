package tetris

// Dispatcher applies actions. *Engine implements it.
type Dispatcher interface {
	Dispatch(a Action) Snapshot
}

// Commands buffers actions collected during a frame so a host loop can apply
// them in one place, in the order they arrived.
type Commands struct {
	actions []Action
	defers  []func()
}

// Queue appends an action to the buffer.
func (c *Commands) Queue(a Action) {
	c.actions = append(c.actions, a)
}

// Defer queues fn to run after the buffered actions have been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of buffered actions.
func (c *Commands) Len() int {
	return len(c.actions)
}

// Flush applies every buffered action to d, runs the deferred functions and
// resets the buffer. It returns the snapshot after the last action, or ok=false
// when nothing was dispatched.
func (c *Commands) Flush(d Dispatcher) (snap Snapshot, ok bool) {
	for _, a := range c.actions {
		snap = d.Dispatch(a)
		ok = true
	}

	for _, fn := range c.defers {
		fn()
	}

	c.actions = c.actions[:0]
	c.defers = c.defers[:0]
	return snap, ok
}
