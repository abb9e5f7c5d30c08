package diag

import "sync/atomic"

// Context is the explicit runtime context threaded into every core
// operation. The original implementation keeps the last error and the
// interrupt flag in process globals; spec §9 calls that out as a
// re-architecture point, so this runtime passes a *Context explicitly
// instead of relying on package-level state.
type Context struct {
	lastError   *Error
	interrupted atomic.Bool
}

// NewContext returns a fresh, non-interrupted context.
func NewContext() *Context {
	return &Context{}
}

// Fail records err as the context's current error and returns it, so
// callers can write `return ctx.Fail(err)` from a function returning
// *Error.
func (c *Context) Fail(err *Error) *Error {
	if c != nil {
		c.lastError = err
	}
	return err
}

// LastError returns the most recently recorded error, or nil.
func (c *Context) LastError() *Error {
	if c == nil {
		return nil
	}
	return c.lastError
}

// ClearError drops the recorded error, e.g. before starting a fresh
// top-level evaluation.
func (c *Context) ClearError() {
	if c != nil {
		c.lastError = nil
	}
}

// Interrupt is called from the platform UI thread (spec §5) to request
// cancellation of the in-flight evaluation. Safe to call concurrently
// with the evaluator.
func (c *Context) Interrupt() {
	if c != nil {
		c.interrupted.Store(true)
	}
}

// ClearInterrupt resets the interrupt flag, normally once a new
// top-level evaluation starts.
func (c *Context) ClearInterrupt() {
	if c != nil {
		c.interrupted.Store(false)
	}
}

// Poll checks the interrupt flag and, if set, records and returns the
// Interrupted error. Call at the top of every loop iteration, at each
// command dispatch, and before allocating (spec §5).
func (c *Context) Poll() *Error {
	if c == nil {
		return nil
	}
	if c.interrupted.Load() {
		return c.Fail(Interrupted)
	}
	return nil
}
