package trace

// Tracer is the main interface for emitting trace events.
type Tracer interface {
	// Emit records a trace event. Must be goroutine-safe.
	Emit(ev *Event)

	// Flush ensures all buffered events are written.
	Flush() error

	// Close flushes and releases resources.
	Close() error

	// Level returns the current tracing level.
	Level() Level

	// Enabled returns true if tracing is active (Level > LevelOff).
	Enabled() bool
}

// Config holds tracer configuration. The engine only ever keeps
// trace history in memory (the GC integrity check's and the
// evaluator's points, readable through RingTracer.Snapshot) rather
// than streaming it live, so the only storage it needs is the ring
// buffer. dump.Build does not include it.
type Config struct {
	Level    Level // tracing level
	RingSize int   // ring capacity (default 4096)
}

// New creates a Tracer based on Config.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return nopTracer{}, nil
	}
	if cfg.RingSize <= 0 {
		cfg.RingSize = 4096
	}
	return NewRingTracer(cfg.RingSize, cfg.Level), nil
}
