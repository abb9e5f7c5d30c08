// Package trace provides a minimal event-ring tracer for the RPL
// engine, selected at runtime via named, glob-matched channels
// (DB48X_TRACES / -t<pattern>, spec §6). internal/arena gates its GC
// integrity check behind the "gc" channel; internal/eval emits a point
// per command dispatch on the "eval" channel.
package trace
