// Package arena implements the single contiguous, compacting-GC object
// store (spec §4.1, §3 "Ownership & lifecycle"), grounded on
// _examples/original_source/src/runtime.cc's gc()/mark/slide algorithm
// rather than the teacher's refcounted vm.Heap — this engine has no
// cycles to refcount (every reference is either a root or an inline
// sub-object owned by its parent), so a compacting sweep is both
// simpler and the architecture the original domain actually uses.
package arena

import (
	"errors"

	"fortio.org/safecast"

	"rpl/internal/trace"
)

// ErrOutOfMemory is returned when an allocation cannot be satisfied even
// after a GC pass (spec §4.1 "Failure semantics").
var ErrOutOfMemory = errors.New("arena: out of memory")

// Addr is an offset into the arena's backing buffer. Zero is never a
// valid live address (the arena always reserves byte 0), so it doubles
// as a nil sentinel.
type Addr uint32

// Handle is a self-registering reference that survives GC relocation
// (ground: spec §9's re-architecture point and GLOSSARY "Handle").
// Handles are kept on an intrusive slice inside their owning Arena
// instead of a CLI-global list, matching the explicit-context style
// already used for internal/diag.Context.
type Handle struct {
	a    *Arena
	addr Addr
	slot int
}

// NewHandle registers addr as a GC root and returns a Handle for it.
func (a *Arena) NewHandle(addr Addr) *Handle {
	h := &Handle{a: a, addr: addr}
	a.handles = append(a.handles, h)
	h.slot = len(a.handles) - 1
	return h
}

// Addr returns the handle's current address, valid until the next
// allocation or explicit Release.
func (h *Handle) Addr() Addr { return h.addr }

// Release deregisters the handle; it must not be used afterwards.
func (h *Handle) Release() {
	if h.a == nil {
		return
	}
	a := h.a
	last := len(a.handles) - 1
	a.handles[h.slot] = a.handles[last]
	a.handles[h.slot].slot = h.slot
	a.handles = a.handles[:last]
	h.a = nil
}

// Region identifies one of the three growth regions spec §4.1 describes.
type Region uint8

const (
	RegionLowObjects Region = iota
	RegionScratchpad
	RegionStacks
)

// Arena is the engine's single contiguous object store. Low objects
// grow up from the base; the scratchpad grows up above them; the
// operand/locals/temporaries stacks grow down from the top. Sizer
// reports an object's exact byte length from its tag byte at a given
// address — the arena itself is type-agnostic and defers to it for
// everything past "how many bytes do I move."
type Arena struct {
	buf        []byte
	lowTop     Addr // one past the last live byte of the low-objects region
	scratchTop Addr // scratchpad length in bytes; the scratchpad starts at lowTop
	stackBot   Addr // lowest byte still in use by the stacks region

	handles []*Handle
	sizer   Sizer

	// roots beyond handles: slices of addresses that must additionally
	// be treated as live during GC (operand stack, locals frames,
	// directory tree). Each is consulted, then rewritten in place by Mark.
	stackRoots []*[]Addr

	gcTrace trace.Channel
}

// SetGCTrace gates the post-compaction integrity self-check behind the
// "gc" trace channel (spec's re-architecture note: the original's
// SIMULATOR-only integrity_test becomes a runtime trace-gated check
// since Go has no equivalent build conditional).
func (a *Arena) SetGCTrace(ch trace.Channel) { a.gcTrace = ch }

// Sizer reports how many bytes the object at addr occupies, reading its
// leading type tag via LEB128 per spec §3. The object package supplies
// the real implementation; arena only depends on the interface to avoid
// an import cycle (object needs arena.Addr for handles/stack slots).
type Sizer interface {
	Size(buf []byte, addr Addr) (int, error)
}

// New allocates a backing buffer of the given size in bytes (spec §4.1:
// "a contiguous byte buffer of configurable size (kilobytes at
// runtime)").
func New(sizeBytes int, sizer Sizer) *Arena {
	n, err := safecast.Conv[int](sizeBytes)
	if err != nil || n <= 0 {
		n = 64 * 1024
	}
	return &Arena{
		buf:      make([]byte, n),
		lowTop:   1, // reserve addr 0 as the nil sentinel
		stackBot: Addr(n),
		sizer:    sizer,
	}
}

// Bytes exposes the backing buffer for reads at a known address; object
// parsers/renderers use this directly rather than copying.
func (a *Arena) Bytes() []byte { return a.buf }

// RegisterStackRoot adds a slice of addresses (operand stack, a locals
// frame's value slots, the directory's value table) that GC must scan
// and rewrite. The pointer-to-slice indirection lets GC replace the
// slice's contents in place after computing new addresses.
func (a *Arena) RegisterStackRoot(root *[]Addr) {
	a.stackRoots = append(a.stackRoots, root)
}

// AllocLow bumps the low-objects region by n bytes and returns the
// address of the first byte, running a GC pass first if needed (spec
// §4.1's bump-allocate-then-GC-then-fail sequence).
func (a *Arena) AllocLow(n int) (Addr, error) {
	if ok, addr := a.tryAllocLow(n); ok {
		return addr, nil
	}
	a.GC()
	if ok, addr := a.tryAllocLow(n); ok {
		return addr, nil
	}
	return 0, ErrOutOfMemory
}

func (a *Arena) tryAllocLow(n int) (bool, Addr) {
	need, err := safecast.Conv[Addr](n)
	if err != nil {
		return false, 0
	}
	newTop := a.lowTop + need
	if newTop+a.scratchTop > a.stackBot {
		return false, 0
	}
	addr := a.lowTop
	a.lowTop = newTop
	return true, addr
}

// lowObjectsEnd returns the current low-objects top, the base the
// scratchpad's length (scratchTop) is measured from.
func (a *Arena) lowObjectsEnd() Addr { return a.lowTop }

// ScratchMark returns a snapshot of the scratchpad's current high-water
// mark; pair with ScratchReset on an abandoned parse (spec §9's scoped
// scratchpad re-architecture point).
func (a *Arena) ScratchMark() Addr { return a.scratchTop }

// ScratchReset discards everything written to the scratchpad since mark.
func (a *Arena) ScratchReset(mark Addr) { a.scratchTop = mark }

// ScratchAppend writes b to the scratchpad, growing it, and returns the
// address the bytes were written at.
func (a *Arena) ScratchAppend(b []byte) (Addr, error) {
	start := a.lowTop + a.scratchTop
	end := start + Addr(len(b))
	if end > a.stackBot {
		return 0, ErrOutOfMemory
	}
	copy(a.buf[start:end], b)
	addr := a.lowTop + a.scratchTop
	a.scratchTop += Addr(len(b))
	return addr, nil
}

// ScratchCommit copies the scratchpad's current contents (from base to
// the current mark) into a freshly allocated low-objects slot and
// resets the scratchpad, returning the new object's address (spec
// §4.1's "accumulate then commit with a single allocation").
func (a *Arena) ScratchCommit(base Addr) (Addr, error) {
	start := a.lowTop + base
	end := a.lowTop + a.scratchTop
	n := int(end - start)
	addr, err := a.AllocLow(n)
	if err != nil {
		return 0, err
	}
	copy(a.buf[addr:], a.buf[start:end])
	a.ScratchReset(base)
	return addr, nil
}

// StackAlloc carves n bytes off the top of the stacks region, growing
// it downward, and returns the address of the first byte of the new
// slot.
func (a *Arena) StackAlloc(n int) (Addr, error) {
	need, err := safecast.Conv[Addr](n)
	if err != nil {
		return 0, ErrOutOfMemory
	}
	if a.stackBot < need || a.stackBot-need < a.lowTop+a.scratchTop {
		return 0, ErrOutOfMemory
	}
	a.stackBot -= need
	return a.stackBot, nil
}

// StackFree returns n bytes to the stacks region (LIFO, like AllocLow's
// mirror image on the other end of the buffer).
func (a *Arena) StackFree(n int) {
	need, err := safecast.Conv[Addr](n)
	if err != nil {
		return
	}
	a.stackBot += need
}

// Stats reports a point-in-time snapshot for diagnostics and tests
// (ground: the teacher's heap_debug.go-style stats snapshot, repurposed
// for this arena's three-region layout instead of a refcounted heap).
type Stats struct {
	Capacity     int
	LowObjects   int
	Scratchpad   int
	StacksFree   int
	HandleCount  int
}

func (a *Arena) Stats() Stats {
	return Stats{
		Capacity:    len(a.buf),
		LowObjects:  int(a.lowTop),
		Scratchpad:  int(a.scratchTop),
		StacksFree:  int(a.stackBot) - int(a.lowTop) - int(a.scratchTop),
		HandleCount: len(a.handles),
	}
}
