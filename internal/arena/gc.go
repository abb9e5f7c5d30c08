package arena

import (
	"fmt"
	"sort"
)

// GC runs one compacting pass over the low-objects region (ground:
// original_source/src/runtime.cc's gc(): mark roots, compute new
// addresses by a forward sweep, slide survivors, rewrite every handle
// and stack slot). Dead bytes between live objects are simply never
// copied forward.
func (a *Arena) GC() {
	liveAddrs := a.collectRootAddrs()
	if len(liveAddrs) == 0 {
		a.compactEmpty()
		return
	}

	sort.Slice(liveAddrs, func(i, j int) bool { return liveAddrs[i] < liveAddrs[j] })

	type span struct {
		oldAddr, newAddr Addr
		size             int
	}
	spans := make([]span, 0, len(liveAddrs))
	cursor := Addr(1)
	var prev Addr = 0
	for _, old := range liveAddrs {
		if old == prev {
			continue // duplicate root into the same object
		}
		prev = old
		n, err := a.sizer.Size(a.buf, old)
		if err != nil || n < 0 {
			continue
		}
		spans = append(spans, span{oldAddr: old, newAddr: cursor, size: n})
		cursor += Addr(n)
	}

	remap := make(map[Addr]Addr, len(spans))
	for _, s := range spans {
		remap[s.oldAddr] = s.newAddr
		copy(a.buf[s.newAddr:int(s.newAddr)+s.size], a.buf[s.oldAddr:int(s.oldAddr)+s.size])
	}

	oldLowTop := a.lowTop
	newLowTop := cursor
	if newLowTop != oldLowTop {
		scratchStart := oldLowTop
		scratchLen := int(a.scratchTop)
		copy(a.buf[newLowTop:int(newLowTop)+scratchLen], a.buf[scratchStart:int(scratchStart)+scratchLen])
	}
	a.lowTop = newLowTop

	for _, h := range a.handles {
		if na, ok := remap[h.addr]; ok {
			h.addr = na
		}
	}
	for _, root := range a.stackRoots {
		for i, addr := range *root {
			if na, ok := remap[addr]; ok {
				(*root)[i] = na
			}
		}
	}
	a.integrityCheck()
}

// integrityCheck re-walks every live root after compaction and verifies
// it still points at the start of a well-formed object (ground:
// original_source/src/runtime.cc's integrity_test). Only does any work
// when the "gc" trace channel is enabled.
func (a *Arena) integrityCheck() {
	if !a.gcTrace.Enabled() {
		return
	}
	for _, h := range a.handles {
		if h.addr == 0 {
			continue
		}
		if _, err := a.sizer.Size(a.buf, h.addr); err != nil {
			a.gcTrace.Point(fmt.Sprintf("corrupt handle at addr %d: %v", h.addr, err))
		}
	}
	for _, root := range a.stackRoots {
		for _, addr := range *root {
			if addr == 0 {
				continue
			}
			if _, err := a.sizer.Size(a.buf, addr); err != nil {
				a.gcTrace.Point(fmt.Sprintf("corrupt root at addr %d: %v", addr, err))
			}
		}
	}
}

// compactEmpty resets the low-objects region to empty when GC finds no
// live roots at all (every stack/handle/directory root is nil).
func (a *Arena) compactEmpty() {
	scratchLen := int(a.scratchTop)
	copy(a.buf[1:1+scratchLen], a.buf[int(a.lowTop):int(a.lowTop)+scratchLen])
	a.lowTop = 1
}

// collectRootAddrs gathers every live root address: registered
// handles, every stack-root slice entry (operand stack, locals frames,
// directory tree), skipping the nil address 0.
func (a *Arena) collectRootAddrs() []Addr {
	var out []Addr
	for _, h := range a.handles {
		if h.addr != 0 {
			out = append(out, h.addr)
		}
	}
	for _, root := range a.stackRoots {
		for _, addr := range *root {
			if addr != 0 {
				out = append(out, addr)
			}
		}
	}
	return out
}
