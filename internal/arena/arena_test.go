package arena

import "testing"

// fixedSizer treats every object as a 4-byte record: 1 tag byte plus a
// 3-byte payload, enough to exercise GC without a real object package.
type fixedSizer struct{}

func (fixedSizer) Size(buf []byte, addr Addr) (int, error) { return 4, nil }

func TestAllocLow(t *testing.T) {
	a := New(1024, fixedSizer{})
	addr, err := a.AllocLow(4)
	if err != nil {
		t.Fatalf("AllocLow: %v", err)
	}
	if addr != 1 {
		t.Fatalf("first allocation addr = %d, want 1", addr)
	}
	addr2, err := a.AllocLow(4)
	if err != nil {
		t.Fatalf("AllocLow: %v", err)
	}
	if addr2 != 5 {
		t.Fatalf("second allocation addr = %d, want 5", addr2)
	}
}

func TestGCCompactsDeadObjects(t *testing.T) {
	a := New(1024, fixedSizer{})
	first, _ := a.AllocLow(4)
	a.buf[first] = 0xAA
	second, _ := a.AllocLow(4)
	a.buf[second] = 0xBB

	h := a.NewHandle(second) // only the second object stays live
	a.GC()

	if got := h.Addr(); got != 1 {
		t.Fatalf("surviving handle addr after GC = %d, want 1", got)
	}
	if a.buf[1] != 0xBB {
		t.Fatalf("GC did not slide the live object's bytes")
	}
	if a.lowTop != 5 {
		t.Fatalf("lowTop after GC = %d, want 5", a.lowTop)
	}
}

func TestHandleRelease(t *testing.T) {
	a := New(1024, fixedSizer{})
	addr, _ := a.AllocLow(4)
	h1 := a.NewHandle(addr)
	h2 := a.NewHandle(addr)
	h1.Release()
	if len(a.handles) != 1 {
		t.Fatalf("handle count after release = %d, want 1", len(a.handles))
	}
	if h2.Addr() != addr {
		t.Fatalf("remaining handle address changed after release")
	}
}

func TestScratchCommit(t *testing.T) {
	a := New(1024, fixedSizer{})
	mark := a.ScratchMark()
	if _, err := a.ScratchAppend([]byte{1, 2, 3}); err != nil {
		t.Fatalf("ScratchAppend: %v", err)
	}
	addr, err := a.ScratchCommit(mark)
	if err != nil {
		t.Fatalf("ScratchCommit: %v", err)
	}
	if got := a.buf[addr : int(addr)+3]; got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("committed scratch bytes = %v, want [1 2 3]", got)
	}
	if a.scratchTop != mark {
		t.Fatalf("scratchpad not reset after commit")
	}
}

func TestStackAllocFree(t *testing.T) {
	a := New(1024, fixedSizer{})
	addr, err := a.StackAlloc(8)
	if err != nil {
		t.Fatalf("StackAlloc: %v", err)
	}
	if int(addr) != len(a.buf)-8 {
		t.Fatalf("stack addr = %d, want %d", addr, len(a.buf)-8)
	}
	a.StackFree(8)
	if a.stackBot != Addr(len(a.buf)) {
		t.Fatalf("stackBot after free = %d, want %d", a.stackBot, len(a.buf))
	}
}
