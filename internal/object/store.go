package object

import "rpl/internal/arena"

// Put encodes obj and copies it into freshly allocated low-objects
// space, returning its address. This is the only place an Object
// crosses from the in-memory Go value into arena-owned bytes.
func Put(a *arena.Arena, obj Object) (arena.Addr, error) {
	enc := Encode(nil, obj)
	addr, err := a.AllocLow(len(enc))
	if err != nil {
		return 0, err
	}
	copy(a.Bytes()[addr:], enc)
	return addr, nil
}

// Get decodes the object living at addr in a's backing buffer.
func Get(a *arena.Arena, addr arena.Addr) (Object, error) {
	obj, _, err := Decode(a.Bytes()[addr:])
	if err != nil {
		return nil, err
	}
	return obj, nil
}
