package object

import "rpl/internal/arena"

// ArenaSizer implements arena.Sizer by decoding the object at addr and
// reporting how many bytes its encoding occupied. This package depends
// on arena.Addr/arena.Sizer, not the reverse, so there is no import
// cycle between the two: arena never imports object.
type ArenaSizer struct{}

// Size decodes the tagged object starting at addr and returns its
// total encoded length in bytes.
func (ArenaSizer) Size(buf []byte, addr arena.Addr) (int, error) {
	_, n, err := Decode(buf[addr:])
	if err != nil {
		return 0, err
	}
	return n, nil
}
