package leb128

import "errors"

// ErrTruncated is returned when a buffer ends before a LEB128 value does.
var ErrTruncated = errors.New("leb128: truncated varint")
