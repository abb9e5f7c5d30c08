package object

import "errors"

// ErrCorruptTag is returned when a type tag is out of the densely
// assigned [0,NumTags) range (spec §3: "an out-of-range tag is a fatal
// corruption").
var ErrCorruptTag = errors.New("object: corrupt type tag")

// ErrTruncated is returned when a payload is shorter than its tag
// declares it should be.
var ErrTruncated = errors.New("object: truncated payload")
