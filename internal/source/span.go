// Package source tracks byte positions within the text being parsed or
// rendered. The runtime parses one buffer at a time (keystrokes, a loaded
// program, or a state file being replayed) rather than a multi-file
// compilation unit, so this package is deliberately small: a single Span
// type used to report where in that buffer an error occurred.
package source

import "fmt"

// Span is a half-open byte range [Start, End) within the current source
// buffer.
type Span struct {
	Start int
	End   int
}

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool { return s.Start == s.End }

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Start, s.End)
}

// At returns a zero-length span positioned at offset.
func At(offset int) Span { return Span{Start: offset, End: offset} }

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	r := s
	if other.Start < r.Start {
		r.Start = other.Start
	}
	if other.End > r.End {
		r.End = other.End
	}
	return r
}
