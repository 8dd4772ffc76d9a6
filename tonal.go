// Package tonal models Western musical pitch classes and the intervals
// between them, independent of any key, scale or mode. It answers two kinds
// of question: what pitch results from shifting a given pitch by a named
// interval in a given direction, and what interval lies between two given
// pitches. Pitches and intervals are plain immutable values; all operations
// are deterministic functions of their inputs and two fixed canonical
// tables (the within-octave interval table and the enharmonic spelling
// table).
package tonal

import "errors"

// The three error kinds the engine distinguishes. Every failure is a local,
// synchronous construction or argument error; wrap-compare with errors.Is.
var (
	// ErrBadFormat indicates a name string that does not match the pitch or
	// interval grammar.
	ErrBadFormat = errors.New("bad format")

	// ErrOutOfRange indicates a numeric input outside the legal bounds of
	// the domain.
	ErrOutOfRange = errors.New("out of range")

	// ErrBadArgument indicates an argument misuse that is neither a format
	// nor a range problem, e.g. a shift direction other than Up or Down, or
	// an enum value cast from outside its named constants.
	ErrBadArgument = errors.New("bad argument")
)

// Direction tells which way a pitch is shifted by an interval.
type Direction int

const (
	Down Direction = -1 // lower the pitch
	Up   Direction = 1  // raise the pitch
)
