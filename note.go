package tonal

import (
	"fmt"
	"strconv"
)

// MiddleC is the standard note number of middle C (C4).
const MiddleC = 60

// MaxOctave is the highest octave register in scientific pitch notation;
// nothing above C sounds in it.
const MaxOctave = 8

// Note is a pitch qualified with an absolute octave register 0..8, mapping
// to the standard 0..127 note numbering where 60 is middle C. The
// representable range runs from C0 (12) up to the scientific pitch ceiling
// C8 (108); spellings slightly outside an octave boundary, such as Cf0, are
// allowed as long as the sounding note stays below the ceiling.
type Note struct {
	pitch  Pitch
	octave int
}

// NewNote returns the note with the given pitch class and octave.
func NewNote(pitch Pitch, octave int) (Note, error) {
	if octave < 0 || octave > MaxOctave {
		return Note{}, fmt.Errorf("%w: octave should be between 0 and %d, got %d", ErrOutOfRange, MaxOctave, octave)
	}
	if octave == MaxOctave && pitch.offset() > 0 {
		return Note{}, fmt.Errorf("%w: no pitches above C in octave %d", ErrOutOfRange, MaxOctave)
	}
	return Note{pitch: pitch, octave: octave}, nil
}

// ParseNote parses a note name: a pitch name followed by an octave digit,
// e.g. "C4", "As3", "Gdf6".
func ParseNote(name string) (Note, error) {
	if len(name) < 2 {
		return Note{}, fmt.Errorf("%w: note name %q is too short", ErrBadFormat, name)
	}
	octave, err := strconv.Atoi(name[len(name)-1:])
	if err != nil {
		return Note{}, fmt.Errorf("%w: note name %q should end in an octave digit", ErrBadFormat, name)
	}
	pitch, err := ParsePitch(name[:len(name)-1])
	if err != nil {
		return Note{}, err
	}
	return NewNote(pitch, octave)
}

// NoteFromNumber resolves a note number to a note, using the canonical
// spelling of the pitch class. The representable range is C0 (12) to C8
// (108).
func NoteFromNumber(n int) (Note, error) {
	if n < 12 || n > 108 {
		return Note{}, fmt.Errorf("%w: note number should be between 12 (C0) and 108 (C8), got %d", ErrOutOfRange, n)
	}
	pitch, _ := PitchFromNumber(n % 12)
	return Note{pitch: pitch, octave: n/12 - 1}, nil
}

// Pitch returns the pitch class of the note.
func (n Note) Pitch() Pitch { return n.pitch }

// Octave returns the octave register of the note, 0..8.
func (n Note) Octave() int { return n.octave }

// Number returns the standard note number of the note, with 60 = middle C.
// Enharmonic spelling is honored across octave boundaries: Bs3 and C4 are
// both 60.
func (n Note) Number() int {
	return (n.octave+1)*12 + n.pitch.offset()
}

// String returns the canonical name of the note, e.g. "C4", "As3".
func (n Note) String() string {
	return n.pitch.String() + strconv.Itoa(n.octave)
}

// Shift returns the note shifted by the interval in the given direction.
// The pitch class shifts as for a bare Pitch; the octave register follows
// the interval's full semitone span, so compound intervals cross as many
// octave boundaries as they span. Shifting past C8 or below octave 0
// returns ErrOutOfRange.
func (n Note) Shift(iv Interval, direction Direction) (Note, error) {
	pitch, err := n.pitch.Shift(iv, direction)
	if err != nil {
		return Note{}, err
	}
	number := n.Number() + int(direction)*iv.Semitones()
	return NewNote(pitch, (number-pitch.offset())/12-1)
}

// Raise returns the note raised by the interval.
func (n Note) Raise(iv Interval) (Note, error) { return n.Shift(iv, Up) }

// Lower returns the note lowered by the interval.
func (n Note) Lower(iv Interval) (Note, error) { return n.Shift(iv, Down) }
