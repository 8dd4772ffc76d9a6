package tonal

import (
	"fmt"
)

// Letter is one of the seven natural note letters C..B.
type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

const letterNames = "CDEFGAB"

// letterBases are the fixed semitone offsets of the natural letters within
// an octave.
var letterBases = [7]int{0, 2, 4, 5, 7, 9, 11}

// String returns the letter as a single character.
func (l Letter) String() string {
	if l < C || l > B {
		return "?"
	}
	return string(letterNames[l])
}

// Degree returns the 1..7 position of the letter in the diatonic C major
// reference sequence: 1 for C, 7 for B.
func (l Letter) Degree() int { return int(l) + 1 }

// Accidental is the semitone modifier applied to a natural letter.
type Accidental int

const (
	DoubleFlat Accidental = iota - 2
	Flat
	Natural
	Sharp
	DoubleSharp
)

// String returns the accidental suffix: "df", "f", "s", "ds", or the empty
// string for natural.
func (a Accidental) String() string {
	switch a {
	case DoubleFlat:
		return "df"
	case Flat:
		return "f"
	case Natural:
		return ""
	case Sharp:
		return "s"
	case DoubleSharp:
		return "ds"
	}
	return "?"
}

// Pitch is a note name without register: a natural letter plus an
// accidental. Multiple pitches may share the same semitone number; these
// are enharmonic equivalents (Ds and Ef). The zero value is C.
type Pitch struct {
	letter     Letter
	accidental Accidental
}

// enharmonicSpellings lists, for each semitone class 0..11, every spelling
// of the class reachable with at most double accidentals, in priority
// order: the bare natural letter first if the class has one, then flat
// spellings, then sharp, then doubles. The first entry is the canonical
// name of the class, so naturals and flats are preferred over sharps and
// double accidentals.
var enharmonicSpellings = [12][]Pitch{
	{{C, Natural}, {B, Sharp}, {D, DoubleFlat}},
	{{D, Flat}, {C, Sharp}, {B, DoubleSharp}},
	{{D, Natural}, {E, DoubleFlat}, {C, DoubleSharp}},
	{{E, Flat}, {D, Sharp}, {F, DoubleFlat}},
	{{E, Natural}, {F, Flat}, {D, DoubleSharp}},
	{{F, Natural}, {E, Sharp}, {G, DoubleFlat}},
	{{G, Flat}, {F, Sharp}, {E, DoubleSharp}},
	{{G, Natural}, {A, DoubleFlat}, {F, DoubleSharp}},
	{{A, Flat}, {G, Sharp}},
	{{A, Natural}, {B, DoubleFlat}, {G, DoubleSharp}},
	{{B, Flat}, {A, Sharp}, {C, DoubleFlat}},
	{{B, Natural}, {C, Flat}, {A, DoubleSharp}},
}

// NewPitch returns the pitch with the given letter and accidental.
func NewPitch(letter Letter, accidental Accidental) (Pitch, error) {
	if letter < C || letter > B {
		return Pitch{}, fmt.Errorf("%w: letter %d is not one of C, D, E, F, G, A, B", ErrBadArgument, int(letter))
	}
	if accidental < DoubleFlat || accidental > DoubleSharp {
		return Pitch{}, fmt.Errorf("%w: accidental %d is not between double flat and double sharp", ErrBadArgument, int(accidental))
	}
	return Pitch{letter: letter, accidental: accidental}, nil
}

// ParsePitch parses a pitch name: a natural letter optionally followed by
// an accidental suffix, e.g. "C", "As", "Gdf". The suffix "n" is accepted
// as an explicit natural.
func ParsePitch(name string) (Pitch, error) {
	if len(name) == 0 {
		return Pitch{}, fmt.Errorf("%w: empty pitch name", ErrBadFormat)
	}
	var letter Letter
	switch name[0] {
	case 'C':
		letter = C
	case 'D':
		letter = D
	case 'E':
		letter = E
	case 'F':
		letter = F
	case 'G':
		letter = G
	case 'A':
		letter = A
	case 'B':
		letter = B
	default:
		return Pitch{}, fmt.Errorf("%w: pitch letter should be one of C, D, E, F, G, A, B, got %q", ErrBadFormat, name[:1])
	}
	var accidental Accidental
	switch name[1:] {
	case "", "n":
		accidental = Natural
	case "f":
		accidental = Flat
	case "s":
		accidental = Sharp
	case "df":
		accidental = DoubleFlat
	case "ds":
		accidental = DoubleSharp
	default:
		return Pitch{}, fmt.Errorf("%w: pitch accidental should be one of s, f, ds, df, n, got %q", ErrBadFormat, name[1:])
	}
	return Pitch{letter: letter, accidental: accidental}, nil
}

// PitchFromNumber resolves a semitone number 0..11 to its canonical
// spelling: the bare natural letter if the class has one, otherwise the
// flat spelling of the next letter up.
func PitchFromNumber(n int) (Pitch, error) {
	if n < 0 || n > 11 {
		return Pitch{}, fmt.Errorf("%w: pitch number should be between 0 and 11, got %d", ErrOutOfRange, n)
	}
	return enharmonicSpellings[n][0], nil
}

// Letter returns the natural letter of the pitch.
func (p Pitch) Letter() Letter { return p.letter }

// Accidental returns the accidental of the pitch.
func (p Pitch) Accidental() Accidental { return p.accidental }

// Number returns the semitone number of the pitch, 0..11, with C = 0.
func (p Pitch) Number() int {
	return (p.offset()%12 + 12) % 12
}

// offset is the semitone offset of the pitch within its octave, without
// wrapping: -2 for Cdf, 12 for Bs.
func (p Pitch) offset() int {
	return letterBases[p.letter] + int(p.accidental)
}

// Degree returns the 1..7 diatonic degree of the pitch's letter.
func (p Pitch) Degree() int { return p.letter.Degree() }

// String returns the canonical name of the pitch, e.g. "C", "As", "Gdf".
func (p Pitch) String() string {
	return p.letter.String() + p.accidental.String()
}

// Enharmonics returns all spellings of the pitch's semitone class in
// priority order, including the pitch itself.
func (p Pitch) Enharmonics() []Pitch {
	spellings := enharmonicSpellings[p.Number()]
	ret := make([]Pitch, len(spellings))
	copy(ret, spellings)
	return ret
}

// Shift returns the pitch shifted by the interval in the given direction.
// The target semitone class and the target letter are computed
// independently: the class from the interval's semitone size, the letter by
// walking the interval's diatonic degree along the cyclic letter sequence.
// The spelling of the target class carrying the target letter is returned
// when one exists within double accidentals; otherwise the shift falls back
// to the sharpest spelling of the class when raising and the flattest when
// lowering.
func (p Pitch) Shift(iv Interval, direction Direction) (Pitch, error) {
	if direction != Up && direction != Down {
		return Pitch{}, fmt.Errorf("%w: shift direction should be Up or Down, got %d", ErrBadArgument, int(direction))
	}
	number := ((p.Number()+int(direction)*iv.Semitones())%12 + 12) % 12
	steps := int(direction) * (iv.SingleDegree() - 1)
	letter := Letter(((int(p.letter)+steps)%7 + 7) % 7)
	spellings := enharmonicSpellings[number]
	for _, s := range spellings {
		if s.letter == letter {
			return s, nil
		}
	}
	extreme := spellings[0]
	for _, s := range spellings[1:] {
		if (direction == Up) == (s.accidental > extreme.accidental) {
			extreme = s
		}
	}
	return extreme, nil
}

// Raise returns the pitch raised by the interval.
func (p Pitch) Raise(iv Interval) (Pitch, error) { return p.Shift(iv, Up) }

// Lower returns the pitch lowered by the interval.
func (p Pitch) Lower(iv Interval) (Pitch, error) { return p.Shift(iv, Down) }
