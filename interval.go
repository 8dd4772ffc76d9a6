package tonal

import (
	"fmt"
	"strconv"
)

// Quality is the ordered modifier of an interval's size: diminished, minor,
// perfect, major or augmented.
type Quality int

const (
	Diminished Quality = iota - 2
	Minor
	Perfect
	Major
	Augmented
)

const qualityLetters = "dmPMA"

// String returns the single-letter form of the quality: d, m, P, M or A.
func (q Quality) String() string {
	if q < Diminished || q > Augmented {
		return "?"
	}
	return string(qualityLetters[q+2])
}

// MaxDegree is the sanity ceiling on interval degrees, about seven octaves
// (88 semitones). The musical domain itself puts no upper bound on compound
// intervals; anything past this is assumed to be a typo.
const MaxDegree = 52

// intervalEntry is one row of the canonical within-octave interval table.
type intervalEntry struct {
	quality   Quality
	degree    int // within-octave degree, 1..8
	semitones int // 0..12
}

// intervalTable is the canonical within-octave interval table and the single
// source of truth for all conversions between names, qualities, degrees and
// semitone counts. The order is significant: when several spellings share a
// semitone count, the earlier entry is the preferred (more natural) one, so
// perfect, major and minor spellings come before diminished and augmented
// ones.
var intervalTable = []intervalEntry{
	{Perfect, 1, 0},     // P1, unison
	{Minor, 2, 1},       // m2
	{Augmented, 1, 1},   // A1
	{Major, 2, 2},       // M2
	{Diminished, 3, 2},  // d3
	{Minor, 3, 3},       // m3
	{Augmented, 2, 3},   // A2
	{Major, 3, 4},       // M3
	{Diminished, 4, 4},  // d4
	{Perfect, 4, 5},     // P4
	{Augmented, 3, 5},   // A3
	{Augmented, 4, 6},   // A4, tritone
	{Diminished, 5, 6},  // d5, tritone
	{Perfect, 5, 7},     // P5
	{Diminished, 6, 7},  // d6
	{Minor, 6, 8},       // m6
	{Augmented, 5, 8},   // A5
	{Major, 6, 9},       // M6
	{Diminished, 7, 9},  // d7
	{Minor, 7, 10},      // m7
	{Augmented, 6, 10},  // A6
	{Major, 7, 11},      // M7
	{Diminished, 8, 11}, // d8
	{Perfect, 8, 12},    // P8, octave
}

func findIntervalByName(quality Quality, degree int) (intervalEntry, bool) {
	for _, e := range intervalTable {
		if e.quality == quality && e.degree == degree {
			return e, true
		}
	}
	return intervalEntry{}, false
}

// findIntervalsBySize returns all within-octave spellings of a semitone
// count, in priority order.
func findIntervalsBySize(semitones int) []intervalEntry {
	var ret []intervalEntry
	for _, e := range intervalTable {
		if e.semitones == semitones {
			ret = append(ret, e)
		}
	}
	return ret
}

// Interval is a labeled distance between two pitch classes, named by a
// quality and a diatonic degree (1 = unison, 8 = octave). Degrees beyond 8
// are compound intervals spanning more than one octave, e.g. M9 is an
// octave plus a major second. The zero value is not a valid interval;
// construct through NewInterval, ParseInterval or IntervalFromSemitones.
type Interval struct {
	quality Quality
	degree  int
}

// NewInterval returns the interval with the given quality and degree.
func NewInterval(quality Quality, degree int) (Interval, error) {
	if quality < Diminished || quality > Augmented {
		return Interval{}, fmt.Errorf("%w: quality %d is not one of d, m, P, M, A", ErrBadArgument, int(quality))
	}
	if degree < 1 || degree > MaxDegree {
		return Interval{}, fmt.Errorf("%w: interval degree %d should be between 1 and %d", ErrOutOfRange, degree, MaxDegree)
	}
	if _, ok := tableSize(quality, degree); !ok {
		return Interval{}, fmt.Errorf("%w: no interval %s%d", ErrBadFormat, quality, degree)
	}
	return Interval{quality: quality, degree: degree}, nil
}

// ParseInterval parses an interval name of the form quality letter followed
// by a positive degree, e.g. "P1", "m7", "A4" or "M9".
func ParseInterval(name string) (Interval, error) {
	if len(name) < 2 {
		return Interval{}, fmt.Errorf("%w: interval name %q is too short", ErrBadFormat, name)
	}
	var quality Quality
	switch name[0] {
	case 'd':
		quality = Diminished
	case 'm':
		quality = Minor
	case 'P':
		quality = Perfect
	case 'M':
		quality = Major
	case 'A':
		quality = Augmented
	default:
		return Interval{}, fmt.Errorf("%w: interval quality should be one of d, m, P, M, A, got %q", ErrBadFormat, name[:1])
	}
	degree, err := strconv.Atoi(name[1:])
	if err != nil {
		return Interval{}, fmt.Errorf("%w: interval degree %q is not a number", ErrBadFormat, name[1:])
	}
	return NewInterval(quality, degree)
}

// IntervalFromSemitones resolves a semitone count to an interval, preferring
// the most natural spelling: among all names sharing the semitone count, the
// earliest in the canonical table wins, so perfect, major and minor
// spellings are preferred over diminished and augmented ones.
func IntervalFromSemitones(n int) (Interval, error) {
	if n < 0 {
		return Interval{}, fmt.Errorf("%w: semitone count should not be negative, got %d", ErrOutOfRange, n)
	}
	e := findIntervalsBySize(n % 12)[0]
	degree := 7*(n/12) + e.degree
	if degree > MaxDegree {
		return Interval{}, fmt.Errorf("%w: %d semitones is beyond degree %d", ErrOutOfRange, n, MaxDegree)
	}
	return Interval{quality: e.quality, degree: degree}, nil
}

// singleDegree reduces a degree to the 1..8 range of the canonical table.
// Unlike SingleDegree, a plain octave (and double octave, and so on) maps to
// 8 rather than 1, so that the table distinguishes P8 from P1.
func singleDegree(degree int) int {
	if degree > 1 && degree%7 == 1 {
		return 8
	}
	return (degree-1)%7 + 1
}

// tableSize resolves a quality and a possibly compound degree to a total
// semitone count through the canonical table. An augmented octave and its
// compounds have no table row of their own; they resolve through A1 with
// the octaves added back, so A8 is 13 semitones.
func tableSize(quality Quality, degree int) (int, bool) {
	single := singleDegree(degree)
	if e, ok := findIntervalByName(quality, single); ok {
		return e.semitones + 12*(degree-single)/7, true
	}
	if single == 8 {
		if e, ok := findIntervalByName(quality, 1); ok {
			return e.semitones + 12*(degree-1)/7, true
		}
	}
	return 0, false
}

// Quality returns the quality of the interval.
func (i Interval) Quality() Quality { return i.quality }

// Degree returns the diatonic degree of the interval, which may be compound
// (greater than 7).
func (i Interval) Degree() int { return i.degree }

// SingleDegree returns the 1..7 diatonic class of the interval within one
// octave: 2 for both M2 and M9.
func (i Interval) SingleDegree() int { return (i.degree-1)%7 + 1 }

// Octaves returns how many full octaves the degree spans: 0 for M2, 1 for
// M9.
func (i Interval) Octaves() int { return (i.degree - 1) / 7 }

// SingleName returns the name of the interval reduced to the canonical
// within-octave table: "M2" for M9.
func (i Interval) SingleName() string {
	return i.quality.String() + strconv.Itoa(singleDegree(i.degree))
}

// Semitones returns the total size of the interval in semitones, or 0 for
// the invalid zero value.
func (i Interval) Semitones() int {
	s, ok := tableSize(i.quality, i.degree)
	if !ok {
		return 0
	}
	return s
}

// String returns the canonical name of the interval, e.g. "P1", "A4", "M9".
func (i Interval) String() string {
	return i.quality.String() + strconv.Itoa(i.degree)
}

// Invert returns the inversion of the interval: the quality reflects about
// perfect (diminished and augmented swap, minor and major swap) and the
// within-octave degree maps through 9-d, so a 2nd inverts to a 7th, with
// the octave span of a compound interval carried through unchanged.
//
// Unisons, octaves and their compounds need explicit pairing, because in
// the degree encoding a unison raised an octave is the octave itself.
// Perfect ones pair consecutively (P1 with P8, P15 with P22, and so on);
// an augmented one pairs with the diminished one an octave wider (A1 with
// d8, A8 with d15). Inversion is then an involution on every constructible
// interval.
func (i Interval) Invert() Interval {
	single := singleDegree(i.degree)
	if single == 1 || single == 8 {
		m := (i.degree - 1) / 7
		switch {
		case i.quality == Augmented:
			m++
		case i.quality == Diminished:
			m--
		case m%2 == 0:
			m++
		default:
			m--
		}
		return Interval{quality: -i.quality, degree: 7*m + 1}
	}
	return Interval{quality: -i.quality, degree: 9 - single + 7*(i.degree-single)/7}
}

// IntervalBetween evaluates the within-octave interval from root up to top.
// The semitone delta and the diatonic letter distance are computed
// independently; the spelling matching both is returned when the table has
// one, otherwise the preferred spelling of the semitone delta is used as an
// enharmonic fallback. The fallback is a documented policy, not an error.
func IntervalBetween(root, top Pitch) Interval {
	semitones := ((top.Number()-root.Number())%12 + 12) % 12
	steps := ((top.Degree()-root.Degree())%7 + 7) % 7
	candidates := findIntervalsBySize(semitones)
	for _, e := range candidates {
		if e.degree-1 == steps {
			return Interval{quality: e.quality, degree: e.degree}
		}
	}
	e := candidates[0]
	return Interval{quality: e.quality, degree: e.degree}
}

// MinimalIntervalBetween evaluates the interval between two pitches in
// whichever direction yields the smaller semitone span, so the result is at
// most a tritone away from unison. Ties evaluate from b up to a.
func MinimalIntervalBetween(a, b Pitch) Interval {
	up := ((b.Number()-a.Number())%12 + 12) % 12
	down := ((a.Number()-b.Number())%12 + 12) % 12
	if up < down {
		return IntervalBetween(a, b)
	}
	return IntervalBetween(b, a)
}
