package tonal_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tonalgo/tonal"
)

func TestParsePitch(t *testing.T) {
	for _, c := range []struct {
		name   string
		number int
	}{
		{"C", 0}, {"Cs", 1}, {"Cf", 11}, {"Cn", 0},
		{"D", 2}, {"Ds", 3}, {"Edf", 2}, {"E", 4}, {"Es", 5},
		{"F", 5}, {"Fdf", 3}, {"Fs", 6}, {"Gdf", 5}, {"G", 7},
		{"Af", 8}, {"A", 9}, {"As", 10}, {"Bf", 10}, {"B", 11}, {"Bds", 1},
	} {
		p, err := tonal.ParsePitch(c.name)
		if err != nil {
			t.Fatalf("ParsePitch(%q) failed: %v", c.name, err)
		}
		if p.Number() != c.number {
			t.Errorf("ParsePitch(%q).Number() = %v, expected %v", c.name, p.Number(), c.number)
		}
		if c.name != "Cn" && p.String() != c.name {
			t.Errorf("ParsePitch(%q).String() = %q", c.name, p.String())
		}
	}
}

func TestParsePitchErrors(t *testing.T) {
	for _, name := range []string{"", "H", "c", "Cx", "Css", "Csf"} {
		if _, err := tonal.ParsePitch(name); !errors.Is(err, tonal.ErrBadFormat) {
			t.Errorf("ParsePitch(%q) = %v, expected ErrBadFormat", name, err)
		}
	}
}

func TestNewPitchBadArguments(t *testing.T) {
	if _, err := tonal.NewPitch(tonal.Letter(7), tonal.Natural); !errors.Is(err, tonal.ErrBadArgument) {
		t.Errorf("NewPitch with a letter outside the enum = %v, expected ErrBadArgument", err)
	}
	if _, err := tonal.NewPitch(tonal.C, tonal.Accidental(3)); !errors.Is(err, tonal.ErrBadArgument) {
		t.Errorf("NewPitch with an accidental outside the enum = %v, expected ErrBadArgument", err)
	}
}

func TestPitchFromNumber(t *testing.T) {
	// naturals and flats are preferred over sharps and double accidentals
	expected := []string{"C", "Df", "D", "Ef", "E", "F", "Gf", "G", "Af", "A", "Bf", "B"}
	for n := 0; n < 12; n++ {
		p, err := tonal.PitchFromNumber(n)
		if err != nil {
			t.Fatalf("PitchFromNumber(%v) failed: %v", n, err)
		}
		if p.String() != expected[n] {
			t.Errorf("PitchFromNumber(%v) = %q, expected %q", n, p.String(), expected[n])
		}
		if p.Number() != n {
			t.Errorf("PitchFromNumber(%v).Number() = %v", n, p.Number())
		}
		back, err := tonal.ParsePitch(p.String())
		if err != nil {
			t.Fatalf("round trip of %q failed: %v", p.String(), err)
		}
		if back.Number() != n {
			t.Errorf("round trip of %v gave number %v", n, back.Number())
		}
	}
	for _, n := range []int{-1, 12, 100} {
		if _, err := tonal.PitchFromNumber(n); !errors.Is(err, tonal.ErrOutOfRange) {
			t.Errorf("PitchFromNumber(%v) = %v, expected ErrOutOfRange", n, err)
		}
	}
}

func TestPitchDegree(t *testing.T) {
	for i, name := range []string{"C", "D", "E", "F", "G", "A", "B"} {
		p, err := tonal.ParsePitch(name)
		if err != nil {
			t.Fatalf("ParsePitch(%q) failed: %v", name, err)
		}
		if p.Degree() != i+1 {
			t.Errorf("%v.Degree() = %v, expected %v", name, p.Degree(), i+1)
		}
	}
}

func TestPitchEnharmonics(t *testing.T) {
	p, _ := tonal.ParsePitch("As")
	var names []string
	for _, e := range p.Enharmonics() {
		names = append(names, e.String())
	}
	expected := []string{"Bf", "As", "Cdf"}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("As.Enharmonics() = %v, expected %v", names, expected)
	}
}

func TestPitchShift(t *testing.T) {
	for _, c := range []struct {
		pitch     string
		interval  string
		direction tonal.Direction
		expected  string
	}{
		{"A", "A4", tonal.Up, "Ds"},
		{"A", "A4", tonal.Down, "Ef"},
		{"C", "M3", tonal.Up, "E"},
		{"C", "M3", tonal.Down, "Af"},
		{"C", "P1", tonal.Up, "C"},
		{"C", "P8", tonal.Up, "C"},
		{"B", "m2", tonal.Up, "C"},
		{"C", "m2", tonal.Down, "B"},
		{"E", "M2", tonal.Up, "Fs"},
		{"Ds", "M3", tonal.Up, "Fds"}, // double sharp spelling preserves the letter arithmetic
		{"Ef", "m3", tonal.Down, "C"},
		{"C", "M9", tonal.Up, "D"}, // compound intervals shift by their diatonic class
		{"F", "A4", tonal.Up, "B"},
		{"Gf", "d5", tonal.Up, "Ddf"},
	} {
		p, err := tonal.ParsePitch(c.pitch)
		if err != nil {
			t.Fatalf("ParsePitch(%q) failed: %v", c.pitch, err)
		}
		iv, err := tonal.ParseInterval(c.interval)
		if err != nil {
			t.Fatalf("ParseInterval(%q) failed: %v", c.interval, err)
		}
		shifted, err := p.Shift(iv, c.direction)
		if err != nil {
			t.Fatalf("%v.Shift(%v, %v) failed: %v", c.pitch, c.interval, c.direction, err)
		}
		if shifted.String() != c.expected {
			t.Errorf("%v.Shift(%v, %v) = %v, expected %v", c.pitch, c.interval, c.direction, shifted, c.expected)
		}
	}
}

func TestPitchShiftFallback(t *testing.T) {
	// Dds raised a major third lands on semitone class 8, which has no
	// spelling with the letter F; raising falls back to the sharpest
	// spelling of the class.
	p, _ := tonal.ParsePitch("Dds")
	m3, _ := tonal.ParseInterval("M3")
	shifted, err := p.Raise(m3)
	if err != nil {
		t.Fatalf("Dds.Raise(M3) failed: %v", err)
	}
	if shifted.String() != "Gs" {
		t.Errorf("Dds.Raise(M3) = %v, expected Gs", shifted)
	}
	// lowering falls back to the flattest spelling
	p, _ = tonal.ParsePitch("Bs")
	d4, _ := tonal.ParseInterval("d4")
	shifted, err = p.Lower(d4)
	if err != nil {
		t.Fatalf("Bs.Lower(d4) failed: %v", err)
	}
	if shifted.String() != "Af" {
		t.Errorf("Bs.Lower(d4) = %v, expected Af", shifted)
	}
}

func TestPitchShiftBadDirection(t *testing.T) {
	p, _ := tonal.ParsePitch("C")
	iv, _ := tonal.ParseInterval("P5")
	for _, direction := range []tonal.Direction{0, 2, -2} {
		if _, err := p.Shift(iv, direction); !errors.Is(err, tonal.ErrBadArgument) {
			t.Errorf("Shift with direction %v = %v, expected ErrBadArgument", direction, err)
		}
	}
}
