package tonal_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/tonalgo/tonal"
)

// voicing exercises the value types as fields of a document, the way a
// client would store them.
type voicing struct {
	Root   tonal.Pitch      `yaml:"root" json:"root"`
	Steps  []tonal.Interval `yaml:"steps,flow" json:"steps"`
	Anchor tonal.Note       `yaml:"anchor" json:"anchor"`
}

func testVoicing(t *testing.T) voicing {
	t.Helper()
	root, err := tonal.ParsePitch("As")
	if err != nil {
		t.Fatalf("ParsePitch failed: %v", err)
	}
	m3, err := tonal.ParseInterval("m3")
	if err != nil {
		t.Fatalf("ParseInterval failed: %v", err)
	}
	m9, err := tonal.ParseInterval("M9")
	if err != nil {
		t.Fatalf("ParseInterval failed: %v", err)
	}
	anchor, err := tonal.ParseNote("Bf3")
	if err != nil {
		t.Fatalf("ParseNote failed: %v", err)
	}
	return voicing{Root: root, Steps: []tonal.Interval{m3, m9}, Anchor: anchor}
}

const expectedMarshaled = `{"root":"As","steps":["m3","M9"],"anchor":"Bf3"}`

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(testVoicing(t))
	if err != nil {
		t.Fatalf("cannot marshal voicing: %v", err)
	}
	if string(data) != expectedMarshaled {
		t.Fatalf("marshaled voicing to unexpected result, got %v, expected %v", string(data), expectedMarshaled)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var v voicing
	if err := json.Unmarshal([]byte(expectedMarshaled), &v); err != nil {
		t.Fatalf("cannot unmarshal voicing: %v", err)
	}
	if !reflect.DeepEqual(v, testVoicing(t)) {
		t.Fatalf("unmarshaled voicing to unexpected result, got %#v", v)
	}
}

func TestRoundTripYAML(t *testing.T) {
	original := testVoicing(t)
	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("cannot marshal voicing: %v", err)
	}
	var back voicing
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("cannot unmarshal voicing: %v", err)
	}
	if !reflect.DeepEqual(back, original) {
		t.Fatalf("yaml round trip changed the voicing, got %#v, expected %#v", back, original)
	}
}

func TestUnmarshalRejectsBadNames(t *testing.T) {
	var p tonal.Pitch
	if err := yaml.Unmarshal([]byte(`"Hs"`), &p); err == nil {
		t.Fatalf("unmarshaling a bad pitch name should fail")
	}
	var iv tonal.Interval
	if err := json.Unmarshal([]byte(`"Q4"`), &iv); err == nil {
		t.Fatalf("unmarshaling a bad interval name should fail")
	}
}
