package tonal

import "gopkg.in/yaml.v3"

// Pitch, Interval and Note marshal as their canonical name strings, so they
// appear as "As" or "M9" rather than structs inside JSON and YAML
// documents.

// MarshalText implements encoding.TextMarshaler.
func (p Pitch) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pitch) UnmarshalText(text []byte) error {
	parsed, err := ParsePitch(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler, as the yaml package does not
// fall back to encoding.TextUnmarshaler when decoding.
func (p *Pitch) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(name))
}

// MarshalText implements encoding.TextMarshaler.
func (i Interval) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Interval) UnmarshalText(text []byte) error {
	parsed, err := ParseInterval(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *Interval) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	return i.UnmarshalText([]byte(name))
}

// MarshalText implements encoding.TextMarshaler.
func (n Note) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Note) UnmarshalText(text []byte) error {
	parsed, err := ParseNote(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Note) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	return n.UnmarshalText([]byte(name))
}
