// SPDX-License-Identifier: MIT
// Package vdstring: encoding adapters.
//
// Canonical form is the delimiter-free concatenation of the characters.
// Decoding delegates to Parse — the same all-or-nothing validation as
// direct construction, never a looser path.

package vdstring

import "gopkg.in/yaml.v3"

// MarshalText encodes the VDString as its canonical text form.
// Implements encoding.TextMarshaler; encoding/json picks this up, so a
// VDString serializes as a plain JSON string like "AB29XY".
func (v VDString) MarshalText() ([]byte, error) {
	return []byte(v.text), nil
}

// UnmarshalText decodes and validates via Parse.
// Implements encoding.TextUnmarshaler.
func (v *VDString) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed

	return nil
}

// MarshalYAML encodes the VDString as a YAML scalar.
// Implements yaml.Marshaler (yaml.v3 does not consult TextMarshaler).
func (v VDString) MarshalYAML() (interface{}, error) {
	return v.text, nil
}

// UnmarshalYAML decodes a YAML scalar through Parse.
// Implements yaml.Unmarshaler.
func (v *VDString) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	return v.UnmarshalText([]byte(s))
}
