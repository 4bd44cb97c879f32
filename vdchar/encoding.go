// SPDX-License-Identifier: MIT
// Package vdchar: encoding adapters.
//
// Canonical form is the bare character, no delimiters or escaping.
// Decoding delegates to New so every path shares one validation gate:
// an input that direct construction rejects is rejected here too.

package vdchar

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText encodes the Char as its canonical single character.
// Implements encoding.TextMarshaler; encoding/json picks this up, so a
// Char serializes as a one-character JSON string.
func (c Char) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a single character and validates it via New.
// Implements encoding.TextUnmarshaler.
func (c *Char) UnmarshalText(text []byte) error {
	rs := []rune(string(text))
	if len(rs) != 1 {
		return fmt.Errorf("vdchar: expected exactly one character, got %d", len(rs))
	}

	ch, err := New(rs[0])
	if err != nil {
		return err
	}
	*c = ch

	return nil
}

// MarshalYAML encodes the Char as a one-character YAML scalar.
// Implements yaml.Marshaler (yaml.v3 does not consult TextMarshaler).
func (c Char) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// UnmarshalYAML decodes a YAML scalar through the same validating path
// as UnmarshalText. Implements yaml.Unmarshaler.
func (c *Char) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	return c.UnmarshalText([]byte(s))
}
