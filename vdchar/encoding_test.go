package vdchar_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ianwillis98/vds/vdchar"
)

// TestJSON_RoundTrip checks the canonical one-character JSON form.
func TestJSON_RoundTrip(t *testing.T) {
	c, err := vdchar.New('M')
	require.NoError(t, err)

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `"M"`, string(data))

	var back vdchar.Char
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, c, back)
}

// TestJSON_InvalidFailsLikeNew ensures decoding shares New's failure mode.
func TestJSON_InvalidFailsLikeNew(t *testing.T) {
	var c vdchar.Char

	err := json.Unmarshal([]byte(`"O"`), &c)
	assert.ErrorIs(t, err, vdchar.ErrNotInAlphabet, "excluded glyph must fail decode")

	err = json.Unmarshal([]byte(`"!"`), &c)
	assert.ErrorIs(t, err, vdchar.ErrNotInAlphabet)

	err = json.Unmarshal([]byte(`"AB"`), &c)
	assert.Error(t, err, "multi-character input must fail decode")

	err = json.Unmarshal([]byte(`""`), &c)
	assert.Error(t, err, "empty input must fail decode")
}

// TestYAML_RoundTrip checks the YAML adapter against the same canonical form.
func TestYAML_RoundTrip(t *testing.T) {
	c, err := vdchar.New('7')
	require.NoError(t, err)

	data, err := yaml.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, "\"7\"\n", string(data))

	var back vdchar.Char
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, c, back)
}

// TestYAML_InvalidFailsLikeNew mirrors the JSON negative cases for YAML.
func TestYAML_InvalidFailsLikeNew(t *testing.T) {
	var c vdchar.Char

	err := yaml.Unmarshal([]byte(`"0"`), &c)
	assert.ErrorIs(t, err, vdchar.ErrNotInAlphabet, "'0' is excluded; decode must fail")

	err = yaml.Unmarshal([]byte(`"xy"`), &c)
	assert.Error(t, err)
}
