package vdstring_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianwillis98/vds/alphabet"
	"github.com/ianwillis98/vds/vdchar"
	"github.com/ianwillis98/vds/vdstring"
)

// mustChar builds a Char or fails the test; keeps fixtures compact.
func mustChar(t *testing.T, r rune) vdchar.Char {
	t.Helper()
	c, err := vdchar.New(r)
	require.NoErrorf(t, err, "fixture char %q must be valid", r)

	return c
}

// TestParse_ValidString checks that a valid code round-trips exactly.
func TestParse_ValidString(t *testing.T) {
	s, err := vdstring.Parse("AB29XY")
	require.NoError(t, err)

	assert.Equal(t, "AB29XY", s.String(), "projection must equal the input exactly")
	assert.Equal(t, 6, s.Len())
	assert.False(t, s.IsEmpty())
}

// TestParse_InvalidString checks that '0' at position 2 rejects
// the whole input, reporting position and offender.
func TestParse_InvalidString(t *testing.T) {
	_, err := vdstring.Parse("AB0XY")
	require.ErrorIs(t, err, vdstring.ErrInvalidString)

	var pe *vdstring.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Pos)
	assert.Equal(t, '0', pe.Rune)
}

// TestParse_FirstOffenderReported ensures the error identifies the first
// invalid character, not a later one.
func TestParse_FirstOffenderReported(t *testing.T) {
	_, err := vdstring.Parse("XO0I")

	var pe *vdstring.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Pos)
	assert.Equal(t, 'O', pe.Rune)
}

// TestParse_EmptyIsValid encodes the decided policy: the empty string is
// a valid zero-length code.
func TestParse_EmptyIsValid(t *testing.T) {
	s, err := vdstring.Parse("")
	require.NoError(t, err)

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "", s.String())
}

// TestParse_MembershipEquivalence: parsing succeeds iff every character
// is an alphabet member, checked across single-character inputs.
func TestParse_MembershipEquivalence(t *testing.T) {
	for r := rune(1); r < 128; r++ {
		_, err := vdstring.Parse(string(r))
		if alphabet.Contains(r) {
			assert.NoErrorf(t, err, "Parse(%q) must succeed", r)
		} else {
			assert.ErrorIsf(t, err, vdstring.ErrInvalidString, "Parse(%q) must fail", r)
		}
	}
}

// TestParse_RoundTripIdempotence: re-parsing a projection yields an equal value.
func TestParse_RoundTripIdempotence(t *testing.T) {
	for _, input := range []string{"", "A", "M29W", "AB29XY", "ABCDEFGHJKMNPQRSTUVWXYZ23456789"} {
		first, err := vdstring.Parse(input)
		require.NoErrorf(t, err, "Parse(%q)", input)

		second, err := vdstring.Parse(first.String())
		require.NoError(t, err)
		assert.Truef(t, first.Equal(second), "parse∘string must be idempotent for %q", input)
	}
}

// TestFromChars_BuildsAndOwns verifies accumulation-path construction and
// exclusive ownership of the sequence.
func TestFromChars_BuildsAndOwns(t *testing.T) {
	chars := []vdchar.Char{mustChar(t, 'A'), mustChar(t, 'B'), mustChar(t, '2')}
	s := vdstring.FromChars(chars)

	assert.Equal(t, "AB2", s.String())

	// Mutating the source slice must not affect the constructed value.
	chars[0] = mustChar(t, 'Z')
	assert.Equal(t, "AB2", s.String(), "FromChars must copy its input")

	// Mutating the Chars() copy must not affect the value either.
	out := s.Chars()
	out[1] = mustChar(t, 'Z')
	assert.Equal(t, "AB2", s.String(), "Chars must return a copy")
}

// TestAt_IndexedAccess covers in-range access and the out-of-range sentinel.
func TestAt_IndexedAccess(t *testing.T) {
	s, err := vdstring.Parse("5K7")
	require.NoError(t, err)

	c, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, '5', c.Rune())

	c, err = s.At(2)
	require.NoError(t, err)
	assert.Equal(t, "7", c.String())

	_, err = s.At(3)
	assert.ErrorIs(t, err, vdstring.ErrIndexOutOfRange)

	_, err = s.At(-1)
	assert.ErrorIs(t, err, vdstring.ErrIndexOutOfRange)
}

// TestEach_IsRestartableAndOrdered verifies the forward walk: ordered,
// finite, stoppable, and restartable without mutation.
func TestEach_IsRestartableAndOrdered(t *testing.T) {
	s, err := vdstring.Parse("X2Z")
	require.NoError(t, err)

	collect := func() []rune {
		var rs []rune
		s.Each(func(_ int, c vdchar.Char) bool {
			rs = append(rs, c.Rune())
			return true
		})

		return rs
	}

	assert.Equal(t, []rune{'X', '2', 'Z'}, collect())
	assert.Equal(t, []rune{'X', '2', 'Z'}, collect(), "second walk must see the same sequence")

	// Early stop after the first element.
	var visited int
	s.Each(func(i int, _ vdchar.Char) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}

// TestEqualAndCompare verifies structural equality and lexicographic order
// consistent with the plain-text projections.
func TestEqualAndCompare(t *testing.T) {
	a, err := vdstring.Parse("AB2")
	require.NoError(t, err)
	b, err := vdstring.Parse("AB2")
	require.NoError(t, err)
	c, err := vdstring.Parse("AB3")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, 1, c.Compare(a))

	// Prefix ordering matches plain strings.
	short, err := vdstring.Parse("AB")
	require.NoError(t, err)
	assert.Equal(t, -1, short.Compare(a))
}

// TestConcat_ComposesValidStrings verifies safe composition.
func TestConcat_ComposesValidStrings(t *testing.T) {
	left, err := vdstring.Parse("AB")
	require.NoError(t, err)
	right, err := vdstring.Parse("29")
	require.NoError(t, err)

	joined := left.Concat(right)
	assert.Equal(t, "AB29", joined.String())
	assert.Equal(t, 4, joined.Len())

	empty := vdstring.VDString{}
	assert.True(t, left.Concat(empty).Equal(left))
	assert.True(t, empty.Concat(right).Equal(right))
}

// TestParseError_Unwrap documents the errors.Is/errors.As contract.
func TestParseError_Unwrap(t *testing.T) {
	_, err := vdstring.Parse("bad")
	assert.True(t, errors.Is(err, vdstring.ErrInvalidString))

	var pe *vdstring.ParseError
	assert.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Error(), "position 0")
}

// TestZeroValue_IsEmptyString documents the zero-value contract.
func TestZeroValue_IsEmptyString(t *testing.T) {
	var s vdstring.VDString
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "", s.String())
	assert.Nil(t, s.Chars())
}
