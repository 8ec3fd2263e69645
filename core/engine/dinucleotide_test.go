package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqstat-core/alphabet"
)

func TestDinucleotidesAllKeysPresent(t *testing.T) {
	a := alphabet.MustNew("A", "C")
	freqs, err := Dinucleotides("AAAA", a)
	require.NoError(t, err)

	// |A|^2 keys, zero-valued when unseen.
	assert.Len(t, freqs, 4)
	assert.InDelta(t, 1.0, freqs["AA"], 1e-12)
	assert.InDelta(t, 0.0, freqs["AC"], 1e-12)
	assert.InDelta(t, 0.0, freqs["CA"], 1e-12)
	assert.InDelta(t, 0.0, freqs["CC"], 1e-12)
}

func TestDinucleotidesFrequencies(t *testing.T) {
	a := alphabet.MustNew("A", "C", "G", "T")
	// Pairs: AC, GT, AC → AC 2/3, GT 1/3.
	freqs, err := Dinucleotides("ACGTAC", a)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, freqs["AC"], 1e-12)
	assert.InDelta(t, 1.0/3.0, freqs["GT"], 1e-12)

	sum := 0.0
	for _, f := range freqs {
		sum += f
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

// Pairs with a byte outside the alphabet are dropped silently and do not
// count toward the normalization total.
func TestDinucleotidesDropUnknownPairs(t *testing.T) {
	a := alphabet.MustNew("A", "C")
	// Pairs: AA, AX (dropped), CC → kept total 2.
	freqs, err := Dinucleotides("AAAXCC", a)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, freqs["AA"], 1e-12)
	assert.InDelta(t, 0.5, freqs["CC"], 1e-12)
}

// A trailing odd byte never forms a pair; the scan stops before it.
func TestDinucleotidesOddLength(t *testing.T) {
	a := alphabet.MustNew("A", "C")
	freqs, err := Dinucleotides("AACCA", a)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, freqs["AA"], 1e-12)
	assert.InDelta(t, 0.5, freqs["CC"], 1e-12)
}

func TestDinucleotidesNoPairsKept(t *testing.T) {
	a := alphabet.MustNew("A", "C")

	for _, seq := range []string{"", "A", "XYXY"} {
		_, err := Dinucleotides(seq, a)
		require.Error(t, err, "seq %q", seq)
		assert.True(t, errors.Is(err, ErrDomain), "seq %q", seq)
	}
}
