package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seqstat-core/alphabet"
)

func TestInvalidBasesCleanSequence(t *testing.T) {
	a := alphabet.MustNew("A", "C", "G", "T")
	rep := InvalidBases("ACGTACGT", a)
	assert.Equal(t, 0, rep.NumInvalid)
	assert.Empty(t, rep.Bases)
}

func TestInvalidBasesPositions(t *testing.T) {
	a := alphabet.MustNew("A", "B", "C")
	rep := InvalidBases("CCCCCCCCCX", a)
	assert.Equal(t, 1, rep.NumInvalid)
	assert.Equal(t, []InvalidBase{{Pos: 9, Base: "X"}}, rep.Bases)
}

// Hits come back in left-to-right order, one per offending byte.
func TestInvalidBasesOrder(t *testing.T) {
	a := alphabet.MustNew("A", "C")
	rep := InvalidBases("XAYCAZ", a)
	assert.Equal(t, 3, rep.NumInvalid)
	assert.Equal(t, []InvalidBase{
		{Pos: 0, Base: "X"},
		{Pos: 2, Base: "Y"},
		{Pos: 5, Base: "Z"},
	}, rep.Bases)
}
