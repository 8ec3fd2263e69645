package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The toy dataset from the settings walkthrough: five sequences over the
// alphabet {A, B, C}, one with a stray X.
var toySequences = []string{
	"AAAAAAAAAA",
	"ABBBBBBBBB",
	"CCCCCCCCCX",
	"ABCABCABCA",
	"ABACACBBCA",
}

func countAll(t *testing.T, seqs []string, k int) []*Kmers {
	t.Helper()
	out := make([]*Kmers, 0, len(seqs))
	for _, s := range seqs {
		m, err := KmerCounts(s, k)
		require.NoError(t, err)
		out = append(out, m)
	}
	return out
}

func TestTopNSortedAndTruncated(t *testing.T) {
	m, err := KmerCounts("AAAABBBCC", 1)
	require.NoError(t, err)

	top := TopN(m, 2)
	assert.Equal(t, []KmerEntry{{"A", 4}, {"B", 3}}, top)

	// n beyond the distinct count returns everything, still sorted.
	all := TopN(m, 10)
	assert.Equal(t, []KmerEntry{{"A", 4}, {"B", 3}, {"C", 2}}, all)

	assert.Empty(t, TopN(m, 0))
	assert.Empty(t, TopN(nil, 3))
}

// Equal counts keep first-encounter order: C was seen before A, so C ranks
// first even though both count 2.
func TestTopNTieBreakFirstSeen(t *testing.T) {
	m, err := KmerCounts("CACA", 1)
	require.NoError(t, err)
	assert.Equal(t, []KmerEntry{{"C", 2}, {"A", 2}}, TopN(m, 2))
}

func TestTopNNonIncreasing(t *testing.T) {
	m, err := KmerCounts("ABACACBBCA", 2)
	require.NoError(t, err)
	top := TopN(m, m.Len())
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Count, top[i].Count)
	}
}

// Aggregate mode merges counters in dataset order before ranking. Across the
// toy dataset the top three 5-mers are AAAAA, BBBBB, CCCCC: BBBBB and CCCCC
// tie at five and resolve by first encounter.
func TestTopKmersAggregate(t *testing.T) {
	per := countAll(t, toySequences, 5)
	got := TopKmers(per, 3, false)

	require.Len(t, got, 1, "aggregate mode wraps a single ranked list")
	assert.Equal(t, []KmerEntry{{"AAAAA", 6}, {"BBBBB", 5}, {"CCCCC", 5}}, got[0])
}

// Per-sequence mode ranks each sequence alone, in dataset order. The first
// three toy sequences have 1, 2 and 2 distinct 5-mers.
func TestTopKmersPerSequence(t *testing.T) {
	per := countAll(t, toySequences, 5)
	got := TopKmers(per, 3, true)

	require.Len(t, got, len(toySequences))
	assert.Len(t, got[0], 1)
	assert.Len(t, got[1], 2)
	assert.Len(t, got[2], 2)
	assert.Equal(t, []KmerEntry{{"AAAAA", 6}}, got[0])
}

func TestMergeKmersSkipsNilCounters(t *testing.T) {
	a, err := KmerCounts("AAAA", 2)
	require.NoError(t, err)
	merged := MergeKmers([]*Kmers{nil, a, nil})
	assert.Equal(t, 2, merged.K)
	assert.Equal(t, 3, merged.Count("AA"))
}
