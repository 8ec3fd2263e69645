package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqstat-core/codec"
	"seqstat-core/fasta"
)

const toyJSON = `{
  "num_sequences": 2,
  "sequence_length": 4,
  "sequences": ["ACGT", "TTTT"]
}`

func TestDecodeJSON(t *testing.T) {
	d, err := DecodeJSON(strings.NewReader(toyJSON), codec.Default)
	require.NoError(t, err)
	assert.Equal(t, 2, d.NumSequences)
	assert.Equal(t, 4, d.SequenceLength)
	assert.Equal(t, []string{"ACGT", "TTTT"}, d.Sequences)
	assert.True(t, d.Consistent())
}

func TestDecodeJSONMissingSequences(t *testing.T) {
	_, err := DecodeJSON(strings.NewReader(`{"num_sequences": 1}`), codec.Default)
	require.Error(t, err)

	_, err = DecodeJSON(strings.NewReader(`not json`), codec.Default)
	require.Error(t, err)
}

// Metadata is advisory: a mismatch loads fine but reports as inconsistent.
func TestConsistent(t *testing.T) {
	d, err := DecodeJSON(strings.NewReader(`{"num_sequences": 3, "sequence_length": 4, "sequences": ["ACGT"]}`), codec.Default)
	require.NoError(t, err)
	assert.False(t, d.Consistent())

	d, err = DecodeJSON(strings.NewReader(`{"num_sequences": 1, "sequence_length": 9, "sequences": ["ACGT"]}`), codec.Default)
	require.NoError(t, err)
	assert.False(t, d.Consistent())
}

func TestFromRecords(t *testing.T) {
	d := FromRecords([]fasta.Record{
		{ID: "a", Seq: []byte("ACGT")},
		{ID: "b", Seq: []byte("TT")},
	})
	assert.Equal(t, 2, d.NumSequences)
	assert.Equal(t, 4, d.SequenceLength)
	assert.Equal(t, []string{"ACGT", "TT"}, d.Sequences)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":      FormatAuto,
		"auto":  FormatAuto,
		"JSON":  FormatJSON,
		"fasta": FormatFASTA,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("tsv")
	require.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat("seqs.json"))
	assert.Equal(t, FormatJSON, DetectFormat("/data/Seqs.JSON.gz"))
	assert.Equal(t, FormatFASTA, DetectFormat("seqs.fa"))
	assert.Equal(t, FormatFASTA, DetectFormat("seqs.fasta.gz"))
	assert.Equal(t, FormatFASTA, DetectFormat("-"))
}

func TestOpenJSONAndFASTA(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "ds.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(toyJSON), 0o644))
	d, err := Open(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"ACGT", "TTTT"}, d.Sequences)

	faPath := filepath.Join(dir, "ds.fa")
	require.NoError(t, os.WriteFile(faPath, []byte(">a\nACGT\n>b\nTT\n"), 0o644))
	d, err = Open(faPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"ACGT", "TT"}, d.Sequences)
	assert.Equal(t, 2, d.NumSequences)
}
