package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const goodSettings = `{
  "valid_nucleobases": ["A", "C", "G", "T"],
  "min_basepair_len": 20,
  "min_bases": 3,
  "k_values": [3, 5],
  "top_n": 10
}`

func TestLoad(t *testing.T) {
	s, err := Load(writeSettings(t, goodSettings))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "G", "T"}, s.ValidNucleobases)
	assert.Equal(t, 20, s.MinBasepairLen)
	assert.Equal(t, 3, s.MinBases)
	assert.Equal(t, []int{3, 5}, s.KValues)
	assert.Equal(t, 10, s.TopN)

	a, err := s.Alphabet()
	require.NoError(t, err)
	assert.Equal(t, 4, a.Len())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestValidateRejectsBadSettings(t *testing.T) {
	cases := map[string]string{
		"no bases":        `{"valid_nucleobases": [], "min_basepair_len": 1, "min_bases": 1, "k_values": [2], "top_n": 1}`,
		"multi-char base": `{"valid_nucleobases": ["AC"], "min_basepair_len": 1, "min_bases": 1, "k_values": [2], "top_n": 1}`,
		"duplicate base":  `{"valid_nucleobases": ["A", "A"], "min_basepair_len": 1, "min_bases": 1, "k_values": [2], "top_n": 1}`,
		"negative minlen": `{"valid_nucleobases": ["A"], "min_basepair_len": -1, "min_bases": 1, "k_values": [2], "top_n": 1}`,
		"negative bases":  `{"valid_nucleobases": ["A"], "min_basepair_len": 1, "min_bases": -2, "k_values": [2], "top_n": 1}`,
		"no k values":     `{"valid_nucleobases": ["A"], "min_basepair_len": 1, "min_bases": 1, "k_values": [], "top_n": 1}`,
		"zero k":          `{"valid_nucleobases": ["A"], "min_basepair_len": 1, "min_bases": 1, "k_values": [0], "top_n": 1}`,
		"zero top_n":      `{"valid_nucleobases": ["A"], "min_basepair_len": 1, "min_bases": 1, "k_values": [2], "top_n": 0}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeSettings(t, body))
			require.Error(t, err)
		})
	}
}

// Unknown keys in the settings file are ignored, not an error; older and
// newer tools can share one file.
func TestLoadIgnoresUnknownKeys(t *testing.T) {
	s, err := Load(writeSettings(t, `{
  "valid_nucleobases": ["A", "B"],
  "min_basepair_len": 2,
  "min_bases": 2,
  "k_values": [5],
  "top_n": 3,
  "future_flag": true
}`))
	require.NoError(t, err)
	assert.Equal(t, 3, s.TopN)
}
