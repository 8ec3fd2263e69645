package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok, "codec %q", name)
		assert.Equal(t, name, c.Name())
	}

	c, ok := ByName("")
	require.True(t, ok)
	assert.Equal(t, Default.Name(), c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

// Both codecs must agree on the documents this toolkit emits, including
// types with custom marshalers.
func TestCodecsAgree(t *testing.T) {
	doc := map[string]any{
		"sequences": []string{"ACGT", "TTTT"},
		"top":       [][2]any{{"AC", 2}},
	}
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok)

		data, err := c.Marshal(doc)
		require.NoError(t, err, "codec %q", name)

		var back map[string]any
		require.NoError(t, c.Unmarshal(data, &back), "codec %q", name)
		assert.Contains(t, back, "sequences")
	}
}
