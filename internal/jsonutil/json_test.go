// internal/jsonutil/json_test.go
package jsonutil

import (
	"bytes"
	"testing"

	"seqstat-core/codec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePrettyIndentsAndTerminates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePretty(&buf, nil, map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

// Formatting must not depend on which codec produced the bytes.
func TestEncodePrettySameAcrossCodecs(t *testing.T) {
	doc := map[string][]int{"xs": {1, 2, 3}}
	var std, fast bytes.Buffer
	require.NoError(t, EncodePretty(&std, codec.JSON{}, doc))
	require.NoError(t, EncodePretty(&fast, codec.GoJSON{}, doc))
	assert.Equal(t, std.String(), fast.String())
}
