// internal/jsonutil/json.go
package jsonutil

import (
	"bytes"
	"encoding/json"
	"io"

	"seqstat-core/codec"
)

// EncodePretty writes v to w as two-space indented JSON through c; nil
// selects the default codec. Indentation is applied in a second pass with
// the standard library so every codec yields byte-identical formatting.
func EncodePretty(w io.Writer, c codec.Codec, v any) error {
	if c == nil {
		c = codec.Default
	}
	raw, err := c.Marshal(v)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}
