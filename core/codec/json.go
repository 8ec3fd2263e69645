// core/codec/json.go
package codec

import "encoding/json"

// JSON is a Codec backed by the standard library.
type JSON struct{}

var _ Codec = JSON{}

// Marshal implements Codec.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal implements Codec.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name implements Codec.
func (JSON) Name() string { return "json" }
