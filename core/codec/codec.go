// core/codec/codec.go
package codec

// Codec encodes and decodes the JSON documents the toolkit reads and writes.
type Codec interface {
	// Marshal returns the encoded form of v.
	Marshal(v any) ([]byte, error)
	// Unmarshal parses encoded data into v.
	Unmarshal(data []byte, v any) error
	// Name returns the codec's registry name.
	Name() string
}

// Default is the codec used when none is selected.
var Default Codec = JSON{}

// ByName resolves a selectable codec. The empty string resolves to Default.
func ByName(name string) (Codec, bool) {
	switch name {
	case "":
		return Default, true
	case JSON{}.Name():
		return JSON{}, true
	case GoJSON{}.Name():
		return GoJSON{}, true
	}
	return nil, false
}

// Names lists the selectable codec names.
func Names() []string {
	return []string{JSON{}.Name(), GoJSON{}.Name()}
}
