// core/dataset/format.go
package dataset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a dataset file layout.
type Format string

const (
	FormatAuto  Format = "auto"
	FormatJSON  Format = "json"
	FormatFASTA Format = "fasta"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatFASTA:
		return FormatFASTA, nil
	}
	return "", fmt.Errorf("unknown dataset format %q (have auto, json, fasta)", s)
}

// DetectFormat guesses a file's format from its name. A .json suffix (before
// any .gz) is JSON; everything else, including "-" for stdin, is FASTA.
func DetectFormat(path string) Format {
	name := strings.ToLower(filepath.Base(path))
	name = strings.TrimSuffix(name, ".gz")
	if strings.HasSuffix(name, ".json") {
		return FormatJSON
	}
	return FormatFASTA
}
