// internal/output/pipe.go
package output

import (
	"errors"
	"io"
	"syscall"
)

// pipeErrors are the failures a closed downstream consumer produces.
var pipeErrors = []error{syscall.EPIPE, io.ErrClosedPipe}

// IsBrokenPipe reports whether err means the stdout consumer went away,
// e.g. `seqstat analyze -o - data.json | head`. Such runs end cleanly
// rather than as failures.
func IsBrokenPipe(err error) bool {
	for _, p := range pipeErrors {
		if errors.Is(err, p) {
			return true
		}
	}
	return false
}
