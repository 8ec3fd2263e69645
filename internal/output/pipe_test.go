// internal/output/pipe_test.go
package output

import (
	"errors"
	"fmt"
	"io"
	"syscall"
	"testing"
)

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(syscall.EPIPE) {
		t.Fatal("EPIPE should be a broken pipe")
	}
	if !IsBrokenPipe(fmt.Errorf("write: %w", io.ErrClosedPipe)) {
		t.Fatal("wrapped ErrClosedPipe should be a broken pipe")
	}
	if IsBrokenPipe(errors.New("boom")) {
		t.Fatal("unrelated error is not a broken pipe")
	}
	if IsBrokenPipe(nil) {
		t.Fatal("nil is not a broken pipe")
	}
}
