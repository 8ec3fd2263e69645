// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"seqstat-core/engine"

	"seqstat/internal/output"
)

// usageError marks failures the user can fix on the command line or in the
// settings file; they exit with code 2 instead of 3.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// RunContext executes the CLI against argv and returns the process exit
// code: 0 success, 2 usage or configuration, 3 runtime failure, 130
// canceled.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(argv)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case output.IsBrokenPipe(err):
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	}
	fmt.Fprintf(stderr, "error: %v\n", err)

	var usage usageError
	if errors.As(err, &usage) || errors.Is(err, engine.ErrConfig) || !a.started {
		return 2
	}
	return 3
}

// Run is RunContext without external cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
