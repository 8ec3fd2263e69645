package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// EntryFunc is a CLI entry point: argv without the program name, plus the
// process streams. It returns the process exit code.
type EntryFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs entry under a SIGINT/SIGTERM-canceled context and exits the
// process. A run that was interrupted but still reported success exits 130
// so callers can tell cancellation from completion.
func Main(entry EntryFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := entry(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if code == 0 && ctx.Err() != nil {
		code = 130
	}

	stop()
	os.Exit(code)
}
