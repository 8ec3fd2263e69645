// internal/integration/cancel_integration_test.go
package integration

import (
	"bytes"
	"context"
	"testing"

	"seqstat/internal/app"
)

func TestCanceledRunExit130(t *testing.T) {
	ds, set, out := writeFixtures(t, toyDataset, toySettings)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := app.RunContext(ctx, []string{"analyze", ds, "-s", set, "-o", out, "--skip-errors"}, &stdout, &stderr)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d (err=%s)", code, stderr.String())
	}
}
