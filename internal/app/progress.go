// internal/app/progress.go
package app

import (
	"io"

	"github.com/cheggaaa/pb/v3"

	"seqstat/internal/driver"
)

// barFactory builds one progress bar per analysis phase, drawn on w.
func barFactory(w io.Writer) driver.ProgressFunc {
	return func(phase string, total int) (tick func(), done func()) {
		bar := pb.Full.Start(total)
		bar.SetWriter(w)
		bar.Set("prefix", phase+" ")
		return func() { bar.Increment() }, func() { bar.Finish() }
	}
}
