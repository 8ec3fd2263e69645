// core/engine/window.go
package engine

import (
	"fmt"
	"iter"
)

// Windows returns a lazy left-to-right pass over seq: the substring of
// length winLen starting at every hopLen-th position. The scan stops before
// any window that would run past the end, so every yielded window is exactly
// winLen bytes. Re-ranging the returned sequence restarts the scan.
func Windows(seq string, winLen, hopLen int) (iter.Seq[string], error) {
	if winLen < 1 {
		return nil, fmt.Errorf("%w: window length %d, want >= 1", ErrConfig, winLen)
	}
	if hopLen < 1 {
		return nil, fmt.Errorf("%w: hop length %d, want >= 1", ErrConfig, hopLen)
	}
	return func(yield func(string) bool) {
		for i := 0; i+winLen <= len(seq); i += hopLen {
			if !yield(seq[i : i+winLen]) {
				return
			}
		}
	}, nil
}
