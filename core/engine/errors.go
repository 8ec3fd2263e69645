// core/engine/errors.go
package engine

import "errors"

// Error kinds returned by the analyzers. Every failure wraps one of these,
// so callers branch with errors.Is.
var (
	// ErrConfig marks malformed analysis parameters: window or hop lengths
	// below one, non-positive k, records with mismatched schemas.
	ErrConfig = errors.New("invalid configuration")

	// ErrDomain marks inputs the requested statistic is undefined for:
	// empty denominators, empty record lists, missing reduce fields.
	ErrDomain = errors.New("undefined for input")
)
