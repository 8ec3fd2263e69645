// Package pipeline fans a dataset's sequences out to a bounded worker pool
// and collects per-sequence results back in input order.
//
// The only contract is the fn passed to Map; phases stay swappable and
// testable without goroutine plumbing of their own.
package pipeline
