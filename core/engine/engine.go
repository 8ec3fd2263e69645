// core/engine/engine.go
package engine

import "seqstat-core/alphabet"

// Config holds the analysis parameters shared across one run.
type Config struct {
	Alphabet         alphabet.Alphabet
	MinPalindromeLen int // palindromes must be strictly longer than this
	MinBases         int // minimum distinct bases within a palindrome
}

// Engine applies the analyzers with a fixed configuration. It holds no
// per-sequence state, so one Engine may be shared across goroutines.
type Engine struct {
	cfg Config
}

// New creates a new Engine.
func New(c Config) *Engine { return &Engine{cfg: c} }

// Alphabet returns the configured valid-base set.
func (e *Engine) Alphabet() alphabet.Alphabet { return e.cfg.Alphabet }

// Composition reports GC statistics for seq. The distribution denominator is
// the full sequence length, the form dataset summaries are built from;
// callers that want alphabet-filtered denominators use the package-level
// Composition directly.
func (e *Engine) Composition(seq string) (CompositionStats, error) {
	return Composition(seq, nil)
}

// Dinucleotides reports pair frequencies over the configured alphabet.
func (e *Engine) Dinucleotides(seq string) (Record, error) {
	return Dinucleotides(seq, e.cfg.Alphabet)
}

// InvalidBases reports bytes of seq outside the configured alphabet.
func (e *Engine) InvalidBases(seq string) InvalidReport {
	return InvalidBases(seq, e.cfg.Alphabet)
}

// Palindromes reports reverse-symmetric substrings of seq under the
// configured length and diversity thresholds.
func (e *Engine) Palindromes(seq string) PalindromeReport {
	return Palindromes(seq, e.cfg.MinPalindromeLen, e.cfg.MinBases)
}

// KmerCounts tallies length-k windows of seq.
func (e *Engine) KmerCounts(seq string, k int) (*Kmers, error) {
	return KmerCounts(seq, k)
}
