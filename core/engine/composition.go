// core/engine/composition.go
package engine

import (
	"fmt"

	"seqstat-core/alphabet"
)

// CompositionStats summarizes the C/G content of one sequence.
type CompositionStats struct {
	GCDistribution float64 `json:"gc_distribution"`
	GCSkew         float64 `json:"gc_skew"`
}

// Fields returns the stats as a Record for dataset reductions.
func (s CompositionStats) Fields() Record {
	return Record{"gc_distribution": s.GCDistribution, "gc_skew": s.GCSkew}
}

// Composition computes the GC distribution (C+G over the counted total) and
// GC skew (G-C over G+C) of seq.
//
// When valid is non-nil, the distribution denominator counts only bases in
// the alphabet; when nil, every byte counts. C and G are tallied over the
// whole sequence either way. A zero denominator is reported as ErrDomain
// rather than letting NaN or Inf escape.
func Composition(seq string, valid *alphabet.Alphabet) (CompositionStats, error) {
	totalValid := len(seq)
	if valid != nil {
		totalValid = 0
		for i := 0; i < len(seq); i++ {
			if valid.Contains(seq[i]) {
				totalValid++
			}
		}
	}

	var numC, numG int
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'C':
			numC++
		case 'G':
			numG++
		}
	}

	if totalValid == 0 {
		return CompositionStats{}, fmt.Errorf("%w: no bases to normalize GC distribution over", ErrDomain)
	}
	if numC+numG == 0 {
		return CompositionStats{}, fmt.Errorf("%w: no C or G bases, GC skew undefined", ErrDomain)
	}
	return CompositionStats{
		GCDistribution: float64(numC+numG) / float64(totalValid),
		GCSkew:         float64(numG-numC) / float64(numG+numC),
	}, nil
}
