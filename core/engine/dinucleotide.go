// core/engine/dinucleotide.go
package engine

import (
	"fmt"

	"seqstat-core/alphabet"
)

// Dinucleotides returns the relative frequency of every ordered base pair
// over the alphabet's cross product. All |A|^2 keys are present in the
// result, zero-valued when never seen. The sequence is read in adjacent
// non-overlapping pairs; a pair containing any byte outside the alphabet is
// dropped without error, and frequencies are normalized by the number of
// pairs kept. No pairs kept at all is ErrDomain.
func Dinucleotides(seq string, a alphabet.Alphabet) (Record, error) {
	keys := a.Pairs()
	counts := make(map[string]int, len(keys))
	for _, k := range keys {
		counts[k] = 0
	}

	windows, err := Windows(seq, 2, 2)
	if err != nil {
		return nil, err
	}
	total := 0
	for w := range windows {
		if _, ok := counts[w]; !ok {
			continue
		}
		counts[w]++
		total++
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: no dinucleotides over alphabet %q", ErrDomain, a.String())
	}

	freqs := make(Record, len(keys))
	for k, c := range counts {
		freqs[k] = float64(c) / float64(total)
	}
	return freqs, nil
}
