// core/engine/topk.go
package engine

import "sort"

// TopN ranks a counter's entries by count, descending, and returns the first
// n. The sort is stable over first-seen order, so equal counts keep the
// order in which their k-mers were first encountered. n above the number of
// distinct k-mers returns them all; n below one returns an empty list. A nil
// counter ranks as empty.
func TopN(m *Kmers, n int) []KmerEntry {
	if m == nil || n < 1 {
		return []KmerEntry{}
	}
	entries := m.Entries()
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })
	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}

// MergeKmers folds per-sequence counters into one. Counters are visited in
// input order and each counter's k-mers in their first-seen order, so the
// merged first-seen order is reproducible run to run.
func MergeKmers(per []*Kmers) *Kmers {
	k := 0
	for _, m := range per {
		if m != nil {
			k = m.K
			break
		}
	}
	merged := NewKmers(k)
	for _, m := range per {
		if m == nil {
			continue
		}
		for _, e := range m.Entries() {
			merged.AddN(e.Kmer, e.Count)
		}
	}
	return merged
}

// TopKmers ranks per-sequence counters. In per-sequence mode the result
// holds one ranked list per counter, in input order. Otherwise the counters
// are merged first and the single ranked list is wrapped in a one-element
// outer list, so both modes share one shape.
func TopKmers(per []*Kmers, n int, perSequence bool) [][]KmerEntry {
	if perSequence {
		out := make([][]KmerEntry, 0, len(per))
		for _, m := range per {
			out = append(out, TopN(m, n))
		}
		return out
	}
	return [][]KmerEntry{TopN(MergeKmers(per), n)}
}
