// core/engine/kmer.go
package engine

import "encoding/json"

// KmerEntry is one k-mer and its occurrence count. It marshals as a
// two-element array, ["<kmer>", <count>], the shape the stats documents use.
type KmerEntry struct {
	Kmer  string
	Count int
}

func (e KmerEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.Kmer, e.Count})
}

// Kmers counts fixed-length substrings while remembering the order in which
// distinct k-mers first appeared. First-seen order is the tie-break when
// ranking, so it is part of the contract, not an implementation detail.
type Kmers struct {
	K      int
	counts map[string]int
	order  []string
}

// NewKmers returns an empty counter for length-k substrings.
func NewKmers(k int) *Kmers {
	return &Kmers{K: k, counts: make(map[string]int)}
}

// Add counts one occurrence of kmer.
func (m *Kmers) Add(kmer string) { m.AddN(kmer, 1) }

// AddN counts n occurrences of kmer.
func (m *Kmers) AddN(kmer string, n int) {
	if _, seen := m.counts[kmer]; !seen {
		m.order = append(m.order, kmer)
	}
	m.counts[kmer] += n
}

// Count returns kmer's tally.
func (m *Kmers) Count(kmer string) int { return m.counts[kmer] }

// Len returns the number of distinct k-mers seen.
func (m *Kmers) Len() int { return len(m.order) }

// Total returns the sum of all counts.
func (m *Kmers) Total() int {
	t := 0
	for _, c := range m.counts {
		t += c
	}
	return t
}

// Entries returns the counter's contents in first-seen order. The slice is
// freshly allocated and safe for the caller to reorder.
func (m *Kmers) Entries() []KmerEntry {
	out := make([]KmerEntry, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, KmerEntry{Kmer: k, Count: m.counts[k]})
	}
	return out
}

// KmerCounts tallies every length-k window of seq at stride one. k beyond
// the sequence length is not an error: the counter simply stays empty.
func KmerCounts(seq string, k int) (*Kmers, error) {
	windows, err := Windows(seq, k, 1)
	if err != nil {
		return nil, err
	}
	m := NewKmers(k)
	for w := range windows {
		m.Add(w)
	}
	return m, nil
}
