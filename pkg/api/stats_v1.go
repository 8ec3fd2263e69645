// pkg/api/stats_v1.go
package api

import "encoding/json"

// Stable JSON schemas for the persisted stats documents.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".

// KmerEntryV1 is one ranked k-mer, marshaled as ["<kmer>", <count>].
type KmerEntryV1 struct {
	Kmer  string
	Count int
}

func (e KmerEntryV1) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.Kmer, e.Count})
}

// KmerStatsV1 is the k-mer stats document: "<k>_mers" mapped to ranked
// lists, one list per sequence in per-sequence mode, a single combined list
// wrapped in the outer slice otherwise.
type KmerStatsV1 map[string][][]KmerEntryV1

// ExtremumV1 pairs a sequence index with that sequence's record, marshaled
// as a two-element array.
type ExtremumV1 struct {
	Index  int
	Record map[string]float64
}

func (e ExtremumV1) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.Index, e.Record})
}

// GCStatsV1 is the gc_stats.json document.
type GCStatsV1 struct {
	AvgGC     map[string]float64 `json:"avg_gc"`
	MaxGCDist ExtremumV1         `json:"max_gc_dist"`
	MaxGCSkew ExtremumV1         `json:"max_gc_skew"`
	MinGCDist ExtremumV1         `json:"min_gc_dist"`
	MinGCSkew ExtremumV1         `json:"min_gc_skew"`
}

// DinucleotideStatsV1 is the dnt_stats.json document.
type DinucleotideStatsV1 struct {
	All []map[string]float64 `json:"all_dnt_stats"`
	Avg map[string]float64   `json:"avg_dnt"`
}

// PalindromeStatsV1 is the palindrome_stats.json document: sequence index to
// start position to palindromic substring. Only sequences with at least one
// hit appear.
type PalindromeStatsV1 map[int]map[int]string

// InvalidStatsV1 is the invalid_stats.json document: sequence index to
// position to off-alphabet base. Only sequences with at least one invalid
// base appear.
type InvalidStatsV1 map[int]map[int]string

// ResultsV1 bundles every stats document of one run; it is the shape written
// when results stream to stdout instead of a directory.
type ResultsV1 struct {
	Palindromes   PalindromeStatsV1    `json:"palindrome_stats"`
	Kmers         KmerStatsV1          `json:"k_mer_stats"`
	GC            *GCStatsV1           `json:"gc_stats,omitempty"`
	Dinucleotides *DinucleotideStatsV1 `json:"dnt_stats,omitempty"`
	Invalid       InvalidStatsV1       `json:"invalid_stats"`
}
