// internal/output/stats.go
package output

import (
	"fmt"

	"seqstat-core/engine"

	"seqstat/pkg/api"
)

// Stats bundles every document produced by one analysis run. GC and
// Dinucleotides are nil when their phase had no surviving sequences, in
// which case the corresponding file is not written.
type Stats struct {
	Palindromes   api.PalindromeStatsV1
	Kmers         api.KmerStatsV1
	PerSequence   bool
	GC            *api.GCStatsV1
	Dinucleotides *api.DinucleotideStatsV1
	Invalid       api.InvalidStatsV1
}

// Documents maps each output file name to the document persisted there.
func (s *Stats) Documents() map[string]any {
	docs := map[string]any{
		PalindromeFile: s.Palindromes,
		InvalidFile:    s.Invalid,
	}
	name := KmerAggregateFile
	if s.PerSequence {
		name = KmerFile
	}
	docs[name] = s.Kmers
	if s.GC != nil {
		docs[GCFile] = s.GC
	}
	if s.Dinucleotides != nil {
		docs[DinucleotideFile] = s.Dinucleotides
	}
	return docs
}

// Results collapses the bundle into the single combined document used when
// streaming to stdout.
func (s *Stats) Results() api.ResultsV1 {
	return api.ResultsV1{
		Palindromes:   s.Palindromes,
		Kmers:         s.Kmers,
		GC:            s.GC,
		Dinucleotides: s.Dinucleotides,
		Invalid:       s.Invalid,
	}
}

// ToPalindromeStats converts per-sequence palindrome reports to the wire
// schema (v1): sequence index to start position to substring. Sequences
// without hits are left out. Hits are applied in discovery order, so when
// two palindromes share a start position the later, longer one wins the
// slot, mirroring how the document has always been built.
func ToPalindromeStats(seqs []string, reports []engine.PalindromeReport) api.PalindromeStatsV1 {
	out := make(api.PalindromeStatsV1)
	for i, rep := range reports {
		if rep.NumPalindromes == 0 {
			continue
		}
		hits := make(map[int]string, rep.NumPalindromes)
		for _, p := range rep.Palindromes {
			hits[p.Pos] = p.Substring(seqs[i])
		}
		out[i] = hits
	}
	return out
}

// ToInvalidStats converts per-sequence invalid-base reports to the wire
// schema (v1). Sequences without invalid bases are left out.
func ToInvalidStats(reports []engine.InvalidReport) api.InvalidStatsV1 {
	out := make(api.InvalidStatsV1)
	for i, rep := range reports {
		if rep.NumInvalid == 0 {
			continue
		}
		bases := make(map[int]string, rep.NumInvalid)
		for _, b := range rep.Bases {
			bases[b.Pos] = b.Base
		}
		out[i] = bases
	}
	return out
}

// ToKmerStats converts ranked k-mer lists, keyed by k, to the wire schema
// (v1) with its "<k>_mers" keys.
func ToKmerStats(byK map[int][][]engine.KmerEntry) api.KmerStatsV1 {
	out := make(api.KmerStatsV1, len(byK))
	for k, lists := range byK {
		conv := make([][]api.KmerEntryV1, 0, len(lists))
		for _, list := range lists {
			ranked := make([]api.KmerEntryV1, 0, len(list))
			for _, e := range list {
				ranked = append(ranked, api.KmerEntryV1{Kmer: e.Kmer, Count: e.Count})
			}
			conv = append(conv, ranked)
		}
		out[fmt.Sprintf("%d_mers", k)] = conv
	}
	return out
}

// ToGCStats assembles the gc_stats.json document from the dataset average
// and the four extremum reductions.
func ToGCStats(avg engine.Record, maxDist, minDist, maxSkew, minSkew engine.Extremum) *api.GCStatsV1 {
	return &api.GCStatsV1{
		AvgGC:     avg,
		MaxGCDist: toExtremumV1(maxDist),
		MaxGCSkew: toExtremumV1(maxSkew),
		MinGCDist: toExtremumV1(minDist),
		MinGCSkew: toExtremumV1(minSkew),
	}
}

// ToDinucleotideStats assembles the dnt_stats.json document from the
// per-sequence records and their dataset average.
func ToDinucleotideStats(all []engine.Record, avg engine.Record) *api.DinucleotideStatsV1 {
	conv := make([]map[string]float64, 0, len(all))
	for _, r := range all {
		conv = append(conv, r)
	}
	return &api.DinucleotideStatsV1{All: conv, Avg: avg}
}

func toExtremumV1(e engine.Extremum) api.ExtremumV1 {
	return api.ExtremumV1{Index: e.Index, Record: e.Record}
}
