// internal/output/files.go
package output

// Names of the persisted stats documents. The k-mer document's name depends
// on the run mode: per-sequence runs keep every sequence's ranking, default
// runs collapse the dataset into one aggregate ranking.
const (
	PalindromeFile    = "palindrome_stats.json"
	KmerFile          = "k_mer_stats.json"
	KmerAggregateFile = "k_mer_stats_aggregate.json"
	GCFile            = "gc_stats.json"
	DinucleotideFile  = "dnt_stats.json"
	InvalidFile       = "invalid_stats.json"
)
