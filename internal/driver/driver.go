// internal/driver/driver.go
package driver

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"seqstat-core/dataset"
	"seqstat-core/engine"

	"seqstat/internal/config"
	"seqstat/internal/output"
	"seqstat/internal/pipeline"
)

// ProgressFunc is called at the start of each analysis phase with the number
// of units it will process. tick is invoked once per finished unit, done
// once when the phase ends. Both callbacks run on the collector goroutine.
type ProgressFunc func(phase string, total int) (tick func(), done func())

// Options controls one analysis run.
type Options struct {
	Threads     int  // worker goroutines; values below 1 mean 1
	SkipErrors  bool // drop failing sequences instead of aborting
	PerSequence bool // rank k-mers per sequence instead of dataset-wide
	Progress    ProgressFunc
}

// Run applies every analysis to ds and assembles the stats documents.
// Phases run in a fixed order, each fanning its per-sequence work out
// through the pipeline; reductions happen after fan-in, in dataset order.
//
// Without SkipErrors the first per-sequence failure aborts the run. With it,
// failing sequences are logged and dropped: palindrome and invalid documents
// simply omit them, GC and dinucleotide summaries are reduced over the
// survivors with extremum indices remapped to original dataset positions,
// and a phase left with no survivors is dropped from the output entirely.
func Run(ctx context.Context, ds *dataset.Dataset, set config.Settings, opts Options) (*output.Stats, error) {
	alpha, err := set.Alphabet()
	if err != nil {
		return nil, err
	}
	if !ds.Consistent() {
		log.Warnf("dataset metadata disagrees with its sequences (num_sequences=%d, sequence_length=%d, actual=%d); continuing with the sequences",
			ds.NumSequences, ds.SequenceLength, len(ds.Sequences))
	}

	r := &runner{
		eng: engine.New(engine.Config{
			Alphabet:         alpha,
			MinPalindromeLen: set.MinBasepairLen,
			MinBases:         set.MinBases,
		}),
		seqs: ds.Sequences,
		opts: opts,
	}

	stats := &output.Stats{PerSequence: opts.PerSequence}
	if err := r.palindromes(ctx, stats); err != nil {
		return nil, err
	}
	if err := r.kmers(ctx, set.KValues, set.TopN, stats); err != nil {
		return nil, err
	}
	if err := r.gc(ctx, stats); err != nil {
		return nil, err
	}
	if err := r.dinucleotides(ctx, stats); err != nil {
		return nil, err
	}
	if err := r.invalid(ctx, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

type runner struct {
	eng  *engine.Engine
	seqs []string
	opts Options
}

func (r *runner) mapCfg(tick func()) pipeline.Config {
	return pipeline.Config{
		Threads:    r.opts.Threads,
		SkipErrors: r.opts.SkipErrors,
		OnResult:   func(int) { tick() },
	}
}

func (r *runner) phase(name string, total int) (tick, done func()) {
	if r.opts.Progress == nil {
		return func() {}, func() {}
	}
	return r.opts.Progress(name, total)
}

func (r *runner) logPhase(name string, start time.Time, skipped int) {
	f := log.Fields{
		"phase":     name,
		"sequences": len(r.seqs),
		"elapsed":   time.Since(start).Round(time.Microsecond),
	}
	if skipped > 0 {
		f["skipped"] = skipped
	}
	log.WithFields(f).Info("phase complete")
}

func logSkips(phase string, skips []pipeline.Skip) {
	for _, s := range skips {
		log.Warnf("%s: skipping sequence %d: %v", phase, s.Index, s.Err)
	}
}

func (r *runner) palindromes(ctx context.Context, stats *output.Stats) error {
	tick, done := r.phase("palindromes", len(r.seqs))
	defer done()
	start := time.Now()

	reports, _, err := pipeline.Map(ctx, r.mapCfg(tick), r.seqs,
		func(_ context.Context, _ int, seq string) (engine.PalindromeReport, error) {
			return r.eng.Palindromes(seq), nil
		})
	if err != nil {
		return fmt.Errorf("palindromes: %w", err)
	}
	stats.Palindromes = output.ToPalindromeStats(r.seqs, reports)
	r.logPhase("palindromes", start, 0)
	return nil
}

func (r *runner) kmers(ctx context.Context, kValues []int, topN int, stats *output.Stats) error {
	tick, done := r.phase("k-mers", len(r.seqs)*len(kValues))
	defer done()
	start := time.Now()

	byK := make(map[int][][]engine.KmerEntry, len(kValues))
	for _, k := range kValues {
		counters, _, err := pipeline.Map(ctx, r.mapCfg(tick), r.seqs,
			func(_ context.Context, _ int, seq string) (*engine.Kmers, error) {
				return r.eng.KmerCounts(seq, k)
			})
		if err != nil {
			return fmt.Errorf("k-mers (k=%d): %w", k, err)
		}
		byK[k] = engine.TopKmers(counters, topN, r.opts.PerSequence)
	}
	stats.Kmers = output.ToKmerStats(byK)
	r.logPhase("k-mers", start, 0)
	return nil
}

func (r *runner) gc(ctx context.Context, stats *output.Stats) error {
	tick, done := r.phase("gc", len(r.seqs))
	defer done()
	start := time.Now()

	all, skips, err := pipeline.Map(ctx, r.mapCfg(tick), r.seqs,
		func(_ context.Context, _ int, seq string) (engine.CompositionStats, error) {
			return r.eng.Composition(seq)
		})
	if err != nil {
		return fmt.Errorf("gc: %w", err)
	}
	logSkips("gc", skips)

	kept, origIdx := compact(all, skips)
	if len(kept) == 0 {
		log.Warn("gc: no sequence survived; dropping gc stats")
		r.logPhase("gc", start, len(skips))
		return nil
	}
	records := make([]engine.Record, len(kept))
	for i, c := range kept {
		records[i] = c.Fields()
	}

	avg, err := engine.Average(records)
	if err != nil {
		return fmt.Errorf("gc: %w", err)
	}
	maxDist, err := reduceAt(records, origIdx, engine.MaxBy, "gc_distribution")
	if err != nil {
		return fmt.Errorf("gc: %w", err)
	}
	minDist, err := reduceAt(records, origIdx, engine.MinBy, "gc_distribution")
	if err != nil {
		return fmt.Errorf("gc: %w", err)
	}
	maxSkew, err := reduceAt(records, origIdx, engine.MaxBy, "gc_skew")
	if err != nil {
		return fmt.Errorf("gc: %w", err)
	}
	minSkew, err := reduceAt(records, origIdx, engine.MinBy, "gc_skew")
	if err != nil {
		return fmt.Errorf("gc: %w", err)
	}

	stats.GC = output.ToGCStats(avg, maxDist, minDist, maxSkew, minSkew)
	r.logPhase("gc", start, len(skips))
	return nil
}

func (r *runner) dinucleotides(ctx context.Context, stats *output.Stats) error {
	tick, done := r.phase("dinucleotides", len(r.seqs))
	defer done()
	start := time.Now()

	all, skips, err := pipeline.Map(ctx, r.mapCfg(tick), r.seqs,
		func(_ context.Context, _ int, seq string) (engine.Record, error) {
			return r.eng.Dinucleotides(seq)
		})
	if err != nil {
		return fmt.Errorf("dinucleotides: %w", err)
	}
	logSkips("dinucleotides", skips)

	kept, _ := compact(all, skips)
	if len(kept) == 0 {
		log.Warn("dinucleotides: no sequence survived; dropping dinucleotide stats")
		r.logPhase("dinucleotides", start, len(skips))
		return nil
	}
	avg, err := engine.Average(kept)
	if err != nil {
		return fmt.Errorf("dinucleotides: %w", err)
	}
	stats.Dinucleotides = output.ToDinucleotideStats(kept, avg)
	r.logPhase("dinucleotides", start, len(skips))
	return nil
}

func (r *runner) invalid(ctx context.Context, stats *output.Stats) error {
	tick, done := r.phase("invalid bases", len(r.seqs))
	defer done()
	start := time.Now()

	reports, _, err := pipeline.Map(ctx, r.mapCfg(tick), r.seqs,
		func(_ context.Context, _ int, seq string) (engine.InvalidReport, error) {
			return r.eng.InvalidBases(seq), nil
		})
	if err != nil {
		return fmt.Errorf("invalid bases: %w", err)
	}
	stats.Invalid = output.ToInvalidStats(reports)
	r.logPhase("invalid bases", start, 0)
	return nil
}

// compact drops the slots named in skips and returns the survivors together
// with their original dataset indices.
func compact[T any](vals []T, skips []pipeline.Skip) ([]T, []int) {
	if len(skips) == 0 {
		idx := make([]int, len(vals))
		for i := range vals {
			idx[i] = i
		}
		return vals, idx
	}
	skipped := make(map[int]bool, len(skips))
	for _, s := range skips {
		skipped[s.Index] = true
	}
	kept := make([]T, 0, len(vals)-len(skips))
	idx := make([]int, 0, len(vals)-len(skips))
	for i, v := range vals {
		if skipped[i] {
			continue
		}
		kept = append(kept, v)
		idx = append(idx, i)
	}
	return kept, idx
}

// reduceAt runs one extremum reduction and remaps the winning index back to
// its original dataset position.
func reduceAt(records []engine.Record, origIdx []int, by func([]engine.Record, string) (int, engine.Record, error), field string) (engine.Extremum, error) {
	i, rec, err := by(records, field)
	if err != nil {
		return engine.Extremum{}, err
	}
	return engine.Extremum{Index: origIdx[i], Record: rec}, nil
}
