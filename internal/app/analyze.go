// internal/app/analyze.go
package app

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"seqstat-core/codec"
	"seqstat-core/dataset"

	"seqstat/internal/config"
	"seqstat/internal/driver"
	"seqstat/internal/output"
	"seqstat/internal/plot"
)

type analyzeOptions struct {
	settings    string
	out         string
	perSequence bool
	threads     int
	skipErrors  bool
	format      string
	codecName   string
	gzip        bool
	noPlots     bool
	progress    bool
}

func (a *app) analyzeCmd() *cobra.Command {
	var o analyzeOptions
	cmd := &cobra.Command{
		Use:   "analyze <dataset>",
		Short: "Compute statistics for a sequence dataset",
		Long: `Analyze runs every statistic over the dataset and writes one JSON document
per analysis into the output directory, plus a per-base dataset image and a
dinucleotide frequency matrix. The dataset is a JSON sequence document or a
FASTA file (gzip transparently supported, "-" reads FASTA from stdin).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.started = true
			return a.runAnalyze(cmd.Context(), args[0], o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.settings, "settings", "s", "./settings.json", "settings file")
	f.StringVarP(&o.out, "out", "o", "./results", `output directory ("-" streams one combined document to stdout)`)
	f.BoolVarP(&o.perSequence, "per-sequence", "p", false, "rank top k-mers per sequence instead of dataset-wide")
	f.IntVar(&o.threads, "threads", 0, "worker goroutines (0 = all CPUs)")
	f.BoolVar(&o.skipErrors, "skip-errors", false, "skip sequences an analysis cannot process instead of aborting")
	f.StringVar(&o.format, "format", "auto", "dataset format: auto, json or fasta")
	f.StringVar(&o.codecName, "codec", codec.Default.Name(), "JSON codec: "+strings.Join(codec.Names(), " or "))
	f.BoolVar(&o.gzip, "gzip", false, "gzip-compress the result documents")
	f.BoolVar(&o.noPlots, "no-plots", false, "skip PNG rendering")
	f.BoolVar(&o.progress, "progress", false, "draw a progress bar per phase on stderr")
	return cmd
}

func (a *app) runAnalyze(ctx context.Context, path string, o analyzeOptions) error {
	set, err := config.Load(o.settings)
	if err != nil {
		return usageError{err}
	}
	format, err := dataset.ParseFormat(o.format)
	if err != nil {
		return usageError{err}
	}
	c, ok := codec.ByName(o.codecName)
	if !ok {
		return usageError{fmt.Errorf("unknown codec %q (have %s)", o.codecName, strings.Join(codec.Names(), ", "))}
	}

	ds, err := dataset.OpenWith(ctx, path, format, c)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"dataset": path, "sequences": len(ds.Sequences)}).Info("dataset loaded")

	opts := driver.Options{
		Threads:     o.threads,
		SkipErrors:  o.skipErrors,
		PerSequence: o.perSequence,
	}
	if opts.Threads < 1 {
		opts.Threads = runtime.NumCPU()
	}
	if o.progress {
		opts.Progress = barFactory(a.stderr)
	}

	stats, err := driver.Run(ctx, ds, set, opts)
	if err != nil {
		return err
	}

	if o.out == "-" {
		return output.WriteCombined(a.stdout, c, stats)
	}

	if err := os.MkdirAll(o.out, 0o755); err != nil {
		return err
	}
	w := &output.Writer{Dir: o.out, Codec: c, Gzip: o.gzip}
	if err := w.SaveAll(ctx, stats.Documents()); err != nil {
		return err
	}
	log.Debugf("wrote stats documents to %s", o.out)

	if o.noPlots {
		return nil
	}
	alpha, err := set.Alphabet()
	if err != nil {
		return err
	}
	var avg map[string]float64
	if stats.Dinucleotides != nil {
		avg = stats.Dinucleotides.Avg
	}
	if err := plot.WriteAll(o.out, ds.Sequences, alpha, avg); err != nil {
		return err
	}
	log.Debugf("wrote figures to %s", o.out)
	return nil
}
