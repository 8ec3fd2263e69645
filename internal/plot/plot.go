// internal/plot/plot.go
// Package plot renders the run's PNG figures: the per-base dataset image and
// the averaged dinucleotide matrix.
package plot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"seqstat-core/alphabet"
)

// Names of the rendered figures.
const (
	ConfmatFile = "dnt_confmat.png"
	DatasetFile = "dna_visualisation.png"
)

// WriteAll renders both figures into dir. The dinucleotide matrix is skipped
// when avg is nil, which happens when no sequence survived that phase.
func WriteAll(dir string, seqs []string, a alphabet.Alphabet, avg map[string]float64) error {
	if avg != nil {
		img, err := ConfusionMatrix(avg, a)
		if err != nil {
			return err
		}
		if err := writePNG(filepath.Join(dir, ConfmatFile), img); err != nil {
			return err
		}
	}
	return writePNG(filepath.Join(dir, DatasetFile), DatasetImage(seqs, a))
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	return nil
}
