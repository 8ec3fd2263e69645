// core/dataset/dataset.go
package dataset

import (
	"context"
	"fmt"
	"io"

	"seqstat-core/codec"
	"seqstat-core/fasta"
)

// Dataset is a collection of sequences analyzed together. NumSequences and
// SequenceLength describe the intended shape; they are advisory and loaders
// do not enforce them.
type Dataset struct {
	NumSequences   int      `json:"num_sequences"`
	SequenceLength int      `json:"sequence_length"`
	Sequences      []string `json:"sequences"`
}

// Consistent reports whether the advisory metadata matches the sequences.
func (d *Dataset) Consistent() bool {
	if d.NumSequences != len(d.Sequences) {
		return false
	}
	for _, s := range d.Sequences {
		if len(s) != d.SequenceLength {
			return false
		}
	}
	return true
}

// DecodeJSON reads a JSON dataset document from r with c.
func DecodeJSON(r io.Reader, c codec.Codec) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var d Dataset
	if err := c.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}
	if d.Sequences == nil {
		return nil, fmt.Errorf("dataset: document has no sequences field")
	}
	return &d, nil
}

// FromRecords adapts FASTA records into a Dataset. The advisory metadata is
// filled in from what was read: the count, and the first record's length.
func FromRecords(recs []fasta.Record) *Dataset {
	d := &Dataset{Sequences: make([]string, 0, len(recs))}
	for _, r := range recs {
		d.Sequences = append(d.Sequences, string(r.Seq))
	}
	d.NumSequences = len(d.Sequences)
	if len(d.Sequences) > 0 {
		d.SequenceLength = len(d.Sequences[0])
	}
	return d
}

// Open loads a dataset from path with the default codec, sniffing the format
// from the file name.
func Open(path string) (*Dataset, error) {
	return OpenWith(context.Background(), path, FormatAuto, codec.Default)
}

// OpenWith loads a dataset from path. FormatAuto sniffs the format from the
// file name; "-" reads FASTA from stdin. Gzip input is transparent for both
// formats.
func OpenWith(ctx context.Context, path string, format Format, c codec.Codec) (*Dataset, error) {
	if format == FormatAuto || format == "" {
		format = DetectFormat(path)
	}
	switch format {
	case FormatJSON:
		rc, err := fasta.Open(path)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return DecodeJSON(rc, c)
	case FormatFASTA:
		recs, err := fasta.ReadAllPathCtx(ctx, path)
		if err != nil {
			return nil, err
		}
		return FromRecords(recs), nil
	default:
		return nil, fmt.Errorf("dataset: unknown format %q", format)
	}
}
