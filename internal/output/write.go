// internal/output/write.go
package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"

	"seqstat-core/codec"

	"seqstat/internal/jsonutil"
)

// Writer persists stats documents under one directory.
type Writer struct {
	Dir   string
	Codec codec.Codec // nil selects codec.Default
	Gzip  bool        // write <name>.gz instead of <name>
}

// Save writes one document. With Gzip set the file is gzip-compressed and
// named <name>.gz.
func (w *Writer) Save(name string, doc any) error {
	path := filepath.Join(w.Dir, name)
	if w.Gzip {
		path += ".gz"
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	var dst io.Writer = f
	var zw *gzip.Writer
	if w.Gzip {
		zw = gzip.NewWriter(f)
		dst = zw
	}
	if err := jsonutil.EncodePretty(dst, w.Codec, doc); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// SaveAll writes every document in docs, a few files at a time. The first
// failure cancels the remaining writes.
func (w *Writer) SaveAll(ctx context.Context, docs map[string]any) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for name, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return w.Save(name, doc)
		})
	}
	return g.Wait()
}

// WriteCombined streams the whole run as one JSON document, the form used
// when the output directory is "-".
func WriteCombined(w io.Writer, c codec.Codec, s *Stats) error {
	return jsonutil.EncodePretty(w, c, s.Results())
}
