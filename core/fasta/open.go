// core/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// fileReader reads a sequence file through its sniff buffer and, for gzip
// input, the decompressor. Close releases every layer.
type fileReader struct {
	io.Reader
	gz   *gzip.Reader
	file *os.File
}

func (r *fileReader) Close() error {
	var first error
	if r.gz != nil {
		first = r.gz.Close()
	}
	if err := r.file.Close(); err != nil && first == nil {
		first = err
	}
	return first
}

// Open opens a sequence file for reading. "-" is stdin; gzip input is
// detected by magic number (1F 8B) or a .gz suffix and decompressed
// transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(fh)
	if !sniffGzip(br, path) {
		return &fileReader{Reader: br, file: fh}, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return &fileReader{Reader: gr, gz: gr, file: fh}, nil
}

// sniffGzip reports whether the stream must be read through gzip, by magic
// number or by suffix. Peek does not consume from br, so the sniffed bytes
// stay in the stream either way.
func sniffGzip(br *bufio.Reader, path string) bool {
	if strings.HasSuffix(path, ".gz") {
		return true
	}
	magic, err := br.Peek(2)
	return err == nil && magic[0] == 0x1f && magic[1] == 0x8b
}
