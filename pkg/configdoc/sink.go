package configdoc

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

const gzipExt = ".gz"

// outputFile is an [io.WriteCloser] that optionally gzips its content.
type outputFile struct {
	f  *os.File
	gz *gzip.Writer
	w  io.Writer
}

// openOutput opens path for writing, creating it or truncating an existing
// file. Paths ending in ".gz" are gzip-compressed.
func openOutput(path string) (*outputFile, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err //nolint:wrapcheck // Wrapped by the caller.
	}

	out := &outputFile{f: f, w: f}
	if strings.HasSuffix(path, gzipExt) {
		slog.Debug("compressing output", slog.String("path", path))

		out.gz = gzip.NewWriter(f)
		out.w = out.gz
	}

	return out, nil
}

func (o *outputFile) Write(p []byte) (int, error) {
	return o.w.Write(p) //nolint:wrapcheck
}

// Close flushes any compressed data and closes the file. The file is closed
// even if flushing fails.
func (o *outputFile) Close() error {
	var gzErr error
	if o.gz != nil {
		gzErr = o.gz.Close()
	}

	err := o.f.Close()
	if gzErr != nil {
		return gzErr //nolint:wrapcheck
	}

	return err //nolint:wrapcheck
}
