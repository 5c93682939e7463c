package configdoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/macropower/configdoc/pkg/render"
	"github.com/macropower/configdoc/pkg/tracing"
)

const (
	// ExitNotInstalled is the exit code used when the database is not installed.
	ExitNotInstalled = 1
	// ExitOpenOutput is the exit code used when the output file cannot be opened.
	ExitOpenOutput = 2
)

// Options configures a single export.
type Options struct {
	Format     Format
	Locale     string
	OutputFile string // Empty writes to the exporter's Stdout.
	XMLRoot    string
}

// Exporter runs the `config:export` operation.
type Exporter struct {
	Collector Collector
	Installed InstallChecker
	Tracer    tracing.Tracer // Nil logs spans to the default logger.
	Stdout    io.Writer
	Stderr    io.Writer
}

// NewExporter creates a new [Exporter].
func NewExporter(collector Collector, installed InstallChecker, stdout, stderr io.Writer) *Exporter {
	return &Exporter{
		Collector: collector,
		Installed: installed,
		Stdout:    stdout,
		Stderr:    stderr,
	}
}

// Export collects, encodes and writes all configuration entries.
//
// Failures the user can fix (the database is not installed, the output file
// cannot be opened) are reported on Stderr and returned as an [*ExitError].
// Any other error is returned unreported.
func (x *Exporter) Export(ctx context.Context, opts Options) error {
	slog.Debug("checking installation")

	installed, err := x.Installed.Installed(ctx)
	if err != nil {
		return fmt.Errorf("%w: check installation: %w", ErrStoreAccess, err)
	}

	if !installed {
		x.reportError(
			"",
			"You need to install configdoc before exporting the config variables.",
			"",
		)

		return &ExitError{Code: ExitNotInstalled, Err: ErrNotInstalled}
	}

	if opts.Format == "" {
		opts.Format = DefaultFormat
	}

	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return err
	}

	locale := NormalizeLocale(opts.Locale)

	tracer := x.tracer()

	slog.Debug("collecting config entries", slog.String("locale", locale))

	span := tracer.StartSpan(ctx, "collect")
	entries, err := x.Collector.Collect(ctx, locale)
	span.SetAttr("count", len(entries))
	span.Finish()

	if err != nil {
		if errors.Is(err, ErrStoreAccess) {
			return err
		}

		return fmt.Errorf("%w: %w", ErrStoreAccess, err)
	}

	slog.Debug("encoding config entries",
		slog.Int("count", len(entries)),
		slog.String("format", string(format)),
	)

	encOpts := []EncoderOpts{}
	if opts.XMLRoot != "" {
		encOpts = append(encOpts, WithXMLRoot(opts.XMLRoot))
	}

	span = tracer.StartSpan(ctx, "encode")
	data, err := Encode(entries, format, encOpts...)
	span.SetAttr("bytes", len(data))
	span.Finish()

	if err != nil {
		return err
	}

	span = tracer.StartSpan(ctx, "write")
	defer span.Finish()

	if opts.OutputFile == "" {
		_, err = x.Stdout.Write(data)
		if err != nil {
			return fmt.Errorf("%w: stdout: %w", ErrWriteOutput, err)
		}

		return nil
	}

	return x.writeFile(opts.OutputFile, data)
}

func (x *Exporter) writeFile(path string, data []byte) error {
	slog.Debug("writing output file", slog.String("path", path))

	f, err := openOutput(path)
	if err != nil {
		x.reportError(
			"",
			fmt.Sprintf("Unable to write in the file '%s'", path),
			"",
		)

		return &ExitError{
			Code: ExitOpenOutput,
			Err:  fmt.Errorf("%w: %w", ErrOpenOutput, err),
		}
	}

	_, err = f.Write(data)
	if err != nil {
		tryClose(f)

		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}

	return nil
}

//nolint:ireturn
func (x *Exporter) tracer() tracing.Tracer {
	if x.Tracer == nil {
		return tracing.NewLoggingTracer(nil)
	}

	return x.Tracer
}

func (x *Exporter) reportError(lines ...string) {
	err := render.ErrorBlock(x.Stderr, lines...)
	if err != nil {
		slog.Warn("failed to render error", slog.Any("err", err))
	}
}

// tryClose closes c, logging any error.
func tryClose(c io.Closer) {
	err := c.Close()
	if err != nil {
		slog.Warn("failed to close",
			slog.Any("closer", c),
			slog.Any("err", err),
		)
	}
}
