package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hashicorp/go-multierror"

	charmlog "github.com/charmbracelet/log"
)

const (
	JSONFormat   = "json"
	LogfmtFormat = "logfmt"
	TextFormat   = "text"
)

var (
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrInvalidFormat = errors.New("invalid log format")
)

// CreateHandlerWithStrings creates a [slog.Handler] writing to w, using the
// level and format given by name. All invalid arguments are reported together.
func CreateHandlerWithStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	var merr error

	level, err := GetLevel(logLevel)
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	formatter, err := GetFormatter(logFormat)
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return nil, merr //nolint:wrapcheck
	}

	return CreateHandler(w, level, formatter), nil
}

// CreateHandler creates a [slog.Handler] backed by a charm logger.
func CreateHandler(w io.Writer, level charmlog.Level, formatter charmlog.Formatter) slog.Handler {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
	})
}

// GetLevel parses a log level name.
func GetLevel(level string) (charmlog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "warning":
		return charmlog.WarnLevel, nil
	case "trace":
		return charmlog.DebugLevel, nil
	}

	l, err := charmlog.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}

	return l, nil
}

// GetFormatter parses a log format name.
func GetFormatter(format string) (charmlog.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case JSONFormat:
		return charmlog.JSONFormatter, nil
	case LogfmtFormat:
		return charmlog.LogfmtFormatter, nil
	case TextFormat, "":
		return charmlog.TextFormatter, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}
