package configdoc

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInstalled indicates the configuration database has not been installed.
	ErrNotInstalled = errors.New("not installed")

	// ErrUnsupportedFormat indicates an unknown export format was requested.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrOpenOutput indicates the output file could not be opened for writing.
	ErrOpenOutput = errors.New("open output file")

	// ErrWriteOutput indicates an error occurred while writing the export.
	ErrWriteOutput = errors.New("write output")

	// ErrStoreAccess indicates the configuration store could not be read.
	ErrStoreAccess = errors.New("store access")

	// ErrEncode indicates an error occurred while encoding entries.
	ErrEncode = errors.New("encode")
)

// UnsupportedFormatError is returned for a format outside [FormatEnum].
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("format %s not supported", e.Format)
}

// Is reports whether target is [ErrUnsupportedFormat].
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// ExitError carries the process exit code for a failure that has already
// been reported to the user.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d: %v", e.Code, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
