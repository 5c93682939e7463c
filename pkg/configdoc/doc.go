// Package configdoc provides functionality for exporting configuration
// documentation to various formats.
//
// This package implements the `config:export` operation: it collects
// configuration entries together with their localized title and description,
// encodes them as JSON, YAML, XML or a Go literal dump, and writes the result
// to a file or standard output.
package configdoc
