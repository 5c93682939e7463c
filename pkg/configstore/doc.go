// Package configstore provides a SQLite backed store of configuration
// variables and their translations.
//
// The store implements [configdoc.Collector] and [configdoc.InstallChecker].
// It uses the pure Go driver from [modernc.org/sqlite], so no CGO toolchain is
// required.
package configstore
