// Package version reports the configdoc build version.
//
// [Version] and [Revision] are set at link time. Builds without linker flags
// fall back to the module build information.
package version
