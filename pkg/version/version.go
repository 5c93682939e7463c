package version

import "runtime/debug"

// Set at build time with -ldflags "-X".
var (
	Version  = "0.0.0-dev"
	Revision = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if Version == "0.0.0-dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && Revision == "unknown" {
			Revision = s.Value
		}
	}
}

// String returns the version and revision.
func String() string {
	return Version + "+" + Revision
}
