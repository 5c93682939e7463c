package configdoc

import "context"

// Entry is a single configuration variable with its localized documentation.
// Field order is significant: every encoding emits name, title, description.
type Entry struct {
	Name        string `json:"name"        xml:"name"        yaml:"name"`
	Title       string `json:"title"       xml:"title"       yaml:"title"`
	Description string `json:"description" xml:"description" yaml:"description"`
}

// Collector loads all configuration entries for a locale.
type Collector interface {
	Collect(ctx context.Context, locale string) ([]Entry, error)
}

// InstallChecker reports whether the configuration database is ready to be
// exported.
type InstallChecker interface {
	Installed(ctx context.Context) (bool, error)
}

// InstallCheckFunc adapts a function to [InstallChecker].
type InstallCheckFunc func(ctx context.Context) (bool, error)

func (f InstallCheckFunc) Installed(ctx context.Context) (bool, error) {
	return f(ctx)
}
