package configdoc

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is the default value of the --lang flag.
const DefaultLocale = "en_US"

// NormalizeLocale rewrites a BCP 47 or POSIX style locale identifier to the
// underscore form used by translation rows, e.g. "en-us" becomes "en_US".
// Only separators and case change: deprecated codes such as "iw_IL" are kept.
// Values that cannot be parsed, including the empty string, are returned
// unchanged.
func NormalizeLocale(locale string) string {
	if locale == "" {
		return locale
	}

	tag, err := language.Raw.Parse(locale)
	if err != nil {
		return locale
	}

	return strings.ReplaceAll(tag.String(), "-", "_")
}
