package configdoc

import "strings"

type Format string

const (
	JSONFormat  Format = "json"
	YAMLFormat  Format = "yml"
	XMLFormat   Format = "xml"
	ArrayFormat Format = "array"

	DefaultFormat = JSONFormat
)

// FormatEnum lists every supported [Format], in the order shown to users.
var FormatEnum = []Format{
	JSONFormat,
	XMLFormat,
	YAMLFormat,
	ArrayFormat,
}

// ParseFormat returns the [Format] named exactly by s. Any other value,
// including a differently cased name, returns an [*UnsupportedFormatError].
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case JSONFormat:
		return JSONFormat, nil
	case YAMLFormat:
		return YAMLFormat, nil
	case XMLFormat:
		return XMLFormat, nil
	case ArrayFormat:
		return ArrayFormat, nil
	default:
		return "", &UnsupportedFormatError{Format: s}
	}
}

// FormatNames returns the names of all supported formats joined by sep.
func FormatNames(sep string) string {
	names := make([]string, 0, len(FormatEnum))
	for _, f := range FormatEnum {
		names = append(names, string(f))
	}

	return strings.Join(names, sep)
}
