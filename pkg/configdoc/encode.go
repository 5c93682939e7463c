package configdoc

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultXMLRoot is the root element name of XML exports.
	DefaultXMLRoot = "configuration"

	// LegacyXMLRoot is the root element name used by older exports.
	LegacyXMLRoot = "hooks"

	xmlEntryElement = "entry"
	arrayTypeName   = "[]configdoc.Entry"
)

type encoder struct {
	xmlRoot string
}

type EncoderOpts func(*encoder)

// WithXMLRoot sets the root element name used by [XMLFormat].
func WithXMLRoot(name string) EncoderOpts {
	return func(e *encoder) {
		e.xmlRoot = name
	}
}

// Encode serializes entries using the given [Format]. A nil slice is encoded
// the same way as an empty one.
func Encode(entries []Entry, f Format, opts ...EncoderOpts) ([]byte, error) {
	e := &encoder{xmlRoot: DefaultXMLRoot}
	for _, opt := range opts {
		opt(e)
	}

	if entries == nil {
		entries = []Entry{}
	}

	switch f {
	case JSONFormat:
		return e.encodeJSON(entries)
	case YAMLFormat:
		return e.encodeYAML(entries)
	case XMLFormat:
		return e.encodeXML(entries)
	case ArrayFormat:
		return e.encodeArray(entries), nil
	default:
		return nil, &UnsupportedFormatError{Format: string(f)}
	}
}

func (e *encoder) encodeJSON(entries []Entry) ([]byte, error) {
	buf := &bytes.Buffer{}

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(entries); err != nil {
		return nil, fmt.Errorf("%w: json: %w", ErrEncode, err)
	}

	// Encoder always terminates the value with a newline.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (e *encoder) encodeYAML(entries []Entry) ([]byte, error) {
	buf := &bytes.Buffer{}

	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)

	if err := enc.Encode(entries); err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrEncode, err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrEncode, err)
	}

	return buf.Bytes(), nil
}

func (e *encoder) encodeXML(entries []Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(buf)
	root := xml.StartElement{Name: xml.Name{Local: e.xmlRoot}}

	if err := enc.EncodeToken(root); err != nil {
		return nil, fmt.Errorf("%w: xml: %w", ErrEncode, err)
	}

	entryStart := xml.StartElement{Name: xml.Name{Local: xmlEntryElement}}
	for _, entry := range entries {
		if err := enc.EncodeElement(entry, entryStart); err != nil {
			return nil, fmt.Errorf("%w: xml: entry %q: %w", ErrEncode, entry.Name, err)
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, fmt.Errorf("%w: xml: %w", ErrEncode, err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: xml: %w", ErrEncode, err)
	}

	buf.WriteString("\n")

	return buf.Bytes(), nil
}

// encodeArray writes entries as a Go composite literal.
func (e *encoder) encodeArray(entries []Entry) []byte {
	buf := &bytes.Buffer{}

	if len(entries) == 0 {
		buf.WriteString(arrayTypeName + "{}\n")

		return buf.Bytes()
	}

	buf.WriteString(arrayTypeName + "{\n")

	for _, entry := range entries {
		fmt.Fprintf(buf, "\t{Name: %s, Title: %s, Description: %s},\n",
			strconv.Quote(entry.Name),
			strconv.Quote(entry.Title),
			strconv.Quote(entry.Description),
		)
	}

	buf.WriteString("}\n")

	return buf.Bytes()
}
