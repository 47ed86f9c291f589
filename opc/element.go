package opc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Element is a decoded XML element with namespace-qualified names.
// Only character data directly inside the element is kept in Text.
type Element struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Element
	Text     string
}

// Attr returns the value of the first attribute with the given local name
// and no namespace.
func (e *Element) Attr(local string) (string, bool) {
	return e.AttrNS("", local)
}

// AttrNS returns the value of the attribute with the given namespace and
// local name.
func (e *Element) AttrNS(space, local string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, a := range e.Attrs {
		if a.Name.Space == space && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

// ParseElement decodes an XML document into an element tree.
// A leading byte-order mark is honoured; UTF-16 input is transcoded to UTF-8
// before decoding and non-UTF-8 declared encodings are handled through
// golang.org/x/net/html/charset.
func ParseElement(data []byte) (*Element, error) {
	r, err := normalizeEncoding(data)
	if err != nil {
		return nil, err
	}

	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var (
		root  *Element
		stack []*Element
		text  strings.Builder
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name, Attrs: copyAttrs(t.Attr)}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Text += text.String()
				parent.Children = append(parent.Children, el)
			} else if root != nil {
				return nil, fmt.Errorf("multiple root elements")
			} else {
				root = el
			}
			text.Reset()
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected end element %s", t.Name.Local)
			}
			top := stack[len(stack)-1]
			top.Text += text.String()
			text.Reset()
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				text.Write(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("no root element")
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("unclosed element %s", stack[len(stack)-1].Name.Local)
	}
	return root, nil
}

// normalizeEncoding strips a UTF-8 byte-order mark and transcodes UTF-16
// input to UTF-8.
func normalizeEncoding(data []byte) (io.Reader, error) {
	switch {
	case bytes.HasPrefix(data, utf8BOM):
		return bytes.NewReader(data[len(utf8BOM):]), nil
	case bytes.HasPrefix(data, utf16LEBOM), bytes.HasPrefix(data, utf16BEBOM):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, data)
		if err != nil {
			return nil, fmt.Errorf("transcode utf-16: %w", err)
		}
		return bytes.NewReader(stripUTF16Declaration(out)), nil
	default:
		return bytes.NewReader(data), nil
	}
}

// stripUTF16Declaration rewrites a UTF-16 encoding declaration after the
// document has been transcoded, so the decoder does not try to transcode it
// a second time.
func stripUTF16Declaration(data []byte) []byte {
	if !bytes.HasPrefix(data, []byte("<?xml")) {
		return data
	}
	end := bytes.Index(data, []byte("?>"))
	if end < 0 {
		return data
	}
	decl := string(data[:end])
	lower := strings.ToLower(decl)
	if !strings.Contains(lower, "utf-16") {
		return data
	}
	out := make([]byte, 0, len(data))
	out = append(out, `<?xml version="1.0"`...)
	return append(out, data[end:]...)
}

func copyAttrs(attrs []xml.Attr) []xml.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]xml.Attr, len(attrs))
	copy(out, attrs)
	return out
}

// ReadElement reads a part from the package and decodes it. Missing parts and
// decode failures are reported as *MalformedPartError.
func ReadElement(pkg Package, name string) (*Element, error) {
	data, err := pkg.Part(name)
	if err != nil {
		return nil, NewMalformedPartError(name, err)
	}
	el, err := ParseElement(data)
	if err != nil {
		return nil, NewMalformedPartError(name, err)
	}
	return el, nil
}
