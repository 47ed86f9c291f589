package opc

import (
	"path"
	"sort"
	"strings"
)

// ContentTypesPart is the name of the content types part.
const ContentTypesPart = "[Content_Types].xml"

// ContentTypes maps part names to media types.
type ContentTypes struct {
	defaults  map[string]string // extension (lower case, no dot) -> type
	overrides map[string]string // part name without leading slash -> type
}

// ParseContentTypes parses a [Content_Types].xml document.
func ParseContentTypes(data []byte) (*ContentTypes, error) {
	root, err := ParseElement(data)
	if err != nil {
		return nil, err
	}

	ct := &ContentTypes{
		defaults:  make(map[string]string),
		overrides: make(map[string]string),
	}
	for _, child := range root.Children {
		contentType, _ := child.Attr("ContentType")
		switch child.Name.Local {
		case "Default":
			ext, _ := child.Attr("Extension")
			ct.defaults[strings.ToLower(ext)] = contentType
		case "Override":
			name, _ := child.Attr("PartName")
			ct.overrides[strings.TrimPrefix(name, "/")] = contentType
		}
	}
	return ct, nil
}

// ReadContentTypes loads the content types part from pkg.
func ReadContentTypes(pkg Package) (*ContentTypes, error) {
	data, err := pkg.Part(ContentTypesPart)
	if err != nil {
		return nil, NewMalformedPartError(ContentTypesPart, err)
	}
	ct, err := ParseContentTypes(data)
	if err != nil {
		return nil, NewMalformedPartError(ContentTypesPart, err)
	}
	return ct, nil
}

// TypeOf returns the media type of a part. Overrides take precedence over
// extension defaults.
func (c *ContentTypes) TypeOf(part string) string {
	part = strings.TrimPrefix(part, "/")
	if t, ok := c.overrides[part]; ok {
		return t
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(part)), ".")
	return c.defaults[ext]
}

// PartsOfType returns the sorted override part names with the given media
// type.
func (c *ContentTypes) PartsOfType(contentType string) []string {
	var out []string
	for name, t := range c.overrides {
		if t == contentType {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
