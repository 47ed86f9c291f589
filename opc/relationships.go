package opc

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Relationship type suffixes. Both the transitional and the strict
// relationship namespaces end with these, so FirstOfType matches on suffix.
const (
	RelOfficeDocument = "/officeDocument"
	RelCoreProperties = "/metadata/core-properties"
	RelSlideMaster    = "/slideMaster"
	RelSlideLayout    = "/slideLayout"
)

// Relationship is one entry of a relationship part.
type Relationship struct {
	ID       string
	Type     string
	Target   string // resolved part path, or the raw target when External
	External bool
}

// Relationships is the relationship table of a single source part.
type Relationships struct {
	source string
	byID   map[string]Relationship
	order  []string
}

// EmptyRelationships returns a table with no entries for the given source.
func EmptyRelationships(source string) *Relationships {
	return &Relationships{source: source, byID: map[string]Relationship{}}
}

// LoadRelationships parses a relationship part belonging to source.
// Targets are resolved against the directory of source. When an id appears
// more than once the last entry wins.
func LoadRelationships(source string, data []byte) (*Relationships, error) {
	root, err := ParseElement(data)
	if err != nil {
		return nil, err
	}
	if root.Name.Local != "Relationships" {
		return nil, fmt.Errorf("unexpected root element %s", root.Name.Local)
	}

	rels := EmptyRelationships(source)
	for _, child := range root.Children {
		if child.Name.Local != "Relationship" {
			continue
		}
		id, _ := child.Attr("Id")
		if id == "" {
			continue
		}
		kind, _ := child.Attr("Type")
		target, _ := child.Attr("Target")
		mode, _ := child.Attr("TargetMode")

		rel := Relationship{ID: id, Type: kind, External: strings.EqualFold(mode, "External")}
		if rel.External {
			rel.Target = target
		} else {
			rel.Target = ResolveTarget(source, target)
		}

		if _, seen := rels.byID[id]; !seen {
			rels.order = append(rels.order, id)
		}
		rels.byID[id] = rel
	}
	return rels, nil
}

// ReadRelationships loads the relationship part for source from pkg.
// A missing relationship part yields an empty table.
func ReadRelationships(pkg Package, source string) (*Relationships, error) {
	name := RelsPathFor(source)
	data, err := pkg.Part(name)
	if err != nil {
		if errors.Is(err, ErrPartNotFound) {
			return EmptyRelationships(source), nil
		}
		return nil, NewMalformedPartError(name, err)
	}
	rels, err := LoadRelationships(source, data)
	if err != nil {
		return nil, NewMalformedPartError(name, err)
	}
	return rels, nil
}

// Source returns the part this table belongs to.
func (r *Relationships) Source() string { return r.source }

// Len returns the number of relationships.
func (r *Relationships) Len() int { return len(r.order) }

// Get returns the relationship with the given id.
func (r *Relationships) Get(id string) (Relationship, bool) {
	rel, ok := r.byID[id]
	return rel, ok
}

// Resolve returns the target part path for id.
// An unknown id is reported as *UnresolvedRelationshipError.
func (r *Relationships) Resolve(id string) (string, error) {
	rel, ok := r.byID[id]
	if !ok {
		return "", &UnresolvedRelationshipError{ID: id, Source: r.source}
	}
	return rel.Target, nil
}

// FirstOfType returns the first relationship, in document order, whose type
// ends with kind.
func (r *Relationships) FirstOfType(kind string) (Relationship, bool) {
	for _, id := range r.order {
		rel := r.byID[id]
		if strings.HasSuffix(rel.Type, kind) {
			return rel, true
		}
	}
	return Relationship{}, false
}

// All returns the relationships in document order.
func (r *Relationships) All() []Relationship {
	out := make([]Relationship, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// RelsPathFor returns the relationship part path for a source part.
// The package itself (empty source) maps to "_rels/.rels".
func RelsPathFor(source string) string {
	source = strings.TrimPrefix(source, "/")
	if source == "" {
		return "_rels/.rels"
	}
	dir, base := path.Split(source)
	return dir + "_rels/" + base + ".rels"
}

// ResolveTarget resolves a relationship target against its source part.
// Absolute targets are package-rooted.
func ResolveTarget(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return path.Clean(strings.TrimPrefix(target, "/"))
	}
	dir := path.Dir(strings.TrimPrefix(source, "/"))
	if dir == "." {
		return path.Clean(target)
	}
	return path.Join(dir, target)
}
