package model

import "time"

// Metadata contains document-level information from the core properties part.
type Metadata struct {
	Title          string
	Author         string
	Subject        string
	Description    string
	Keywords       []string
	LastModifiedBy string
	Revision       string
	Created        time.Time
	Modified       time.Time
}

// PartRef identifies a part referenced from an id list: the numeric id from
// the list entry, the relationship id it used, and the resolved part path.
type PartRef struct {
	ID    uint32
	RelID string
	Path  string
}

// Outline is the result of the first construction phase. Masters and Slides
// are in document order.
type Outline struct {
	Masters []PartRef
	Slides  []PartRef
}

// Presentation is a fully built presentation.
type Presentation struct {
	Metadata Metadata
	Masters  []*Master
	Slides   []*Slide
}

// SlideCount returns the number of slides
func (p *Presentation) SlideCount() int {
	return len(p.Slides)
}

// Slide returns a slide by number (1-indexed)
func (p *Presentation) Slide(number int) *Slide {
	if number < 1 || number > len(p.Slides) {
		return nil
	}
	return p.Slides[number-1]
}

// Master is a built slide master.
type Master struct {
	Ref     PartRef
	Layouts []PartRef
	Shapes  []*Shape
}

// Slide is a built slide.
type Slide struct {
	Number     int // 1-indexed position in the presentation
	Ref        PartRef
	LayoutPath string // empty when the slide has no layout relationship
	Shapes     []*Shape
}

// TextBodies returns the text bodies of all shapes in shape order.
func (s *Slide) TextBodies() []*TextBody {
	var out []*TextBody
	for _, sh := range s.Shapes {
		out = append(out, sh.TextBodies...)
	}
	return out
}

// Title returns the text of the first title placeholder, or "".
func (s *Slide) Title() string {
	for _, sh := range s.Shapes {
		if sh.Type == ShapeTitle {
			return sh.Text()
		}
	}
	return ""
}
