package model

import "strings"

// ShapeType is the placeholder role of a shape.
type ShapeType int

const (
	ShapeUnset ShapeType = iota
	ShapeTitle
	ShapeBody
	ShapeDate
	ShapeFooter
	ShapeSlideNumber
)

func (st ShapeType) String() string {
	switch st {
	case ShapeTitle:
		return "Title"
	case ShapeBody:
		return "Body"
	case ShapeDate:
		return "Date"
	case ShapeFooter:
		return "Footer"
	case ShapeSlideNumber:
		return "SlideNumber"
	default:
		return "Unset"
	}
}

// PlaceholderSize is the size hint of a placeholder.
type PlaceholderSize int

const (
	SizeFull PlaceholderSize = iota
	SizeHalf
	SizeQuarter
)

func (ps PlaceholderSize) String() string {
	switch ps {
	case SizeHalf:
		return "Half"
	case SizeQuarter:
		return "Quarter"
	default:
		return "Full"
	}
}

// Shape is a shape on a slide or master.
type Shape struct {
	ID               int
	Name             string
	Type             ShapeType
	Size             PlaceholderSize
	PlaceholderIndex int
	Position         Point
	Extent           Extent
	TextBodies       []*TextBody
}

// Bounds returns the shape's bounding rectangle.
func (s *Shape) Bounds() Rect {
	return Rect{Origin: s.Position, Size: s.Extent}
}

// Text returns the plain text of the shape, one line per paragraph.
func (s *Shape) Text() string {
	var lines []string
	for _, tb := range s.TextBodies {
		for _, p := range tb.Paragraphs {
			lines = append(lines, p.Text())
		}
	}
	return strings.Join(lines, "\n")
}
