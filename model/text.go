package model

import "strings"

// DefaultColor is the color of a run with no literal RGB fill.
const DefaultColor = "000000"

// Default body insets in EMUs.
const (
	DefaultHorizontalInset = 91440
	DefaultVerticalInset   = 45720
)

// BodyProperties holds the text body layout attributes. They are retained on
// the model but do not affect rendering.
type BodyProperties struct {
	Anchor             string
	AnchorCenter       bool
	LeftInset          int64
	TopInset           int64
	RightInset         int64
	BottomInset        int64
	Rotation           int
	Columns            int
	ColumnSpacing      int64
	ColumnsRightToLeft bool
	Wrap               string
	Vertical           string
	VerticalOverflow   string
	HorizontalOverflow string
	Upright            bool
}

// DefaultBodyProperties returns the properties used when a text body has no
// bodyPr element or omits attributes.
func DefaultBodyProperties() BodyProperties {
	return BodyProperties{
		Anchor:             "t",
		LeftInset:          DefaultHorizontalInset,
		TopInset:           DefaultVerticalInset,
		RightInset:         DefaultHorizontalInset,
		BottomInset:        DefaultVerticalInset,
		Columns:            1,
		Wrap:               "square",
		Vertical:           "horz",
		VerticalOverflow:   "overflow",
		HorizontalOverflow: "overflow",
	}
}

// TextBody is the text content of a shape. Paragraph order is rendering order.
type TextBody struct {
	Body            BodyProperties
	DefaultProperty *ParagraphProperty
	// LevelProperties[i] holds the list style for level i+1, or nil.
	LevelProperties [MaxLevels]*ParagraphProperty
	Paragraphs      []*Paragraph
}

// NewTextBody returns an empty text body with default body properties.
func NewTextBody() *TextBody {
	return &TextBody{Body: DefaultBodyProperties()}
}

// Paragraph is one paragraph of a text body.
type Paragraph struct {
	Property *ParagraphProperty
	Runs     []*TextRun
}

// Text returns the concatenated run text.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Underline is the underline style of a run.
type Underline int

const (
	UnderlineNone Underline = iota
	UnderlineSingle
	UnderlineDouble
)

func (u Underline) String() string {
	switch u {
	case UnderlineSingle:
		return "Single"
	case UnderlineDouble:
		return "Double"
	default:
		return "None"
	}
}

// FillStyle is the fill kind of a run's text.
type FillStyle int

const (
	FillSolid FillStyle = iota
	FillNone
	FillGradient
	FillPattern
)

func (f FillStyle) String() string {
	switch f {
	case FillNone:
		return "None"
	case FillGradient:
		return "Gradient"
	case FillPattern:
		return "Pattern"
	default:
		return "Solid"
	}
}

// TextRun is a span of text with uniform formatting.
type TextRun struct {
	Text          string
	Language      string
	Bold          bool
	Italic        bool
	Strikethrough bool
	Underline     Underline
	Color         string // six upper-case hex digits
	Fill          FillStyle
}

// NewTextRun returns a run with the given text and default formatting.
func NewTextRun(text string) *TextRun {
	return &TextRun{Text: text, Color: DefaultColor}
}
