// Package render converts a built presentation into HTML.
//
// Each slide becomes one page element wrapping the HTML of its text bodies.
// Within a text body, paragraphs are rendered by a left fold that carries the
// previous paragraph's property: consecutive list paragraphs share one list
// container, and a change of list kind or numbering start closes the open
// container and opens a new one.
//
// A list container that is still open after the last paragraph of a text
// body is left open. Callers that need balanced markup end the body with a
// paragraph without bullets.
package render

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/pptxhtml/bullet"
	"github.com/tsawler/pptxhtml/model"
)

// Options controls the page wrapper and alignment output.
type Options struct {
	// PageTag is the element name wrapping each slide.
	PageTag string
	// LeftDelim and RightDelim delimit the page tag.
	LeftDelim  string
	RightDelim string
	// ExplicitLeftAlign emits align="left" on left-aligned paragraphs.
	ExplicitLeftAlign bool
}

// DefaultOptions returns the default options: div pages with angle bracket
// delimiters and no attribute for left alignment.
func DefaultOptions() Options {
	return Options{
		PageTag:    "div",
		LeftDelim:  "<",
		RightDelim: ">",
	}
}

// Renderer renders model values to HTML. It holds no state between calls and
// is safe for concurrent use.
type Renderer struct {
	opts Options
}

// New creates a Renderer. Empty option fields take their defaults.
func New(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.PageTag == "" {
		opts.PageTag = def.PageTag
	}
	if opts.LeftDelim == "" {
		opts.LeftDelim = def.LeftDelim
	}
	if opts.RightDelim == "" {
		opts.RightDelim = def.RightDelim
	}
	return &Renderer{opts: opts}
}

// Options returns the renderer's options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Presentation renders every slide in order, each wrapped in the page tag.
func (r *Renderer) Presentation(p *model.Presentation) string {
	var sb strings.Builder
	for _, s := range p.Slides {
		sb.WriteString(r.Page(s))
	}
	return sb.String()
}

// Page renders one slide wrapped in the page tag.
func (r *Renderer) Page(s *model.Slide) string {
	o := r.opts
	return o.LeftDelim + o.PageTag + o.RightDelim +
		r.Slide(s) +
		o.LeftDelim + "/" + o.PageTag + o.RightDelim
}

// Slide renders the text bodies of a slide's shapes in shape order.
// A slide without shapes renders as "".
func (r *Renderer) Slide(s *model.Slide) string {
	var sb strings.Builder
	for _, sh := range s.Shapes {
		for _, tb := range sh.TextBodies {
			sb.WriteString(r.TextBody(tb))
		}
	}
	return sb.String()
}

// TextBody renders the paragraphs of one text body. List state does not
// carry over between text bodies.
func (r *Renderer) TextBody(tb *model.TextBody) string {
	return r.Paragraphs(tb.Paragraphs)
}

// State is the accumulator of the paragraph fold: the HTML so far and the
// property of the last paragraph, nil before the first.
type State struct {
	HTML string
	Prev *model.ParagraphProperty
}

// Paragraphs folds a paragraph sequence into HTML. The result equals
// repeated Step calls from the zero State.
func (r *Renderer) Paragraphs(ps []*model.Paragraph) string {
	var (
		sb   strings.Builder
		prev *model.ParagraphProperty
	)
	for _, p := range ps {
		sb.WriteString(r.Paragraph(prev, p))
		prev = propertyOf(p)
	}
	return sb.String()
}

// Step renders p after the paragraph described by s and returns the next
// state. s is not modified.
func (r *Renderer) Step(s State, p *model.Paragraph) State {
	return State{
		HTML: s.HTML + r.Paragraph(s.Prev, p),
		Prev: propertyOf(p),
	}
}

// Paragraph renders p given the property of the previous paragraph in the
// same text body (nil for the first). The output starts with any container
// transitions, followed by the paragraph or list item element.
func (r *Renderer) Paragraph(prev *model.ParagraphProperty, p *model.Paragraph) string {
	curr := propertyOf(p)

	var sb strings.Builder
	item := atom.Li
	switch curr.BulletStyle {
	case model.AutoNumbered:
		if styleOf(prev) == model.Bullets {
			sb.WriteString(closeTag(atom.Ul))
		}
		if styleOf(prev) == model.AutoNumbered && prev.BulletStartAt != curr.BulletStartAt {
			sb.WriteString(closeTag(atom.Ol))
		}
		if !prev.SameList(curr) {
			sb.WriteString(orderedList(curr))
		}
	case model.Bullets:
		if styleOf(prev) == model.AutoNumbered {
			sb.WriteString(closeTag(atom.Ol))
		}
		if !prev.SameList(curr) {
			sb.WriteString(openTag(atom.Ul, ""))
		}
	default:
		switch styleOf(prev) {
		case model.AutoNumbered:
			sb.WriteString(closeTag(atom.Ol))
		case model.Bullets:
			sb.WriteString(closeTag(atom.Ul))
		}
		item = atom.P
	}

	sb.WriteString(openTag(item, r.alignAttr(curr.Alignment)))
	for _, run := range p.Runs {
		sb.WriteString(r.Run(run))
	}
	sb.WriteString(closeTag(item))
	return sb.String()
}

// Run renders a text run. Wrappers nest as bold, italic, underline and then
// color around the escaped text. Strikethrough is not rendered.
func (r *Renderer) Run(run *model.TextRun) string {
	var openers, closers []string
	wrap := func(a atom.Atom, attrs string) {
		openers = append(openers, openTag(a, attrs))
		closers = append(closers, closeTag(a))
	}

	if run.Bold {
		wrap(atom.Strong, "")
	}
	if run.Italic {
		wrap(atom.Em, "")
	}
	switch run.Underline {
	case model.UnderlineSingle:
		wrap(atom.Span, styleAttr("text-decoration: underline;"))
	case model.UnderlineDouble:
		wrap(atom.Span, styleAttr("text-decoration: underline; text-decoration-style: double;"))
	}
	wrap(atom.Span, styleAttr("color: #"+colorOf(run)+";"))

	var sb strings.Builder
	for _, o := range openers {
		sb.WriteString(o)
	}
	sb.WriteString(html.EscapeString(run.Text))
	for i := len(closers) - 1; i >= 0; i-- {
		sb.WriteString(closers[i])
	}
	return sb.String()
}

func (r *Renderer) alignAttr(a model.Alignment) string {
	if a == model.AlignLeft && !r.opts.ExplicitLeftAlign {
		return ""
	}
	return ` align="` + a.String() + `"`
}

// orderedList opens an ol for p. The start attribute is only written when
// it differs from the default.
func orderedList(p *model.ParagraphProperty) string {
	var attrs string
	if p.BulletStartAt != model.DefaultStartAt {
		attrs += ` start="` + strconv.Itoa(p.BulletStartAt) + `"`
	}
	attrs += ` class="` + html.EscapeString(bullet.ClassName(p.BulletType)) + `"`
	return openTag(atom.Ol, attrs)
}

func openTag(a atom.Atom, attrs string) string {
	return "<" + a.String() + attrs + ">"
}

func closeTag(a atom.Atom) string {
	return "</" + a.String() + ">"
}

func styleAttr(css string) string {
	return ` style="` + html.EscapeString(css) + `"`
}

func colorOf(run *model.TextRun) string {
	if run.Color == "" {
		return model.DefaultColor
	}
	return run.Color
}

// propertyOf returns the paragraph's property, or a default one when unset.
func propertyOf(p *model.Paragraph) *model.ParagraphProperty {
	if p.Property == nil {
		return model.NewParagraphProperty(0)
	}
	return p.Property
}

// styleOf returns the bullet style of prev; a missing paragraph has none.
func styleOf(prev *model.ParagraphProperty) model.BulletStyle {
	if prev == nil {
		return model.NoBullets
	}
	return prev.BulletStyle
}
