package render

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/pptxhtml/bullet"
	"github.com/tsawler/pptxhtml/model"
)

// plain, auto and bullets build paragraphs with a single default run.
func plain(text string) *model.Paragraph {
	return &model.Paragraph{Property: model.NewParagraphProperty(0), Runs: []*model.TextRun{model.NewTextRun(text)}}
}

func auto(start int, text string) *model.Paragraph {
	p := plain(text)
	p.Property.BulletStyle = model.AutoNumbered
	p.Property.BulletStartAt = start
	return p
}

func bullets(text string) *model.Paragraph {
	p := plain(text)
	p.Property.BulletStyle = model.Bullets
	return p
}

// span is the default color wrapper around text.
func span(text string) string {
	return `<span style="color: #000000;">` + text + `</span>`
}

func TestParagraphs_ContinuedList(t *testing.T) {
	r := New(DefaultOptions())
	got := r.Paragraphs([]*model.Paragraph{
		plain("Title"),
		auto(1, "A"),
		auto(1, "B"),
		plain("End"),
	})

	want := `<p>` + span("Title") + `</p>` +
		`<ol class="list_style_arabic_plain">` +
		`<li>` + span("A") + `</li>` +
		`<li>` + span("B") + `</li>` +
		`</ol><p>` + span("End") + `</p>`
	if got != want {
		t.Errorf("Paragraphs() =\n%s\nwant\n%s", got, want)
	}

	doc := parseHTML(t, got)
	lists := findAll(doc, atom.Ol)
	if len(lists) != 1 {
		t.Fatalf("expected 1 ol, got %d", len(lists))
	}
	if items := findAll(lists[0], atom.Li); len(items) != 2 {
		t.Errorf("expected 2 list items, got %d", len(items))
	}
	if ps := findAll(doc, atom.P); len(ps) != 2 {
		t.Errorf("expected 2 paragraphs, got %d", len(ps))
	}
}

func TestParagraphs_RestartedNumbering(t *testing.T) {
	r := New(DefaultOptions())
	got := r.Paragraphs([]*model.Paragraph{
		auto(1, "A"),
		auto(5, "B"),
		plain(""),
	})

	want := `<ol class="list_style_arabic_plain"><li>` + span("A") + `</li></ol>` +
		`<ol start="5" class="list_style_arabic_plain"><li>` + span("B") + `</li></ol>` +
		`<p>` + span("") + `</p>`
	if got != want {
		t.Errorf("Paragraphs() =\n%s\nwant\n%s", got, want)
	}

	lists := findAll(parseHTML(t, got), atom.Ol)
	if len(lists) != 2 {
		t.Fatalf("expected 2 ol, got %d", len(lists))
	}
	if start := attr(lists[1], "start"); start != "5" {
		t.Errorf("second list start = %q, want 5", start)
	}
}

func TestParagraph_Transitions(t *testing.T) {
	autoProp := auto(1, "").Property
	auto3Prop := auto(3, "").Property
	bulletProp := bullets("").Property
	plainProp := plain("").Property

	tests := []struct {
		name string
		prev *model.ParagraphProperty
		curr *model.Paragraph
		want string
	}{
		{"first plain", nil, plain("x"), `<p>` + span("x") + `</p>`},
		{"plain after plain", plainProp, plain("x"), `<p>` + span("x") + `</p>`},
		{"plain after auto", autoProp, plain("x"), `</ol><p>` + span("x") + `</p>`},
		{"plain after bullets", bulletProp, plain("x"), `</ul><p>` + span("x") + `</p>`},
		{"first auto", nil, auto(1, "x"), `<ol class="list_style_arabic_plain"><li>` + span("x") + `</li>`},
		{"auto after plain", plainProp, auto(2, "x"), `<ol start="2" class="list_style_arabic_plain"><li>` + span("x") + `</li>`},
		{"auto after bullets", bulletProp, auto(1, "x"), `</ul><ol class="list_style_arabic_plain"><li>` + span("x") + `</li>`},
		{"auto continues", auto3Prop, auto(3, "x"), `<li>` + span("x") + `</li>`},
		{"auto restarts", autoProp, auto(3, "x"), `</ol><ol start="3" class="list_style_arabic_plain"><li>` + span("x") + `</li>`},
		{"first bullets", nil, bullets("x"), `<ul><li>` + span("x") + `</li>`},
		{"bullets after plain", plainProp, bullets("x"), `<ul><li>` + span("x") + `</li>`},
		{"bullets after auto", autoProp, bullets("x"), `</ol><ul><li>` + span("x") + `</li>`},
		{"bullets continue", bulletProp, bullets("x"), `<li>` + span("x") + `</li>`},
	}

	r := New(DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Paragraph(tt.prev, tt.curr); got != tt.want {
				t.Errorf("Paragraph() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParagraph_BulletClass(t *testing.T) {
	p := auto(1, "x")
	p.Property.BulletType = bullet.RomanLowerParenR

	got := New(DefaultOptions()).Paragraph(nil, p)
	if !strings.HasPrefix(got, `<ol class="list_style_romon_lower_char_paren_r">`) {
		t.Errorf("unexpected list open tag in %s", got)
	}
}

func TestParagraph_TrailingListLeftOpen(t *testing.T) {
	got := New(DefaultOptions()).Paragraphs([]*model.Paragraph{plain("a"), bullets("b")})
	if strings.HasSuffix(got, "</ul>") {
		t.Errorf("trailing list container should stay open: %s", got)
	}
	if !strings.HasSuffix(got, "</li>") {
		t.Errorf("expected output to end with the list item: %s", got)
	}
}

func TestParagraph_Alignment(t *testing.T) {
	center := plain("x")
	center.Property.Alignment = model.AlignCenter
	left := plain("x")

	r := New(DefaultOptions())
	if got := r.Paragraph(nil, center); !strings.HasPrefix(got, `<p align="center">`) {
		t.Errorf("center = %s", got)
	}
	if got := r.Paragraph(nil, left); !strings.HasPrefix(got, `<p>`) {
		t.Errorf("left = %s", got)
	}

	explicit := New(Options{ExplicitLeftAlign: true})
	if got := explicit.Paragraph(nil, left); !strings.HasPrefix(got, `<p align="left">`) {
		t.Errorf("explicit left = %s", got)
	}
	justified := bullets("x")
	justified.Property.Alignment = model.AlignJustify
	if got := explicit.Paragraph(nil, justified); got != `<ul><li align="justify">`+span("x")+`</li>` {
		t.Errorf("justified item = %s", got)
	}
}

func TestParagraphs_Idempotent(t *testing.T) {
	ps := []*model.Paragraph{plain("a"), auto(1, "b"), auto(4, "c"), bullets("d"), plain("e")}
	r := New(DefaultOptions())
	if first, second := r.Paragraphs(ps), r.Paragraphs(ps); first != second {
		t.Errorf("rendering is not idempotent:\n%s\n%s", first, second)
	}
}

func TestParagraphs_NilProperty(t *testing.T) {
	p := &model.Paragraph{Runs: []*model.TextRun{model.NewTextRun("x")}}
	if got := New(DefaultOptions()).Paragraphs([]*model.Paragraph{p}); got != `<p>`+span("x")+`</p>` {
		t.Errorf("Paragraphs() = %s", got)
	}
}

func TestStep(t *testing.T) {
	r := New(DefaultOptions())
	start := State{}
	next := r.Step(start, auto(1, "a"))

	if start.HTML != "" || start.Prev != nil {
		t.Error("Step modified its input state")
	}
	if next.Prev == nil || next.Prev.BulletStyle != model.AutoNumbered {
		t.Errorf("unexpected next state %+v", next)
	}
}

func TestParagraphs_MatchesStepFold(t *testing.T) {
	kinds := []func(string) *model.Paragraph{
		plain,
		bullets,
		func(s string) *model.Paragraph { return auto(1, s) },
		func(s string) *model.Paragraph { return auto(3, s) },
	}
	var ps []*model.Paragraph
	for i := 0; i < 2000; i++ {
		ps = append(ps, kinds[(i*7/3)%len(kinds)]("p"))
	}

	r := New(DefaultOptions())
	state := State{}
	for _, p := range ps {
		state = r.Step(state, p)
	}
	if got := r.Paragraphs(ps); got != state.HTML {
		t.Errorf("Paragraphs() differs from the Step fold (len %d vs %d)", len(got), len(state.HTML))
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		run  model.TextRun
		want string
	}{
		{
			name: "bold underline color",
			run:  model.TextRun{Text: "hi", Bold: true, Underline: model.UnderlineSingle, Color: "FF0000"},
			want: `<strong><span style="text-decoration: underline;"><span style="color: #FF0000;">hi</span></span></strong>`,
		},
		{
			name: "empty",
			run:  model.TextRun{Color: "000000"},
			want: `<span style="color: #000000;"></span>`,
		},
		{
			name: "italic double underline",
			run:  model.TextRun{Text: "x", Italic: true, Underline: model.UnderlineDouble, Color: "00FF00"},
			want: `<em><span style="text-decoration: underline; text-decoration-style: double;"><span style="color: #00FF00;">x</span></span></em>`,
		},
		{
			name: "all wrappers",
			run:  model.TextRun{Text: "x", Bold: true, Italic: true, Underline: model.UnderlineSingle, Color: "0000FF"},
			want: `<strong><em><span style="text-decoration: underline;"><span style="color: #0000FF;">x</span></span></em></strong>`,
		},
		{
			name: "strikethrough not rendered",
			run:  model.TextRun{Text: "x", Strikethrough: true, Color: "000000"},
			want: `<span style="color: #000000;">x</span>`,
		},
		{
			name: "escaped text",
			run:  model.TextRun{Text: `a < b & "c"`, Color: "000000"},
			want: `<span style="color: #000000;">a &lt; b &amp; &#34;c&#34;</span>`,
		},
		{
			name: "missing color",
			run:  model.TextRun{Text: "x"},
			want: `<span style="color: #000000;">x</span>`,
		},
	}

	r := New(DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Run(&tt.run); got != tt.want {
				t.Errorf("Run() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPresentation(t *testing.T) {
	tb := model.NewTextBody()
	tb.Paragraphs = []*model.Paragraph{plain("one")}
	other := model.NewTextBody()
	other.Paragraphs = []*model.Paragraph{bullets("two")}

	pres := &model.Presentation{Slides: []*model.Slide{
		{Number: 1, Shapes: []*model.Shape{{TextBodies: []*model.TextBody{tb}}, {TextBodies: []*model.TextBody{other}}}},
		{Number: 2},
	}}

	got := New(DefaultOptions()).Presentation(pres)
	want := `<div><p>` + span("one") + `</p><ul><li>` + span("two") + `</li></div><div></div>`
	if got != want {
		t.Errorf("Presentation() =\n%s\nwant\n%s", got, want)
	}

	custom := New(Options{PageTag: "section", LeftDelim: "[", RightDelim: "]"})
	if got := custom.Presentation(&model.Presentation{Slides: []*model.Slide{{}}}); got != "[section][/section]" {
		t.Errorf("custom wrapper = %q", got)
	}
}

func TestNew_Defaults(t *testing.T) {
	o := New(Options{}).Options()
	if o.PageTag != "div" || o.LeftDelim != "<" || o.RightDelim != ">" || o.ExplicitLeftAlign {
		t.Errorf("unexpected defaults %+v", o)
	}
}

func parseHTML(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}
	return doc
}

func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
