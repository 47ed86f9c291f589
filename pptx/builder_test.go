package pptx

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/pptxhtml/model"
	"github.com/tsawler/pptxhtml/opc"
)

func TestBuild(t *testing.T) {
	pkg := newDeck([]string{"256:rId10"}, map[string]string{
		"rId10": textShapeXML(2, "Hello"),
	})

	pres, err := NewBuilder(pkg).Build(context.Background())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(pres.Masters) != 1 {
		t.Fatalf("expected 1 master, got %d", len(pres.Masters))
	}
	m := pres.Masters[0]
	if m.Ref.ID != 2147483648 || m.Ref.RelID != "rIdM" || m.Ref.Path != "ppt/slideMasters/slideMaster1.xml" {
		t.Errorf("unexpected master ref %+v", m.Ref)
	}
	if len(m.Layouts) != 2 || m.Layouts[1].Path != "ppt/slideLayouts/slideLayout2.xml" || m.Layouts[1].ID != 2147483650 {
		t.Errorf("unexpected layouts %+v", m.Layouts)
	}
	if len(m.Shapes) != 1 || m.Shapes[0].Text() != "Master title" {
		t.Fatalf("unexpected master shapes %+v", m.Shapes)
	}
	ms := m.Shapes[0]
	if ms.Position != (model.Point{X: 457200, Y: 274638}) || ms.Extent != (model.Extent{Cx: 8229600, Cy: 1143000}) {
		t.Errorf("unexpected geometry %+v %+v", ms.Position, ms.Extent)
	}
	if ms.TextBodies[0].Body.Anchor != "ctr" || ms.TextBodies[0].Body.LeftInset != model.DefaultHorizontalInset {
		t.Errorf("unexpected body properties %+v", ms.TextBodies[0].Body)
	}

	if pres.SlideCount() != 1 {
		t.Fatalf("expected 1 slide, got %d", pres.SlideCount())
	}
	s := pres.Slide(1)
	if s.Number != 1 || s.Ref.ID != 256 || s.Ref.Path != "ppt/slides/slide_rId10.xml" {
		t.Errorf("unexpected slide %+v", s.Ref)
	}
	if s.LayoutPath != "ppt/slideLayouts/slideLayout1.xml" {
		t.Errorf("LayoutPath = %q", s.LayoutPath)
	}
	if s.Title() != "Hello" {
		t.Errorf("Title() = %q, want Hello", s.Title())
	}
	sh := s.Shapes[0]
	if sh.ID != 2 || sh.Name != "Title 2" || sh.Type != model.ShapeTitle {
		t.Errorf("unexpected shape %+v", sh)
	}
	if sh.TextBodies[0].Paragraphs[0].Runs[0].Language != "en-US" {
		t.Errorf("unexpected language %q", sh.TextBodies[0].Paragraphs[0].Runs[0].Language)
	}

	if pres.Metadata.Title != "Quarterly Review" || pres.Metadata.Author != "Ada" {
		t.Errorf("unexpected metadata %+v", pres.Metadata)
	}
	if !reflect.DeepEqual(pres.Metadata.Keywords, []string{"finance", "q3", "review"}) {
		t.Errorf("Keywords = %v", pres.Metadata.Keywords)
	}
	if pres.Metadata.Created.Year() != 2024 {
		t.Errorf("Created = %v", pres.Metadata.Created)
	}
}

func TestBuild_DocumentOrder(t *testing.T) {
	pkg := newDeck([]string{"258:rId3", "256:rId1", "257:rId2"}, map[string]string{
		"rId1": textShapeXML(2, "one"),
		"rId2": textShapeXML(2, "two"),
		"rId3": textShapeXML(2, "three"),
	})

	pres, err := NewBuilder(pkg).Build(context.Background())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var got []string
	for _, s := range pres.Slides {
		got = append(got, s.Title())
	}
	want := []string{"three", "one", "two"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("slide order = %v, want %v", got, want)
	}
	if pres.Slides[0].Ref.ID != 258 || pres.Slides[0].Number != 1 {
		t.Errorf("first slide = %+v number %d", pres.Slides[0].Ref, pres.Slides[0].Number)
	}
}

func TestBuild_UnresolvedRelationship(t *testing.T) {
	pkg := newDeck([]string{"256:rId1", "257:rId404"}, map[string]string{
		"rId1": textShapeXML(2, "one"),
	})

	pres, err := NewBuilder(pkg).Build(context.Background())
	if !errors.Is(err, opc.ErrUnresolvedRelationship) {
		t.Fatalf("expected ErrUnresolvedRelationship, got %v", err)
	}
	var ure *opc.UnresolvedRelationshipError
	if !errors.As(err, &ure) || ure.ID != "rId404" {
		t.Errorf("unexpected error detail %v", err)
	}
	if pres != nil {
		t.Error("expected no presentation on failure")
	}
}

func TestBuild_MissingSlidePart(t *testing.T) {
	pkg := newDeck([]string{"256:rId1"}, map[string]string{
		"rId1": textShapeXML(2, "one"),
	})
	delete(pkg, "ppt/slides/slide_rId1.xml")

	_, err := NewBuilder(pkg).Build(context.Background())
	var mpe *opc.MalformedPartError
	if !errors.As(err, &mpe) || mpe.Path != "ppt/slides/slide_rId1.xml" {
		t.Fatalf("expected MalformedPartError for the slide, got %v", err)
	}
	if !errors.Is(err, opc.ErrMalformedPackage) {
		t.Error("error should match ErrMalformedPackage")
	}
}

func TestBuild_MalformedSlides(t *testing.T) {
	const ns = `xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"`
	tests := []struct {
		name  string
		slide string
	}{
		{"not xml", "<p:sld"},
		{"missing cSld", `<p:sld ` + ns + `><p:clrMapOvr/></p:sld>`},
		{"missing spTree", `<p:sld ` + ns + `><p:cSld><p:bg/></p:cSld></p:sld>`},
		{"wrong root", `<p:notes ` + ns + `/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := newDeck([]string{"256:rId1"}, map[string]string{"rId1": ""})
			pkg["ppt/slides/slide_rId1.xml"] = []byte(tt.slide)

			_, err := NewBuilder(pkg).Build(context.Background())
			var mpe *opc.MalformedPartError
			if !errors.As(err, &mpe) || mpe.Path != "ppt/slides/slide_rId1.xml" {
				t.Errorf("expected MalformedPartError for slide, got %v", err)
			}
		})
	}
}

func TestBuild_InvalidIDEntry(t *testing.T) {
	pkg := newDeck([]string{"abc:rId1"}, map[string]string{"rId1": textShapeXML(2, "x")})

	_, err := NewBuilder(pkg).Build(context.Background())
	var mpe *opc.MalformedPartError
	if !errors.As(err, &mpe) || mpe.Path != "ppt/presentation.xml" {
		t.Errorf("expected MalformedPartError for presentation, got %v", err)
	}
}

func TestBuild_Concurrency(t *testing.T) {
	slides := map[string]string{}
	var order []string
	for i, text := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		rid := "rId" + string(rune('A'+i))
		slides[rid] = textShapeXML(2, text)
		order = append(order, "30"+string(rune('0'+i))+":"+rid)
	}
	pkg := newDeck(order, slides)

	serial, err := NewBuilder(pkg, WithConcurrency(1)).Build(context.Background())
	if err != nil {
		t.Fatalf("serial Build failed: %v", err)
	}
	parallel, err := NewBuilder(pkg, WithConcurrency(8)).Build(context.Background())
	if err != nil {
		t.Fatalf("parallel Build failed: %v", err)
	}
	if !reflect.DeepEqual(serial, parallel) {
		t.Error("serial and parallel builds differ")
	}
}

func TestBuild_Cancelled(t *testing.T) {
	pkg := newDeck([]string{"256:rId1"}, map[string]string{"rId1": textShapeXML(2, "x")})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewBuilder(pkg).Build(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestBuild_SkipsUnknownAndNonTextShapes(t *testing.T) {
	tree := `<p:grpSp><p:sp/></p:grpSp>` +
		`<p:pic/><p:graphicFrame/><p:cxnSp/>` +
		`<x:future xmlns:x="urn:future"/>` +
		textShapeXML(5, "kept") +
		`<p:extLst/>`

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	pkg := newDeck([]string{"256:rId1"}, map[string]string{"rId1": tree})
	pres, err := NewBuilder(pkg, WithLogger(logger)).Build(context.Background())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	shapes := pres.Slides[0].Shapes
	if len(shapes) != 1 || shapes[0].ID != 5 {
		t.Fatalf("expected only the direct sp shape, got %d shapes", len(shapes))
	}
	if !strings.Contains(logs.String(), "element=future") {
		t.Errorf("expected unknown element to be logged, got %q", logs.String())
	}
}

func TestBuild_StrictNamespaces(t *testing.T) {
	const (
		pStrict = "http://purl.oclc.org/ooxml/presentationml/main"
		aStrict = "http://purl.oclc.org/ooxml/drawingml/main"
		rStrict = "http://purl.oclc.org/ooxml/officeDocument/relationships"
		relBase = "http://purl.oclc.org/ooxml/officeDocument/relationships/"
	)
	presentation := `<p:presentation xmlns:p="` + pStrict + `" xmlns:r="` + rStrict + `">` +
		`<p:sldIdLst><p:sldId id="256" r:id="rId2"/></p:sldIdLst></p:presentation>`
	slide := `<p:sld xmlns:p="` + pStrict + `" xmlns:a="` + aStrict + `"><p:cSld><p:spTree>` +
		`<p:sp><p:txBody><a:bodyPr/><a:p><a:r><a:t>strict</a:t></a:r></a:p></p:txBody></p:sp>` +
		`</p:spTree></p:cSld></p:sld>`
	pkg := opc.MapPackage{
		"_rels/.rels":                     []byte(relsXML(rel{"rId1", relBase + "officeDocument", "ppt/presentation.xml"})),
		"ppt/_rels/presentation.xml.rels": []byte(relsXML(rel{"rId2", relBase + "slide", "slides/slide1.xml"})),
		"ppt/presentation.xml":            []byte(presentation),
		"ppt/slides/slide1.xml":           []byte(slide),
	}

	pres, err := NewBuilder(pkg).Build(context.Background())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := pres.Slides[0].Shapes[0].Text(); got != "strict" {
		t.Errorf("Text() = %q, want strict", got)
	}
}

func TestMainPart_Fallback(t *testing.T) {
	b := NewBuilder(opc.MapPackage{})
	main, err := b.MainPart()
	if err != nil {
		t.Fatalf("MainPart failed: %v", err)
	}
	if main != DefaultPresentationPart {
		t.Errorf("MainPart() = %q, want %q", main, DefaultPresentationPart)
	}
}

func TestMetadata_Missing(t *testing.T) {
	meta := NewBuilder(opc.MapPackage{}).Metadata()
	if !reflect.DeepEqual(meta, model.Metadata{}) {
		t.Errorf("expected empty metadata, got %+v", meta)
	}
}

func TestOutline_NoSlides(t *testing.T) {
	pkg := newDeck(nil, nil)
	outline, err := NewBuilder(pkg).Outline(context.Background())
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}
	if len(outline.Slides) != 0 || len(outline.Masters) != 1 {
		t.Errorf("unexpected outline %+v", outline)
	}
}
