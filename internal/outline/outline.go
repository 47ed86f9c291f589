// Package outline writes a Markdown summary of a built presentation: its
// metadata, a slide table and the shapes of each slide. The inspect command
// prints it.
package outline

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/tsawler/pptxhtml/model"
)

// maxText is the number of characters of shape text shown per shape.
const maxText = 60

// Write writes the outline of pres to w. name labels the document when it
// has no title.
func Write(w io.Writer, pres *model.Presentation, name string) error {
	md := markdown.NewMarkdown(w)

	title := pres.Metadata.Title
	if title == "" {
		title = name
	}
	md.H1(title)
	md.PlainText("")

	writeMetadata(md, pres)
	writeSlideTable(md, pres)
	writeMasters(md, pres)
	for _, s := range pres.Slides {
		writeSlide(md, s)
	}
	return md.Build()
}

func writeMetadata(md *markdown.Markdown, pres *model.Presentation) {
	meta := pres.Metadata
	rows := [][]string{
		{"Slides", strconv.Itoa(pres.SlideCount())},
		{"Masters", strconv.Itoa(len(pres.Masters))},
	}
	add := func(k, v string) {
		if v != "" {
			rows = append(rows, []string{k, cell(v)})
		}
	}
	add("Author", meta.Author)
	add("Subject", meta.Subject)
	add("Keywords", strings.Join(meta.Keywords, ", "))
	add("Last modified by", meta.LastModifiedBy)
	if !meta.Modified.IsZero() {
		add("Modified", meta.Modified.Format("2006-01-02 15:04:05 MST"))
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writeSlideTable(md *markdown.Markdown, pres *model.Presentation) {
	md.H2("Slides")
	md.PlainText("")
	if len(pres.Slides) == 0 {
		md.PlainText("No slides.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(pres.Slides))
	for i, s := range pres.Slides {
		paragraphs := 0
		for _, tb := range s.TextBodies() {
			paragraphs += len(tb.Paragraphs)
		}
		rows[i] = []string{
			strconv.Itoa(s.Number),
			cell(orDash(truncate(s.Title(), maxText))),
			cell(orDash(s.LayoutPath)),
			strconv.Itoa(len(s.Shapes)),
			strconv.Itoa(paragraphs),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Title", "Layout", "Shapes", "Paragraphs"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writeMasters(md *markdown.Markdown, pres *model.Presentation) {
	if len(pres.Masters) == 0 {
		return
	}
	md.H2("Masters")
	md.PlainText("")
	items := make([]string, len(pres.Masters))
	for i, m := range pres.Masters {
		items[i] = "`" + m.Ref.Path + "` (" + strconv.Itoa(len(m.Layouts)) + " layouts)"
	}
	md.BulletList(items...)
	md.PlainText("")
}

func writeSlide(md *markdown.Markdown, s *model.Slide) {
	md.H3("Slide " + strconv.Itoa(s.Number))
	md.PlainText("")
	if len(s.Shapes) == 0 {
		md.PlainText("No text shapes.")
		md.PlainText("")
		return
	}

	items := make([]string, len(s.Shapes))
	for i, sh := range s.Shapes {
		label := sh.Name
		if label == "" {
			label = "shape " + strconv.Itoa(sh.ID)
		}
		items[i] = label + " [" + sh.Type.String() + "]"
		if b := sh.Bounds(); !b.Empty() {
			items[i] += " at " + b.String()
		}
		items[i] += ": " + orDash(truncate(sh.Text(), maxText))
	}
	md.BulletList(items...)
	md.PlainText("")
}

// cell escapes pipes so that text cannot split a table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncate shortens s to at most n runes with an ellipsis. Line breaks are
// flattened to spaces.
func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
