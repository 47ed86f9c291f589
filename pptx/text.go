package pptx

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/tsawler/pptxhtml/model"
	"github.com/tsawler/pptxhtml/opc"
)

// textBody reads a txBody element.
func (pb *partBuilder) textBody(txBody *opc.Element) *model.TextBody {
	tb := model.NewTextBody()
	for _, child := range txBody.Children {
		switch tagOf(child) {
		case tagBodyPr:
			bodyProperties(child, &tb.Body)
		case tagLstStyle:
			pb.listStyle(child, tb)
		case tagP:
			tb.Paragraphs = append(tb.Paragraphs, pb.paragraph(child))
		case tagExtLst:
		default:
			skipUnknown(pb.logger, txBody, child)
		}
	}
	return tb
}

// bodyProperties overrides the defaults in bp with the attributes present on
// bodyPr. Unparsable numbers keep the default.
func bodyProperties(bodyPr *opc.Element, bp *model.BodyProperties) {
	for _, a := range bodyPr.Attrs {
		if a.Name.Space != "" {
			continue
		}
		v := a.Value
		switch a.Name.Local {
		case "anchor":
			bp.Anchor = v
		case "anchorCtr":
			bp.AnchorCenter = parseBool(v)
		case "lIns":
			setInt64(&bp.LeftInset, v)
		case "tIns":
			setInt64(&bp.TopInset, v)
		case "rIns":
			setInt64(&bp.RightInset, v)
		case "bIns":
			setInt64(&bp.BottomInset, v)
		case "rot":
			if n, err := strconv.Atoi(v); err == nil {
				bp.Rotation = n
			}
		case "numCol":
			if n, err := strconv.Atoi(v); err == nil && n >= 1 {
				bp.Columns = n
			}
		case "spcCol":
			setInt64(&bp.ColumnSpacing, v)
		case "rtlCol":
			bp.ColumnsRightToLeft = parseBool(v)
		case "wrap":
			bp.Wrap = v
		case "vert":
			bp.Vertical = v
		case "vertOverflow":
			bp.VerticalOverflow = v
		case "horzOverflow":
			bp.HorizontalOverflow = v
		case "upright":
			bp.Upright = parseBool(v)
		}
	}
}

// listStyle reads lstStyle. lvlNpPr resolves with inherited level N-1.
func (pb *partBuilder) listStyle(lstStyle *opc.Element, tb *model.TextBody) {
	for _, child := range lstStyle.Children {
		t := tagOf(child)
		switch {
		case t == tagDefPPr:
			tb.DefaultProperty = pb.props.Resolve(child, 0)
		case levelOf(t) > 0:
			n := levelOf(t)
			tb.LevelProperties[n-1] = pb.props.Resolve(child, n-1)
		case t == tagExtLst:
		default:
			skipUnknown(pb.logger, lstStyle, child)
		}
	}
}

// paragraph reads an a:p element. Fields are read as runs; line breaks and
// the end-of-paragraph run properties are skipped.
func (pb *partBuilder) paragraph(p *opc.Element) *model.Paragraph {
	para := &model.Paragraph{}
	for _, child := range p.Children {
		switch tagOf(child) {
		case tagPPr:
			para.Property = pb.props.Resolve(child, 0)
		case tagR, tagFld:
			para.Runs = append(para.Runs, pb.run(child))
		case tagBr, tagEndParaRPr, tagExtLst:
		default:
			skipUnknown(pb.logger, p, child)
		}
	}
	if para.Property == nil {
		para.Property = pb.props.Default(0)
	}
	return para
}

// run reads an a:r or a:fld element.
func (pb *partBuilder) run(r *opc.Element) *model.TextRun {
	run := model.NewTextRun("")
	for _, child := range r.Children {
		switch tagOf(child) {
		case tagRPr:
			pb.runProperties(child, run)
		case tagT:
			run.Text += child.Text
		case tagPPr, tagExtLst:
		default:
			skipUnknown(pb.logger, r, child)
		}
	}
	return run
}

func (pb *partBuilder) runProperties(rPr *opc.Element, run *model.TextRun) {
	if v, ok := rPr.Attr("b"); ok {
		run.Bold = parseBool(v)
	}
	if v, ok := rPr.Attr("i"); ok {
		run.Italic = parseBool(v)
	}
	if v, ok := rPr.Attr("u"); ok {
		run.Underline = parseUnderline(v)
	}
	if v, ok := rPr.Attr("strike"); ok {
		run.Strikethrough = v == "sngStrike" || v == "dblStrike"
	}
	if v, ok := rPr.Attr("lang"); ok {
		run.Language = canonicalLanguage(v)
	}

	for _, child := range rPr.Children {
		switch tagOf(child) {
		case tagSolidFill:
			run.Fill = model.FillSolid
			run.Color = pb.solidFillColor(child)
		case tagNoFill:
			run.Fill = model.FillNone
		case tagGradFill:
			run.Fill = model.FillGradient
		case tagPattFill:
			run.Fill = model.FillPattern
		case tagLn, tagBlipFill, tagGrpFill, tagEffectLst, tagEffectDag, tagHighlight,
			tagULnTx, tagULn, tagUFillTx, tagUFill, tagLatin, tagEa, tagCs, tagSym,
			tagHlinkClick, tagHlinkMouseOver, tagRtl, tagExtLst:
		default:
			skipUnknown(pb.logger, rPr, child)
		}
	}
}

// solidFillColor returns the literal RGB color of a solidFill, or the default
// color when the fill is not a valid srgbClr.
func (pb *partBuilder) solidFillColor(fill *opc.Element) string {
	for _, child := range fill.Children {
		switch tagOf(child) {
		case tagSrgbClr:
			v, _ := child.Attr("val")
			if c, ok := normalizeHexColor(v); ok {
				return c
			}
			pb.logger.Debug("invalid srgbClr value", "value", v)
		case tagSchemeClr, tagScrgbClr, tagHslClr, tagSysClr, tagPrstClr:
			pb.logger.Debug("unsupported color", "element", child.Name.Local)
		default:
			skipUnknown(pb.logger, fill, child)
		}
	}
	return model.DefaultColor
}

// normalizeHexColor upper-cases a six digit hex color.
func normalizeHexColor(v string) (string, bool) {
	if len(v) != 6 {
		return "", false
	}
	for _, c := range v {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return "", false
		}
	}
	return strings.ToUpper(v), true
}

func parseUnderline(v string) model.Underline {
	switch v {
	case "", "none":
		return model.UnderlineNone
	case "dbl":
		return model.UnderlineDouble
	default:
		return model.UnderlineSingle
	}
}

// canonicalLanguage returns the BCP 47 form of a language tag, or the raw
// value when it does not parse.
func canonicalLanguage(v string) string {
	t, err := language.Parse(v)
	if err != nil {
		return v
	}
	return t.String()
}

func parseBool(v string) bool {
	return v == "1" || v == "true"
}

func setInt64(dst *int64, v string) {
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		*dst = n
	}
}
