package pptx

import (
	"log/slog"
	"strconv"

	"github.com/tsawler/pptxhtml/bullet"
	"github.com/tsawler/pptxhtml/model"
	"github.com/tsawler/pptxhtml/opc"
)

// PropertyResolver turns a paragraph property element (pPr, defPPr or
// lvlNpPr) into a model.ParagraphProperty.
type PropertyResolver struct {
	defaultStyle model.BulletStyle
	logger       *slog.Logger
}

// NewPropertyResolver creates a resolver. defaultStyle is the bullet style of
// a property block that carries neither buNone nor buAutoNum.
// A nil logger discards output.
func NewPropertyResolver(defaultStyle model.BulletStyle, logger *slog.Logger) *PropertyResolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PropertyResolver{defaultStyle: defaultStyle, logger: logger}
}

// Default returns the property of a paragraph without a property element.
func (r *PropertyResolver) Default(level int) *model.ParagraphProperty {
	p := model.NewParagraphProperty(level)
	p.BulletStyle = r.defaultStyle
	return p
}

// Resolve reads a property element. An explicit lvl attribute overrides
// inheritedLevel. A nil node yields the default property.
func (r *PropertyResolver) Resolve(node *opc.Element, inheritedLevel int) *model.ParagraphProperty {
	p := r.Default(inheritedLevel)
	if node == nil {
		return p
	}

	if v, ok := node.Attr("algn"); ok {
		p.Alignment = parseAlignment(v)
	}
	if v, ok := node.Attr("lvl"); ok {
		if lvl, err := strconv.Atoi(v); err == nil {
			p.Level = model.ClampLevel(lvl)
		}
	}

	for _, child := range node.Children {
		switch tagOf(child) {
		case tagBuNone:
			p.BulletStyle = model.NoBullets
		case tagBuAutoNum:
			p.BulletStyle = model.AutoNumbered
			p.BulletStartAt = parseStartAt(child)
			p.BulletType = r.bulletType(child)
		case tagBuChar, tagBuBlip, tagBuClr, tagBuClrTx, tagBuSzTx, tagBuSzPct, tagBuSzPts, tagBuFontTx, tagBuFont:
			// Bullet glyph and decoration. The style stays as constructed.
		case tagDefRPr, tagLnSpc, tagSpcBef, tagSpcAft, tagTabLst, tagExtLst:
		default:
			skipUnknown(r.logger, node, child)
		}
	}
	return p
}

func (r *PropertyResolver) bulletType(node *opc.Element) bullet.Type {
	token, _ := node.Attr("type")
	if _, ok := bullet.Lookup(token); !ok {
		r.logger.Debug("unsupported bullet type", "token", token)
	}
	return bullet.Classify(token, bullet.ArabicPlain)
}

// parseStartAt reads buAutoNum@startAt. Missing, invalid and non-positive
// values give the default.
func parseStartAt(node *opc.Element) int {
	v, ok := node.Attr("startAt")
	if !ok {
		return model.DefaultStartAt
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return model.DefaultStartAt
	}
	return n
}

func parseAlignment(v string) model.Alignment {
	switch v {
	case "ctr":
		return model.AlignCenter
	case "r":
		return model.AlignRight
	case "just", "justLow", "dist", "thaiDist":
		return model.AlignJustify
	default:
		return model.AlignLeft
	}
}
