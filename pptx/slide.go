package pptx

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/tsawler/pptxhtml/model"
	"github.com/tsawler/pptxhtml/opc"
)

// partBuilder holds the per-part state used while building one slide or
// master.
type partBuilder struct {
	part   string
	logger *slog.Logger
	props  *PropertyResolver
}

func (b *Builder) newPartBuilder(part string) *partBuilder {
	logger := b.partLogger(part)
	return &partBuilder{
		part:   part,
		logger: logger,
		props:  NewPropertyResolver(b.defaultStyle, logger),
	}
}

// BuildSlide builds the slide part named by ref.
func (b *Builder) BuildSlide(ctx context.Context, ref model.PartRef) (*model.Slide, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := opc.ReadElement(b.pkg, ref.Path)
	if err != nil {
		return nil, err
	}
	if tagOf(root) != tagSld {
		return nil, opc.NewMalformedPartError(ref.Path, fmt.Errorf("unexpected root element %s", root.Name.Local))
	}

	pb := b.newPartBuilder(ref.Path)
	var shapes []*model.Shape
	found := false
	for _, child := range root.Children {
		switch tagOf(child) {
		case tagCSld:
			found = true
			if shapes, err = pb.commonSlideData(child); err != nil {
				return nil, err
			}
		case tagClrMapOvr, tagTransition, tagTiming, tagExtLst:
		default:
			skipUnknown(pb.logger, root, child)
		}
	}
	if !found {
		return nil, opc.NewMalformedPartError(ref.Path, fmt.Errorf("missing cSld"))
	}

	slide := &model.Slide{Ref: ref, Shapes: shapes}

	rels, err := opc.ReadRelationships(b.pkg, ref.Path)
	if err != nil {
		return nil, err
	}
	if rel, ok := rels.FirstOfType(opc.RelSlideLayout); ok {
		slide.LayoutPath = rel.Target
	}
	return slide, nil
}

// BuildMaster builds the slide master part named by ref. Layout ids are
// resolved through the master's own relationships.
func (b *Builder) BuildMaster(ctx context.Context, ref model.PartRef) (*model.Master, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := opc.ReadElement(b.pkg, ref.Path)
	if err != nil {
		return nil, err
	}
	if tagOf(root) != tagSldMaster {
		return nil, opc.NewMalformedPartError(ref.Path, fmt.Errorf("unexpected root element %s", root.Name.Local))
	}

	rels, err := opc.ReadRelationships(b.pkg, ref.Path)
	if err != nil {
		return nil, err
	}

	pb := b.newPartBuilder(ref.Path)
	master := &model.Master{Ref: ref}
	found := false
	for _, child := range root.Children {
		switch tagOf(child) {
		case tagCSld:
			found = true
			if master.Shapes, err = pb.commonSlideData(child); err != nil {
				return nil, err
			}
		case tagSldLayoutIDLst:
			if master.Layouts, err = parseIDList(ref.Path, child, tagSldLayoutID, rels); err != nil {
				return nil, err
			}
		case tagClrMap, tagTransition, tagTiming, tagHf, tagTxStyles, tagExtLst:
		default:
			skipUnknown(pb.logger, root, child)
		}
	}
	if !found {
		return nil, opc.NewMalformedPartError(ref.Path, fmt.Errorf("missing cSld"))
	}
	return master, nil
}

// commonSlideData reads cSld and returns the shapes of its shape tree.
func (pb *partBuilder) commonSlideData(cSld *opc.Element) ([]*model.Shape, error) {
	var (
		shapes []*model.Shape
		found  bool
	)
	for _, child := range cSld.Children {
		switch tagOf(child) {
		case tagSpTree:
			found = true
			shapes = pb.shapeTree(child)
		case tagBg, tagCustDataLst, tagControls, tagExtLst:
		default:
			skipUnknown(pb.logger, cSld, child)
		}
	}
	if !found {
		return nil, opc.NewMalformedPartError(pb.part, fmt.Errorf("missing spTree"))
	}
	return shapes, nil
}

// shapeTree collects the direct sp children in document order. Groups,
// pictures, graphic frames and connectors are skipped.
func (pb *partBuilder) shapeTree(tree *opc.Element) []*model.Shape {
	var shapes []*model.Shape
	for _, child := range tree.Children {
		switch tagOf(child) {
		case tagSp:
			shapes = append(shapes, pb.shape(child))
		case tagNvGrpSpPr, tagGrpSpPr, tagGrpSp, tagGraphicFrame, tagCxnSp, tagPic, tagContentPart, tagExtLst:
		default:
			skipUnknown(pb.logger, tree, child)
		}
	}
	return shapes
}

func (pb *partBuilder) shape(sp *opc.Element) *model.Shape {
	shape := &model.Shape{}
	for _, child := range sp.Children {
		switch tagOf(child) {
		case tagNvSpPr:
			pb.nonVisualProperties(child, shape)
		case tagSpPr:
			pb.shapeProperties(child, shape)
		case tagTxBody:
			shape.TextBodies = append(shape.TextBodies, pb.textBody(child))
		case tagStyle, tagExtLst:
		default:
			skipUnknown(pb.logger, sp, child)
		}
	}
	return shape
}

func (pb *partBuilder) nonVisualProperties(nv *opc.Element, shape *model.Shape) {
	for _, child := range nv.Children {
		switch tagOf(child) {
		case tagCNvPr:
			if v, ok := child.Attr("id"); ok {
				shape.ID, _ = strconv.Atoi(v)
			}
			shape.Name, _ = child.Attr("name")
		case tagNvPr:
			if ph := findTag(child, tagPh); ph != nil {
				placeholder(ph, shape)
			}
		case tagCNvSpPr:
		default:
			skipUnknown(pb.logger, nv, child)
		}
	}
}

// placeholder applies ph attributes. A half or quarter size implies a body
// placeholder unless the type says otherwise.
func placeholder(ph *opc.Element, shape *model.Shape) {
	if v, ok := ph.Attr("idx"); ok {
		shape.PlaceholderIndex, _ = strconv.Atoi(v)
	}
	size, ok := ph.Attr("sz")
	if !ok {
		size, _ = ph.Attr("size")
	}
	switch size {
	case "half":
		shape.Size = model.SizeHalf
		shape.Type = model.ShapeBody
	case "quarter":
		shape.Size = model.SizeQuarter
		shape.Type = model.ShapeBody
	default:
		shape.Size = model.SizeFull
	}
	switch v, _ := ph.Attr("type"); v {
	case "title", "ctrTitle":
		shape.Type = model.ShapeTitle
	case "body":
		shape.Type = model.ShapeBody
	case "dt":
		shape.Type = model.ShapeDate
	case "ftr":
		shape.Type = model.ShapeFooter
	case "sldNum":
		shape.Type = model.ShapeSlideNumber
	}
}

func (pb *partBuilder) shapeProperties(spPr *opc.Element, shape *model.Shape) {
	xfrm := findTag(spPr, tagXfrm)
	if xfrm == nil {
		return
	}
	for _, child := range xfrm.Children {
		switch tagOf(child) {
		case tagOff:
			shape.Position = model.Point{X: int64Attr(child, "x"), Y: int64Attr(child, "y")}
		case tagExt:
			shape.Extent = model.Extent{Cx: int64Attr(child, "cx"), Cy: int64Attr(child, "cy")}
		default:
			skipUnknown(pb.logger, xfrm, child)
		}
	}
}

// findTag returns the first child with the given tag.
func findTag(el *opc.Element, t tag) *opc.Element {
	for _, child := range el.Children {
		if tagOf(child) == t {
			return child
		}
	}
	return nil
}

func int64Attr(el *opc.Element, name string) int64 {
	v, ok := el.Attr(name)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
