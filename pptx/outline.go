package pptx

import (
	"fmt"
	"strconv"

	"github.com/tsawler/pptxhtml/model"
	"github.com/tsawler/pptxhtml/opc"
)

// ParseOutline reads the master and slide id lists of a presentation part.
// Each entry's relationship id is resolved through rels; references are
// appended in document order. Slide size, notes size and the default text
// style are recognised but not retained.
func (b *Builder) ParseOutline(part string, root *opc.Element, rels *opc.Relationships) (*model.Outline, error) {
	if tagOf(root) != tagPresentation {
		return nil, opc.NewMalformedPartError(part, fmt.Errorf("unexpected root element %s", root.Name.Local))
	}

	logger := b.partLogger(part)
	outline := &model.Outline{}

	for _, child := range root.Children {
		switch tagOf(child) {
		case tagSldMasterIDLst:
			refs, err := parseIDList(part, child, tagSldMasterID, rels)
			if err != nil {
				return nil, err
			}
			outline.Masters = append(outline.Masters, refs...)
		case tagSldIDLst:
			refs, err := parseIDList(part, child, tagSldID, rels)
			if err != nil {
				return nil, err
			}
			outline.Slides = append(outline.Slides, refs...)
		case tagNotesMasterIDLst, tagHandoutMasterIDLst, tagSldSz, tagNotesSz,
			tagSmartTags, tagEmbeddedFontLst, tagCustShowLst, tagPhotoAlbum,
			tagCustDataLst, tagKinsoku, tagDefaultTextStyle, tagModifyVerifier, tagExtLst:
		default:
			skipUnknown(logger, root, child)
		}
	}

	logger.Debug("read outline", "masters", len(outline.Masters), "slides", len(outline.Slides))
	return outline, nil
}

// parseIDList reads the entries of an id list. Entries of other kinds are
// ignored; an entry without a valid id or relationship id makes the part
// malformed, and an unknown relationship id is returned as is.
func parseIDList(part string, list *opc.Element, entry tag, rels *opc.Relationships) ([]model.PartRef, error) {
	var refs []model.PartRef
	for _, child := range list.Children {
		if tagOf(child) != entry {
			continue
		}
		ref, err := parseIDEntry(part, child, rels)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func parseIDEntry(part string, el *opc.Element, rels *opc.Relationships) (model.PartRef, error) {
	rawID, ok := el.Attr("id")
	if !ok {
		return model.PartRef{}, opc.NewMalformedPartError(part, fmt.Errorf("%s without id", el.Name.Local))
	}
	id, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil {
		return model.PartRef{}, opc.NewMalformedPartError(part, fmt.Errorf("%s id %q: %w", el.Name.Local, rawID, err))
	}

	rid, ok := relID(el)
	if !ok || rid == "" {
		return model.PartRef{}, opc.NewMalformedPartError(part, fmt.Errorf("%s %d without r:id", el.Name.Local, id))
	}

	target, err := rels.Resolve(rid)
	if err != nil {
		return model.PartRef{}, err
	}
	return model.PartRef{ID: uint32(id), RelID: rid, Path: target}, nil
}
