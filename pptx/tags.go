package pptx

import (
	"encoding/xml"
	"log/slog"

	"github.com/tsawler/pptxhtml/opc"
)

// XML namespaces used in PPTX files. Strict conformance packages use the
// purl.oclc.org variants.
const (
	nsPresentationML       = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML            = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelationships        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsStrictPresentationML = "http://purl.oclc.org/ooxml/presentationml/main"
	nsStrictDrawingML      = "http://purl.oclc.org/ooxml/drawingml/main"
	nsStrictRelationships  = "http://purl.oclc.org/ooxml/officeDocument/relationships"
)

// tag is the closed set of elements the builder knows about. Every element
// that is not in the set maps to tagUnknown.
type tag int

const (
	tagUnknown tag = iota

	// presentation part
	tagPresentation
	tagSldMasterIDLst
	tagSldMasterID
	tagNotesMasterIDLst
	tagHandoutMasterIDLst
	tagSldIDLst
	tagSldID
	tagSldSz
	tagNotesSz
	tagSmartTags
	tagEmbeddedFontLst
	tagCustShowLst
	tagPhotoAlbum
	tagCustDataLst
	tagKinsoku
	tagDefaultTextStyle
	tagModifyVerifier
	tagExtLst

	// slide and master parts
	tagSld
	tagSldMaster
	tagCSld
	tagClrMap
	tagClrMapOvr
	tagSldLayoutIDLst
	tagSldLayoutID
	tagTransition
	tagTiming
	tagHf
	tagTxStyles
	tagBg
	tagControls

	// shape tree
	tagSpTree
	tagNvGrpSpPr
	tagGrpSpPr
	tagSp
	tagGrpSp
	tagGraphicFrame
	tagCxnSp
	tagPic
	tagContentPart

	// shape
	tagNvSpPr
	tagCNvPr
	tagCNvSpPr
	tagNvPr
	tagPh
	tagSpPr
	tagStyle
	tagTxBody
	tagXfrm
	tagOff
	tagExt

	// text body
	tagBodyPr
	tagLstStyle
	tagP
	tagDefPPr
	tagLvl1PPr
	tagLvl2PPr
	tagLvl3PPr
	tagLvl4PPr
	tagLvl5PPr
	tagLvl6PPr
	tagLvl7PPr
	tagLvl8PPr
	tagLvl9PPr

	// paragraph
	tagPPr
	tagR
	tagFld
	tagBr
	tagEndParaRPr
	tagRPr
	tagT

	// paragraph properties
	tagBuNone
	tagBuAutoNum
	tagBuChar
	tagBuBlip
	tagBuClr
	tagBuClrTx
	tagBuSzTx
	tagBuSzPct
	tagBuSzPts
	tagBuFontTx
	tagBuFont
	tagDefRPr
	tagLnSpc
	tagSpcBef
	tagSpcAft
	tagTabLst

	// run properties
	tagLn
	tagNoFill
	tagSolidFill
	tagGradFill
	tagBlipFill
	tagPattFill
	tagGrpFill
	tagEffectLst
	tagEffectDag
	tagHighlight
	tagULnTx
	tagULn
	tagUFillTx
	tagUFill
	tagLatin
	tagEa
	tagCs
	tagSym
	tagHlinkClick
	tagHlinkMouseOver
	tagRtl

	// colors
	tagSrgbClr
	tagSchemeClr
	tagScrgbClr
	tagHslClr
	tagSysClr
	tagPrstClr
)

var presentationMLTags = map[string]tag{
	"presentation":       tagPresentation,
	"sldMasterIdLst":     tagSldMasterIDLst,
	"sldMasterId":        tagSldMasterID,
	"notesMasterIdLst":   tagNotesMasterIDLst,
	"handoutMasterIdLst": tagHandoutMasterIDLst,
	"sldIdLst":           tagSldIDLst,
	"sldId":              tagSldID,
	"sldSz":              tagSldSz,
	"notesSz":            tagNotesSz,
	"smartTags":          tagSmartTags,
	"embeddedFontLst":    tagEmbeddedFontLst,
	"custShowLst":        tagCustShowLst,
	"photoAlbum":         tagPhotoAlbum,
	"custDataLst":        tagCustDataLst,
	"kinsoku":            tagKinsoku,
	"defaultTextStyle":   tagDefaultTextStyle,
	"modifyVerifier":     tagModifyVerifier,
	"extLst":             tagExtLst,
	"sld":                tagSld,
	"sldMaster":          tagSldMaster,
	"cSld":               tagCSld,
	"clrMap":             tagClrMap,
	"clrMapOvr":          tagClrMapOvr,
	"sldLayoutIdLst":     tagSldLayoutIDLst,
	"sldLayoutId":        tagSldLayoutID,
	"transition":         tagTransition,
	"timing":             tagTiming,
	"hf":                 tagHf,
	"txStyles":           tagTxStyles,
	"bg":                 tagBg,
	"controls":           tagControls,
	"spTree":             tagSpTree,
	"nvGrpSpPr":          tagNvGrpSpPr,
	"grpSpPr":            tagGrpSpPr,
	"sp":                 tagSp,
	"grpSp":              tagGrpSp,
	"graphicFrame":       tagGraphicFrame,
	"cxnSp":              tagCxnSp,
	"pic":                tagPic,
	"contentPart":        tagContentPart,
	"nvSpPr":             tagNvSpPr,
	"cNvPr":              tagCNvPr,
	"cNvSpPr":            tagCNvSpPr,
	"nvPr":               tagNvPr,
	"ph":                 tagPh,
	"spPr":               tagSpPr,
	"style":              tagStyle,
	"txBody":             tagTxBody,
}

var drawingMLTags = map[string]tag{
	"extLst":         tagExtLst,
	"xfrm":           tagXfrm,
	"off":            tagOff,
	"ext":            tagExt,
	"bodyPr":         tagBodyPr,
	"lstStyle":       tagLstStyle,
	"p":              tagP,
	"defPPr":         tagDefPPr,
	"lvl1pPr":        tagLvl1PPr,
	"lvl2pPr":        tagLvl2PPr,
	"lvl3pPr":        tagLvl3PPr,
	"lvl4pPr":        tagLvl4PPr,
	"lvl5pPr":        tagLvl5PPr,
	"lvl6pPr":        tagLvl6PPr,
	"lvl7pPr":        tagLvl7PPr,
	"lvl8pPr":        tagLvl8PPr,
	"lvl9pPr":        tagLvl9PPr,
	"pPr":            tagPPr,
	"r":              tagR,
	"fld":            tagFld,
	"br":             tagBr,
	"endParaRPr":     tagEndParaRPr,
	"rPr":            tagRPr,
	"t":              tagT,
	"buNone":         tagBuNone,
	"buAutoNum":      tagBuAutoNum,
	"buChar":         tagBuChar,
	"buBlip":         tagBuBlip,
	"buClr":          tagBuClr,
	"buClrTx":        tagBuClrTx,
	"buSzTx":         tagBuSzTx,
	"buSzPct":        tagBuSzPct,
	"buSzPts":        tagBuSzPts,
	"buFontTx":       tagBuFontTx,
	"buFont":         tagBuFont,
	"defRPr":         tagDefRPr,
	"lnSpc":          tagLnSpc,
	"spcBef":         tagSpcBef,
	"spcAft":         tagSpcAft,
	"tabLst":         tagTabLst,
	"ln":             tagLn,
	"noFill":         tagNoFill,
	"solidFill":      tagSolidFill,
	"gradFill":       tagGradFill,
	"blipFill":       tagBlipFill,
	"pattFill":       tagPattFill,
	"grpFill":        tagGrpFill,
	"effectLst":      tagEffectLst,
	"effectDag":      tagEffectDag,
	"highlight":      tagHighlight,
	"uLnTx":          tagULnTx,
	"uLn":            tagULn,
	"uFillTx":        tagUFillTx,
	"uFill":          tagUFill,
	"latin":          tagLatin,
	"ea":             tagEa,
	"cs":             tagCs,
	"sym":            tagSym,
	"hlinkClick":     tagHlinkClick,
	"hlinkMouseOver": tagHlinkMouseOver,
	"rtl":            tagRtl,
	"srgbClr":        tagSrgbClr,
	"schemeClr":      tagSchemeClr,
	"scrgbClr":       tagScrgbClr,
	"hslClr":         tagHslClr,
	"sysClr":         tagSysClr,
	"prstClr":        tagPrstClr,
}

var tags = func() map[xml.Name]tag {
	m := make(map[xml.Name]tag, 2*(len(presentationMLTags)+len(drawingMLTags)))
	for _, ns := range []string{nsPresentationML, nsStrictPresentationML} {
		for local, t := range presentationMLTags {
			m[xml.Name{Space: ns, Local: local}] = t
		}
	}
	for _, ns := range []string{nsDrawingML, nsStrictDrawingML} {
		for local, t := range drawingMLTags {
			m[xml.Name{Space: ns, Local: local}] = t
		}
	}
	return m
}()

// tagOf classifies an element.
func tagOf(el *opc.Element) tag {
	if el == nil {
		return tagUnknown
	}
	return tags[el.Name]
}

// levelOf returns the 1-based list style level of a lvlNpPr tag, or 0.
func levelOf(t tag) int {
	if t >= tagLvl1PPr && t <= tagLvl9PPr {
		return int(t-tagLvl1PPr) + 1
	}
	return 0
}

// relID returns the r:id attribute of an element in either relationship
// namespace.
func relID(el *opc.Element) (string, bool) {
	if v, ok := el.AttrNS(nsRelationships, "id"); ok {
		return v, true
	}
	return el.AttrNS(nsStrictRelationships, "id")
}

// skipUnknown is the single place unrecognised elements are tolerated.
func skipUnknown(logger *slog.Logger, parent, child *opc.Element) {
	logger.Debug("skipping unknown element",
		"element", child.Name.Local,
		"namespace", child.Name.Space,
		"parent", parent.Name.Local)
}
