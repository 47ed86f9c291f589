package pptx

import (
	"fmt"
	"strings"

	"github.com/tsawler/pptxhtml/opc"
)

const (
	relTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTypeSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relTypeSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
)

// rel is one relationship entry for a fixture.
type rel struct {
	id, typ, target string
}

func relsXML(rels ...rel) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for _, r := range rels {
		fmt.Fprintf(&sb, `<Relationship Id="%s" Type="%s" Target="%s"/>`, r.id, r.typ, r.target)
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}

// presentationXML builds a presentation part. Each master and slide entry is
// "id:rId".
func presentationXML(masters, slides []string) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	if len(masters) > 0 {
		sb.WriteString(`<p:sldMasterIdLst>`)
		for _, m := range masters {
			id, rid, _ := strings.Cut(m, ":")
			fmt.Fprintf(&sb, `<p:sldMasterId id="%s" r:id="%s"/>`, id, rid)
		}
		sb.WriteString(`</p:sldMasterIdLst>`)
	}
	if len(slides) > 0 {
		sb.WriteString(`<p:sldIdLst>`)
		for _, s := range slides {
			id, rid, _ := strings.Cut(s, ":")
			fmt.Fprintf(&sb, `<p:sldId id="%s" r:id="%s"/>`, id, rid)
		}
		sb.WriteString(`</p:sldIdLst>`)
	}
	sb.WriteString(`<p:sldSz cx="9144000" cy="6858000"/><p:notesSz cx="6858000" cy="9144000"/>`)
	sb.WriteString(`<p:defaultTextStyle><a:lvl1pPr algn="ctr"/></p:defaultTextStyle>`)
	sb.WriteString(`</p:presentation>`)
	return sb.String()
}

// slideXML wraps shape tree content in a slide part.
func slideXML(spTree string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` +
		`<p:cSld><p:spTree>` +
		`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>` +
		spTree +
		`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`
}

// textShapeXML builds an sp with a title placeholder holding one paragraph.
func textShapeXML(id int, text string) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Title %d"/><p:cNvSpPr/><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>`+
		`<p:spPr/><p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US"/><a:t>%s</a:t></a:r></a:p></p:txBody></p:sp>`, id, id, text)
}

const masterXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld>
    <p:bg><p:bgRef idx="1001"><a:schemeClr val="bg1"/></p:bgRef></p:bg>
    <p:spTree>
      <p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>
      <p:grpSpPr/>
      <p:sp>
        <p:nvSpPr><p:cNvPr id="2" name="Title Placeholder 1"/><p:cNvSpPr/><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>
        <p:spPr><a:xfrm><a:off x="457200" y="274638"/><a:ext cx="8229600" cy="1143000"/></a:xfrm></p:spPr>
        <p:txBody><a:bodyPr anchor="ctr"/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US"/><a:t>Master title</a:t></a:r></a:p></p:txBody>
      </p:sp>
    </p:spTree>
  </p:cSld>
  <p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>
  <p:sldLayoutIdLst>
    <p:sldLayoutId id="2147483649" r:id="rId1"/>
    <p:sldLayoutId id="2147483650" r:id="rId2"/>
  </p:sldLayoutIdLst>
  <p:txStyles><p:titleStyle/><p:bodyStyle/><p:otherStyle/></p:txStyles>
</p:sldMaster>`

const coreXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <dc:title>Quarterly Review</dc:title>
  <dc:creator>Ada</dc:creator>
  <cp:keywords>finance, q3;review</cp:keywords>
  <cp:lastModifiedBy>Grace</cp:lastModifiedBy>
  <cp:revision>4</cp:revision>
  <dcterms:created xsi:type="dcterms:W3CDTF">2024-03-01T10:00:00Z</dcterms:created>
</cp:coreProperties>`

// newDeck returns a package with one master and the given slides. slides maps
// a relationship id to shape tree content; order lists the "id:rId" entries
// of the slide id list in document order.
func newDeck(order []string, slides map[string]string) opc.MapPackage {
	presRels := []rel{{"rIdM", relTypeSlideMaster, "slideMasters/slideMaster1.xml"}}
	pkg := opc.MapPackage{
		"_rels/.rels": []byte(relsXML(
			rel{"rId1", relTypeOfficeDocument, "ppt/presentation.xml"},
			rel{"rId2", relTypeCoreProps, "docProps/core.xml"},
		)),
		"docProps/core.xml":                            []byte(coreXML),
		"ppt/slideMasters/slideMaster1.xml":            []byte(masterXML),
		"ppt/slideMasters/_rels/slideMaster1.xml.rels": []byte(relsXML(rel{"rId1", relTypeSlideLayout, "../slideLayouts/slideLayout1.xml"}, rel{"rId2", relTypeSlideLayout, "../slideLayouts/slideLayout2.xml"})),
		"ppt/slideLayouts/slideLayout1.xml":            []byte(`<p:sldLayout xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`),
		"ppt/slideLayouts/slideLayout2.xml":            []byte(`<p:sldLayout xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`),
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels": []byte(relsXML()),
		"ppt/slideLayouts/_rels/slideLayout2.xml.rels": []byte(relsXML()),
		"[Content_Types].xml":                          []byte(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`),
	}

	for rid, tree := range slides {
		name := fmt.Sprintf("slides/slide_%s.xml", rid)
		presRels = append(presRels, rel{rid, relTypeSlide, name})
		pkg["ppt/"+name] = []byte(slideXML(tree))
		pkg[fmt.Sprintf("ppt/slides/_rels/slide_%s.xml.rels", rid)] = []byte(relsXML(rel{"rId1", relTypeSlideLayout, "../slideLayouts/slideLayout1.xml"}))
	}

	pkg["ppt/_rels/presentation.xml.rels"] = []byte(relsXML(presRels...))
	pkg["ppt/presentation.xml"] = []byte(presentationXML([]string{"2147483648:rIdM"}, order))
	return pkg
}
