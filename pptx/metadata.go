package pptx

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/tsawler/pptxhtml/model"
	"github.com/tsawler/pptxhtml/opc"
)

// DefaultCorePropertiesPart is used when the package relationships do not
// name a core properties part.
const DefaultCorePropertiesPart = "docProps/core.xml"

// corePropertiesXML represents docProps/core.xml (Dublin Core metadata).
type corePropertiesXML struct {
	XMLName        xml.Name `xml:"coreProperties"`
	Title          string   `xml:"title"`
	Subject        string   `xml:"subject"`
	Creator        string   `xml:"creator"`
	Keywords       string   `xml:"keywords"`
	Description    string   `xml:"description"`
	LastModifiedBy string   `xml:"lastModifiedBy"`
	Revision       string   `xml:"revision"`
	Created        string   `xml:"created"`
	Modified       string   `xml:"modified"`
}

// Metadata reads the core properties part. Metadata is optional: a missing
// or unreadable part gives empty metadata.
func (b *Builder) Metadata() model.Metadata {
	name := DefaultCorePropertiesPart
	if rels, err := opc.ReadRelationships(b.pkg, ""); err == nil {
		if rel, ok := rels.FirstOfType(opc.RelCoreProperties); ok && !rel.External {
			name = rel.Target
		}
	}

	data, err := b.pkg.Part(name)
	if err != nil {
		return model.Metadata{}
	}

	var props corePropertiesXML
	if err := xml.Unmarshal(data, &props); err != nil {
		b.logger.Debug("ignoring unreadable core properties", "part", name, "error", err)
		return model.Metadata{}
	}
	return props.metadata()
}

func (p *corePropertiesXML) metadata() model.Metadata {
	meta := model.Metadata{
		Title:          strings.TrimSpace(p.Title),
		Author:         strings.TrimSpace(p.Creator),
		Subject:        strings.TrimSpace(p.Subject),
		Description:    strings.TrimSpace(p.Description),
		LastModifiedBy: strings.TrimSpace(p.LastModifiedBy),
		Revision:       strings.TrimSpace(p.Revision),
		Created:        parseW3CDate(p.Created),
		Modified:       parseW3CDate(p.Modified),
	}
	if p.Keywords != "" {
		for _, kw := range strings.FieldsFunc(p.Keywords, func(r rune) bool { return r == ',' || r == ';' }) {
			if kw = strings.TrimSpace(kw); kw != "" {
				meta.Keywords = append(meta.Keywords, kw)
			}
		}
	}
	return meta
}

// parseW3CDate parses a dcterms:W3CDTF value. Unparsable values give the
// zero time.
func parseW3CDate(v string) time.Time {
	v = strings.TrimSpace(v)
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
