package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strings"

	"vincit.fi/photo-report/api/apitype"
)

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

	nsPackageRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes         = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsWordMain             = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRelationships        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsDrawing              = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsDrawingMain          = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPicture              = "http://schemas.openxmlformats.org/drawingml/2006/picture"

	relTypeOfficeDocument = nsRelationships + "/officeDocument"
	relTypeStyles         = nsRelationships + "/styles"
	relTypeImage          = nsRelationships + "/image"

	stylesRelationId = "rIdStyles"

	partContentTypes      = "[Content_Types].xml"
	partPackageRels       = "_rels/.rels"
	partDocument          = "word/document.xml"
	partDocumentRels      = "word/_rels/document.xml.rels"
	partStyles            = "word/styles.xml"
	partMediaDirectory    = "word/media/"
	tableGridStyleId      = "TableGrid"
	tableBorderEighthsPt  = 4
	defaultCellMarginTwip = 108
	headerFooterTwips     = 720
)

const (
	emuPerCm   = 360000
	emuPerTwip = 635
)

func emu(cm float64) int64 {
	return int64(math.Round(cm * emuPerCm))
}

func twips(cm float64) int64 {
	return int64(math.Round(cm * emuPerCm / emuPerTwip))
}

func halfPoints(pt float64) int64 {
	return int64(math.Round(pt * 2))
}

func escape(value string) string {
	buf := &strings.Builder{}
	_ = xml.EscapeText(buf, []byte(value))
	return buf.String()
}

func contentTypesXml(collected *pictures) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString(xmlHeader)
	fmt.Fprintf(buf, `<Types xmlns="%s">`, nsContentTypes)
	buf.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	buf.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	for _, extension := range collected.extensions() {
		fmt.Fprintf(buf, `<Default Extension="%s" ContentType="%s"/>`, extension, contentTypes[extension])
	}
	fmt.Fprintf(buf, `<Override PartName="/%s" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>`, partDocument)
	fmt.Fprintf(buf, `<Override PartName="/%s" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>`, partStyles)
	buf.WriteString(`</Types>`)
	return buf.Bytes()
}

func packageRelsXml() []byte {
	buf := &bytes.Buffer{}
	buf.WriteString(xmlHeader)
	fmt.Fprintf(buf, `<Relationships xmlns="%s">`, nsPackageRelationships)
	fmt.Fprintf(buf, `<Relationship Id="rId1" Type="%s" Target="%s"/>`, relTypeOfficeDocument, partDocument)
	buf.WriteString(`</Relationships>`)
	return buf.Bytes()
}

func documentRelsXml(collected *pictures) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString(xmlHeader)
	fmt.Fprintf(buf, `<Relationships xmlns="%s">`, nsPackageRelationships)
	fmt.Fprintf(buf, `<Relationship Id="%s" Type="%s" Target="styles.xml"/>`, stylesRelationId, relTypeStyles)
	for _, p := range collected.order {
		fmt.Fprintf(buf, `<Relationship Id="%s" Type="%s" Target="media/%s"/>`, p.relationId, relTypeImage, p.partName)
	}
	buf.WriteString(`</Relationships>`)
	return buf.Bytes()
}

// stylesXml sets the Normal style font for both east-asian and latin text.
func stylesXml(geometry apitype.Geometry) []byte {
	font := escape(geometry.FontName)
	size := halfPoints(geometry.BaseFontPt)
	fonts := fmt.Sprintf(`<w:rFonts w:ascii="%s" w:eastAsia="%s" w:hAnsi="%s" w:cs="%s"/>`, font, font, font, font)

	buf := &bytes.Buffer{}
	buf.WriteString(xmlHeader)
	fmt.Fprintf(buf, `<w:styles xmlns:w="%s">`, nsWordMain)
	fmt.Fprintf(buf, `<w:docDefaults><w:rPrDefault><w:rPr>%s<w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr></w:rPrDefault></w:docDefaults>`,
		fonts, size, size)
	fmt.Fprintf(buf, `<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/><w:rPr>%s<w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr></w:style>`,
		fonts, size, size)
	fmt.Fprintf(buf, `<w:style w:type="table" w:default="1" w:styleId="TableNormal"><w:name w:val="Normal Table"/><w:tblPr><w:tblInd w:w="0" w:type="dxa"/><w:tblCellMar><w:top w:w="0" w:type="dxa"/><w:left w:w="%d" w:type="dxa"/><w:bottom w:w="0" w:type="dxa"/><w:right w:w="%d" w:type="dxa"/></w:tblCellMar></w:tblPr></w:style>`,
		defaultCellMarginTwip, defaultCellMarginTwip)
	fmt.Fprintf(buf, `<w:style w:type="table" w:styleId="%s"><w:name w:val="Table Grid"/><w:basedOn w:val="TableNormal"/><w:tblPr><w:tblBorders>`, tableGridStyleId)
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		fmt.Fprintf(buf, `<w:%s w:val="single" w:sz="%d" w:space="0" w:color="auto"/>`, side, tableBorderEighthsPt)
	}
	buf.WriteString(`</w:tblBorders></w:tblPr></w:style>`)
	buf.WriteString(`</w:styles>`)
	return buf.Bytes()
}
