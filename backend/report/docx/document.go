package docx

import (
	"bytes"
	"fmt"
	"path/filepath"

	"vincit.fi/photo-report/api/apitype"
	"vincit.fi/photo-report/backend/report"
)

type documentWriter struct {
	buf        *bytes.Buffer
	plan       *apitype.ReportPlan
	pictures   *pictures
	drawingIds int
}

func documentXml(plan *apitype.ReportPlan, collected *pictures) []byte {
	w := &documentWriter{
		buf:      &bytes.Buffer{},
		plan:     plan,
		pictures: collected,
	}
	w.writeDocument()
	return w.buf.Bytes()
}

func (s *documentWriter) writeDocument() {
	s.buf.WriteString(xmlHeader)
	fmt.Fprintf(s.buf, `<w:document xmlns:w="%s" xmlns:r="%s" xmlns:wp="%s" xmlns:a="%s" xmlns:pic="%s"><w:body>`,
		nsWordMain, nsRelationships, nsDrawing, nsDrawingMain, nsPicture)

	for _, page := range s.plan.Pages {
		s.writeTitle()
		s.writeTable(report.BuildTable(page, s.plan.Geometry))
		if page.BreakAfter {
			s.buf.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
		}
	}

	s.writeSection()
	s.buf.WriteString(`</w:body></w:document>`)
}

func (s *documentWriter) writeTitle() {
	s.buf.WriteString(`<w:p><w:pPr><w:jc w:val="center"/></w:pPr>`)
	fmt.Fprintf(s.buf, `<w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`, escape(s.plan.Title))
}

func (s *documentWriter) writeTable(table apitype.Table) {
	s.buf.WriteString(`<w:tbl><w:tblPr>`)
	fmt.Fprintf(s.buf, `<w:tblStyle w:val="%s"/><w:tblW w:w="0" w:type="auto"/><w:tblLayout w:type="fixed"/>`, tableGridStyleId)
	s.buf.WriteString(`<w:tblLook w:val="04A0" w:firstRow="1" w:lastRow="0" w:firstColumn="1" w:lastColumn="0" w:noHBand="0" w:noVBand="1"/>`)
	s.buf.WriteString(`</w:tblPr><w:tblGrid>`)
	for _, width := range table.ColumnWidthsCm {
		fmt.Fprintf(s.buf, `<w:gridCol w:w="%d"/>`, twips(width))
	}
	s.buf.WriteString(`</w:tblGrid>`)

	for _, row := range table.Rows {
		fmt.Fprintf(s.buf, `<w:tr><w:trPr><w:trHeight w:val="%d"/></w:trPr>`, twips(row.HeightCm))
		for _, cell := range row.Cells {
			s.writeCell(table, cell)
		}
		s.buf.WriteString(`</w:tr>`)
	}
	s.buf.WriteString(`</w:tbl>`)
}

func (s *documentWriter) writeCell(table apitype.Table, cell apitype.TableCell) {
	width := 0.0
	for column := cell.Column; column < cell.Column+cell.Span && column < len(table.ColumnWidthsCm); column++ {
		width += table.ColumnWidthsCm[column]
	}

	fmt.Fprintf(s.buf, `<w:tc><w:tcPr><w:tcW w:w="%d" w:type="dxa"/>`, twips(width))
	if cell.Span > 1 {
		fmt.Fprintf(s.buf, `<w:gridSpan w:val="%d"/>`, cell.Span)
	}
	s.buf.WriteString(`<w:vAlign w:val="center"/></w:tcPr><w:p>`)
	if jc := justification(cell.Alignment); jc != "" {
		fmt.Fprintf(s.buf, `<w:pPr><w:jc w:val="%s"/></w:pPr>`, jc)
	}

	if cell.Content == apitype.PictureCell {
		s.writePicture(s.pictures.get(cell.ImagePath), cell.ImagePath)
	} else {
		size := halfPoints(s.plan.Geometry.CellFontPt)
		fmt.Fprintf(s.buf, `<w:r><w:rPr><w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr><w:t xml:space="preserve">%s</w:t></w:r>`,
			size, size, escape(cell.Text))
	}
	s.buf.WriteString(`</w:p></w:tc>`)
}

func (s *documentWriter) writePicture(p *picture, path string) {
	if p == nil {
		return
	}
	s.drawingIds++
	cx, cy := p.extent(s.plan.Geometry.PictureHeightCm)
	name := escape(filepath.Base(path))

	s.buf.WriteString(`<w:r><w:drawing>`)
	fmt.Fprintf(s.buf, `<wp:inline distT="0" distB="0" distL="0" distR="0"><wp:extent cx="%d" cy="%d"/>`, cx, cy)
	fmt.Fprintf(s.buf, `<wp:docPr id="%d" name="Picture %d" descr="%s"/>`, s.drawingIds, s.drawingIds, name)
	s.buf.WriteString(`<wp:cNvGraphicFramePr><a:graphicFrameLocks noChangeAspect="1"/></wp:cNvGraphicFramePr>`)
	fmt.Fprintf(s.buf, `<a:graphic><a:graphicData uri="%s"><pic:pic>`, nsPicture)
	fmt.Fprintf(s.buf, `<pic:nvPicPr><pic:cNvPr id="0" name="%s"/><pic:cNvPicPr/></pic:nvPicPr>`, p.partName)
	fmt.Fprintf(s.buf, `<pic:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`, p.relationId)
	fmt.Fprintf(s.buf, `<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`, cx, cy)
	s.buf.WriteString(`</pic:pic></a:graphicData></a:graphic></wp:inline></w:drawing></w:r>`)
}

func (s *documentWriter) writeSection() {
	geometry := s.plan.Geometry
	margin := twips(geometry.MarginCm)
	s.buf.WriteString(`<w:sectPr>`)
	fmt.Fprintf(s.buf, `<w:pgSz w:w="%d" w:h="%d"/>`, twips(geometry.PageWidthCm), twips(geometry.PageHeightCm))
	fmt.Fprintf(s.buf, `<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="%d" w:footer="%d" w:gutter="0"/>`,
		margin, margin, margin, margin, headerFooterTwips, headerFooterTwips)
	s.buf.WriteString(`</w:sectPr>`)
}

func justification(alignment apitype.Alignment) string {
	switch alignment {
	case apitype.AlignCenter:
		return "center"
	case apitype.AlignDistribute:
		return "distribute"
	default:
		return ""
	}
}
