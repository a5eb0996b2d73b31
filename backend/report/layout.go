package report

import (
	"strconv"

	"vincit.fi/photo-report/api/apitype"
)

const (
	RecordsPerPage = 2
	RowsPerRecord  = 3
	GridColumns    = 4

	TimeLabel        = "時間"
	DescriptionLabel = "說明"
	// descriptionPlaceholder keeps the description cell editable after export.
	descriptionPlaceholder = " "

	letterWidthCm  = 21.59
	letterHeightCm = 27.94
	marginCm       = 1.27
)

// DefaultGeometry returns the dimensions of the report on a Letter page.
// Grid column 3 keeps the default equal share of the text width.
func DefaultGeometry(fontName string) apitype.Geometry {
	return apitype.Geometry{
		PageWidthCm:     letterWidthCm,
		PageHeightCm:    letterHeightCm,
		MarginCm:        marginCm,
		ColumnWidthsCm:  []float64{2.6, 9.0, 2.6, (letterWidthCm - 2*marginCm) / GridColumns},
		RowHeightsCm:    []float64{8.8, 0.5, 1.3},
		PictureHeightCm: 8.5,
		BaseFontPt:      20,
		CellFontPt:      12,
		FontName:        fontName,
	}
}

// PageCount is ceil(records / 2).
func PageCount(records int) int {
	if records <= 0 {
		return 0
	}
	return (records + RecordsPerPage - 1) / RecordsPerPage
}

// Layout splits the records into pages of two. The last page holds a single
// record when the count is odd. Zero records give zero pages.
func Layout(records []apitype.ResolvedRecord, title string, geometry apitype.Geometry) *apitype.ReportPlan {
	pageCount := PageCount(len(records))
	plan := &apitype.ReportPlan{
		Title:    title,
		Geometry: geometry,
		Pages:    make([]apitype.Page, 0, pageCount),
	}

	for pageIndex := 0; pageIndex < pageCount; pageIndex++ {
		start := pageIndex * RecordsPerPage
		count := RecordsPerPage
		if start+RecordsPerPage > len(records) {
			count = 1
		}

		slots := make([]apitype.Slot, count)
		for i := 0; i < count; i++ {
			record := records[start+i]
			slots[i] = apitype.Slot{
				ImagePath: record.ImagePath,
				Timestamp: record.Timestamp,
				Sequence:  record.Position + 1,
			}
		}

		plan.Pages = append(plan.Pages, apitype.Page{
			Slots:      slots,
			BreakAfter: pageIndex != pageCount-1,
		})
	}
	return plan
}

// BuildTable returns the table of one page: three rows per slot.
//
//	row 0: picture over all four columns
//	row 1: 時間 | timestamp (columns 1-2) | sequence number
//	row 2: 說明 | blank (columns 1-3)
func BuildTable(page apitype.Page, geometry apitype.Geometry) apitype.Table {
	table := apitype.Table{
		ColumnWidthsCm: geometry.ColumnWidthsCm,
		Rows:           make([]apitype.TableRow, 0, len(page.Slots)*RowsPerRecord),
	}

	for _, slot := range page.Slots {
		table.Rows = append(table.Rows,
			apitype.TableRow{
				HeightCm: geometry.RowHeightsCm[0],
				Cells: []apitype.TableCell{
					{Column: 0, Span: 4, Content: apitype.PictureCell, ImagePath: slot.ImagePath, Alignment: apitype.AlignCenter},
				},
			},
			apitype.TableRow{
				HeightCm: geometry.RowHeightsCm[1],
				Cells: []apitype.TableCell{
					{Column: 0, Span: 1, Content: apitype.TextCell, Text: TimeLabel, Alignment: apitype.AlignDistribute},
					{Column: 1, Span: 2, Content: apitype.TextCell, Text: slot.Timestamp, Alignment: apitype.AlignLeft},
					{Column: 3, Span: 1, Content: apitype.TextCell, Text: strconv.Itoa(slot.Sequence), Alignment: apitype.AlignLeft},
				},
			},
			apitype.TableRow{
				HeightCm: geometry.RowHeightsCm[2],
				Cells: []apitype.TableCell{
					{Column: 0, Span: 1, Content: apitype.TextCell, Text: DescriptionLabel, Alignment: apitype.AlignDistribute},
					{Column: 1, Span: 3, Content: apitype.TextCell, Text: descriptionPlaceholder, Alignment: apitype.AlignLeft},
				},
			},
		)
	}
	return table
}
