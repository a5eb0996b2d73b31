package apitype

// ResolvedRecord is a job record whose timestamp text is already resolved.
type ResolvedRecord struct {
	ImagePath string
	Timestamp string
	// Position is the 0-based index of the record in the whole job.
	Position int
}

type Slot struct {
	ImagePath string
	Timestamp string
	// Sequence is the 1-based number of the record in the whole job.
	Sequence int
}

type Page struct {
	Slots      []Slot
	BreakAfter bool
}

// Geometry holds the physical dimensions of the report.
type Geometry struct {
	PageWidthCm     float64
	PageHeightCm    float64
	MarginCm        float64
	ColumnWidthsCm  []float64
	RowHeightsCm    []float64
	PictureHeightCm float64
	BaseFontPt      float64
	CellFontPt      float64
	FontName        string
}

// ReportPlan is the output of the layout engine and the only input of a
// document renderer.
type ReportPlan struct {
	Title    string
	Geometry Geometry
	Pages    []Page
}

func (s *ReportPlan) PageCount() int {
	if s == nil {
		return 0
	}
	return len(s.Pages)
}

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignDistribute
)

type CellContent int

const (
	TextCell CellContent = iota
	PictureCell
)

type TableCell struct {
	// Column is the first grid column the cell covers.
	Column    int
	Span      int
	Content   CellContent
	Text      string
	ImagePath string
	Alignment Alignment
}

type TableRow struct {
	HeightCm float64
	Cells    []TableCell
}

type Table struct {
	ColumnWidthsCm []float64
	Rows           []TableRow
}
