package domain

// CellStyle tags the visual intent of a table cell. Concrete colors and fonts
// belong to the document encoder.
type CellStyle string

const (
	CellHeader      CellStyle = "header"
	CellData        CellStyle = "data"
	CellChecked     CellStyle = "checked"
	CellMergedLabel CellStyle = "merged-label"
)

// TextRun is one styled fragment inside a cell. Runs with NewLine set end
// their paragraph.
type TextRun struct {
	Text    string
	Bold    bool
	NewLine bool
}

// Cell carries span metadata for merged layouts. Cells spanning multiple rows
// appear only on the first row of the span; covered rows omit them entirely.
type Cell struct {
	Style   CellStyle
	Text    string
	Runs    []TextRun
	RowSpan int
	ColSpan int
}

type TableRow []Cell

// TableBlock is an ordered grid. Every row's cells, once row and column spans
// are expanded, cover exactly Columns columns.
type TableBlock struct {
	Columns int
	Rows    []TableRow
}

type ImageKind string

const (
	ImageLogo     ImageKind = "logo"
	ImageFileIcon ImageKind = "file-icon"
)

// ImagePlacement positions an image on the slide canvas, in inches.
type ImagePlacement struct {
	Kind    ImageKind
	X       float64
	Y       float64
	Width   float64
	Height  float64
	Link    string
	Tooltip string
}

type HeaderBlock struct {
	Title  string
	Banner string
}

type Slide struct {
	Header  HeaderBlock
	Message string
	Tables  []TableBlock
	Images  []ImagePlacement
}

// Deck is the finished slide-deck model handed to a document encoder.
type Deck struct {
	Title   string
	Company string
	Subject string
	Slides  []Slide
}

// BulletItem is one parsed line of indentation-leveled list text.
// Level is 0, 1 or 2.
type BulletItem struct {
	Text  string
	Level int
}
