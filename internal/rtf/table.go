package rtf

import "fmt"

// BorderStyle is the line style of a cell border.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderSingle
	BorderDotted
	BorderDashed
	BorderDouble
	BorderThick
)

var borderWords = map[BorderStyle]string{
	BorderSingle: `\brdrs`,
	BorderDotted: `\brdrdot`,
	BorderDashed: `\brdrdash`,
	BorderDouble: `\brdrdb`,
	BorderThick:  `\brdrth`,
}

// Border is one edge style. Width is in points.
type Border struct {
	Style BorderStyle
	Width float32
	Color ColorRef
}

// VAlign is the vertical alignment of cell content.
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignMiddle
	VAlignBottom
)

// region is a merged rectangle. Its top-left cell owns it.
type region struct {
	row, col         int
	rowSpan, colSpan int
}

// TableCell is one grid cell. Content is added through the embedded
// BlockList. Merged-away cells cannot be obtained through Table.Cell.
type TableCell struct {
	*BlockList

	table    *Table
	row, col int
	region   int // 1-based index into table.regions, 0 when not merged

	bg        ColorRef
	hasBg     bool
	borders   [4]Border
	hasBorder [4]bool
	valign    VAlign
}

// Row returns the row index of the cell.
func (c *TableCell) Row() int { return c.row }

// Col returns the column index of the cell.
func (c *TableCell) Col() int { return c.col }

// SetBackgroundColor overrides the row and table background.
func (c *TableCell) SetBackgroundColor(ref ColorRef) {
	c.bg = ref
	c.hasBg = true
}

// SetBorder overrides the table border on one side of the cell.
func (c *TableCell) SetBorder(d Direction, b Border) {
	c.borders[d] = b
	c.hasBorder[d] = true
}

// SetVerticalAlignment sets the vertical alignment of the content.
func (c *TableCell) SetVerticalAlignment(v VAlign) { c.valign = v }

// span returns the rectangle the cell belongs to; an unmerged cell is its
// own 1x1 rectangle.
func (c *TableCell) span() region {
	if c.region == 0 {
		return region{row: c.row, col: c.col, rowSpan: 1, colSpan: 1}
	}
	return c.table.regions[c.region-1]
}

func (c *TableCell) owning() bool {
	s := c.span()
	return s.row == c.row && s.col == c.col
}

// Table is a rows x cols grid of cells.
type Table struct {
	blockFlags

	rows, cols int
	width      float32
	colWidths  []float32
	rowHeights []float32
	cells      [][]*TableCell
	regions    []region

	innerBorder Border
	outerBorder Border
	margins     Margins
	align       Align

	headerBg, rowBg, rowAltBg          ColorRef
	hasHeaderBg, hasRowBg, hasRowAltBg bool

	ctx *docContext
}

func newTable(rows, cols int, width, fontSize float32, ctx *docContext) (*Table, error) {
	if rows < 1 || cols < 1 {
		return nil, constructionError("add table", "invalid dimensions %dx%d", rows, cols)
	}
	if width <= 0 {
		return nil, constructionError("add table", "invalid width %g", width)
	}
	t := &Table{
		rows:       rows,
		cols:       cols,
		width:      width,
		colWidths:  make([]float32, cols),
		rowHeights: make([]float32, rows),
		cells:      make([][]*TableCell, rows),
		ctx:        ctx,
	}
	for j := range t.colWidths {
		t.colWidths[j] = width / float32(cols)
	}
	for i := range t.cells {
		t.cells[i] = make([]*TableCell, cols)
		for j := range t.cells[i] {
			bl := newBlockList(cellRole, ctx)
			bl.fontSize = fontSize
			t.cells[i][j] = &TableCell{BlockList: bl, table: t, row: i, col: j}
		}
	}
	return t, nil
}

// Kind implements Block.
func (t *Table) Kind() BlockKind { return BlockTable }
func (t *Table) sealed()         {}

// RowCount returns the number of rows.
func (t *Table) RowCount() int { return t.rows }

// ColCount returns the number of columns.
func (t *Table) ColCount() int { return t.cols }

// Cell returns the cell at (row, col). Merged-away cells fail with a
// LookupError.
func (t *Table) Cell(row, col int) (*TableCell, error) {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return nil, &LookupError{What: "cell", Msg: fmt.Sprintf("(%d,%d) outside %dx%d grid", row, col, t.rows, t.cols)}
	}
	c := t.cells[row][col]
	if !c.owning() {
		s := c.span()
		return nil, &LookupError{What: "cell", Msg: fmt.Sprintf("(%d,%d) is merged into (%d,%d)", row, col, s.row, s.col)}
	}
	return c, nil
}

// CellSpan returns the row and column span of the cell owning (row, col).
func (t *Table) CellSpan(row, col int) (rowSpan, colSpan int, err error) {
	c, err := t.Cell(row, col)
	if err != nil {
		return 0, 0, err
	}
	s := c.span()
	return s.rowSpan, s.colSpan, nil
}

// IsMergedAway reports whether (row, col) was absorbed by a merge.
func (t *Table) IsMergedAway(row, col int) bool {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return false
	}
	return !t.cells[row][col].owning()
}

// Merge joins the rowSpan x colSpan rectangle at (row, col) into one cell
// owned by the top-left cell. Every cell of the rectangle must be unmerged;
// on failure the grid is unchanged. Merges cannot be undone.
func (t *Table) Merge(row, col, rowSpan, colSpan int) error {
	conflict := func(format string, args ...any) error {
		return &MergeConflictError{Row: row, Col: col, RowSpan: rowSpan, ColSpan: colSpan,
			Msg: fmt.Sprintf(format, args...)}
	}
	if rowSpan < 1 || colSpan < 1 {
		return conflict("spans must be at least 1")
	}
	if row < 0 || col < 0 || row >= t.rows || col >= t.cols ||
		rowSpan > t.rows-row || colSpan > t.cols-col {
		return conflict("rectangle exceeds %dx%d grid", t.rows, t.cols)
	}
	for i := row; i < row+rowSpan; i++ {
		for j := col; j < col+colSpan; j++ {
			if t.cells[i][j].region != 0 {
				s := t.cells[i][j].span()
				return conflict("cell (%d,%d) already belongs to the region at (%d,%d)", i, j, s.row, s.col)
			}
		}
	}
	if rowSpan == 1 && colSpan == 1 {
		return nil
	}

	t.regions = append(t.regions, region{row: row, col: col, rowSpan: rowSpan, colSpan: colSpan})
	id := len(t.regions)
	for i := row; i < row+rowSpan; i++ {
		for j := col; j < col+colSpan; j++ {
			t.cells[i][j].region = id
		}
	}
	return nil
}

// SetColWidth sets the width of one column in points.
func (t *Table) SetColWidth(col int, pt float32) error {
	if col < 0 || col >= t.cols || pt <= 0 {
		return constructionError("set column width", "invalid column %d or width %g", col, pt)
	}
	t.colWidths[col] = pt
	return nil
}

// SetRowHeight sets the minimum height of one row in points.
func (t *Table) SetRowHeight(row int, pt float32) error {
	if row < 0 || row >= t.rows || pt < 0 {
		return constructionError("set row height", "invalid row %d or height %g", row, pt)
	}
	t.rowHeights[row] = pt
	return nil
}

// SetInnerBorder sets the default border between cells.
func (t *Table) SetInnerBorder(style BorderStyle, width float32) {
	t.innerBorder = Border{Style: style, Width: width}
}

// SetOuterBorder sets the default border around the table.
func (t *Table) SetOuterBorder(style BorderStyle, width float32) {
	t.outerBorder = Border{Style: style, Width: width}
}

// SetMargins sets the cell padding in points.
func (t *Table) SetMargins(m Margins) { t.margins = m }

// SetMargin sets the cell padding on one side.
func (t *Table) SetMargin(d Direction, pt float32) { t.margins[d] = pt }

// SetAlignment sets the horizontal position of the table.
func (t *Table) SetAlignment(a Align) { t.align = a }

// SetHeaderBackgroundColor sets the background of row 0.
func (t *Table) SetHeaderBackgroundColor(ref ColorRef) {
	t.headerBg, t.hasHeaderBg = ref, true
}

// SetRowBackgroundColor sets the background of body rows.
func (t *Table) SetRowBackgroundColor(ref ColorRef) {
	t.rowBg, t.hasRowBg = ref, true
}

// SetRowAltBackgroundColor sets the background of odd rows.
func (t *Table) SetRowAltBackgroundColor(ref ColorRef) {
	t.rowAltBg, t.hasRowAltBg = ref, true
}

// background resolves the fill of a region owned by c: the cell's own
// colour, then the header, alternate-row and row colours.
func (t *Table) background(c *TableCell) (ColorRef, bool) {
	switch {
	case c.hasBg:
		return c.bg, true
	case c.row == 0 && t.hasHeaderBg:
		return t.headerBg, true
	case c.row%2 == 1 && t.hasRowAltBg:
		return t.rowAltBg, true
	case t.hasRowBg:
		return t.rowBg, true
	}
	return ColorRef{}, false
}

// edgeBorder resolves the border of region s on side d. Sides on the table
// edge use the outer border, the rest the inner border, unless the owning
// cell overrides it.
func (t *Table) edgeBorder(owner *TableCell, s region, d Direction) Border {
	if owner.hasBorder[d] {
		return owner.borders[d]
	}
	var outer bool
	switch d {
	case Top:
		outer = s.row == 0
	case Bottom:
		outer = s.row+s.rowSpan == t.rows
	case Left:
		outer = s.col == 0
	case Right:
		outer = s.col+s.colSpan == t.cols
	}
	if outer {
		return t.outerBorder
	}
	return t.innerBorder
}
