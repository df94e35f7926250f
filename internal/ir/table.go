package ir

// TableBlock describes a rows x cols grid. Width and lengths are in points.
type TableBlock struct {
	Rows             int       `json:"rows" yaml:"rows"`
	Cols             int       `json:"cols" yaml:"cols"`
	Width            float32   `json:"width" yaml:"width"`
	FontSize         float32   `json:"font_size,omitempty" yaml:"font_size,omitempty"`
	ColWidths        []float32 `json:"col_widths,omitempty" yaml:"col_widths,omitempty"`
	RowHeights       []float32 `json:"row_heights,omitempty" yaml:"row_heights,omitempty"`
	Alignment        string    `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	Margins          *Margins  `json:"margins,omitempty" yaml:"margins,omitempty"`
	InnerBorder      *Border   `json:"inner_border,omitempty" yaml:"inner_border,omitempty"`
	OuterBorder      *Border   `json:"outer_border,omitempty" yaml:"outer_border,omitempty"`
	HeaderBackground string    `json:"header_background,omitempty" yaml:"header_background,omitempty"`
	RowBackground    string    `json:"row_background,omitempty" yaml:"row_background,omitempty"`
	RowAltBackground string    `json:"row_alt_background,omitempty" yaml:"row_alt_background,omitempty"`
	Merges           []Merge   `json:"merges,omitempty" yaml:"merges,omitempty"`
	Cells            []Cell    `json:"cells,omitempty" yaml:"cells,omitempty"`
}

// Merge joins RowSpan x ColSpan cells starting at (Row, Col).
type Merge struct {
	Row     int `json:"row" yaml:"row"`
	Col     int `json:"col" yaml:"col"`
	RowSpan int `json:"row_span" yaml:"row_span"`
	ColSpan int `json:"col_span" yaml:"col_span"`
}

// Border is one edge style: none, single, dotted, dashed, double or thick.
type Border struct {
	Style string  `json:"style" yaml:"style"`
	Width float32 `json:"width,omitempty" yaml:"width,omitempty"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// Cell fills the cell at (Row, Col). Text is a shortcut for a single
// paragraph and is added before Content.
type Cell struct {
	Row        int     `json:"row" yaml:"row"`
	Col        int     `json:"col" yaml:"col"`
	Text       string  `json:"text,omitempty" yaml:"text,omitempty"`
	Content    []Block `json:"content,omitempty" yaml:"content,omitempty"`
	Background string  `json:"background,omitempty" yaml:"background,omitempty"`
	VAlign     string  `json:"valign,omitempty" yaml:"valign,omitempty"` // top, middle, bottom
	Top        *Border `json:"top,omitempty" yaml:"top,omitempty"`
	Right      *Border `json:"right,omitempty" yaml:"right,omitempty"`
	Bottom     *Border `json:"bottom,omitempty" yaml:"bottom,omitempty"`
	Left       *Border `json:"left,omitempty" yaml:"left,omitempty"`
}

// NewTable creates a new table with the specified dimensions.
func NewTable(rows, cols int, width float32) *TableBlock {
	return &TableBlock{
		Rows:  rows,
		Cols:  cols,
		Width: width,
	}
}

// SetCell sets the text of a cell, replacing an earlier entry for the same
// position.
func (t *TableBlock) SetCell(row, col int, text string) {
	if c := t.GetCell(row, col); c != nil {
		c.Text = text
		return
	}
	t.Cells = append(t.Cells, Cell{Row: row, Col: col, Text: text})
}

// GetCell returns the entry for the cell at the specified position.
func (t *TableBlock) GetCell(row, col int) *Cell {
	for i := range t.Cells {
		if t.Cells[i].Row == row && t.Cells[i].Col == col {
			return &t.Cells[i]
		}
	}
	return nil
}

// Merge records a merge of rowSpan x colSpan cells at (row, col).
func (t *TableBlock) Merge(row, col, rowSpan, colSpan int) {
	t.Merges = append(t.Merges, Merge{Row: row, Col: col, RowSpan: rowSpan, ColSpan: colSpan})
}
