package build

import (
	"fmt"

	"github.com/roboco-io/rtfwriter/internal/ir"
	"github.com/roboco-io/rtfwriter/internal/rtf"
)

func (b *Builder) table(bl *rtf.BlockList, src *ir.TableBlock, path string) (*rtf.Table, error) {
	t, err := bl.AddTable(src.Rows, src.Cols, src.Width, src.FontSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for i, w := range src.ColWidths {
		if w == 0 {
			continue
		}
		if err := t.SetColWidth(i, w); err != nil {
			return nil, fmt.Errorf("%s.col_widths[%d]: %w", path, i, err)
		}
	}
	for i, h := range src.RowHeights {
		if err := t.SetRowHeight(i, h); err != nil {
			return nil, fmt.Errorf("%s.row_heights[%d]: %w", path, i, err)
		}
	}

	align, err := parseAlign(src.Alignment)
	if err != nil {
		return nil, fmt.Errorf("%s.alignment: %w", path, err)
	}
	t.SetAlignment(align)
	if src.Margins != nil {
		t.SetMargins(margins(src.Margins))
	}

	if src.InnerBorder != nil {
		style, err := tableBorder(src.InnerBorder)
		if err != nil {
			return nil, fmt.Errorf("%s.inner_border: %w", path, err)
		}
		t.SetInnerBorder(style, src.InnerBorder.Width)
	}
	if src.OuterBorder != nil {
		style, err := tableBorder(src.OuterBorder)
		if err != nil {
			return nil, fmt.Errorf("%s.outer_border: %w", path, err)
		}
		t.SetOuterBorder(style, src.OuterBorder.Width)
	}

	backgrounds := []struct {
		name  string
		value string
		set   func(rtf.ColorRef)
	}{
		{"header_background", src.HeaderBackground, t.SetHeaderBackgroundColor},
		{"row_background", src.RowBackground, t.SetRowBackgroundColor},
		{"row_alt_background", src.RowAltBackground, t.SetRowAltBackgroundColor},
	}
	for _, bg := range backgrounds {
		if bg.value == "" {
			continue
		}
		ref, err := b.color(bg.value)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", path, bg.name, err)
		}
		bg.set(ref)
	}

	// merges first so that cells addressing a merged-away position fail
	for i, m := range src.Merges {
		if err := t.Merge(m.Row, m.Col, m.RowSpan, m.ColSpan); err != nil {
			return nil, fmt.Errorf("%s.merges[%d]: %w", path, i, err)
		}
	}

	for i := range src.Cells {
		if err := b.cell(t, &src.Cells[i], fmt.Sprintf("%s.cells[%d]", path, i)); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// tableBorder parses a table-level border. Table defaults carry no colour.
func tableBorder(src *ir.Border) (rtf.BorderStyle, error) {
	if src.Color != "" {
		return rtf.BorderNone, fmt.Errorf("colour is only supported on cell borders")
	}
	if src.Width < 0 {
		return rtf.BorderNone, fmt.Errorf("width must not be negative")
	}
	return parseBorderStyle(src.Style)
}

func (b *Builder) cell(t *rtf.Table, src *ir.Cell, path string) error {
	c, err := t.Cell(src.Row, src.Col)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if src.Text != "" {
		if err := c.AddParagraph().SetText(src.Text); err != nil {
			return fmt.Errorf("%s.text: %w", path, err)
		}
	}
	if err := b.blocks(c.BlockList, src.Content, path+".content"); err != nil {
		return err
	}

	if src.Background != "" {
		ref, err := b.color(src.Background)
		if err != nil {
			return fmt.Errorf("%s.background: %w", path, err)
		}
		c.SetBackgroundColor(ref)
	}
	valign, err := parseVAlign(src.VAlign)
	if err != nil {
		return fmt.Errorf("%s.valign: %w", path, err)
	}
	c.SetVerticalAlignment(valign)

	sides := []struct {
		name   string
		dir    rtf.Direction
		border *ir.Border
	}{
		{"top", rtf.Top, src.Top},
		{"right", rtf.Right, src.Right},
		{"bottom", rtf.Bottom, src.Bottom},
		{"left", rtf.Left, src.Left},
	}
	for _, s := range sides {
		if s.border == nil {
			continue
		}
		border, err := b.cellBorder(s.border)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", path, s.name, err)
		}
		c.SetBorder(s.dir, border)
	}
	return nil
}

func (b *Builder) cellBorder(src *ir.Border) (rtf.Border, error) {
	style, err := parseBorderStyle(src.Style)
	if err != nil {
		return rtf.Border{}, err
	}
	if src.Width < 0 {
		return rtf.Border{}, fmt.Errorf("width must not be negative")
	}
	border := rtf.Border{Style: style, Width: src.Width}
	if src.Color != "" {
		if border.Color, err = b.color(src.Color); err != nil {
			return rtf.Border{}, err
		}
	}
	return border, nil
}
