package build

import (
	"fmt"

	"github.com/roboco-io/rtfwriter/internal/ir"
	"github.com/roboco-io/rtfwriter/internal/rtf"
)

func (b *Builder) paragraph(bl *rtf.BlockList, src *ir.Paragraph, path string) (*rtf.Paragraph, error) {
	p := bl.AddParagraph()
	if err := p.SetText(src.Text); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := b.paragraphStyle(p, src.Style, path+".style"); err != nil {
		return nil, err
	}

	def := p.DefaultCharFormat()
	if _, ok := def.FontSize(); !ok && b.opts.FontSize > 0 {
		def.SetFontSize(b.opts.FontSize)
	}
	if src.Default != nil {
		if err := b.textStyle(def, src.Default, path+".default"); err != nil {
			return nil, err
		}
	}

	for i, f := range src.Formats {
		fp := fmt.Sprintf("%s.formats[%d]", path, i)
		cf, err := p.AddCharFormat(f.Start, f.End)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fp, err)
		}
		if err := b.textStyle(cf, &f.TextStyle, fp); err != nil {
			return nil, err
		}
	}

	for i, c := range src.Controls {
		cp := fmt.Sprintf("%s.controls[%d]", path, i)
		field, err := parseField(c.Field)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cp, err)
		}
		if err := p.AddControlWord(c.Position, field); err != nil {
			return nil, fmt.Errorf("%s: %w", cp, err)
		}
	}

	for i, bm := range src.Bookmarks {
		if err := p.AddBookmark(bm.Position, bm.Name); err != nil {
			return nil, fmt.Errorf("%s.bookmarks[%d]: %w", path, i, err)
		}
	}

	for i, fn := range src.Footnotes {
		fp := fmt.Sprintf("%s.footnotes[%d]", path, i)
		note, err := p.AddFootnote(fn.Position)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fp, err)
		}
		if err := b.blocks(note.BlockList, fn.Content, fp+".content"); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (b *Builder) paragraphStyle(p *rtf.Paragraph, s ir.ParagraphStyle, path string) error {
	align, err := parseAlign(s.Alignment)
	if err != nil {
		return fmt.Errorf("%s.alignment: %w", path, err)
	}
	p.SetAlignment(align)
	p.SetIndent(s.FirstIndent, s.LeftIndent, s.RightIndent)
	p.SetSpacing(s.SpaceBefore, s.SpaceAfter, s.LineSpacing)
	return nil
}

var styleFlags = []struct {
	set  func(*ir.TextStyle) bool
	flag rtf.FontStyleFlag
}{
	{func(s *ir.TextStyle) bool { return s.Bold }, rtf.Bold},
	{func(s *ir.TextStyle) bool { return s.Italic }, rtf.Italic},
	{func(s *ir.TextStyle) bool { return s.Underline }, rtf.Underline},
	{func(s *ir.TextStyle) bool { return s.Strikethrough }, rtf.Strike},
	{func(s *ir.TextStyle) bool { return s.SmallCaps }, rtf.SmallCaps},
	{func(s *ir.TextStyle) bool { return s.Superscript }, rtf.Super},
	{func(s *ir.TextStyle) bool { return s.Subscript }, rtf.Sub},
	{func(s *ir.TextStyle) bool { return s.Hidden }, rtf.Hidden},
}

// textStyle copies the attributes s sets onto f. Attributes s leaves at
// their zero value stay unset so that earlier formats show through.
func (b *Builder) textStyle(f *rtf.CharFormat, s *ir.TextStyle, path string) error {
	if s.Font != "" {
		f.SetFont(b.font(s.Font))
	}
	if s.AnsiFont != "" {
		f.SetAnsiFont(b.font(s.AnsiFont))
	}
	if s.Size < 0 {
		return fmt.Errorf("%s.size: must not be negative", path)
	}
	if s.Size > 0 {
		f.SetFontSize(s.Size)
	}
	if s.Color != "" {
		ref, err := b.color(s.Color)
		if err != nil {
			return fmt.Errorf("%s.color: %w", path, err)
		}
		f.SetFgColor(ref)
	}
	if s.Background != "" {
		ref, err := b.color(s.Background)
		if err != nil {
			return fmt.Errorf("%s.background: %w", path, err)
		}
		f.SetBgColor(ref)
	}

	var flags rtf.FontStyleFlag
	for _, sf := range styleFlags {
		if sf.set(s) {
			flags |= sf.flag
		}
	}
	if flags != 0 {
		f.AddStyle(flags)
	}

	if s.TwoInOne != "" {
		t, err := parseTwoInOne(s.TwoInOne)
		if err != nil {
			return fmt.Errorf("%s.two_in_one: %w", path, err)
		}
		f.SetTwoInOne(t)
	}

	switch {
	case s.Link != "" && s.LocalLink != "":
		return fmt.Errorf("%s: link and local_link are exclusive", path)
	case s.Link != "":
		f.SetHyperlink(s.Link)
	case s.LocalLink != "":
		f.SetLocalHyperlink(s.LocalLink, s.LinkTip)
	}
	if s.Bookmark != "" {
		f.SetBookmark(s.Bookmark)
	}
	return nil
}
