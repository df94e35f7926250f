package rtf

import "fmt"

// Align is a horizontal alignment.
type Align int

const (
	AlignNone Align = iota
	AlignLeft
	AlignRight
	AlignCenter
	AlignFullyJustify
	AlignDistributed
)

// FieldType selects the field of a control word.
type FieldType int

const (
	FieldPage FieldType = iota
	FieldNumPages
	FieldDate
	FieldTime
	FieldSectionPages
)

var fieldInstructions = map[FieldType]string{
	FieldPage:         "PAGE",
	FieldNumPages:     "NUMPAGES",
	FieldDate:         "DATE",
	FieldTime:         "TIME",
	FieldSectionPages: "SECTIONPAGES",
}

func (f FieldType) String() string {
	if s, ok := fieldInstructions[f]; ok {
		return s
	}
	return fmt.Sprintf("FieldType(%d)", int(f))
}

// ControlWord is a field inserted after the character at Position.
type ControlWord struct {
	Position int
	Type     FieldType
}

type pointBookmark struct {
	pos  int
	name string
}

// Paragraph is a run of text with attached format ranges and positional
// directives (control words, bookmarks, footnotes). Character indices count
// Unicode code points.
type Paragraph struct {
	blockFlags

	owner     *BlockList
	text      []rune
	def       *CharFormat
	formats   []*CharFormat
	controls  []ControlWord
	bookmarks []pointBookmark
	footnotes []*Footnote

	align       Align
	firstIndent float32
	leftIndent  float32
	rightIndent float32
	spaceBefore float32
	spaceAfter  float32
	lineSpacing float32
}

func newParagraph(owner *BlockList) *Paragraph {
	p := &Paragraph{owner: owner, def: &CharFormat{}}
	if owner.fontSize > 0 {
		p.def.SetFontSize(owner.fontSize)
	}
	return p
}

// Kind implements Block.
func (p *Paragraph) Kind() BlockKind { return BlockParagraph }
func (p *Paragraph) sealed()         {}

// SetText replaces the text. It fails if a format range or directive
// already attached would fall outside the new text.
func (p *Paragraph) SetText(s string) error {
	text := []rune(s)
	n := len(text)
	for _, f := range p.formats {
		if f.end > n {
			return constructionError("set text", "format range [%d,%d) exceeds text length %d", f.start, f.end, n)
		}
	}
	for _, c := range p.controls {
		if c.Position >= n {
			return constructionError("set text", "control word at %d exceeds text length %d", c.Position, n)
		}
	}
	for _, b := range p.bookmarks {
		if b.pos >= n {
			return constructionError("set text", "bookmark at %d exceeds text length %d", b.pos, n)
		}
	}
	for _, fn := range p.footnotes {
		if fn.position >= n {
			return constructionError("set text", "footnote at %d exceeds text length %d", fn.position, n)
		}
	}
	p.text = text
	return nil
}

// Text returns the paragraph text.
func (p *Paragraph) Text() string { return string(p.text) }

// Len returns the text length in characters.
func (p *Paragraph) Len() int { return len(p.text) }

// DefaultCharFormat returns the format applied to the whole paragraph
// beneath all ranges.
func (p *Paragraph) DefaultCharFormat() *CharFormat { return p.def }

// AddCharFormat attaches a format to [start, end). Formats added later
// override earlier ones attribute by attribute where they overlap.
func (p *Paragraph) AddCharFormat(start, end int) (*CharFormat, error) {
	if start < 0 || end < start || end > len(p.text) {
		return nil, constructionError("add char format",
			"invalid range [%d,%d) for text length %d", start, end, len(p.text))
	}
	f := &CharFormat{start: start, end: end}
	p.formats = append(p.formats, f)
	return f, nil
}

// CharFormats returns the attached formats in insertion order.
func (p *Paragraph) CharFormats() []*CharFormat {
	out := make([]*CharFormat, len(p.formats))
	copy(out, p.formats)
	return out
}

// AddControlWord inserts a field after the character at pos. Only header
// and footer paragraphs accept control words.
func (p *Paragraph) AddControlWord(pos int, typ FieldType) error {
	if !p.owner.role.allowControlWord {
		return constructionError("add control word", "control words are not allowed in a %s", p.owner.role.kind)
	}
	if _, ok := fieldInstructions[typ]; !ok {
		return constructionError("add control word", "unknown field type %d", int(typ))
	}
	if pos < 0 || pos >= len(p.text) {
		return constructionError("add control word", "invalid position %d (text length=%d)", pos, len(p.text))
	}
	p.controls = append(p.controls, ControlWord{Position: pos, Type: typ})
	return nil
}

// ControlWords returns the control words in insertion order.
func (p *Paragraph) ControlWords() []ControlWord {
	out := make([]ControlWord, len(p.controls))
	copy(out, p.controls)
	return out
}

// AddBookmark places a bookmark immediately before the character at pos.
func (p *Paragraph) AddBookmark(pos int, name string) error {
	if name == "" {
		return constructionError("add bookmark", "empty bookmark name")
	}
	if pos < 0 || pos >= len(p.text) {
		return constructionError("add bookmark", "invalid position %d (text length=%d)", pos, len(p.text))
	}
	p.bookmarks = append(p.bookmarks, pointBookmark{pos: pos, name: name})
	return nil
}

// AddFootnote anchors a footnote after the character at pos and returns its
// body container.
func (p *Paragraph) AddFootnote(pos int) (*Footnote, error) {
	if !p.owner.role.allowFootnote {
		return nil, constructionError("add footnote", "footnotes are not allowed in a %s", p.owner.role.kind)
	}
	fn, err := newFootnote(pos, len(p.text), p.owner.ctx)
	if err != nil {
		return nil, err
	}
	p.footnotes = append(p.footnotes, fn)
	return fn, nil
}

// Footnotes returns the footnotes in insertion order.
func (p *Paragraph) Footnotes() []*Footnote {
	out := make([]*Footnote, len(p.footnotes))
	copy(out, p.footnotes)
	return out
}

// SetAlignment sets the horizontal alignment.
func (p *Paragraph) SetAlignment(a Align) { p.align = a }

// Alignment returns the horizontal alignment.
func (p *Paragraph) Alignment() Align { return p.align }

// SetIndent sets the first-line, left and right indents in points.
func (p *Paragraph) SetIndent(first, left, right float32) {
	p.firstIndent, p.leftIndent, p.rightIndent = first, left, right
}

// SetSpacing sets the space before and after the paragraph and the line
// spacing, all in points. A zero line spacing means single spacing.
func (p *Paragraph) SetSpacing(before, after, line float32) {
	p.spaceBefore, p.spaceAfter, p.lineSpacing = before, after, line
}

// EffectiveFormat returns the resolved format of the character at i.
func (p *Paragraph) EffectiveFormat(i int) (CharFormat, error) {
	if i < 0 || i >= len(p.text) {
		return CharFormat{}, &LookupError{What: "character", Msg: fmt.Sprintf("index %d outside text length %d", i, len(p.text))}
	}
	return CharFormat{attrs: p.attrsAt(i), start: i, end: i + 1}, nil
}

// attrsAt overlays the default format and every range covering i in
// insertion order.
func (p *Paragraph) attrsAt(i int) charAttrs {
	a := p.def.attrs
	for _, f := range p.formats {
		if f.start <= i && i < f.end {
			a = a.overlay(f.attrs)
		}
	}
	return a
}

// subRun is a maximal slice [start, end) of constant effective format.
type subRun struct {
	start, end int
	attrs      charAttrs
}

func (p *Paragraph) subRuns() []subRun {
	var runs []subRun
	for i := range p.text {
		a := p.attrsAt(i)
		if n := len(runs); n > 0 && runs[n-1].attrs == a {
			runs[n-1].end = i + 1
			continue
		}
		runs = append(runs, subRun{start: i, end: i + 1, attrs: a})
	}
	return runs
}
