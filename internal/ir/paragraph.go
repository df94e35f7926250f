package ir

// Paragraph represents a text paragraph. Positions count Unicode code
// points of Text.
type Paragraph struct {
	Text      string         `json:"text" yaml:"text"`
	Style     ParagraphStyle `json:"style,omitempty" yaml:"style,omitempty"`
	Default   *TextStyle     `json:"default,omitempty" yaml:"default,omitempty"`
	Formats   []Format       `json:"formats,omitempty" yaml:"formats,omitempty"`
	Controls  []ControlWord  `json:"controls,omitempty" yaml:"controls,omitempty"`
	Bookmarks []Bookmark     `json:"bookmarks,omitempty" yaml:"bookmarks,omitempty"`
	Footnotes []Footnote     `json:"footnotes,omitempty" yaml:"footnotes,omitempty"`
}

// ParagraphStyle contains paragraph-level settings. Lengths are in points.
type ParagraphStyle struct {
	Alignment   string  `json:"alignment,omitempty" yaml:"alignment,omitempty"` // left, center, right, justify, distributed
	FirstIndent float32 `json:"first_indent,omitempty" yaml:"first_indent,omitempty"`
	LeftIndent  float32 `json:"left_indent,omitempty" yaml:"left_indent,omitempty"`
	RightIndent float32 `json:"right_indent,omitempty" yaml:"right_indent,omitempty"`
	SpaceBefore float32 `json:"space_before,omitempty" yaml:"space_before,omitempty"`
	SpaceAfter  float32 `json:"space_after,omitempty" yaml:"space_after,omitempty"`
	LineSpacing float32 `json:"line_spacing,omitempty" yaml:"line_spacing,omitempty"`
}

// TextStyle contains character formatting. Font names refer to
// Document.Fonts; colours are names from Document.Colors or literal values.
type TextStyle struct {
	Font          string  `json:"font,omitempty" yaml:"font,omitempty"`
	AnsiFont      string  `json:"ansi_font,omitempty" yaml:"ansi_font,omitempty"`
	Size          float32 `json:"size,omitempty" yaml:"size,omitempty"`
	Color         string  `json:"color,omitempty" yaml:"color,omitempty"`
	Background    string  `json:"background,omitempty" yaml:"background,omitempty"`
	Bold          bool    `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic        bool    `json:"italic,omitempty" yaml:"italic,omitempty"`
	Underline     bool    `json:"underline,omitempty" yaml:"underline,omitempty"`
	Strikethrough bool    `json:"strikethrough,omitempty" yaml:"strikethrough,omitempty"`
	SmallCaps     bool    `json:"small_caps,omitempty" yaml:"small_caps,omitempty"`
	Superscript   bool    `json:"superscript,omitempty" yaml:"superscript,omitempty"`
	Subscript     bool    `json:"subscript,omitempty" yaml:"subscript,omitempty"`
	Hidden        bool    `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	TwoInOne      string  `json:"two_in_one,omitempty" yaml:"two_in_one,omitempty"` // parentheses, square, angle, braces
	Link          string  `json:"link,omitempty" yaml:"link,omitempty"`             // external URL
	LocalLink     string  `json:"local_link,omitempty" yaml:"local_link,omitempty"` // bookmark name
	LinkTip       string  `json:"link_tip,omitempty" yaml:"link_tip,omitempty"`
	Bookmark      string  `json:"bookmark,omitempty" yaml:"bookmark,omitempty"`
}

// Format applies a TextStyle to the characters [Start, End).
type Format struct {
	Start     int `json:"start" yaml:"start"`
	End       int `json:"end" yaml:"end"`
	TextStyle `yaml:",inline"`
}

// ControlWord inserts a field (page, num_pages, date, time, section_pages)
// after the character at Position. Only header and footer paragraphs
// accept them.
type ControlWord struct {
	Position int    `json:"position" yaml:"position"`
	Field    string `json:"field" yaml:"field"`
}

// Bookmark marks the position before the character at Position.
type Bookmark struct {
	Position int    `json:"position" yaml:"position"`
	Name     string `json:"name" yaml:"name"`
}

// Footnote is anchored after the character at Position.
type Footnote struct {
	Position int     `json:"position" yaml:"position"`
	Content  []Block `json:"content" yaml:"content"`
}

// NewParagraph creates a new paragraph with the given text.
func NewParagraph(text string) *Paragraph {
	return &Paragraph{Text: text}
}

// AddFormat styles the characters [start, end).
func (p *Paragraph) AddFormat(start, end int, style TextStyle) {
	p.Formats = append(p.Formats, Format{Start: start, End: end, TextStyle: style})
}

// AddFootnote anchors a footnote with a single text paragraph.
func (p *Paragraph) AddFootnote(pos int, text string) {
	p.Footnotes = append(p.Footnotes, Footnote{
		Position: pos,
		Content:  []Block{ParagraphBlock(NewParagraph(text))},
	})
}

// AddControlWord inserts a field after the character at pos.
func (p *Paragraph) AddControlWord(pos int, field string) {
	p.Controls = append(p.Controls, ControlWord{Position: pos, Field: field})
}

// AddBookmark marks the position before the character at pos.
func (p *Paragraph) AddBookmark(pos int, name string) {
	p.Bookmarks = append(p.Bookmarks, Bookmark{Position: pos, Name: name})
}

// IsEmpty returns true if the paragraph has no text content.
func (p *Paragraph) IsEmpty() bool {
	return p.Text == ""
}
