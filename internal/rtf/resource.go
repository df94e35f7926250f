package rtf

import (
	"fmt"
	"strconv"
	"strings"
)

// FontRef refers to an entry of a document's font table.
// The zero value is the document default font.
type FontRef struct {
	idx int
}

// Index returns the position of the font in the font table.
func (f FontRef) Index() int { return f.idx }

// ColorRef refers to an entry of a document's colour table.
// The zero value is the reader's "auto" colour.
type ColorRef struct {
	idx int
}

// Index returns the position of the colour in the colour table.
// Index 0 is the "auto" colour; created colours start at 1.
func (c ColorRef) Index() int { return c.idx }

type fontEntry struct {
	name    string
	charset int
}

// ResourceTable deduplicates the fonts and colours used anywhere in a document.
// Indices are assigned once per distinct value in first-seen order and never
// change. There is no removal.
type ResourceTable struct {
	fonts     []fontEntry
	fontIndex map[fontEntry]int

	colors     []Color
	colorIndex map[Color]int
}

// NewResourceTable returns a table whose font 0 is defaultFont.
func NewResourceTable(defaultFont string) *ResourceTable {
	t := &ResourceTable{
		fontIndex:  make(map[fontEntry]int),
		colorIndex: make(map[Color]int),
	}
	t.CreateFont(defaultFont)
	return t
}

// CreateFont interns a font name with the default charset.
func (t *ResourceTable) CreateFont(name string) FontRef {
	return t.CreateFontCharset(name, 0)
}

// CreateFontCharset interns a font name with an explicit \fcharset value,
// e.g. 136 for Big5 or 129 for Hangul. Semicolons end a font table entry
// and are removed from name.
func (t *ResourceTable) CreateFontCharset(name string, charset int) FontRef {
	key := fontEntry{name: strings.ReplaceAll(name, ";", ""), charset: charset}
	if idx, ok := t.fontIndex[key]; ok {
		return FontRef{idx: idx}
	}
	idx := len(t.fonts)
	t.fonts = append(t.fonts, key)
	t.fontIndex[key] = idx
	return FontRef{idx: idx}
}

// CreateColor interns a colour.
func (t *ResourceTable) CreateColor(c Color) ColorRef {
	if idx, ok := t.colorIndex[c]; ok {
		return ColorRef{idx: idx + 1}
	}
	idx := len(t.colors)
	t.colors = append(t.colors, c)
	t.colorIndex[c] = idx
	return ColorRef{idx: idx + 1}
}

// Font returns the name of the referenced font.
func (t *ResourceTable) Font(ref FontRef) (string, error) {
	if ref.idx < 0 || ref.idx >= len(t.fonts) {
		return "", &LookupError{What: "font", Msg: fmt.Sprintf("unknown index %d", ref.idx)}
	}
	return t.fonts[ref.idx].name, nil
}

// Color returns the referenced colour. The "auto" colour has no value
// and fails the lookup.
func (t *ResourceTable) Color(ref ColorRef) (Color, error) {
	if ref.idx < 1 || ref.idx > len(t.colors) {
		return Color{}, &LookupError{What: "colour", Msg: fmt.Sprintf("unknown index %d", ref.idx)}
	}
	return t.colors[ref.idx-1], nil
}

// FontCount returns the number of distinct fonts.
func (t *ResourceTable) FontCount() int { return len(t.fonts) }

// ColorCount returns the number of distinct colours, not counting "auto".
func (t *ResourceTable) ColorCount() int { return len(t.colors) }

func (t *ResourceTable) checkFont(ref FontRef) {
	if _, err := t.Font(ref); err != nil {
		panic(err)
	}
}

func (t *ResourceTable) checkColor(ref ColorRef) {
	if ref.idx == 0 {
		return
	}
	if _, err := t.Color(ref); err != nil {
		panic(err)
	}
}

// writeTo emits the font and colour tables.
func (t *ResourceTable) writeTo(sb *strings.Builder) {
	sb.WriteString(`{\fonttbl`)
	for i, f := range t.fonts {
		sb.WriteString(`{\f`)
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(`\fnil\fcharset`)
		sb.WriteString(strconv.Itoa(f.charset))
		sb.WriteByte(' ')
		writeEscaped(sb, f.name)
		sb.WriteString(";}")
	}
	sb.WriteString("}\n")

	sb.WriteString(`{\colortbl ;`)
	for _, c := range t.colors {
		fmt.Fprintf(sb, `\red%d\green%d\blue%d;`, c.R, c.G, c.B)
	}
	sb.WriteString("}\n")
}
