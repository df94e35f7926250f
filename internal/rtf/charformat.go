package rtf

import (
	"strconv"
	"strings"
)

// FontStyleFlag is one on/off character style.
type FontStyleFlag uint16

const (
	Bold FontStyleFlag = 1 << iota
	Italic
	Underline
	Strike
	SmallCaps
	Super
	Sub
	Hidden
)

var styleWords = []struct {
	flag FontStyleFlag
	on   string
	off  string
}{
	{Bold, `\b`, `\b0`},
	{Italic, `\i`, `\i0`},
	{Underline, `\ul`, `\ulnone`},
	{Strike, `\strike`, `\strike0`},
	{SmallCaps, `\scaps`, `\scaps0`},
	{Super, `\super`, `\nosupersub`},
	{Sub, `\sub`, `\nosupersub`},
	{Hidden, `\v`, `\v0`},
}

// TwoInOneStyle selects the brackets of a "two lines in one" span.
type TwoInOneStyle int

const (
	TwoInOneNone TwoInOneStyle = iota
	TwoInOneParentheses
	TwoInOneSquareBrackets
	TwoInOneAngleBrackets
	TwoInOneBraces
)

type attrMask uint16

const (
	attrFont attrMask = 1 << iota
	attrAnsiFont
	attrSize
	attrFg
	attrBg
	attrTwoInOne
	attrLink
)

type hyperlink struct {
	target string
	tip    string
	local  bool
}

// charAttrs is the comparable attribute record of a format. Only attributes
// whose bit is in set (or, for styles, in styleSet) are meaningful.
type charAttrs struct {
	set      attrMask
	font     FontRef
	ansiFont FontRef
	halfPts  int
	fg       ColorRef
	bg       ColorRef
	twoInOne TwoInOneStyle
	link     hyperlink

	styleSet FontStyleFlag
	styleOn  FontStyleFlag
}

// overlay returns a with every attribute explicitly set in b copied over.
func (a charAttrs) overlay(b charAttrs) charAttrs {
	if b.set&attrFont != 0 {
		a.font = b.font
	}
	if b.set&attrAnsiFont != 0 {
		a.ansiFont = b.ansiFont
	}
	if b.set&attrSize != 0 {
		a.halfPts = b.halfPts
	}
	if b.set&attrFg != 0 {
		a.fg = b.fg
	}
	if b.set&attrBg != 0 {
		a.bg = b.bg
	}
	if b.set&attrTwoInOne != 0 {
		a.twoInOne = b.twoInOne
	}
	if b.set&attrLink != 0 {
		a.link = b.link
	}
	a.set |= b.set
	a.styleOn = a.styleOn&^b.styleSet | b.styleOn&b.styleSet
	a.styleSet |= b.styleSet
	return a
}

// CharFormat is formatting applied to the half-open character range
// [Start, End) of a paragraph. Only attributes explicitly set on a format
// override those of formats added before it.
type CharFormat struct {
	attrs    charAttrs
	start    int
	end      int
	bookmark string
}

// Start returns the first character index covered.
func (f *CharFormat) Start() int { return f.start }

// End returns the index one past the last character covered.
func (f *CharFormat) End() int { return f.end }

// SetFont sets the font used for all characters.
func (f *CharFormat) SetFont(ref FontRef) *CharFormat {
	f.attrs.font = ref
	f.attrs.set |= attrFont
	return f
}

// SetAnsiFont sets the font used for Latin characters when Font is used
// for Far East text.
func (f *CharFormat) SetAnsiFont(ref FontRef) *CharFormat {
	f.attrs.ansiFont = ref
	f.attrs.set |= attrAnsiFont
	return f
}

// SetFontSize sets the size in points, rounded to half points. Sizes that
// round below half a point leave the size unset.
func (f *CharFormat) SetFontSize(pt float32) *CharFormat {
	hp := int(pt*2 + 0.5)
	if pt <= 0 || hp < 1 {
		return f
	}
	f.attrs.halfPts = hp
	f.attrs.set |= attrSize
	return f
}

// SetFgColor sets the text colour.
func (f *CharFormat) SetFgColor(ref ColorRef) *CharFormat {
	f.attrs.fg = ref
	f.attrs.set |= attrFg
	return f
}

// SetBgColor sets the character shading colour.
func (f *CharFormat) SetBgColor(ref ColorRef) *CharFormat {
	f.attrs.bg = ref
	f.attrs.set |= attrBg
	return f
}

// AddStyle turns style flags on.
func (f *CharFormat) AddStyle(flags FontStyleFlag) *CharFormat {
	f.attrs.styleSet |= flags
	f.attrs.styleOn |= flags
	return f
}

// RemoveStyle turns style flags off, overriding earlier formats.
func (f *CharFormat) RemoveStyle(flags FontStyleFlag) *CharFormat {
	f.attrs.styleSet |= flags
	f.attrs.styleOn &^= flags
	return f
}

// SetTwoInOne renders the range as two lines in one.
func (f *CharFormat) SetTwoInOne(s TwoInOneStyle) *CharFormat {
	f.attrs.twoInOne = s
	f.attrs.set |= attrTwoInOne
	return f
}

// SetLocalHyperlink links the range to a bookmark of the same document.
func (f *CharFormat) SetLocalHyperlink(bookmark, tip string) *CharFormat {
	f.attrs.link = hyperlink{target: bookmark, tip: tip, local: true}
	f.attrs.set |= attrLink
	return f
}

// SetHyperlink links the range to an external URL.
func (f *CharFormat) SetHyperlink(url string) *CharFormat {
	f.attrs.link = hyperlink{target: url}
	f.attrs.set |= attrLink
	return f
}

// SetBookmark places a bookmark around the range. Bookmarks are not
// overlaid: each format contributes its own start and end markers. On a
// paragraph's default format the bookmark spans the whole text.
func (f *CharFormat) SetBookmark(name string) *CharFormat {
	f.bookmark = name
	return f
}

// Bookmark returns the bookmark name, if any.
func (f *CharFormat) Bookmark() string { return f.bookmark }

// Font returns the font and whether it was set.
func (f *CharFormat) Font() (FontRef, bool) {
	return f.attrs.font, f.attrs.set&attrFont != 0
}

// AnsiFont returns the ANSI font and whether it was set.
func (f *CharFormat) AnsiFont() (FontRef, bool) {
	return f.attrs.ansiFont, f.attrs.set&attrAnsiFont != 0
}

// FontSize returns the size in points and whether it was set.
func (f *CharFormat) FontSize() (float32, bool) {
	return float32(f.attrs.halfPts) / 2, f.attrs.set&attrSize != 0
}

// FgColor returns the text colour and whether it was set.
func (f *CharFormat) FgColor() (ColorRef, bool) {
	return f.attrs.fg, f.attrs.set&attrFg != 0
}

// BgColor returns the shading colour and whether it was set.
func (f *CharFormat) BgColor() (ColorRef, bool) {
	return f.attrs.bg, f.attrs.set&attrBg != 0
}

// HasStyle reports whether all of flags are on.
func (f *CharFormat) HasStyle(flags FontStyleFlag) bool {
	return f.attrs.styleOn&flags == flags
}

// TwoInOne returns the two-in-one style and whether it was set.
func (f *CharFormat) TwoInOne() (TwoInOneStyle, bool) {
	return f.attrs.twoInOne, f.attrs.set&attrTwoInOne != 0
}

// Hyperlink returns the link target, whether it is a local bookmark, and
// whether a link was set at all.
func (f *CharFormat) Hyperlink() (target string, local, ok bool) {
	return f.attrs.link.target, f.attrs.link.local, f.attrs.set&attrLink != 0
}

// writeControls emits the character control words of a resolved format.
func (a charAttrs) writeControls(sb *strings.Builder, res *ResourceTable) {
	if a.set&attrFont != 0 {
		res.checkFont(a.font)
		sb.WriteString(`\f`)
		sb.WriteString(strconv.Itoa(a.font.idx))
	}
	if a.set&attrAnsiFont != 0 {
		res.checkFont(a.ansiFont)
		sb.WriteString(`\af`)
		sb.WriteString(strconv.Itoa(a.ansiFont.idx))
	}
	if a.set&attrSize != 0 {
		sb.WriteString(`\fs`)
		sb.WriteString(strconv.Itoa(a.halfPts))
	}
	if a.set&attrFg != 0 {
		res.checkColor(a.fg)
		sb.WriteString(`\cf`)
		sb.WriteString(strconv.Itoa(a.fg.idx))
	}
	if a.set&attrBg != 0 {
		res.checkColor(a.bg)
		sb.WriteString(`\chcbpat`)
		sb.WriteString(strconv.Itoa(a.bg.idx))
	}
	for _, sw := range styleWords {
		if a.styleSet&sw.flag == 0 {
			continue
		}
		switch {
		case a.styleOn&sw.flag != 0:
			sb.WriteString(sw.on)
		case sw.flag&(Super|Sub) != 0 && a.styleOn&(Super|Sub) != 0:
			// \nosupersub would cancel the other one
		default:
			sb.WriteString(sw.off)
		}
	}
	if a.set&attrTwoInOne != 0 && a.twoInOne != TwoInOneNone {
		sb.WriteString(`\twoinone`)
		sb.WriteString(strconv.Itoa(int(a.twoInOne)))
	}
}
