package rtf

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// hex digits per line of embedded picture data
const pictLineWidth = 128

var alignWords = map[Align]string{
	AlignLeft:         `\ql`,
	AlignRight:        `\qr`,
	AlignCenter:       `\qc`,
	AlignFullyJustify: `\qj`,
	AlignDistributed:  `\qd`,
}

var rowAlignWords = map[Align]string{
	AlignLeft:   `\trql`,
	AlignRight:  `\trqr`,
	AlignCenter: `\trqc`,
}

var valignWords = map[VAlign]string{
	VAlignTop:    `\clvertalt`,
	VAlignMiddle: `\clvertalc`,
	VAlignBottom: `\clvertalb`,
}

var borderSideWords = [4]string{
	Top:    `\clbrdrt`,
	Right:  `\clbrdrr`,
	Bottom: `\clbrdrb`,
	Left:   `\clbrdrl`,
}

// placeholder results shown by readers that do not update fields
var fieldResults = map[FieldType]string{
	FieldPage:         "1",
	FieldNumPages:     "1",
	FieldSectionPages: "1",
}

// renderer walks a document tree and writes its markup. It holds no state
// besides the output buffer, so rendering the same tree twice yields the
// same text.
type renderer struct {
	sb  strings.Builder
	res *ResourceTable
}

func (r *renderer) word(w string, n int) {
	r.sb.WriteString(w)
	r.sb.WriteString(strconv.Itoa(n))
}

// scope returns the opening and closing markup of a container.
func scope(k roleKind) (open, close string) {
	switch k {
	case roleHeader:
		return `{\header\pard\plain` + "\n", "}\n"
	case roleFooter:
		return `{\footer\pard\plain` + "\n", "}\n"
	case roleSectionFooter:
		return `{\footerr\ltrpar\pard\plain` + "\n", "}\n"
	case roleFootnote:
		return `{\super\chftn}{\footnote\pard\plain{\super\chftn} `, "}"
	default:
		return "", ""
	}
}

func (r *renderer) blockList(bl *BlockList) {
	open, close := scope(bl.role.kind)
	r.sb.WriteString(open)
	for i, b := range bl.blocks {
		r.block(bl.role, b, i == len(bl.blocks)-1)
	}
	r.sb.WriteString(close)
}

// block renders one block. Body and section paragraphs always end with
// \par; the last block of any other container leaves the paragraph open so
// the enclosing \cell or group close ends it.
func (r *renderer) block(role containerRole, b Block, last bool) {
	var f *blockFlags
	switch v := b.(type) {
	case *Paragraph:
		f = &v.blockFlags
	case *Table:
		f = &v.blockFlags
	case *Image:
		f = &v.blockFlags
	case *Section:
		f = nil
	case *Footnote:
		panic(fmt.Sprintf("rtf: footnote stored as a block of a %s", role.kind))
	default:
		panic(fmt.Sprintf("rtf: unknown block type %T", b))
	}
	if f != nil {
		if f.newPage && role.allowPageBreak {
			r.sb.WriteString(`\page` + "\n")
		}
		if f.newPara && role.allowParaBreak {
			r.sb.WriteString(`\par` + "\n")
		}
	}

	endPar := !last || role.kind == roleBody || role.kind == roleSection
	switch v := b.(type) {
	case *Paragraph:
		r.paragraph(v, role.kind == roleCell, endPar)
	case *Table:
		r.table(v)
	case *Image:
		r.image(v, role.kind == roleCell, endPar)
	case *Section:
		r.section(v)
	}
}

func (r *renderer) paraProps(inTable bool, align Align) {
	r.sb.WriteString(`\pard\plain`)
	if inTable {
		r.sb.WriteString(`\intbl`)
	}
	r.sb.WriteString(alignWords[align])
}

func (r *renderer) paragraph(p *Paragraph, inTable, endPar bool) {
	r.paraProps(inTable, p.align)
	if p.firstIndent != 0 || p.leftIndent != 0 || p.rightIndent != 0 {
		r.word(`\fi`, twips(p.firstIndent))
		r.word(`\li`, twips(p.leftIndent))
		r.word(`\ri`, twips(p.rightIndent))
	}
	if p.spaceBefore != 0 {
		r.word(`\sb`, twips(p.spaceBefore))
	}
	if p.spaceAfter != 0 {
		r.word(`\sa`, twips(p.spaceAfter))
	}
	if p.lineSpacing != 0 {
		r.word(`\sl`, twips(p.lineSpacing))
		r.sb.WriteString(`\slmult0`)
	}

	before, after := p.markers()
	runs := p.subRuns()
	if len(runs) == 0 {
		r.sb.WriteString(strings.Join(before[0], ""))
	}
	for k, run := range runs {
		r.openRun(run.attrs)
		for i := run.start; i < run.end; i++ {
			for _, m := range before[i] {
				r.sb.WriteString(m)
			}
			writeEscapedRune(&r.sb, p.text[i])
			for _, a := range after[i] {
				r.anchor(a)
			}
		}
		if k == len(runs)-1 {
			for _, m := range before[len(p.text)] {
				r.sb.WriteString(m)
			}
		}
		r.closeRun(run.attrs)
	}
	if endPar {
		r.sb.WriteString(`\par`)
	}
	r.sb.WriteByte('\n')
}

// anchorItem is something emitted right after a character: a field or a
// footnote.
type anchorItem struct {
	field    FieldType
	footnote *Footnote
}

// markers collects bookmark markup emitted before each character (index
// len(text) meaning after the last one) and the fields and footnotes
// emitted after each character. Ends precede starts at the same index.
func (p *Paragraph) markers() (before [][]string, after [][]anchorItem) {
	n := len(p.text)
	ends := make([][]string, n+1)
	starts := make([][]string, n+1)
	for _, f := range p.formats {
		if f.bookmark == "" {
			continue
		}
		s, e := bookmarkStart(f.bookmark), bookmarkEnd(f.bookmark)
		if f.start == f.end {
			starts[f.start] = append(starts[f.start], s+e)
			continue
		}
		starts[f.start] = append(starts[f.start], s)
		ends[f.end] = append(ends[f.end], e)
	}
	for _, b := range p.bookmarks {
		starts[b.pos] = append(starts[b.pos], bookmarkStart(b.name)+bookmarkEnd(b.name))
	}
	if name := p.def.bookmark; name != "" {
		// outermost: first start at 0, last end at n
		if n == 0 {
			starts[0] = append([]string{bookmarkStart(name) + bookmarkEnd(name)}, starts[0]...)
		} else {
			starts[0] = append([]string{bookmarkStart(name)}, starts[0]...)
			ends[n] = append(ends[n], bookmarkEnd(name))
		}
	}
	before = make([][]string, n+1)
	for i := range before {
		before[i] = append(ends[i], starts[i]...)
	}

	after = make([][]anchorItem, n)
	for _, c := range p.controls {
		after[c.Position] = append(after[c.Position], anchorItem{field: c.Type})
	}
	for _, fn := range p.footnotes {
		after[fn.position] = append(after[fn.position], anchorItem{footnote: fn})
	}
	return before, after
}

// fieldArg quotes a field instruction argument. Inner quotes become the
// field escape \" which is written \\" in RTF text.
func fieldArg(s string) string {
	return `"` + strings.ReplaceAll(escapeString(s), `"`, `\\"`) + `"`
}

func bookmarkStart(name string) string {
	return `{\*\bkmkstart ` + escapeString(name) + `}`
}

func bookmarkEnd(name string) string {
	return `{\*\bkmkend ` + escapeString(name) + `}`
}

func (r *renderer) anchor(a anchorItem) {
	if a.footnote != nil {
		r.blockList(a.footnote.BlockList)
		return
	}
	instr, ok := fieldInstructions[a.field]
	if !ok {
		panic(fmt.Sprintf("rtf: unknown field type %d", int(a.field)))
	}
	r.sb.WriteString(`{\field{\*\fldinst ` + instr + `}{\fldrslt ` + fieldResults[a.field] + `}}`)
}

func (r *renderer) openRun(a charAttrs) {
	if a.set&attrLink != 0 && a.link.target != "" {
		r.sb.WriteString(`{\field{\*\fldinst HYPERLINK `)
		if a.link.local {
			r.sb.WriteString(`\\l `)
		}
		r.sb.WriteString(fieldArg(a.link.target))
		if a.link.tip != "" {
			r.sb.WriteString(` \\o ` + fieldArg(a.link.tip))
		}
		r.sb.WriteString(`}{\fldrslt`)
	}
	r.sb.WriteByte('{')
	n := r.sb.Len()
	a.writeControls(&r.sb, r.res)
	if r.sb.Len() > n {
		r.sb.WriteByte(' ')
	}
}

func (r *renderer) closeRun(a charAttrs) {
	r.sb.WriteByte('}')
	if a.set&attrLink != 0 && a.link.target != "" {
		r.sb.WriteString("}}")
	}
}

func (r *renderer) border(side Direction, b Border) {
	w, ok := borderWords[b.Style]
	if !ok {
		return
	}
	r.sb.WriteString(borderSideWords[side])
	r.sb.WriteString(w)
	r.word(`\brdrw`, twips(b.Width))
	if b.Color.idx != 0 {
		r.res.checkColor(b.Color)
		r.word(`\brdrcf`, b.Color.idx)
	}
}

func (r *renderer) table(t *Table) {
	for i := 0; i < t.rows; i++ {
		r.sb.WriteString(`\trowd`)
		r.word(`\trgaph`, twips(t.margins[Left]))
		r.sb.WriteString(`\trleft0`)
		r.sb.WriteString(rowAlignWords[t.align])
		if t.rowHeights[i] > 0 {
			r.word(`\trrh`, twips(t.rowHeights[i]))
		}
		for _, pad := range []struct {
			d     Direction
			word  string
			units string
		}{
			{Top, `\trpaddt`, `\trpaddft3`},
			{Left, `\trpaddl`, `\trpaddfl3`},
			{Bottom, `\trpaddb`, `\trpaddfb3`},
			{Right, `\trpaddr`, `\trpaddfr3`},
		} {
			if t.margins[pad.d] != 0 {
				r.word(pad.word, twips(t.margins[pad.d]))
				r.sb.WriteString(pad.units)
			}
		}
		r.sb.WriteByte('\n')

		var right float32
		for j := 0; j < t.cols; j++ {
			s := t.cells[i][j].span()
			owner := t.cells[s.row][s.col]
			if s.rowSpan > 1 {
				if i == s.row {
					r.sb.WriteString(`\clvmgf`)
				} else {
					r.sb.WriteString(`\clvmrg`)
				}
			}
			if s.colSpan > 1 {
				if j == s.col {
					r.sb.WriteString(`\clmgf`)
				} else {
					r.sb.WriteString(`\clmrg`)
				}
			}
			r.sb.WriteString(valignWords[owner.valign])
			if bg, ok := t.background(owner); ok {
				r.res.checkColor(bg)
				r.word(`\clcbpat`, bg.idx)
			}
			if i == s.row {
				r.border(Top, t.edgeBorder(owner, s, Top))
			}
			if j == s.col {
				r.border(Left, t.edgeBorder(owner, s, Left))
			}
			if i == s.row+s.rowSpan-1 {
				r.border(Bottom, t.edgeBorder(owner, s, Bottom))
			}
			if j == s.col+s.colSpan-1 {
				r.border(Right, t.edgeBorder(owner, s, Right))
			}
			right += t.colWidths[j]
			r.word(`\cellx`, twips(right))
			r.sb.WriteByte('\n')
		}

		for j := 0; j < t.cols; j++ {
			c := t.cells[i][j]
			if !c.owning() || c.Len() == 0 {
				r.sb.WriteString(`\pard\intbl\cell` + "\n")
				continue
			}
			r.blockList(c.BlockList)
			r.sb.WriteString(`\cell` + "\n")
		}
		r.sb.WriteString(`\row` + "\n")
	}
}

func (r *renderer) image(img *Image, inTable, endPar bool) {
	r.paraProps(inTable, img.align)
	blip := `\jpegblip`
	if img.data.Type == ImagePNG {
		blip = `\pngblip`
	}
	w, h := img.Size()
	r.sb.WriteString(`{\pict` + blip)
	r.word(`\picw`, img.data.Width)
	r.word(`\pich`, img.data.Height)
	r.word(`\picwgoal`, twips(w))
	r.word(`\pichgoal`, twips(h))
	r.sb.WriteByte('\n')

	enc := hex.EncodeToString(img.data.Data)
	for len(enc) > pictLineWidth {
		r.sb.WriteString(enc[:pictLineWidth])
		r.sb.WriteByte('\n')
		enc = enc[pictLineWidth:]
	}
	r.sb.WriteString(enc)
	r.sb.WriteString("\n}")
	if endPar {
		r.sb.WriteString(`\par`)
	}
	r.sb.WriteByte('\n')
}

func (r *renderer) section(s *Section) {
	r.sb.WriteString(`\sect\sectd`)
	if s.opts.OverridePage {
		if s.opts.Orientation == Landscape {
			r.sb.WriteString(`\lndscpsxn`)
		}
		w, h := pageTwips(s.opts.PaperSize, s.opts.Orientation)
		r.word(`\pgwsxn`, w)
		r.word(`\pghsxn`, h)
	}
	r.sb.WriteByte('\n')
	if s.footer.Len() > 0 {
		r.blockList(s.footer)
	}
	r.blockList(s.BlockList)
}
