// Package rtf builds documents as a tree of blocks and renders them as RTF.
//
// A Document owns one ResourceTable and three containers: the body, the
// page header and the page footer. Blocks are only created through the Add*
// methods of their container; formats, directives and merges are attached
// afterwards. Render walks the tree without modifying it.
package rtf

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// DefaultFontName is font 0 when no other default font is configured.
const DefaultFontName = "Times New Roman"

// DefaultMargin is the page margin in points on every side.
const DefaultMargin = 72

// Info is the document summary written into the info group. Empty fields
// are omitted.
type Info struct {
	Title    string
	Subject  string
	Author   string
	Company  string
	Keywords string
	Comment  string
	Created  time.Time
}

// Options configures a new document.
type Options struct {
	PaperSize   PaperSize
	Orientation Orientation
	Lcid        Lcid
	DefaultFont string
	// Margins in points; nil means DefaultMargin on every side.
	Margins *Margins
	// Loader resolves AddImage paths; nil means FileLoader.
	Loader ImageLoader
	// ImageDPI converts image pixels to points; 0 means 96.
	ImageDPI float64
}

// Document is the root of the tree. The embedded BlockList is the body.
type Document struct {
	*BlockList

	ctx     *docContext
	header  *BlockList
	footer  *BlockList
	paper   PaperSize
	orient  Orientation
	lcid    Lcid
	margins Margins
	info    Info
}

// NewDocument returns an empty document with the default font and margins.
func NewDocument(paper PaperSize, orient Orientation, lcid Lcid) *Document {
	return NewDocumentWithOptions(Options{PaperSize: paper, Orientation: orient, Lcid: lcid})
}

// NewDocumentWithOptions returns an empty document.
func NewDocumentWithOptions(opts Options) *Document {
	font := opts.DefaultFont
	if font == "" {
		font = DefaultFontName
	}
	loader := opts.Loader
	if loader == nil {
		loader = FileLoader
	}
	lcid := opts.Lcid
	if lcid == 0 {
		lcid = LcidEnglish
	}
	ctx := &docContext{
		res:      NewResourceTable(font),
		loader:   loader,
		imageDPI: opts.ImageDPI,
	}
	d := &Document{
		BlockList: newBlockList(bodyRole, ctx),
		ctx:       ctx,
		header:    newBlockList(headerRole, ctx),
		footer:    newBlockList(footerRole, ctx),
		paper:     opts.PaperSize,
		orient:    opts.Orientation,
		lcid:      lcid,
		margins:   Margins{DefaultMargin, DefaultMargin, DefaultMargin, DefaultMargin},
	}
	if opts.Margins != nil {
		d.margins = *opts.Margins
	}
	return d
}

// CreateFont interns a font and returns its reference.
func (d *Document) CreateFont(name string) FontRef { return d.ctx.res.CreateFont(name) }

// CreateFontCharset interns a font with an explicit charset.
func (d *Document) CreateFontCharset(name string, charset int) FontRef {
	return d.ctx.res.CreateFontCharset(name, charset)
}

// CreateColor interns a colour and returns its reference.
func (d *Document) CreateColor(c Color) ColorRef { return d.ctx.res.CreateColor(c) }

// Resources returns the font and colour table shared by all containers.
func (d *Document) Resources() *ResourceTable { return d.ctx.res }

// Header returns the container repeated at the top of every page.
func (d *Document) Header() *BlockList { return d.header }

// Footer returns the container repeated at the bottom of every page.
func (d *Document) Footer() *BlockList { return d.footer }

// SetMargins sets the page margins in points.
func (d *Document) SetMargins(m Margins) { d.margins = m }

// SetMargin sets the page margin on one side.
func (d *Document) SetMargin(dir Direction, pt float32) { d.margins[dir] = pt }

// Margins returns the page margins in points.
func (d *Document) Margins() Margins { return d.margins }

// SetInfo replaces the document summary.
func (d *Document) SetInfo(info Info) { d.info = info }

// Info returns the document summary.
func (d *Document) Info() Info { return d.info }

// PaperSize returns the paper size.
func (d *Document) PaperSize() PaperSize { return d.paper }

// Orientation returns the page orientation.
func (d *Document) Orientation() Orientation { return d.orient }

// Lcid returns the default language.
func (d *Document) Lcid() Lcid { return d.lcid }

// Render returns the RTF text of the document. It does not modify the
// document and returns the same text until the document is changed.
func (d *Document) Render() string {
	r := &renderer{res: d.ctx.res}
	sb := &r.sb

	fmt.Fprintf(sb, `{\rtf1\ansi\ansicpg1252\deff0\deflang%d\deflangfe%d`+"\n", d.lcid, d.lcid)
	d.ctx.res.writeTo(sb)
	d.writeInfo(sb)

	w, h := pageTwips(d.paper, d.orient)
	fmt.Fprintf(sb, `\paperw%d\paperh%d\margl%d\margr%d\margt%d\margb%d`,
		w, h, twips(d.margins[Left]), twips(d.margins[Right]),
		twips(d.margins[Top]), twips(d.margins[Bottom]))
	if d.orient == Landscape {
		sb.WriteString(`\landscape`)
	}
	sb.WriteByte('\n')

	if d.header.Len() > 0 {
		r.blockList(d.header)
	}
	r.blockList(d.BlockList)
	if d.footer.Len() > 0 {
		r.blockList(d.footer)
	}
	sb.WriteString("}\n")
	return sb.String()
}

func (d *Document) writeInfo(sb *strings.Builder) {
	fields := []struct {
		word  string
		value string
	}{
		{`\title`, d.info.Title},
		{`\subject`, d.info.Subject},
		{`\author`, d.info.Author},
		{`\company`, d.info.Company},
		{`\keywords`, d.info.Keywords},
		{`\doccomm`, d.info.Comment},
	}
	var body strings.Builder
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		body.WriteString(`{` + f.word + ` `)
		writeEscaped(&body, f.value)
		body.WriteString(`}`)
	}
	if t := d.info.Created; !t.IsZero() {
		fmt.Fprintf(&body, `{\creatim\yr%d\mo%d\dy%d\hr%d\min%d}`,
			t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
	}
	if body.Len() == 0 {
		return
	}
	sb.WriteString(`{\info`)
	sb.WriteString(body.String())
	sb.WriteString("}\n")
}

// WriteTo writes the rendered document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.Render())
	return int64(n), err
}

// Save writes the rendered document to path.
func (d *Document) Save(path string) error {
	if err := os.WriteFile(path, []byte(d.Render()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
