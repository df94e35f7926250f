// Package demo rebuilds the classic feature tour of the document API: fonts,
// character formatting, footnotes, header and footer fields, images, tables,
// two-in-one text, hyperlinks, page breaks and bookmarks.
package demo

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"path/filepath"

	"github.com/roboco-io/rtfwriter/internal/imageload"
	"github.com/roboco-io/rtfwriter/internal/rtf"
)

// Demo adds one feature demonstration to a document.
type Demo interface {
	// Name returns the demo identifier (e.g., "demo3").
	Name() string

	// Description returns a one-line summary.
	Description() string

	// Build appends the demo's blocks to doc.
	Build(doc *rtf.Document, env *Env) error
}

// Env holds the fonts and colours shared by all demos.
type Env struct {
	// ImagePath is the picture of the image demo; empty means a generated
	// PNG.
	ImagePath string

	Times       rtf.FontRef
	Courier     rtf.FontRef
	Red         rtf.ColorRef
	Blue        rtf.ColorRef
	White       rtf.ColorRef
	TableHeader rtf.ColorRef
	TableRow    rtf.ColorRef
	TableRowAlt rtf.ColorRef
}

// NewEnv interns the shared resources in doc.
func NewEnv(doc *rtf.Document, imagePath string) *Env {
	return &Env{
		ImagePath:   imagePath,
		Times:       doc.CreateFont("Times New Roman"),
		Courier:     doc.CreateFont("Courier New"),
		Red:         doc.CreateColor(rtf.MustParseColor("ff0000")),
		Blue:        doc.CreateColor(rtf.RGB(0, 0, 255)),
		White:       doc.CreateColor(rtf.RGB(255, 255, 255)),
		TableHeader: doc.CreateColor(rtf.MustParseColor("76923C")),
		TableRow:    doc.CreateColor(rtf.MustParseColor("D6E3BC")),
		TableRowAlt: doc.CreateColor(rtf.MustParseColor("FFFFFF")),
	}
}

// NewDocument returns the demo page setup: A4 landscape, English.
func NewDocument(loader rtf.ImageLoader) *rtf.Document {
	return rtf.NewDocumentWithOptions(rtf.Options{
		PaperSize:   rtf.PaperA4,
		Orientation: rtf.Landscape,
		Lcid:        rtf.LcidEnglish,
		Loader:      loader,
	})
}

// Run builds the named demos in name order; no names means all of them.
func Run(r *Registry, doc *rtf.Document, env *Env, names ...string) error {
	demos, err := r.Select(names...)
	if err != nil {
		return err
	}
	for _, d := range demos {
		if err := d.Build(doc, env); err != nil {
			return fmt.Errorf("%s: %w", d.Name(), err)
		}
	}
	return nil
}

type demoFunc struct {
	name  string
	desc  string
	build func(doc *rtf.Document, env *Env) error
}

func (d demoFunc) Name() string        { return d.name }
func (d demoFunc) Description() string { return d.desc }
func (d demoFunc) Build(doc *rtf.Document, env *Env) error {
	return d.build(doc, env)
}

var builtins = []Demo{
	demoFunc{"demo1", "Font setting", fonts},
	demoFunc{"demo2", "Character formatting", characterFormatting},
	demoFunc{"demo3", "Footnote", footnote},
	demoFunc{"demo4", "Header and footer", headerFooter},
	demoFunc{"demo5", "Image", picture},
	demoFunc{"demo6", "Table", table},
	demoFunc{"demo7", "Two in one format", twoInOne},
	demoFunc{"demo7.1", "Hyperlink", hyperlink},
	demoFunc{"demo8", "New page", newPage},
	demoFunc{"demo9", "Bookmark", bookmark},
}

func fonts(doc *rtf.Document, env *Env) error {
	par := doc.AddParagraph()
	par.SetAlignment(rtf.AlignLeft)
	par.DefaultCharFormat().SetFont(env.Times).SetAnsiFont(env.Courier)
	return par.SetText("Testing\n")
}

func characterFormatting(doc *rtf.Document, env *Env) error {
	par := doc.AddParagraph()
	par.DefaultCharFormat().SetFont(env.Times)
	if err := par.SetText("Demo2: Character Formatting"); err != nil {
		return err
	}
	f, err := par.AddCharFormat(4, 8)
	if err != nil {
		return err
	}
	f.SetFgColor(env.Blue).SetBgColor(env.Red).SetFontSize(18)

	f, err = par.AddCharFormat(8, 10)
	if err != nil {
		return err
	}
	f.AddStyle(rtf.Bold | rtf.Underline).SetFont(env.Courier)
	return nil
}

func footnote(doc *rtf.Document, _ *Env) error {
	par := doc.AddParagraph()
	if err := par.SetText("Demo3: Footnote"); err != nil {
		return err
	}
	fn, err := par.AddFootnote(7)
	if err != nil {
		return err
	}
	return fn.AddParagraph().SetText("Footnote details here.")
}

func headerFooter(doc *rtf.Document, _ *Env) error {
	par := doc.Footer().AddParagraph()
	if err := par.SetText("Demo4: Page: / Date: Time:"); err != nil {
		return err
	}
	par.SetAlignment(rtf.AlignCenter)
	par.DefaultCharFormat().SetFontSize(15)
	for _, cw := range []rtf.ControlWord{
		{Position: 12, Type: rtf.FieldPage},
		{Position: 13, Type: rtf.FieldNumPages},
		{Position: 19, Type: rtf.FieldDate},
		{Position: 25, Type: rtf.FieldTime},
	} {
		if err := par.AddControlWord(cw.Position, cw.Type); err != nil {
			return err
		}
	}

	return doc.Header().AddParagraph().SetText("Demo4: Header")
}

func picture(doc *rtf.Document, env *Env) error {
	var (
		img *rtf.Image
		err error
	)
	if env.ImagePath != "" {
		typ, perr := rtf.ParseImageType(filepath.Ext(env.ImagePath))
		if perr != nil {
			return perr
		}
		img, err = doc.AddImage(env.ImagePath, typ)
	} else {
		var data rtf.ImageData
		if data, err = generatedImage(); err != nil {
			return err
		}
		img, err = doc.AddImageData(data)
	}
	if err != nil {
		return err
	}
	// height follows the aspect ratio
	img.SetWidth(130)
	img.SetStartNewPara(true)
	return nil
}

func table(doc *rtf.Document, env *Env) error {
	t, err := doc.AddTable(5, 4, 415.2, 12)
	if err != nil {
		return err
	}
	t.SetMargin(rtf.Bottom, 20)
	t.SetInnerBorder(rtf.BorderDotted, 1)
	t.SetOuterBorder(rtf.BorderSingle, 2)
	t.SetHeaderBackgroundColor(env.TableHeader)
	t.SetRowBackgroundColor(env.TableRow)
	t.SetRowAltBackgroundColor(env.TableRowAlt)

	if err := t.Merge(1, 0, 3, 1); err != nil {
		return err
	}
	for i := 0; i < t.RowCount(); i++ {
		for j := 0; j < t.ColCount(); j++ {
			if t.IsMergedAway(i, j) {
				continue
			}
			c, err := t.Cell(i, j)
			if err != nil {
				return err
			}
			if err := c.AddParagraph().SetText(fmt.Sprintf("CELL %d,%d", i, j)); err != nil {
				return err
			}
		}
	}

	c, err := t.Cell(4, 3)
	if err != nil {
		return err
	}
	c.SetBackgroundColor(env.Red)
	return c.AddParagraph().SetText("Demo6: Table")
}

func twoInOne(doc *rtf.Document, _ *Env) error {
	par := doc.AddParagraph()
	if err := par.SetText("Demo7: aaa並排文字aaa"); err != nil {
		return err
	}
	f, err := par.AddCharFormat(10, 13)
	if err != nil {
		return err
	}
	f.SetTwoInOne(rtf.TwoInOneBraces).SetFontSize(16)
	return nil
}

func hyperlink(doc *rtf.Document, env *Env) error {
	par := doc.AddParagraph()
	if err := par.SetText("Demo 7.1: Hyperlink to target (Demo9)"); err != nil {
		return err
	}
	f, err := par.AddCharFormat(10, 18)
	if err != nil {
		return err
	}
	f.SetLocalHyperlink("target", "").SetFgColor(env.Blue)
	return nil
}

func newPage(doc *rtf.Document, _ *Env) error {
	par := doc.AddParagraph()
	par.SetStartNewPage(true)
	return par.SetText("Demo8: New page")
}

func bookmark(doc *rtf.Document, _ *Env) error {
	par := doc.AddParagraph()
	if err := par.SetText("Demo9: Set bookmark"); err != nil {
		return err
	}
	f, err := par.AddCharFormat(0, 18)
	if err != nil {
		return err
	}
	f.SetBookmark("target")
	return nil
}

// generatedImage draws a small gradient so the image demo needs no file.
func generatedImage() (rtf.ImageData, error) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 8), B: 0xC0, A: 0xFF})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return rtf.ImageData{}, err
	}
	return imageload.Decode(buf.Bytes(), rtf.ImagePNG)
}
