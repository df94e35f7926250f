// Package build turns a document description (ir.Document) into an
// rtf.Document through the rtf construction API.
package build

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/roboco-io/rtfwriter/internal/ir"
	"github.com/roboco-io/rtfwriter/internal/rtf"
)

// Options configures a Builder.
type Options struct {
	// Document holds the page, locale and font defaults. The description's
	// page settings override them.
	Document rtf.Options
	// FontSize is the default character size of paragraphs that set none.
	FontSize float32
	// Logger receives one debug line per block; nil discards.
	Logger *slog.Logger
}

// Builder converts descriptions. A Builder is not safe for concurrent use.
type Builder struct {
	opts   Options
	log    *slog.Logger
	doc    *rtf.Document
	fonts  map[string]rtf.FontRef
	colors map[string]rtf.ColorRef
}

// New creates a Builder.
func New(opts Options) *Builder {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Builder{opts: opts, log: log}
}

// Build is a shorthand for New(opts).Build(desc).
func Build(desc *ir.Document, opts Options) (*rtf.Document, error) {
	return New(opts).Build(desc)
}

// Build creates a document from desc. Errors name the failing element,
// for example "content[3].table.merges[1]: ...".
func (b *Builder) Build(desc *ir.Document) (*rtf.Document, error) {
	if desc == nil {
		return nil, fmt.Errorf("nil description")
	}

	docOpts, err := b.documentOptions(desc)
	if err != nil {
		return nil, err
	}
	b.doc = rtf.NewDocumentWithOptions(docOpts)
	b.fonts = make(map[string]rtf.FontRef)
	b.colors = make(map[string]rtf.ColorRef)

	if err := b.resources(desc); err != nil {
		return nil, err
	}
	info, err := documentInfo(desc.Metadata)
	if err != nil {
		return nil, err
	}
	b.doc.SetInfo(info)

	if err := b.blocks(b.doc.Header(), desc.Header, "header"); err != nil {
		return nil, err
	}
	if err := b.blocks(b.doc.Footer(), desc.Footer, "footer"); err != nil {
		return nil, err
	}
	if err := b.blocks(b.doc.BlockList, desc.Content, "content"); err != nil {
		return nil, err
	}

	b.log.Debug("document built",
		"paper", b.doc.PaperSize().String(),
		"orientation", b.doc.Orientation().String(),
		"lcid", int(b.doc.Lcid()),
		"fonts", b.doc.Resources().FontCount(),
		"colors", b.doc.Resources().ColorCount())
	return b.doc, nil
}

func (b *Builder) documentOptions(desc *ir.Document) (rtf.Options, error) {
	opts := b.opts.Document
	page := desc.Page
	if page.Size != "" {
		p, err := rtf.ParsePaperSize(page.Size)
		if err != nil {
			return opts, fmt.Errorf("page.size: %w", err)
		}
		opts.PaperSize = p
	}
	if page.Orientation != "" {
		o, err := rtf.ParseOrientation(page.Orientation)
		if err != nil {
			return opts, fmt.Errorf("page.orientation: %w", err)
		}
		opts.Orientation = o
	}
	if page.Locale != "" {
		lcid, err := rtf.ParseLocale(page.Locale)
		if err != nil {
			return opts, fmt.Errorf("page.locale: %w", err)
		}
		opts.Lcid = lcid
	}
	if page.Margins != nil {
		m := margins(page.Margins)
		opts.Margins = &m
	}
	return opts, nil
}

func documentInfo(m ir.Metadata) (rtf.Info, error) {
	info := rtf.Info{
		Title:    m.Title,
		Subject:  m.Subject,
		Author:   m.Author,
		Company:  m.Company,
		Keywords: m.Keywords,
		Comment:  m.Comment,
	}
	if m.Created != "" {
		t, err := time.Parse(time.RFC3339, m.Created)
		if err != nil {
			return info, fmt.Errorf("metadata.created: %w", err)
		}
		info.Created = t
	}
	return info, nil
}

// resources interns the declared fonts and colours in declaration order so
// their indices follow the description.
func (b *Builder) resources(desc *ir.Document) error {
	for i, f := range desc.Fonts {
		if f.Name == "" {
			return fmt.Errorf("fonts[%d]: missing name", i)
		}
		if _, dup := b.fonts[f.Name]; dup {
			return fmt.Errorf("fonts[%d]: duplicate font name %q", i, f.Name)
		}
		family := f.Family
		if family == "" {
			family = f.Name
		}
		b.fonts[f.Name] = b.doc.CreateFontCharset(family, f.Charset)
	}
	for i, c := range desc.Colors {
		if c.Name == "" {
			return fmt.Errorf("colors[%d]: missing name", i)
		}
		if _, dup := b.colors[c.Name]; dup {
			return fmt.Errorf("colors[%d]: duplicate colour name %q", i, c.Name)
		}
		ref, err := b.literalColor(c.Value)
		if err != nil {
			return fmt.Errorf("colors[%d]: %w", i, err)
		}
		b.colors[c.Name] = ref
	}
	return nil
}

// font resolves a declared font name; undeclared names are used as the
// family directly.
func (b *Builder) font(name string) rtf.FontRef {
	if ref, ok := b.fonts[name]; ok {
		return ref
	}
	ref := b.doc.CreateFont(name)
	b.fonts[name] = ref
	return ref
}

// color resolves a declared colour name or a literal value.
func (b *Builder) color(s string) (rtf.ColorRef, error) {
	if ref, ok := b.colors[s]; ok {
		return ref, nil
	}
	ref, err := b.literalColor(s)
	if err != nil {
		return rtf.ColorRef{}, err
	}
	b.colors[s] = ref
	return ref, nil
}

func (b *Builder) literalColor(s string) (rtf.ColorRef, error) {
	c, err := rtf.ParseColor(s)
	if err != nil {
		return rtf.ColorRef{}, err
	}
	return b.doc.CreateColor(c), nil
}

type flagged interface {
	SetStartNewPage(bool)
	SetStartNewPara(bool)
}

func (b *Builder) blocks(bl *rtf.BlockList, blocks []ir.Block, path string) error {
	for i, blk := range blocks {
		p := fmt.Sprintf("%s[%d]", path, i)
		if err := b.block(bl, blk, p); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) block(bl *rtf.BlockList, blk ir.Block, path string) error {
	b.log.Debug("block", "path", path, "type", string(blk.Type))

	switch blk.Type {
	case ir.BlockTypeParagraph:
		if blk.Paragraph == nil {
			return fmt.Errorf("%s: missing paragraph", path)
		}
		p, err := b.paragraph(bl, blk.Paragraph, path+".paragraph")
		if err != nil {
			return err
		}
		setFlags(p, blk)
	case ir.BlockTypeTable:
		if blk.Table == nil {
			return fmt.Errorf("%s: missing table", path)
		}
		t, err := b.table(bl, blk.Table, path+".table")
		if err != nil {
			return err
		}
		setFlags(t, blk)
	case ir.BlockTypeImage:
		if blk.Image == nil {
			return fmt.Errorf("%s: missing image", path)
		}
		img, err := b.image(bl, blk.Image, path+".image")
		if err != nil {
			return err
		}
		setFlags(img, blk)
	case ir.BlockTypeList:
		if blk.List == nil {
			return fmt.Errorf("%s: missing list", path)
		}
		p, err := b.list(bl, blk.List, path+".list")
		if err != nil {
			return err
		}
		if p != nil {
			setFlags(p, blk)
		}
	case ir.BlockTypeSection:
		if blk.Section == nil {
			return fmt.Errorf("%s: missing section", path)
		}
		return b.section(bl, blk.Section, path+".section")
	default:
		return fmt.Errorf("%s: unknown block type %q", path, blk.Type)
	}
	return nil
}

func setFlags(f flagged, blk ir.Block) {
	f.SetStartNewPage(blk.NewPage)
	f.SetStartNewPara(blk.NewPara)
}

func (b *Builder) section(bl *rtf.BlockList, s *ir.SectionBlock, path string) error {
	opts := rtf.SectionOptions{
		PaperSize:   b.doc.PaperSize(),
		Orientation: b.doc.Orientation(),
	}
	if s.Size != "" {
		p, err := rtf.ParsePaperSize(s.Size)
		if err != nil {
			return fmt.Errorf("%s.size: %w", path, err)
		}
		opts.PaperSize = p
		opts.OverridePage = true
	}
	if s.Orientation != "" {
		o, err := rtf.ParseOrientation(s.Orientation)
		if err != nil {
			return fmt.Errorf("%s.orientation: %w", path, err)
		}
		opts.Orientation = o
		opts.OverridePage = true
	}

	sec, err := bl.AddSection(opts)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := b.blocks(sec.Footer(), s.Footer, path+".footer"); err != nil {
		return err
	}
	return b.blocks(sec.BlockList, s.Content, path+".content")
}

func margins(m *ir.Margins) rtf.Margins {
	var out rtf.Margins
	out[rtf.Top] = m.Top
	out[rtf.Right] = m.Right
	out[rtf.Bottom] = m.Bottom
	out[rtf.Left] = m.Left
	return out
}

func imageType(img *ir.ImageBlock) (rtf.ImageType, error) {
	if img.Format != "" {
		return rtf.ParseImageType(img.Format)
	}
	ext := filepath.Ext(img.Path)
	if ext == "" {
		return rtf.ImageJPEG, fmt.Errorf("cannot infer image format of %s", img.Path)
	}
	return rtf.ParseImageType(strings.ToLower(ext))
}
