package rtf

import "fmt"

// BlockKind tags the variant of a Block.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockTable
	BlockImage
	BlockFootnote
	BlockSection
)

func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockTable:
		return "table"
	case BlockImage:
		return "image"
	case BlockFootnote:
		return "footnote"
	case BlockSection:
		return "section"
	default:
		return fmt.Sprintf("BlockKind(%d)", int(k))
	}
}

// Block is a renderable unit owned by exactly one container. The set of
// implementations is closed: *Paragraph, *Table, *Image, *Footnote and
// *Section. Blocks are only created by the Add* methods of their container.
type Block interface {
	Kind() BlockKind
	sealed()
}

// blockFlags carries the optional leading scope markers of a block.
type blockFlags struct {
	newPage bool
	newPara bool
}

// SetStartNewPage places the block on a new page. Containers that cannot
// break pages ignore it.
func (f *blockFlags) SetStartNewPage(v bool) { f.newPage = v }

// SetStartNewPara starts a new paragraph before the block.
func (f *blockFlags) SetStartNewPara(v bool) { f.newPara = v }

// StartsNewPage reports whether SetStartNewPage(true) was called.
func (f *blockFlags) StartsNewPage() bool { return f.newPage }

// StartsNewPara reports whether SetStartNewPara(true) was called.
func (f *blockFlags) StartsNewPara() bool { return f.newPara }

type roleKind int

const (
	roleBody roleKind = iota
	roleSection
	roleHeader
	roleFooter
	roleSectionFooter
	roleFootnote
	roleCell
)

func (k roleKind) String() string {
	switch k {
	case roleBody:
		return "body"
	case roleSection:
		return "section"
	case roleHeader:
		return "header"
	case roleFooter:
		return "footer"
	case roleSectionFooter:
		return "section footer"
	case roleFootnote:
		return "footnote"
	case roleCell:
		return "table cell"
	default:
		return fmt.Sprintf("role(%d)", int(k))
	}
}

// containerRole is fixed when a BlockList is created and decides what may
// be added to it and which scope markers it emits.
type containerRole struct {
	kind             roleKind
	allowFootnote    bool
	allowControlWord bool
	allowTable       bool
	allowImage       bool
	allowSection     bool
	allowPageBreak   bool
	allowParaBreak   bool
}

var (
	bodyRole = containerRole{kind: roleBody, allowFootnote: true, allowTable: true,
		allowImage: true, allowSection: true, allowPageBreak: true, allowParaBreak: true}
	sectionRole = containerRole{kind: roleSection, allowFootnote: true, allowTable: true,
		allowImage: true, allowPageBreak: true, allowParaBreak: true}
	headerRole = containerRole{kind: roleHeader, allowControlWord: true, allowImage: true,
		allowParaBreak: true}
	footerRole = containerRole{kind: roleFooter, allowControlWord: true, allowImage: true,
		allowParaBreak: true}
	sectionFooterRole = containerRole{kind: roleSectionFooter, allowControlWord: true,
		allowImage: true, allowParaBreak: true}
	footnoteRole = containerRole{kind: roleFootnote, allowImage: true, allowParaBreak: true}
	cellRole     = containerRole{kind: roleCell, allowFootnote: true, allowImage: true,
		allowParaBreak: true}
)

// docContext is shared by every container of one document.
type docContext struct {
	res      *ResourceTable
	loader   ImageLoader
	imageDPI float64
}

// BlockList is an ordered container of blocks. Insertion order is render
// order. Blocks are never moved to another container.
type BlockList struct {
	role   containerRole
	blocks []Block
	ctx    *docContext

	// default character size applied to new paragraphs, 0 for none
	fontSize float32
}

func newBlockList(role containerRole, ctx *docContext) *BlockList {
	return &BlockList{role: role, ctx: ctx}
}

// Len returns the number of blocks.
func (bl *BlockList) Len() int { return len(bl.blocks) }

// Blocks returns the blocks in insertion order.
func (bl *BlockList) Blocks() []Block {
	out := make([]Block, len(bl.blocks))
	copy(out, bl.blocks)
	return out
}

// AddParagraph appends an empty paragraph.
func (bl *BlockList) AddParagraph() *Paragraph {
	p := newParagraph(bl)
	bl.blocks = append(bl.blocks, p)
	return p
}

// AddTable appends a rows x cols table whose total width is width points.
// fontSize, if positive, is the default character size of cell paragraphs.
func (bl *BlockList) AddTable(rows, cols int, width, fontSize float32) (*Table, error) {
	if !bl.role.allowTable {
		return nil, constructionError("add table", "tables are not allowed in a %s", bl.role.kind)
	}
	t, err := newTable(rows, cols, width, fontSize, bl.ctx)
	if err != nil {
		return nil, err
	}
	bl.blocks = append(bl.blocks, t)
	return t, nil
}

// AddImage loads the image at path through the document's ImageLoader and
// appends it.
func (bl *BlockList) AddImage(path string, typ ImageType) (*Image, error) {
	if !bl.role.allowImage {
		return nil, constructionError("add image", "images are not allowed in a %s", bl.role.kind)
	}
	if bl.ctx.loader == nil {
		return nil, constructionError("add image", "no image loader configured")
	}
	data, err := bl.ctx.loader.Load(path, typ)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return bl.AddImageData(data)
}

// AddImageData appends an image whose bytes are already in memory.
func (bl *BlockList) AddImageData(data ImageData) (*Image, error) {
	if !bl.role.allowImage {
		return nil, constructionError("add image", "images are not allowed in a %s", bl.role.kind)
	}
	img, err := newImage(data, bl.ctx.imageDPI)
	if err != nil {
		return nil, err
	}
	bl.blocks = append(bl.blocks, img)
	return img, nil
}

// AddSection starts a new section; blocks added to the returned section
// follow the section break.
func (bl *BlockList) AddSection(opts SectionOptions) (*Section, error) {
	if !bl.role.allowSection {
		return nil, constructionError("add section", "sections are not allowed in a %s", bl.role.kind)
	}
	s := newSection(opts, bl.ctx)
	bl.blocks = append(bl.blocks, s)
	return s, nil
}
