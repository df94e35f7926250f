// Package ir defines the declarative description of a document to build.
// A description is read from JSON or YAML by the parser package and turned
// into an rtf.Document by the build package.
package ir

// Version is the description format written by NewDocument.
const Version = "1.0"

// Document describes a whole RTF document.
type Document struct {
	Version  string   `json:"version" yaml:"version"`
	Metadata Metadata `json:"metadata" yaml:"metadata"`
	Page     Page     `json:"page" yaml:"page"`
	Fonts    []Font   `json:"fonts,omitempty" yaml:"fonts,omitempty"`
	Colors   []Color  `json:"colors,omitempty" yaml:"colors,omitempty"`
	Header   []Block  `json:"header,omitempty" yaml:"header,omitempty"`
	Footer   []Block  `json:"footer,omitempty" yaml:"footer,omitempty"`
	Content  []Block  `json:"content" yaml:"content"`
}

// Metadata is written into the document summary.
type Metadata struct {
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Author   string `json:"author,omitempty" yaml:"author,omitempty"`
	Subject  string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Keywords string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Company  string `json:"company,omitempty" yaml:"company,omitempty"`
	Comment  string `json:"comment,omitempty" yaml:"comment,omitempty"`
	Created  string `json:"created,omitempty" yaml:"created,omitempty"` // RFC 3339
}

// Page overrides the configured page setup. Empty fields keep the
// configuration value.
type Page struct {
	Size        string   `json:"size,omitempty" yaml:"size,omitempty"`               // a4, letter, ...
	Orientation string   `json:"orientation,omitempty" yaml:"orientation,omitempty"` // portrait, landscape
	Locale      string   `json:"locale,omitempty" yaml:"locale,omitempty"`           // BCP 47 tag
	Margins     *Margins `json:"margins,omitempty" yaml:"margins,omitempty"`
}

// Margins are lengths in points.
type Margins struct {
	Top    float32 `json:"top" yaml:"top"`
	Right  float32 `json:"right" yaml:"right"`
	Bottom float32 `json:"bottom" yaml:"bottom"`
	Left   float32 `json:"left" yaml:"left"`
}

// Font declares a font under a name that text styles refer to.
type Font struct {
	Name    string `json:"name" yaml:"name"`
	Family  string `json:"family" yaml:"family"`
	Charset int    `json:"charset,omitempty" yaml:"charset,omitempty"`
}

// Color declares a colour under a name that styles refer to. Value is
// "#rrggbb", "#rgb" or an SVG colour name.
type Color struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// BlockType represents the type of content block.
type BlockType string

const (
	BlockTypeParagraph BlockType = "paragraph"
	BlockTypeTable     BlockType = "table"
	BlockTypeImage     BlockType = "image"
	BlockTypeList      BlockType = "list"
	BlockTypeSection   BlockType = "section"
)

// Block represents a content block in the document.
type Block struct {
	Type      BlockType     `json:"type" yaml:"type"`
	NewPage   bool          `json:"new_page,omitempty" yaml:"new_page,omitempty"`
	NewPara   bool          `json:"new_para,omitempty" yaml:"new_para,omitempty"`
	Paragraph *Paragraph    `json:"paragraph,omitempty" yaml:"paragraph,omitempty"`
	Table     *TableBlock   `json:"table,omitempty" yaml:"table,omitempty"`
	Image     *ImageBlock   `json:"image,omitempty" yaml:"image,omitempty"`
	List      *ListBlock    `json:"list,omitempty" yaml:"list,omitempty"`
	Section   *SectionBlock `json:"section,omitempty" yaml:"section,omitempty"`
}

// NewDocument creates a new description with the current version.
func NewDocument() *Document {
	return &Document{
		Version: Version,
		Content: make([]Block, 0),
	}
}

// AddParagraph adds a paragraph block to the document.
func (d *Document) AddParagraph(p *Paragraph) {
	d.Content = append(d.Content, ParagraphBlock(p))
}

// AddTable adds a table block to the document.
func (d *Document) AddTable(t *TableBlock) {
	d.Content = append(d.Content, Block{Type: BlockTypeTable, Table: t})
}

// AddImage adds an image block to the document.
func (d *Document) AddImage(img *ImageBlock) {
	d.Content = append(d.Content, Block{Type: BlockTypeImage, Image: img})
}

// AddList adds a list block to the document.
func (d *Document) AddList(l *ListBlock) {
	d.Content = append(d.Content, Block{Type: BlockTypeList, List: l})
}

// AddSection adds a section block to the document.
func (d *Document) AddSection(s *SectionBlock) {
	d.Content = append(d.Content, Block{Type: BlockTypeSection, Section: s})
}

// ParagraphBlock wraps a paragraph in a block.
func ParagraphBlock(p *Paragraph) Block {
	return Block{Type: BlockTypeParagraph, Paragraph: p}
}

// Stats counts blocks by type, descending into footnotes, cells, list
// items and sections.
type Stats struct {
	Paragraphs int
	Tables     int
	Images     int
	Lists      int
	Sections   int
	Footnotes  int
	Merges     int
}

// Stats returns the block counts of header, footer and content.
func (d *Document) Stats() Stats {
	var s Stats
	s.add(d.Header)
	s.add(d.Footer)
	s.add(d.Content)
	return s
}

func (s *Stats) add(blocks []Block) {
	for _, b := range blocks {
		switch b.Type {
		case BlockTypeParagraph:
			s.Paragraphs++
			if b.Paragraph != nil {
				for _, fn := range b.Paragraph.Footnotes {
					s.Footnotes++
					s.add(fn.Content)
				}
			}
		case BlockTypeTable:
			s.Tables++
			if b.Table != nil {
				s.Merges += len(b.Table.Merges)
				for _, c := range b.Table.Cells {
					s.add(c.Content)
				}
			}
		case BlockTypeImage:
			s.Images++
		case BlockTypeList:
			s.Lists++
		case BlockTypeSection:
			s.Sections++
			if b.Section != nil {
				s.add(b.Section.Footer)
				s.add(b.Section.Content)
			}
		}
	}
}
