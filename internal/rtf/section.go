package rtf

// SectionOptions configures the page of a new section. Zero values keep the
// document settings.
type SectionOptions struct {
	Orientation Orientation
	PaperSize   PaperSize
	// OverridePage applies PaperSize and Orientation; otherwise the section
	// inherits the document page.
	OverridePage bool
}

// Section starts with a section break. Blocks added to it follow the break
// and may carry their own footer.
type Section struct {
	*BlockList

	opts   SectionOptions
	footer *BlockList
}

func newSection(opts SectionOptions, ctx *docContext) *Section {
	return &Section{
		BlockList: newBlockList(sectionRole, ctx),
		opts:      opts,
		footer:    newBlockList(sectionFooterRole, ctx),
	}
}

// Kind implements Block.
func (s *Section) Kind() BlockKind { return BlockSection }
func (s *Section) sealed()         {}

// Footer returns the footer used by the pages of this section.
func (s *Section) Footer() *BlockList { return s.footer }

// Options returns the page options of the section.
func (s *Section) Options() SectionOptions { return s.opts }
