package rtf

// Footnote is anchored after one character of its paragraph and owns the
// body shown at the foot of the page. Add content through the embedded
// BlockList.
type Footnote struct {
	*BlockList
	position int
}

func newFootnote(position, textLength int, ctx *docContext) (*Footnote, error) {
	if position < 0 || position >= textLength {
		return nil, constructionError("add footnote",
			"invalid footnote position: %d (text length=%d)", position, textLength)
	}
	return &Footnote{
		BlockList: newBlockList(footnoteRole, ctx),
		position:  position,
	}, nil
}

// Kind implements Block.
func (f *Footnote) Kind() BlockKind { return BlockFootnote }
func (f *Footnote) sealed()         {}

// Position returns the index of the character the anchor follows.
func (f *Footnote) Position() int { return f.position }
