package build

import (
	"fmt"

	"github.com/roboco-io/rtfwriter/internal/ir"
	"github.com/roboco-io/rtfwriter/internal/rtf"
)

// listIndent is the indent per nesting level in points.
const listIndent = 18

var bullets = []string{"•", "◦", "▪"}

// list expands a list into one hanging-indent paragraph per item and returns
// the first one.
func (b *Builder) list(bl *rtf.BlockList, src *ir.ListBlock, path string) (*rtf.Paragraph, error) {
	items := src.Flatten()
	if len(items) == 0 {
		return nil, nil
	}

	start := src.Start
	if start == 0 {
		start = 1
	}

	var (
		first    *rtf.Paragraph
		counters []int
	)
	for i, item := range items {
		ip := fmt.Sprintf("%s.items[%d]", path, i)

		// deeper counters restart under a new parent
		for len(counters) <= item.Level {
			counters = append(counters, 0)
		}
		counters = counters[:item.Level+1]
		counters[item.Level]++

		marker := bullets[min(item.Level, len(bullets)-1)]
		if src.Ordered {
			n := counters[item.Level]
			if item.Level == 0 {
				n += start - 1
			}
			marker = fmt.Sprintf("%d.", n)
		}

		p := bl.AddParagraph()
		if err := p.SetText(marker + "\t" + item.Text); err != nil {
			return nil, fmt.Errorf("%s: %w", ip, err)
		}
		indent := float32(listIndent * (item.Level + 1))
		p.SetIndent(-listIndent, indent, 0)

		def := p.DefaultCharFormat()
		if _, ok := def.FontSize(); !ok && b.opts.FontSize > 0 {
			def.SetFontSize(b.opts.FontSize)
		}
		if src.Style != nil {
			if err := b.textStyle(def, src.Style, path+".style"); err != nil {
				return nil, err
			}
		}
		if first == nil {
			first = p
		}
	}
	return first, nil
}
