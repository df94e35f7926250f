package build

import (
	"fmt"

	"github.com/roboco-io/rtfwriter/internal/ir"
	"github.com/roboco-io/rtfwriter/internal/rtf"
)

func (b *Builder) image(bl *rtf.BlockList, src *ir.ImageBlock, path string) (*rtf.Image, error) {
	if src.Path == "" {
		return nil, fmt.Errorf("%s.path: missing", path)
	}
	typ, err := imageType(src)
	if err != nil {
		return nil, fmt.Errorf("%s.format: %w", path, err)
	}
	if src.Width < 0 || src.Height < 0 {
		return nil, fmt.Errorf("%s: size must not be negative", path)
	}
	align, err := parseAlign(src.Alignment)
	if err != nil {
		return nil, fmt.Errorf("%s.alignment: %w", path, err)
	}

	img, err := bl.AddImage(src.Path, typ)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if src.Width > 0 {
		img.SetWidth(src.Width)
	}
	if src.Height > 0 {
		img.SetHeight(src.Height)
	}
	img.SetAlignment(align)

	w, h := img.Size()
	b.log.Debug("image added", "path", src.Path, "type", typ.String(), "width", w, "height", h)
	return img, nil
}
