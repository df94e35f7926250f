package ir

// ImageBlock references an image file. Width and Height are in points; set
// only one to keep the aspect ratio.
type ImageBlock struct {
	Path      string  `json:"path" yaml:"path"`
	Format    string  `json:"format,omitempty" yaml:"format,omitempty"` // png, jpg, gif, bmp, tiff; default from extension
	Width     float32 `json:"width,omitempty" yaml:"width,omitempty"`
	Height    float32 `json:"height,omitempty" yaml:"height,omitempty"`
	Alignment string  `json:"alignment,omitempty" yaml:"alignment,omitempty"`
}

// NewImage creates a new image block for the given file.
func NewImage(path string) *ImageBlock {
	return &ImageBlock{
		Path: path,
	}
}

// SetDimensions sets the display width and height of the image.
func (img *ImageBlock) SetDimensions(width, height float32) {
	img.Width = width
	img.Height = height
}
