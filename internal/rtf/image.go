package rtf

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for DecodeConfig
	_ "image/png"
	"os"
	"strings"
)

// ImageType is the encoding of embedded image bytes.
type ImageType int

const (
	ImageJPEG ImageType = iota
	ImagePNG
	ImageGIF
	ImageBMP
	ImageTIFF
)

func (t ImageType) String() string {
	switch t {
	case ImageJPEG:
		return "jpeg"
	case ImagePNG:
		return "png"
	case ImageGIF:
		return "gif"
	case ImageBMP:
		return "bmp"
	case ImageTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("ImageType(%d)", int(t))
	}
}

// ParseImageType parses a type name or file extension ("jpg", ".png", ...).
func ParseImageType(s string) (ImageType, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "jpg", "jpeg":
		return ImageJPEG, nil
	case "png":
		return ImagePNG, nil
	case "gif":
		return ImageGIF, nil
	case "bmp":
		return ImageBMP, nil
	case "tif", "tiff":
		return ImageTIFF, nil
	default:
		return ImageJPEG, fmt.Errorf("unknown image type: %s", s)
	}
}

// ImageData is what an ImageLoader returns: bytes the renderer can embed
// (JPEG or PNG) plus the natural size in pixels.
type ImageData struct {
	Data   []byte
	Type   ImageType
	Width  int
	Height int
}

// ImageLoader turns an image file into embeddable bytes.
type ImageLoader interface {
	Load(path string, typ ImageType) (ImageData, error)
}

// ImageLoaderFunc adapts a function to ImageLoader.
type ImageLoaderFunc func(path string, typ ImageType) (ImageData, error)

// Load implements ImageLoader.
func (f ImageLoaderFunc) Load(path string, typ ImageType) (ImageData, error) {
	return f(path, typ)
}

// FileLoader reads JPEG and PNG files as they are.
var FileLoader ImageLoader = ImageLoaderFunc(loadFile)

func loadFile(path string, typ ImageType) (ImageData, error) {
	if typ != ImageJPEG && typ != ImagePNG {
		return ImageData{}, fmt.Errorf("image type %s needs conversion", typ)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ImageData{}, err
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageData{}, fmt.Errorf("failed to decode image header: %w", err)
	}
	return ImageData{Data: data, Type: typ, Width: cfg.Width, Height: cfg.Height}, nil
}

// Image embeds a JPEG or PNG picture in its own paragraph.
type Image struct {
	blockFlags

	data   ImageData
	dpi    float64
	width  float32
	height float32
	align  Align
}

func newImage(data ImageData, dpi float64) (*Image, error) {
	if data.Type != ImageJPEG && data.Type != ImagePNG {
		return nil, constructionError("add image", "cannot embed %s data", data.Type)
	}
	if len(data.Data) == 0 {
		return nil, constructionError("add image", "empty image data")
	}
	if data.Width <= 0 || data.Height <= 0 {
		return nil, constructionError("add image", "invalid natural size %dx%d", data.Width, data.Height)
	}
	if dpi <= 0 {
		dpi = 96
	}
	return &Image{data: data, dpi: dpi}, nil
}

// Kind implements Block.
func (img *Image) Kind() BlockKind { return BlockImage }
func (img *Image) sealed()         {}

// SetWidth sets the display width in points. If no height is set the
// height follows the natural aspect ratio.
func (img *Image) SetWidth(pt float32) { img.width = pt }

// SetHeight sets the display height in points. If no width is set the
// width follows the natural aspect ratio.
func (img *Image) SetHeight(pt float32) { img.height = pt }

// SetAlignment sets the alignment of the image paragraph.
func (img *Image) SetAlignment(a Align) { img.align = a }

// Size returns the display size in points.
func (img *Image) Size() (width, height float32) {
	natW := float32(float64(img.data.Width) * 72 / img.dpi)
	natH := float32(float64(img.data.Height) * 72 / img.dpi)
	switch {
	case img.width > 0 && img.height > 0:
		return img.width, img.height
	case img.width > 0:
		return img.width, img.width * float32(img.data.Height) / float32(img.data.Width)
	case img.height > 0:
		return img.height * float32(img.data.Width) / float32(img.data.Height), img.height
	default:
		return natW, natH
	}
}

// NaturalSize returns the size in pixels.
func (img *Image) NaturalSize() (width, height int) {
	return img.data.Width, img.data.Height
}
