// Package imageload reads image files for embedding. RTF pictures carry only
// JPEG or PNG data, so BMP, TIFF and GIF sources are decoded and re-encoded
// as PNG.
package imageload

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/roboco-io/rtfwriter/internal/rtf"
)

// Loader implements rtf.ImageLoader for files on disk.
type Loader struct {
	// MaxBytes limits the size of a source file; 0 means no limit.
	MaxBytes int64
}

// New returns a Loader without a size limit.
func New() *Loader {
	return &Loader{}
}

// Load reads path and returns embeddable bytes. typ is the declared type;
// when the content sniffs as a different format the content wins.
func (l *Loader) Load(path string, typ rtf.ImageType) (rtf.ImageData, error) {
	f, err := os.Open(path)
	if err != nil {
		return rtf.ImageData{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if l.MaxBytes > 0 {
		r = io.LimitReader(f, l.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return rtf.ImageData{}, fmt.Errorf("failed to read image: %w", err)
	}
	if l.MaxBytes > 0 && int64(len(data)) > l.MaxBytes {
		return rtf.ImageData{}, fmt.Errorf("image %s exceeds %d bytes", path, l.MaxBytes)
	}
	return Decode(data, typ)
}

// Decode converts raw image bytes into rtf.ImageData.
func Decode(data []byte, typ rtf.ImageType) (rtf.ImageData, error) {
	if sniffed, ok := Sniff(data); ok {
		typ = sniffed
	}

	switch typ {
	case rtf.ImageJPEG:
		cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return rtf.ImageData{}, fmt.Errorf("failed to decode jpeg header: %w", err)
		}
		return rtf.ImageData{Data: data, Type: rtf.ImageJPEG, Width: cfg.Width, Height: cfg.Height}, nil
	case rtf.ImagePNG:
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return rtf.ImageData{}, fmt.Errorf("failed to decode png header: %w", err)
		}
		return rtf.ImageData{Data: data, Type: rtf.ImagePNG, Width: cfg.Width, Height: cfg.Height}, nil
	}

	var (
		img image.Image
		err error
	)
	switch typ {
	case rtf.ImageGIF:
		img, err = gif.Decode(bytes.NewReader(data))
	case rtf.ImageBMP:
		img, err = bmp.Decode(bytes.NewReader(data))
	case rtf.ImageTIFF:
		img, err = tiff.Decode(bytes.NewReader(data))
	default:
		return rtf.ImageData{}, fmt.Errorf("unsupported image type: %s", typ)
	}
	if err != nil {
		return rtf.ImageData{}, fmt.Errorf("failed to decode %s: %w", typ, err)
	}
	return toPNG(img)
}

func toPNG(img image.Image) (rtf.ImageData, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return rtf.ImageData{}, fmt.Errorf("failed to encode png: %w", err)
	}
	b := img.Bounds()
	return rtf.ImageData{Data: buf.Bytes(), Type: rtf.ImagePNG, Width: b.Dx(), Height: b.Dy()}, nil
}

var signatures = []struct {
	magic []byte
	typ   rtf.ImageType
}{
	{[]byte{0xFF, 0xD8, 0xFF}, rtf.ImageJPEG},
	{[]byte("\x89PNG\r\n\x1a\n"), rtf.ImagePNG},
	{[]byte("GIF87a"), rtf.ImageGIF},
	{[]byte("GIF89a"), rtf.ImageGIF},
	{[]byte("BM"), rtf.ImageBMP},
	{[]byte("II*\x00"), rtf.ImageTIFF},
	{[]byte("MM\x00*"), rtf.ImageTIFF},
}

// Sniff detects the image type from its leading bytes.
func Sniff(data []byte) (rtf.ImageType, bool) {
	for _, s := range signatures {
		if bytes.HasPrefix(data, s.magic) {
			return s.typ, true
		}
	}
	return rtf.ImageJPEG, false
}
