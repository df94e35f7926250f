package imageload

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/roboco-io/rtfwriter/internal/rtf"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 40), G: uint8(y * 40), B: 0x80, A: 0xFF})
		}
	}
	return img
}

func encode(t *testing.T, typ rtf.ImageType, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	var err error
	switch typ {
	case rtf.ImageJPEG:
		err = jpeg.Encode(&buf, img, nil)
	case rtf.ImagePNG:
		err = png.Encode(&buf, img)
	case rtf.ImageGIF:
		err = gif.Encode(&buf, img, nil)
	case rtf.ImageBMP:
		err = bmp.Encode(&buf, img)
	case rtf.ImageTIFF:
		err = tiff.Encode(&buf, img, nil)
	}
	if err != nil {
		t.Fatalf("failed to encode %s: %v", typ, err)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	tests := []struct {
		typ      rtf.ImageType
		wantType rtf.ImageType
		passThru bool
	}{
		{rtf.ImageJPEG, rtf.ImageJPEG, true},
		{rtf.ImagePNG, rtf.ImagePNG, true},
		{rtf.ImageGIF, rtf.ImagePNG, false},
		{rtf.ImageBMP, rtf.ImagePNG, false},
		{rtf.ImageTIFF, rtf.ImagePNG, false},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			src := encode(t, tt.typ, testImage(5, 3))
			got, err := Decode(src, tt.typ)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got.Type != tt.wantType {
				t.Errorf("expected type %s, got %s", tt.wantType, got.Type)
			}
			if got.Width != 5 || got.Height != 3 {
				t.Errorf("expected 5x3, got %dx%d", got.Width, got.Height)
			}
			if tt.passThru && !bytes.Equal(got.Data, src) {
				t.Error("expected bytes to pass through unchanged")
			}
			if !tt.passThru {
				if _, err := png.DecodeConfig(bytes.NewReader(got.Data)); err != nil {
					t.Errorf("converted data is not png: %v", err)
				}
			}
		})
	}
}

func TestDecode_ContentWinsOverDeclaredType(t *testing.T) {
	src := encode(t, rtf.ImagePNG, testImage(2, 2))
	got, err := Decode(src, rtf.ImageJPEG)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Type != rtf.ImagePNG {
		t.Errorf("expected png, got %s", got.Type)
	}
}

func TestDecode_Invalid(t *testing.T) {
	if _, err := Decode([]byte("not an image"), rtf.ImagePNG); err == nil {
		t.Error("expected error for invalid data")
	}
}

func TestSniff(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want rtf.ImageType
		ok   bool
	}{
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, rtf.ImageJPEG, true},
		{"gif", []byte("GIF89a..."), rtf.ImageGIF, true},
		{"tiff big endian", []byte("MM\x00*...."), rtf.ImageTIFF, true},
		{"unknown", []byte("hello"), rtf.ImageJPEG, false},
		{"empty", nil, rtf.ImageJPEG, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Sniff(tt.data)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Sniff() = %s, %v; want %s, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pic.bmp")
	if err := os.WriteFile(path, encode(t, rtf.ImageBMP, testImage(4, 4)), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := New().Load(path, rtf.ImageBMP)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Type != rtf.ImagePNG || got.Width != 4 {
		t.Errorf("unexpected result: %s %dx%d", got.Type, got.Width, got.Height)
	}

	if _, err := (&Loader{MaxBytes: 10}).Load(path, rtf.ImageBMP); err == nil {
		t.Error("expected size limit error")
	}
	if _, err := New().Load(filepath.Join(dir, "missing.png"), rtf.ImagePNG); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoader_WithDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pic.gif")
	if err := os.WriteFile(path, encode(t, rtf.ImageGIF, testImage(3, 2)), 0644); err != nil {
		t.Fatal(err)
	}

	doc := rtf.NewDocumentWithOptions(rtf.Options{Loader: New()})
	img, err := doc.AddImage(path, rtf.ImageGIF)
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	if w, h := img.NaturalSize(); w != 3 || h != 2 {
		t.Errorf("expected 3x2, got %dx%d", w, h)
	}
	if !bytes.Contains([]byte(doc.Render()), []byte(`\pngblip`)) {
		t.Error("expected png picture in output")
	}
}
