package jsondesc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/roboco-io/rtfwriter/internal/parser"
)

const sample = `{
  "version": "1.0",
  "metadata": {"title": "Demo"},
  "fonts": [{"name": "mono", "family": "Courier New"}],
  "content": [
    {"type": "paragraph", "paragraph": {
      "text": "Demo3: Footnote",
      "footnotes": [{"position": 7, "content": [
        {"type": "paragraph", "paragraph": {"text": "Footnote details here."}}
      ]}]
    }},
    {"type": "image", "image": {"path": "demo5.jpg", "width": 130}}
  ]
}`

func TestParser_Parse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := New(path, parser.DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()

	doc, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Metadata.Title != "Demo" {
		t.Errorf("expected title Demo, got %s", doc.Metadata.Title)
	}
	if len(doc.Content) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(doc.Content))
	}
	fn := doc.Content[0].Paragraph.Footnotes[0]
	if fn.Position != 7 || fn.Content[0].Paragraph.Text != "Footnote details here." {
		t.Errorf("unexpected footnote: %+v", fn)
	}
	img := doc.Content[1].Image
	if img.Path != filepath.Join(dir, "demo5.jpg") {
		t.Errorf("expected image path resolved against %s, got %s", dir, img.Path)
	}
	if img.Width != 130 {
		t.Errorf("expected width 130, got %g", img.Width)
	}
}

func TestParser_Strict(t *testing.T) {
	src := `{"content": [], "colour": "red"}`

	if _, err := NewFromReader(strings.NewReader(src), parser.DefaultOptions()).Parse(); err != nil {
		t.Errorf("unexpected error in lenient mode: %v", err)
	}
	_, err := NewFromReader(strings.NewReader(src), parser.Options{Strict: true}).Parse()
	if err == nil {
		t.Error("expected error for unknown field in strict mode")
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"syntax", `{"content": [`},
		{"version", `{"version": "2.0", "content": []}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewFromReader(strings.NewReader(tc.src), parser.DefaultOptions()).Parse(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNew_MissingFile(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing.json"), parser.DefaultOptions()); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParser_ImplementsInterface(t *testing.T) {
	var _ parser.Parser = (*Parser)(nil)
}
