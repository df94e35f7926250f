package parser

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/roboco-io/rtfwriter/internal/ir"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Format
	}{
		{
			name:     "json extension",
			path:     "document.json",
			expected: FormatJSON,
		},
		{
			name:     "JSON uppercase",
			path:     "DOCUMENT.JSON",
			expected: FormatJSON,
		},
		{
			name:     "yaml extension",
			path:     "document.yaml",
			expected: FormatYAML,
		},
		{
			name:     "yml extension",
			path:     "document.yml",
			expected: FormatYAML,
		},
		{
			name:     "unknown extension",
			path:     "document.rtf",
			expected: FormatUnknown,
		},
		{
			name:     "no extension",
			path:     "document",
			expected: FormatUnknown,
		},
		{
			name:     "path with directory",
			path:     "/path/to/document.yaml",
			expected: FormatYAML,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectFormat(tc.path)
			if got != tc.expected {
				t.Errorf("DetectFormat(%q) = %v, want %v", tc.path, got, tc.expected)
			}
		})
	}
}

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatJSON, "json"},
		{FormatYAML, "yaml"},
		{FormatUnknown, "unknown"},
		{Format(999), "unknown"},
	}

	for _, tc := range tests {
		got := tc.format.String()
		if got != tc.expected {
			t.Errorf("Format(%d).String() = %q, want %q", int(tc.format), got, tc.expected)
		}
	}
}

func TestDetectFormatFromReader(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected Format
	}{
		{
			name:     "json object",
			data:     []byte(`{"version": "1.0"}`),
			expected: FormatJSON,
		},
		{
			name:     "json with BOM and whitespace",
			data:     append([]byte{0xEF, 0xBB, 0xBF}, []byte("\n  {}")...),
			expected: FormatJSON,
		},
		{
			name:     "yaml mapping",
			data:     []byte("version: \"1.0\"\ncontent: []\n"),
			expected: FormatYAML,
		},
		{
			name:     "yaml document marker",
			data:     []byte("---\nversion: 1.0\n"),
			expected: FormatYAML,
		},
		{
			name:     "yaml comment",
			data:     []byte("# demo\nversion: 1.0\n"),
			expected: FormatYAML,
		},
		{
			name:     "rtf",
			data:     []byte(`\rtf1\ansi`),
			expected: FormatUnknown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reader := bytes.NewReader(tc.data)
			got, err := DetectFormatFromReader(reader)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("DetectFormatFromReader() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestDetectFormatFromReader_Empty(t *testing.T) {
	reader := bytes.NewReader([]byte(" \n\t"))

	_, err := DetectFormatFromReader(reader)
	if err == nil {
		t.Error("expected error for blank data")
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Strict {
		t.Error("expected Strict to be false by default")
	}
	if opts.BaseDir != "" {
		t.Error("expected BaseDir to be empty by default")
	}
}

func TestFinish_Version(t *testing.T) {
	doc := &ir.Document{}
	if err := Finish(doc, DefaultOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Version != ir.Version {
		t.Errorf("expected version %s, got %s", ir.Version, doc.Version)
	}

	if err := Finish(&ir.Document{Version: "1.3"}, DefaultOptions()); err != nil {
		t.Errorf("unexpected error for minor version: %v", err)
	}
	if err := Finish(&ir.Document{Version: "2.0"}, DefaultOptions()); err == nil {
		t.Error("expected error for major version 2")
	}
}

func TestFinish_ResolvesImagePaths(t *testing.T) {
	abs := filepath.Join(string(filepath.Separator), "abs", "b.png")
	p := ir.NewParagraph("x")
	p.Footnotes = []ir.Footnote{{Content: []ir.Block{{Type: ir.BlockTypeImage, Image: ir.NewImage("c.png")}}}}
	doc := &ir.Document{
		Content: []ir.Block{
			{Type: ir.BlockTypeImage, Image: ir.NewImage("a.png")},
			{Type: ir.BlockTypeImage, Image: ir.NewImage(abs)},
			ir.ParagraphBlock(p),
			{Type: ir.BlockTypeSection, Section: &ir.SectionBlock{
				Content: []ir.Block{{Type: ir.BlockTypeImage, Image: ir.NewImage("d.png")}},
			}},
		},
	}

	if err := Finish(doc, Options{BaseDir: "base"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		got, want string
	}{
		{doc.Content[0].Image.Path, filepath.Join("base", "a.png")},
		{doc.Content[1].Image.Path, abs},
		{p.Footnotes[0].Content[0].Image.Path, filepath.Join("base", "c.png")},
		{doc.Content[3].Section.Content[0].Image.Path, filepath.Join("base", "d.png")},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("expected %s, got %s", tc.want, tc.got)
		}
	}
}
