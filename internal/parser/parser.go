// Package parser provides interfaces and implementations for reading
// document descriptions.
package parser

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/roboco-io/rtfwriter/internal/ir"
)

// Parser is the interface for description parsers.
type Parser interface {
	// Parse reads the description and returns its IR representation.
	Parse() (*ir.Document, error)

	// Close releases any resources held by the parser.
	Close() error
}

// Format represents a description format.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat detects the description format from the file path.
func DetectFormat(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// sniffLen is how many leading bytes DetectFormatFromReader inspects.
const sniffLen = 512

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectFormatFromReader detects the format from the first non-blank
// character: '{' is JSON, anything else that looks like a mapping or a
// document marker is YAML.
func DetectFormatFromReader(r io.ReaderAt) (Format, error) {
	buf := make([]byte, sniffLen)
	n, err := r.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return FormatUnknown, fmt.Errorf("failed to read leading bytes: %w", err)
	}
	head := bytes.TrimPrefix(buf[:n], utf8BOM)
	head = bytes.TrimLeft(head, " \t\r\n")
	if len(head) == 0 {
		return FormatUnknown, fmt.Errorf("file too small to detect format")
	}

	switch {
	case head[0] == '{':
		return FormatJSON, nil
	case bytes.HasPrefix(head, []byte("---")), head[0] == '#':
		return FormatYAML, nil
	}

	line := head
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if bytes.Contains(line, []byte(":")) {
		return FormatYAML, nil
	}
	return FormatUnknown, nil
}

// Options contains parser configuration options.
type Options struct {
	Strict  bool   // Reject unknown fields
	BaseDir string // Directory relative image paths are resolved against
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		Strict:  false,
		BaseDir: "",
	}
}

// Finish checks the description version and resolves relative image paths
// against opts.BaseDir. Parsers call it after decoding.
func Finish(doc *ir.Document, opts Options) error {
	switch {
	case doc.Version == "":
		doc.Version = ir.Version
	case majorVersion(doc.Version) != majorVersion(ir.Version):
		return fmt.Errorf("unsupported description version %s (want %s)", doc.Version, ir.Version)
	}
	if opts.BaseDir != "" {
		resolvePaths(doc.Header, opts.BaseDir)
		resolvePaths(doc.Footer, opts.BaseDir)
		resolvePaths(doc.Content, opts.BaseDir)
	}
	return nil
}

func majorVersion(v string) string {
	major, _, _ := strings.Cut(v, ".")
	return major
}

func resolvePaths(blocks []ir.Block, base string) {
	for _, b := range blocks {
		switch {
		case b.Image != nil:
			if b.Image.Path != "" && !filepath.IsAbs(b.Image.Path) {
				b.Image.Path = filepath.Join(base, b.Image.Path)
			}
		case b.Paragraph != nil:
			for _, fn := range b.Paragraph.Footnotes {
				resolvePaths(fn.Content, base)
			}
		case b.Table != nil:
			for _, c := range b.Table.Cells {
				resolvePaths(c.Content, base)
			}
		case b.Section != nil:
			resolvePaths(b.Section.Footer, base)
			resolvePaths(b.Section.Content, base)
		}
	}
}
