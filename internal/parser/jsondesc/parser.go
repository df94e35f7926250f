// Package jsondesc provides a parser for JSON document descriptions.
package jsondesc

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/roboco-io/rtfwriter/internal/ir"
	"github.com/roboco-io/rtfwriter/internal/parser"
)

// Parser parses JSON descriptions.
type Parser struct {
	path    string
	reader  io.Reader
	closer  io.Closer
	options parser.Options
}

// New creates a new JSON parser for the given file path. Relative image
// paths resolve against the file's directory unless opts.BaseDir is set.
func New(path string, opts parser.Options) (*Parser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open JSON description: %w", err)
	}
	if opts.BaseDir == "" {
		opts.BaseDir = filepath.Dir(path)
	}
	return &Parser{
		path:    path,
		reader:  f,
		closer:  f,
		options: opts,
	}, nil
}

// NewFromReader creates a parser reading from r. Close does not close r.
func NewFromReader(r io.Reader, opts parser.Options) *Parser {
	return &Parser{
		path:    "<stdin>",
		reader:  r,
		options: opts,
	}
}

// Parse implements the Parser interface.
func (p *Parser) Parse() (*ir.Document, error) {
	dec := json.NewDecoder(p.reader)
	if p.options.Strict {
		dec.DisallowUnknownFields()
	}

	var doc ir.Document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty description %s", p.path)
		}
		return nil, fmt.Errorf("failed to decode %s: %w", p.path, err)
	}
	if err := parser.Finish(&doc, p.options); err != nil {
		return nil, fmt.Errorf("%s: %w", p.path, err)
	}
	return &doc, nil
}

// Close releases resources.
func (p *Parser) Close() error {
	if p.closer != nil {
		return p.closer.Close()
	}
	return nil
}
