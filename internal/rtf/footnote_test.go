package rtf

import (
	"errors"
	"testing"
)

func TestFootnote_Position(t *testing.T) {
	tests := []struct {
		pos     int
		wantErr bool
	}{
		{0, false},
		{6, false},
		{7, true},
		{-1, true},
	}

	for _, tt := range tests {
		doc := NewDocument(PaperA4, Portrait, LcidEnglish)
		p := doc.AddParagraph()
		p.SetText("Footnot")

		fn, err := p.AddFootnote(tt.pos)
		if tt.wantErr {
			if !errors.Is(err, ErrConstruction) {
				t.Errorf("position %d: expected construction error, got %v", tt.pos, err)
			}
			if len(p.Footnotes()) != 0 {
				t.Errorf("position %d: failed footnote was attached", tt.pos)
			}
			continue
		}
		if err != nil {
			t.Fatalf("position %d: unexpected error: %v", tt.pos, err)
		}
		if fn.Position() != tt.pos {
			t.Errorf("expected position %d, got %d", tt.pos, fn.Position())
		}
	}
}

func TestFootnote_AllowedContainers(t *testing.T) {
	doc := NewDocument(PaperA4, Portrait, LcidEnglish)

	header := doc.Header().AddParagraph()
	header.SetText("header")
	if _, err := header.AddFootnote(0); !errors.Is(err, ErrConstruction) {
		t.Errorf("expected footnote rejected in header, got %v", err)
	}

	p := doc.AddParagraph()
	p.SetText("body")
	fn, err := p.AddFootnote(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inner := fn.AddParagraph()
	inner.SetText("note")
	if _, err := inner.AddFootnote(0); !errors.Is(err, ErrConstruction) {
		t.Errorf("expected nested footnote rejected, got %v", err)
	}
	if _, err := fn.AddTable(1, 1, 100, 0); !errors.Is(err, ErrConstruction) {
		t.Errorf("expected table rejected in footnote, got %v", err)
	}

	table, err := doc.AddTable(1, 1, 100, 0)
	if err != nil {
		t.Fatalf("AddTable: %v", err)
	}
	cell, _ := table.Cell(0, 0)
	cp := cell.AddParagraph()
	cp.SetText("cell")
	if _, err := cp.AddFootnote(3); err != nil {
		t.Errorf("unexpected error for footnote in cell: %v", err)
	}
}
