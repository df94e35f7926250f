package ir

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument()

	if doc.Version != "1.0" {
		t.Errorf("expected version 1.0, got %s", doc.Version)
	}
	if len(doc.Content) != 0 {
		t.Errorf("expected empty content, got %d blocks", len(doc.Content))
	}
}

func TestDocument_AddParagraph(t *testing.T) {
	doc := NewDocument()
	p := NewParagraph("Hello, World!")

	doc.AddParagraph(p)

	if len(doc.Content) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Content))
	}
	if doc.Content[0].Type != BlockTypeParagraph {
		t.Errorf("expected paragraph type, got %s", doc.Content[0].Type)
	}
	if doc.Content[0].Paragraph.Text != "Hello, World!" {
		t.Errorf("expected 'Hello, World!', got %s", doc.Content[0].Paragraph.Text)
	}
}

func TestTableBlock_SetCell(t *testing.T) {
	table := NewTable(2, 3, 300)
	table.SetCell(0, 0, "Header 1")
	table.SetCell(0, 1, "Header 2")
	table.SetCell(0, 0, "Header 1 again")

	if len(table.Cells) != 2 {
		t.Fatalf("expected 2 cell entries, got %d", len(table.Cells))
	}
	if c := table.GetCell(0, 0); c == nil || c.Text != "Header 1 again" {
		t.Errorf("expected replaced text, got %+v", c)
	}
	if table.GetCell(1, 2) != nil {
		t.Error("expected no entry for (1,2)")
	}
}

func TestListBlock_Flatten(t *testing.T) {
	list := NewOrderedList()
	list.Items = []ListItem{
		{Text: "one", Children: []ListItem{
			{Text: "one.a"},
			{Text: "one.b", Level: 3},
		}},
		{Text: "two"},
	}

	want := []FlatItem{
		{Text: "one", Level: 0},
		{Text: "one.a", Level: 1},
		{Text: "one.b", Level: 3},
		{Text: "two", Level: 0},
	}
	if diff := cmp.Diff(want, list.Flatten()); diff != "" {
		t.Errorf("Flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument_Stats(t *testing.T) {
	doc := NewDocument()
	p := NewParagraph("text")
	p.AddFootnote(1, "note")
	doc.AddParagraph(p)

	table := NewTable(2, 2, 200)
	table.Merge(0, 0, 1, 2)
	table.Cells = append(table.Cells, Cell{Row: 1, Col: 1, Content: []Block{
		{Type: BlockTypeImage, Image: NewImage("a.png")},
	}})
	doc.AddTable(table)
	doc.AddSection(&SectionBlock{Content: []Block{ParagraphBlock(NewParagraph("s"))}})
	doc.Footer = []Block{ParagraphBlock(NewParagraph("f"))}

	want := Stats{Paragraphs: 4, Tables: 1, Images: 1, Sections: 1, Footnotes: 1, Merges: 1}
	if diff := cmp.Diff(want, doc.Stats()); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}
}

func TestFormat_InlineStyle(t *testing.T) {
	src := `
content:
  - type: paragraph
    paragraph:
      text: "0123456789"
      formats:
        - start: 2
          end: 5
          bold: true
          color: red
`
	var doc Document
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	f := doc.Content[0].Paragraph.Formats[0]
	if f.Start != 2 || f.End != 5 || !f.Bold || f.Color != "red" {
		t.Errorf("unexpected format: %+v", f)
	}

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	want := `{"start":2,"end":5,"color":"red","bold":true}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}

func TestDocument_JSONSerialization(t *testing.T) {
	doc := NewDocument()
	doc.Metadata.Title = "Test Document"
	doc.Metadata.Author = "Test Author"
	doc.Page.Size = "a4"

	p := NewParagraph("Test paragraph")
	p.Style.Alignment = "center"
	p.AddFormat(0, 4, TextStyle{Bold: true})
	doc.AddParagraph(p)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var restored Document
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if diff := cmp.Diff(*doc, restored); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
