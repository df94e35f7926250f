package ir

// ListBlock represents a list (ordered or unordered). The builder renders
// each item as an indented paragraph with a bullet or number prefix.
type ListBlock struct {
	Ordered bool       `json:"ordered" yaml:"ordered"` // true = numbered list, false = bullet list
	Items   []ListItem `json:"items" yaml:"items"`
	Start   int        `json:"start,omitempty" yaml:"start,omitempty"` // starting number for ordered lists
	Style   *TextStyle `json:"style,omitempty" yaml:"style,omitempty"`
}

// ListItem represents a single item in a list.
type ListItem struct {
	Text     string     `json:"text" yaml:"text"`
	Level    int        `json:"level,omitempty" yaml:"level,omitempty"`       // nesting level (0 = top level)
	Children []ListItem `json:"children,omitempty" yaml:"children,omitempty"` // nested items
}

// NewList creates a new list block.
func NewList(ordered bool) *ListBlock {
	return &ListBlock{
		Ordered: ordered,
		Items:   make([]ListItem, 0),
		Start:   1,
	}
}

// NewOrderedList creates a new ordered (numbered) list.
func NewOrderedList() *ListBlock {
	return NewList(true)
}

// NewUnorderedList creates a new unordered (bullet) list.
func NewUnorderedList() *ListBlock {
	return NewList(false)
}

// AddItem adds an item to the list.
func (l *ListBlock) AddItem(text string) {
	l.Items = append(l.Items, ListItem{Text: text})
}

// AddItemWithLevel adds an item with a specific nesting level.
func (l *ListBlock) AddItemWithLevel(text string, level int) {
	l.Items = append(l.Items, ListItem{Text: text, Level: level})
}

// IsEmpty returns true if the list has no items.
func (l *ListBlock) IsEmpty() bool {
	return len(l.Items) == 0
}

// FlatItem is a list item with its resolved nesting level.
type FlatItem struct {
	Text  string
	Level int
}

// Flatten returns the items depth-first. A child is one level deeper than
// its parent unless it declares a deeper level itself.
func (l *ListBlock) Flatten() []FlatItem {
	var out []FlatItem
	var walk func(items []ListItem, min int)
	walk = func(items []ListItem, min int) {
		for _, it := range items {
			level := it.Level
			if level < min {
				level = min
			}
			out = append(out, FlatItem{Text: it.Text, Level: level})
			walk(it.Children, level+1)
		}
	}
	walk(l.Items, 0)
	return out
}
