package ir

// SectionBlock starts a new section. Size and Orientation, when set,
// override the page of the section.
type SectionBlock struct {
	Size        string  `json:"size,omitempty" yaml:"size,omitempty"`
	Orientation string  `json:"orientation,omitempty" yaml:"orientation,omitempty"`
	Footer      []Block `json:"footer,omitempty" yaml:"footer,omitempty"`
	Content     []Block `json:"content" yaml:"content"`
}
