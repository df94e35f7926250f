package rtf

import "testing"

func TestEscapeString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Hello, world", "Hello, world"},
		{"braces and backslash", `a{b}c\`, `a\{b\}c\\`},
		{"newline", "x\ny", `x\line y`},
		{"crlf", "x\r\ny", `x\line y`},
		{"tab", "a\tb", `a\tab b`},
		{"control char", "\x01", `\'01`},
		{"latin-1", "café", `caf\'e9`},
		{"cp1252 only", "€", `\'80`},
		{"hangul", "한", `\u-10916?`},
		{"han", "中", `\u20013?`},
		{"astral", "😀", `\u-10179?\u-8704?`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeString(tt.in); got != tt.want {
				t.Errorf("escapeString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
