package rtf

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
)

// writeEscaped writes s as RTF text. The document declares \ansicpg1252, so
// characters present in Windows-1252 are written as \'hh and everything else
// as \uN followed by a one-byte fallback (\uc1 is the reader default).
func writeEscaped(sb *strings.Builder, s string) {
	for _, r := range s {
		writeEscapedRune(sb, r)
	}
}

func writeEscapedRune(sb *strings.Builder, r rune) {
	switch {
	case r == '\\' || r == '{' || r == '}':
		sb.WriteByte('\\')
		sb.WriteRune(r)
	case r == '\n':
		sb.WriteString(`\line `)
	case r == '\t':
		sb.WriteString(`\tab `)
	case r == '\r':
		// dropped; "\r\n" becomes a single \line
	case r < 0x20:
		fmt.Fprintf(sb, `\'%02x`, r)
	case r < 0x80:
		sb.WriteRune(r)
	default:
		if b, ok := charmap.Windows1252.EncodeRune(r); ok {
			fmt.Fprintf(sb, `\'%02x`, b)
			return
		}
		for _, u := range utf16.Encode([]rune{r}) {
			fmt.Fprintf(sb, `\u%d?`, int16(u))
		}
	}
}

func escapeString(s string) string {
	var sb strings.Builder
	writeEscaped(&sb, s)
	return sb.String()
}
