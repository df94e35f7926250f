package build

import (
	"fmt"
	"strings"

	"github.com/roboco-io/rtfwriter/internal/rtf"
)

var alignNames = map[string]rtf.Align{
	"":            rtf.AlignNone,
	"left":        rtf.AlignLeft,
	"right":       rtf.AlignRight,
	"center":      rtf.AlignCenter,
	"centre":      rtf.AlignCenter,
	"justify":     rtf.AlignFullyJustify,
	"distributed": rtf.AlignDistributed,
}

var fieldNames = map[string]rtf.FieldType{
	"page":          rtf.FieldPage,
	"num_pages":     rtf.FieldNumPages,
	"date":          rtf.FieldDate,
	"time":          rtf.FieldTime,
	"section_pages": rtf.FieldSectionPages,
}

var twoInOneNames = map[string]rtf.TwoInOneStyle{
	"":            rtf.TwoInOneNone,
	"none":        rtf.TwoInOneNone,
	"parentheses": rtf.TwoInOneParentheses,
	"square":      rtf.TwoInOneSquareBrackets,
	"angle":       rtf.TwoInOneAngleBrackets,
	"braces":      rtf.TwoInOneBraces,
}

var borderNames = map[string]rtf.BorderStyle{
	"none":   rtf.BorderNone,
	"single": rtf.BorderSingle,
	"dotted": rtf.BorderDotted,
	"dashed": rtf.BorderDashed,
	"double": rtf.BorderDouble,
	"thick":  rtf.BorderThick,
}

var valignNames = map[string]rtf.VAlign{
	"":       rtf.VAlignTop,
	"top":    rtf.VAlignTop,
	"middle": rtf.VAlignMiddle,
	"center": rtf.VAlignMiddle,
	"bottom": rtf.VAlignBottom,
}

func lookup[T any](kind string, names map[string]T, s string) (T, error) {
	v, ok := names[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return v, fmt.Errorf("unknown %s: %q", kind, s)
	}
	return v, nil
}

func parseAlign(s string) (rtf.Align, error) { return lookup("alignment", alignNames, s) }

func parseField(s string) (rtf.FieldType, error) { return lookup("field", fieldNames, s) }

func parseTwoInOne(s string) (rtf.TwoInOneStyle, error) {
	return lookup("two-in-one style", twoInOneNames, s)
}

func parseBorderStyle(s string) (rtf.BorderStyle, error) {
	return lookup("border style", borderNames, s)
}

func parseVAlign(s string) (rtf.VAlign, error) {
	return lookup("vertical alignment", valignNames, s)
}
