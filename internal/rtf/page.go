package rtf

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// PaperSize is a named paper size.
type PaperSize int

const (
	PaperA4 PaperSize = iota
	PaperLetter
	PaperA3
	PaperA5
	PaperLegal
	PaperB5
)

// dimensions in twips, portrait
var paperTwips = map[PaperSize][2]int{
	PaperA4:     {11906, 16838},
	PaperLetter: {12240, 15840},
	PaperA3:     {16838, 23811},
	PaperA5:     {8391, 11906},
	PaperLegal:  {12240, 20160},
	PaperB5:     {9979, 14173},
}

var paperNames = map[PaperSize]string{
	PaperA4:     "a4",
	PaperLetter: "letter",
	PaperA3:     "a3",
	PaperA5:     "a5",
	PaperLegal:  "legal",
	PaperB5:     "b5",
}

func (p PaperSize) String() string {
	if name, ok := paperNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PaperSize(%d)", int(p))
}

// ParsePaperSize parses a paper size name such as "a4" or "Letter".
func ParsePaperSize(s string) (PaperSize, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range paperNames {
		if n == name {
			return p, nil
		}
	}
	return PaperA4, fmt.Errorf("unknown paper size: %s", s)
}

// Orientation is the page orientation.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// ParseOrientation parses "portrait" or "landscape".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "portrait", "":
		return Portrait, nil
	case "landscape":
		return Landscape, nil
	default:
		return Portrait, fmt.Errorf("unknown orientation: %s", s)
	}
}

// pageTwips returns width and height with the orientation applied.
func pageTwips(p PaperSize, o Orientation) (int, int) {
	d, ok := paperTwips[p]
	if !ok {
		d = paperTwips[PaperA4]
	}
	if o == Landscape {
		return d[1], d[0]
	}
	return d[0], d[1]
}

// Lcid is a Windows locale identifier written into \deflang.
type Lcid int

const (
	LcidEnglish             Lcid = 1033
	LcidEnglishUK           Lcid = 2057
	LcidTraditionalChinese  Lcid = 1028
	LcidSimplifiedChinese   Lcid = 2052
	LcidJapanese            Lcid = 1041
	LcidKorean              Lcid = 1042
	LcidFrench              Lcid = 1036
	LcidGerman              Lcid = 1031
	LcidSpanish             Lcid = 3082
	LcidItalian             Lcid = 1040
	LcidPortuguese          Lcid = 2070
	LcidBrazilianPortuguese Lcid = 1046
	LcidRussian             Lcid = 1049
	LcidDutch               Lcid = 1043
	LcidArabic              Lcid = 1025
)

// the first entry is the matcher's fallback
var lcidTags = []struct {
	tag  language.Tag
	lcid Lcid
}{
	{language.AmericanEnglish, LcidEnglish},
	{language.BritishEnglish, LcidEnglishUK},
	{language.TraditionalChinese, LcidTraditionalChinese},
	{language.SimplifiedChinese, LcidSimplifiedChinese},
	{language.Japanese, LcidJapanese},
	{language.Korean, LcidKorean},
	{language.French, LcidFrench},
	{language.German, LcidGerman},
	{language.EuropeanSpanish, LcidSpanish},
	{language.Italian, LcidItalian},
	{language.EuropeanPortuguese, LcidPortuguese},
	{language.BrazilianPortuguese, LcidBrazilianPortuguese},
	{language.Russian, LcidRussian},
	{language.Dutch, LcidDutch},
	{language.Arabic, LcidArabic},
}

var lcidMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(lcidTags))
	for i, t := range lcidTags {
		tags[i] = t.tag
	}
	return language.NewMatcher(tags)
}()

// ParseLocale maps a BCP 47 tag such as "ko-KR", "zh-Hant" or "en" to the
// closest supported LCID.
func ParseLocale(s string) (Lcid, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return LcidEnglish, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	return LcidFromTag(tag)
}

// LcidFromTag maps a language tag to the closest supported LCID.
func LcidFromTag(tag language.Tag) (Lcid, error) {
	_, idx, conf := lcidMatcher.Match(tag)
	if conf == language.No {
		return LcidEnglish, fmt.Errorf("unsupported locale: %s", tag)
	}
	return lcidTags[idx].lcid, nil
}

// Tag returns the language tag of a supported LCID, or und.
func (l Lcid) Tag() language.Tag {
	for _, t := range lcidTags {
		if t.lcid == l {
			return t.tag
		}
	}
	return language.Und
}

// Direction selects one side of a box.
type Direction int

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

// Margins holds one length in points per direction.
type Margins [4]float32

func twips(pt float32) int {
	if pt < 0 {
		return -int(-pt*20 + 0.5)
	}
	return int(pt*20 + 0.5)
}
