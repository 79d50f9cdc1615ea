// Package detect implements the scheme auto-detector of spec.md §4.1: a
// code-point range test for Brahmic scripts, followed by a cascade of
// regex discriminators over Roman text.
package detect

import "regexp"

// brahmicBlock names the Brahmic Unicode blocks the detector recognizes,
// ordered by ascending code-point start so the highest block whose start
// is <= the character's code point wins.
type brahmicBlock struct {
	start rune
	name  string
}

var brahmicBlocks = []brahmicBlock{
	{0x0900, "Devanagari"},
	{0x0980, "Bengali"},
	{0x0A00, "Gurmukhi"},
	{0x0A80, "Gujarati"},
	{0x0B00, "Oriya"},
	{0x0B80, "Tamil"},
	{0x0C00, "Telugu"},
	{0x0C80, "Kannada"},
	{0x0D00, "Malayalam"},
}

const (
	brahmicRangeStart = 0x0900
	brahmicRangeEnd   = 0x0D7F
)

var (
	iastOrKolkataRe = regexp.MustCompile(`[āīūṛṝḷḹēōṃḥṅñṭḍṇśṣḻ]`)
	kolkataOnlyRe   = regexp.MustCompile(`[ēō]`)
	itransOnlyRe    = regexp.MustCompile(`ee|oo|\^[iI]|RR[iI]|L[iI]|~N|N\^|Ch|chh|JN|sh|Sh|\.a`)
	slp1BigramRe    = regexp.MustCompile(`kz|Nk|Ng|tT|dD|Sc|Sn`)
	slp1VowelRRe    = regexp.MustCompile(`[aAiIuUfFxXeEoO]R`)
	slp1GyRe        = regexp.MustCompile(`G[yr]`)
	slp1GStartRe    = regexp.MustCompile(`(^|\W)G`)
	slp1CharsRe     = regexp.MustCompile(`[fFxXEOCYwWqQPB]`)
	velthuisOnlyRe  = regexp.MustCompile(`\.[mhnrltds]|"n|~s`)
	itransDoubledRe = regexp.MustCompile(`aa|ii|uu|~n`)
)

// Detect returns the name of the scheme text is most likely written in,
// defaulting to "HK" if nothing else matches. It never fails: unrecognized
// or empty input simply falls through to the default.
func Detect(text string) string {
	for _, r := range text {
		if r >= brahmicRangeStart && r <= brahmicRangeEnd {
			return detectBrahmicBlock(r)
		}
	}

	switch {
	case iastOrKolkataRe.MatchString(text):
		if kolkataOnlyRe.MatchString(text) {
			return "Kolkata"
		}
		return "IAST"
	case itransOnlyRe.MatchString(text):
		return "ITRANS"
	case isSLP1(text):
		return "SLP1"
	case velthuisOnlyRe.MatchString(text):
		return "Velthuis"
	case itransDoubledRe.MatchString(text):
		return "ITRANS"
	default:
		return "HK"
	}
}

func isSLP1(text string) bool {
	return slp1CharsRe.MatchString(text) ||
		slp1BigramRe.MatchString(text) ||
		slp1VowelRRe.MatchString(text) ||
		slp1GyRe.MatchString(text) ||
		slp1GStartRe.MatchString(text)
}

func detectBrahmicBlock(r rune) string {
	name := brahmicBlocks[0].name
	for _, b := range brahmicBlocks {
		if b.start > r {
			break
		}
		name = b.name
	}
	return name
}
