package aksara

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	numRe   = regexp.MustCompile(`[0-9०-९]`)
	punctRe = regexp.MustCompile(`^[,.?!:|।॥]`)

	// consonantRe recognizes the consonant clusters/singletons the type
	// classifier counts within an aksara item.
	consonantRe = regexp.MustCompile(`kṣ|jñ|ll|[kgcjṭḍtdpb]h?|[ṅñṇnmyrlvśṣsh]`)
	vowelRe     = regexp.MustCompile(`[aiuāīūṛṝḷḹáíúeēèoōò]`)
)

// Type classifies a single item returned by Split: " " for an empty item,
// "u" for an audio marker, "n" for a number, "p" for leading punctuation,
// and otherwise a digit code combining whether the item carries a vowel
// (+4) with how many consonants it carries (0, 1, or 2+), per spec.md §4.6.
// An item packing several parts together with tabs is typed part-by-part
// and the results concatenated.
func Type(item string) string {
	if item == "" {
		return " "
	}
	if strings.Contains(item, "\t") {
		var sb strings.Builder
		for _, part := range strings.Split(item, "\t") {
			sb.WriteString(Type(part))
		}
		return sb.String()
	}
	if strings.HasPrefix(item, "▷") {
		return "u"
	}
	if numRe.MatchString(item) {
		return "n"
	}
	if punctRe.MatchString(item) {
		return "p"
	}
	return strconv.Itoa(aksaraCode(item))
}

func aksaraCode(item string) int {
	count := len(consonantRe.FindAllString(item, -1))
	code := 0
	switch {
	case count == 0:
		code = 0
	case count == 1:
		code = 1
	default:
		code = 2
	}
	if vowelRe.MatchString(item) {
		code += 4
	}
	return code
}
