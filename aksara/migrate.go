package aksara

import (
	"regexp"
	"strings"
)

var (
	orphanConsonantRe = regexp.MustCompile(`^[kgcjṭḍtdpbṅñṇnmyrlvśṣsh]$`)
	leadingConsonantRe = regexp.MustCompile(`^(kṣ|jñ|ll|[kgcjṭḍtdpb]h?|[ṅñṇnmyrlvśṣsh])`)
	restrictedLeadRe   = regexp.MustCompile(`^[ṅñṇnmrśṣsh]$`)
	firstAlphaRe       = regexp.MustCompile(`[a-zāīūṛṝḷḹáíúeēèoōòṃḥṅñṭḍṇśṣ]`)
	vowelEndRe         = regexp.MustCompile(`[aiuāīūṛṝḷḹáíúeēèoōò][ṃḥ]?$`)
)

// realText strips the audio markers out of s, mirroring the "skip ▷ markers
// to find the real text" rule of spec.md §4.7.
func realText(s string) string {
	return strings.ReplaceAll(s, "▷", "")
}

func endsInVowel(s string) bool {
	return vowelEndRe.MatchString(realText(s))
}

// leadingConsonant reports the consonant cluster/singleton that right
// begins with, skipping over any leading audio markers, or ok=false if
// right's first alphabetic character is not a consonant.
func leadingConsonant(right string) (cluster string, ok bool) {
	text := realText(right)
	loc := firstAlphaRe.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	m := leadingConsonantRe.FindString(text[loc[0]:])
	if m == "" {
		return "", false
	}
	return m, true
}

// CombineAdjacentConsonants walks syllables/sy2 (two parallel copies of a
// split word: syllables is the displayed form, sy2 the form that gets
// transliterated) right to left, merging an orphan trailing consonant into
// the consonant head of the following syllable, and — when moveConsonant
// is set — pulling a lone nasal, r, sibilant, or h lead consonant back
// onto a preceding vowel-final syllable, per spec.md §4.7's
// consonant-migration rules.
func CombineAdjacentConsonants(syllables, sy2 []string, moveConsonant bool) ([]string, []string) {
	i := len(sy2) - 2
	for i >= 0 {
		left := strings.Trim(realText(sy2[i]), "-")
		right := sy2[i+1]
		lead, rightBeginsCon := leadingConsonant(right)

		switch {
		case orphanConsonantRe.MatchString(left) && rightBeginsCon:
			merged := mergeConsonantIntoRight(left, right, lead)
			sy2[i+1] = merged
			sy2 = append(sy2[:i], sy2[i+1:]...)
			if i < len(syllables) && i+1 < len(syllables) {
				syllables[i+1] = mergeConsonantIntoRight(left, syllables[i+1], lead)
				syllables = append(syllables[:i], syllables[i+1:]...)
			}

		case moveConsonant && endsInVowel(left) && rightBeginsCon &&
			len([]rune(lead)) == 1 && restrictedLeadRe.MatchString(lead):
			if i < len(syllables) {
				syllables[i] = syllables[i] + lead
			}
			if i+1 < len(syllables) {
				syllables[i+1] = strings.Replace(syllables[i+1], lead, "", 1)
				if syllables[i+1] == "" {
					syllables = append(syllables[:i+1], syllables[i+2:]...)
				}
			}
			if i < len(sy2) {
				sy2[i] = sy2[i] + lead
			}
			if i+1 < len(sy2) {
				sy2[i+1] = strings.Replace(sy2[i+1], lead, "", 1)
			}
		}
		i--
	}
	return syllables, sy2
}

// mergeConsonantIntoRight prepends the orphan consonant prefix onto right,
// placing it just before right's leading consonant cluster so that any
// preserved hyphen or audio marker stays outermost.
func mergeConsonantIntoRight(prefix, right, lead string) string {
	if idx := strings.Index(right, lead); idx >= 0 {
		return right[:idx] + prefix + right[idx:]
	}
	return prefix + right
}
