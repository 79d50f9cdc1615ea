// Package aksara implements the auxiliary syllable analyzer of spec.md
// §4.6-§4.7: splitting a Roman word into aksaras (syllables, trailing
// consonant clusters, and punctuation/number/audio-marker runs),
// classifying each, and migrating orphan consonants across syllable
// boundaries for word-wise rendering.
package aksara

import (
	"regexp"
	"strings"
)

// punctNumRe is the punctuation/number/audio-marker regex of spec.md §4.6.
var punctNumRe = regexp.MustCompile(`[▷,?!:]|\|+\d[|\d.\-]*|\|+|\d[\d.\-]*`)

// vowelGroupRe matches a run of vowels optionally followed by a single
// yogavaaha (anusvara or visarga).
var vowelGroupRe = regexp.MustCompile(`[aiuāīūṛṝḷḹáíúeēèoōò]+[ṃḥ]?`)

// Split partitions a Roman word into a sequence of syllables (each ending
// in a vowel, plus an optional anusvara/visarga), trailing consonant
// clusters, and punctuation/number/audio-marker runs (spec.md §4.6,
// splitAksara).
func Split(word string) []string {
	var items []string
	pos := 0
	for _, m := range punctNumRe.FindAllStringIndex(word, -1) {
		if m[0] > pos {
			items = append(items, splitFragment(word[pos:m[0]])...)
		}
		items = append(items, word[m[0]:m[1]])
		pos = m[1]
	}
	if pos < len(word) {
		items = append(items, splitFragment(word[pos:])...)
	}
	return items
}

// MergeTrailingConsonant folds a length-1 consonant item at the word's
// logical end into the preceding item, when that preceding item ends in a
// vowel, tolerating intervening ▷ audio markers between the two. This is
// the pre-migration merge step of spec.md §4.6's transliterateWordwise,
// distinct from CombineAdjacentConsonants (§4.7), which runs afterward on
// the duplicated list.
func MergeTrailingConsonant(items []string) []string {
	isAudio := func(s string) bool { return strings.HasPrefix(s, "▷") }

	last := -1
	for i := len(items) - 1; i >= 0; i-- {
		if isAudio(items[i]) {
			continue
		}
		last = i
		break
	}
	if last <= 0 || !orphanConsonantRe.MatchString(items[last]) {
		return items
	}

	prev := -1
	for i := last - 1; i >= 0; i-- {
		if isAudio(items[i]) {
			continue
		}
		prev = i
		break
	}
	if prev < 0 || !endsInVowel(items[prev]) {
		return items
	}

	out := append([]string(nil), items...)
	out[prev] = out[prev] + out[last]
	return append(out[:last], out[last+1:]...)
}

// splitFragment repeatedly finds the next vowel group in an alphabetic
// fragment, emitting the text up to and including it as a syllable; any
// residual consonants with no following vowel become a final cluster.
func splitFragment(frag string) []string {
	var out []string
	rest := frag
	for {
		loc := vowelGroupRe.FindStringIndex(rest)
		if loc == nil {
			if rest != "" {
				out = append(out, rest)
			}
			return out
		}
		out = append(out, rest[:loc[1]])
		rest = rest[loc[1]:]
	}
}
