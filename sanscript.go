// Package sanscript transliterates text between Roman and Brahmic
// representations of Sanskrit and related Indic languages. Schemes are
// registered once, at package init time, by blank-importing one of the
// schemes/* subpackages; callers then transliterate by scheme name.
package sanscript

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/aksara"
	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/common"
	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/detect"
	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/engine"
)

// AddBrahmicScheme registers a Brahmic (abugida) scheme under name.
func AddBrahmicScheme(name string, s *common.Scheme) error {
	return common.Default.AddBrahmicScheme(name, s)
}

// AddRomanScheme registers a Roman (alphabetic) scheme under name.
func AddRomanScheme(name string, s *common.Scheme) error {
	return common.Default.AddRomanScheme(name, s)
}

// GetScheme returns the scheme registered under name, if any.
func GetScheme(name string) (*common.Scheme, bool) {
	return common.Default.Get(name)
}

// Pair is one [original, result] element of a TransliterateWordwise call,
// per spec.md §4.6/§6.
type Pair struct {
	Original string
	Result   string
}

var (
	itransExplicitMarkRe = regexp.MustCompile(`\{\\m\+\}`)
	itransEscapeRe        = regexp.MustCompile(`\\[^'` + "`" + `_]`)
	tamilSuperscriptRe    = regexp.MustCompile(`[²³⁴]`)
	tamilMarkRunRe        = regexp.MustCompile(`[\x{0BBE}-\x{0BCD}॒॑]+`)
	iastQuoteRe           = regexp.MustCompile(`['‘’]`)
	iastDigitDotDigitRe   = regexp.MustCompile(`(\d)\.(\d)`)
	iastPunctRe           = regexp.MustCompile(`(^|[^#\\])([,?!:])`)
)

// Transliterate renders data, written in the from scheme, into the to
// scheme, applying the per-pair preprocessing and postprocessing steps of
// spec.md §4.5. If from is "", it is guessed with detect.Detect; to is
// never guessed (spec.md §4.5 step 1 only auto-detects from).
func Transliterate(data, from, to string, opts common.Options) (string, error) {
	if from == "" {
		from = strings.ToLower(detect.Detect(data))
	}

	fromScheme, ok := common.Default.Get(from)
	if !ok {
		return "", fmt.Errorf("%w: %q", common.ErrUnknownScheme, from)
	}
	toScheme, ok := common.Default.Get(to)
	if !ok {
		return "", fmt.Errorf("%w: %q", common.ErrUnknownScheme, to)
	}

	cm, err := common.Compile(common.Default, from, to, opts)
	if err != nil {
		return "", err
	}

	text := preprocessPair(data, from, to)
	text = applyFromShortcuts(text, fromScheme)

	var result string
	if fromScheme.IsRoman {
		result = engine.Roman(text, cm, toScheme, engine.RomanOptions{
			SkipSGML: opts.SkipSGML,
			Syncope:  opts.Syncope,
		})
	} else {
		result = engine.Brahmic(text, cm, fromScheme, engine.BrahmicOptions{})
	}

	result = applyToShortcuts(result, toScheme)
	if to == "tamil_superscripted" {
		result = moveSuperscriptAfterMarkRun(result)
	}
	result = applyPreferredAlternates(result, to, opts.PreferredAlternates)
	return result, nil
}

// preprocessPair implements spec.md §4.5 step 4's per-(from,to) rewrites
// that run before tokenization.
func preprocessPair(data, from, to string) string {
	switch {
	case from == "itrans":
		data = itransExplicitMarkRe.ReplaceAllString(data, ".h.N")
		data = strings.ReplaceAll(data, ".h", "")
		data = itransEscapeRe.ReplaceAllStringFunc(data, func(m string) string {
			return "##" + m + "##"
		})
	case from == "tamil_superscripted":
		data = moveSuperscriptBeforeMarkRun(data)
	case from == "iast" && to == "devanagari":
		data = iastQuoteRe.ReplaceAllString(data, "'")
		data = iastDigitDotDigitRe.ReplaceAllString(data, "$1##.##$2")
		data = strings.ReplaceAll(data, "-", "")
		data = iastPunctRe.ReplaceAllString(data, "$1|")
	}
	return data
}

// moveSuperscriptBeforeMarkRun relocates a trailing superscript digit that
// follows a run of Tamil vowel-marks/virama/accent marks to just before
// that run (spec.md §4.5 step 4b, input side).
func moveSuperscriptBeforeMarkRun(data string) string {
	re := regexp.MustCompile(tamilMarkRunRe.String() + tamilSuperscriptRe.String())
	return re.ReplaceAllStringFunc(data, func(m string) string {
		loc := tamilSuperscriptRe.FindStringIndex(m)
		return m[loc[0]:loc[1]] + m[:loc[0]]
	})
}

// moveSuperscriptAfterMarkRun is the output-side inverse of
// moveSuperscriptBeforeMarkRun (spec.md §4.5 step 8).
func moveSuperscriptAfterMarkRun(data string) string {
	re := regexp.MustCompile(tamilSuperscriptRe.String() + tamilMarkRunRe.String())
	return re.ReplaceAllStringFunc(data, func(m string) string {
		loc := tamilSuperscriptRe.FindStringIndex(m)
		return m[loc[1]:] + m[loc[0]:loc[1]]
	})
}

// applyFromShortcuts implements spec.md §4.5 step 5: canonicalize any
// shortened spelling back into its long key before tokenization.
func applyFromShortcuts(data string, from *common.Scheme) string {
	for _, sc := range from.Shortcuts {
		if strings.Contains(sc.Long, sc.Short) {
			data = strings.ReplaceAll(data, sc.Long, sc.Short)
		}
		data = strings.ReplaceAll(data, sc.Short, sc.Long)
	}
	return data
}

// applyToShortcuts implements spec.md §4.5 step 7, the symmetric
// postprocessing rewrite.
func applyToShortcuts(data string, to *common.Scheme) string {
	for _, sc := range to.Shortcuts {
		if strings.Contains(sc.Short, sc.Long) {
			data = strings.ReplaceAll(data, sc.Short, sc.Long)
		}
		data = strings.ReplaceAll(data, sc.Long, sc.Short)
	}
	return data
}

// applyPreferredAlternates applies the literal -> replacement rewrites
// registered for the to scheme, in deterministic lexicographic key order
// (spec.md §9's Open Question on preferred-alternates ordering, resolved
// in SPEC_FULL.md's SUPPLEMENTED FEATURES section).
func applyPreferredAlternates(data, to string, alternates map[string]map[string]string) string {
	group, ok := alternates[to]
	if !ok || len(group) == 0 {
		return data
	}
	keys := make([]string, 0, len(group))
	for canonical := range group {
		keys = append(keys, canonical)
	}
	sort.Strings(keys)
	for _, canonical := range keys {
		data = strings.ReplaceAll(data, canonical, group[canonical])
	}
	return data
}

var audioGlueRe = regexp.MustCompile(`([,?!:|.\-\d]+)\s*(▷)`)
var audioDashGlueRe = regexp.MustCompile(`(▷[\da-z]*)\s+(-)`)

// TransliterateWordwise renders data word by word, returning one Pair per
// word: its original form (or, when syllable splitting runs, its
// syllables rejoined per opts.SplitAksara) and its transliteration, per
// spec.md §4.6.
func TransliterateWordwise(data, from, to string, opts common.Options) ([]Pair, error) {
	if strings.Contains(data, "▷") {
		data = audioGlueRe.ReplaceAllString(data, "$1$2")
		data = audioDashGlueRe.ReplaceAllString(data, "$1$2")
	}

	words := strings.Fields(data)
	pairs := make([]Pair, 0, len(words))

	for _, word := range words {
		hasAudio := strings.Contains(word, "▷")
		if !opts.SplitAksara && !hasAudio {
			result, err := Transliterate(word, from, to, opts)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, Pair{Original: word, Result: result})
			continue
		}

		stripped, audios := aksara.PickAudioNumbers(word)
		syllables := aksara.Split(stripped)
		syllables = aksara.MergeTrailingConsonant(syllables)
		sy2 := append([]string(nil), syllables...)
		syllables, sy2 = aksara.CombineAdjacentConsonants(syllables, sy2, opts.MoveConsonant)

		rendered := make([]string, len(sy2))
		for i, syl := range sy2 {
			r, err := Transliterate(syl, from, to, opts)
			if err != nil {
				return nil, err
			}
			rendered[i] = r
		}

		sep := ""
		if opts.SplitAksara {
			sep = "\t"
		}
		original := strings.Join(syllables, sep)
		original = aksara.RefillAudioNumbers(audios, 0, original)
		result := strings.Join(rendered, sep)
		pairs = append(pairs, Pair{Original: original, Result: result})
	}
	return pairs, nil
}
