package common

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// CompiledMap is the product of (from scheme, to scheme): a routing table
// the Roman and Brahmic engines scan against (spec.md §3).
type CompiledMap struct {
	// Letters maps every recognized source token (vowels, consonants,
	// extras, symbols, yogavaahas, accents, and all of their alternates)
	// to its target rendering. Vowel-marks and the virama are not in
	// Letters; they are only in Marks.
	Letters map[string]string

	// Marks maps a source token to the target rendering used right after
	// a consonant: vowel-marks and virama.
	Marks map[string]string

	// Consonants is the set of source tokens that are consonants.
	Consonants map[string]struct{}

	// Accents maps a source accent token to its target rendering, used to
	// reorder accents around yogavaahas at the engine boundary.
	Accents map[string]string

	// MaxTokenLength is the maximum length, in grapheme clusters, over
	// every recognized source token.
	MaxTokenLength int

	FromRoman bool
	ToRoman   bool

	// Virama is the target scheme's virama rendering.
	Virama string

	// ToSchemeA and FromSchemeA are the short-a vowel's rendering in the
	// target and source scheme respectively.
	ToSchemeA   string
	FromSchemeA string
}

func graphemeLen(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

func (cm *CompiledMap) noteLength(token string) {
	if n := graphemeLen(token); n > cm.MaxTokenLength {
		cm.MaxTokenLength = n
	}
}

// IsConsonant reports whether token is a recognized consonant source token.
func (cm *CompiledMap) IsConsonant(token string) bool {
	_, ok := cm.Consonants[token]
	return ok
}

// compile builds a CompiledMap for (from, to) per spec.md §4.2.
func compile(from, to *Scheme) (*CompiledMap, error) {
	cm := &CompiledMap{
		Letters:    make(map[string]string),
		Marks:      make(map[string]string),
		Consonants: make(map[string]struct{}),
		Accents:    make(map[string]string),
		FromRoman:  from.IsRoman,
		ToRoman:    to.IsRoman,
	}

	for groupName, srcGroup := range from.Groups {
		targetGroup := to.Group(groupName)
		if targetGroup == nil {
			continue
		}
		for key, srcRendering := range srcGroup {
			targetRendering := targetGroup[key]
			if targetRendering == "" && groupName != GroupVirama && groupName != GroupZWJ && groupName != GroupSkip {
				targetRendering = srcRendering
			}

			tokens := append([]string{srcRendering}, from.Alternates[srcRendering]...)

			switch groupName {
			case GroupVowelMarks, GroupVirama:
				for _, tok := range tokens {
					cm.Marks[tok] = targetRendering
					cm.noteLength(tok)
				}
			case GroupAccents:
				for _, tok := range tokens {
					cm.Accents[tok] = targetRendering
					cm.Letters[tok] = targetRendering
					cm.noteLength(tok)
				}
			case GroupConsonants, GroupExtraConsonants:
				for _, tok := range tokens {
					cm.Letters[tok] = targetRendering
					cm.Consonants[tok] = struct{}{}
					cm.noteLength(tok)
				}
			default:
				for _, tok := range tokens {
					cm.Letters[tok] = targetRendering
					cm.noteLength(tok)
				}
			}
		}
	}

	if err := applyAccentedVowelAlternates(from, cm); err != nil {
		return nil, err
	}

	if cm.MaxTokenLength < 1 {
		cm.MaxTokenLength = 1
	}

	cm.Virama = to.Group(GroupVirama)[ViramaKey]
	cm.ToSchemeA = to.Group(GroupVowels)[ShortAKey]
	cm.FromSchemeA = from.Group(GroupVowels)[ShortAKey]

	return cm, nil
}

// applyAccentedVowelAlternates implements spec.md §4.2's post-process step:
// every alternate spelling of an accented vowel becomes its own source
// token, built by concatenating the already-compiled base vowel's
// rendering with the (possibly remapped) accent.
func applyAccentedVowelAlternates(from *Scheme, cm *CompiledMap) error {
	for accentedKey, synonyms := range from.AccentedVowelAlternates {
		baseVowel, sourceAccent := splitAccentedKey(accentedKey)

		targetAccent := sourceAccent
		if mapped, ok := cm.Accents[sourceAccent]; ok {
			targetAccent = mapped
		}

		baseLetters, ok := cm.Letters[baseVowel]
		if !ok {
			logger.Warn().
				Str("accented_key", accentedKey).
				Str("base_vowel", baseVowel).
				Msg("sanscript: accented-vowel alternate has no compiled base vowel, skipping")
			continue
		}
		baseMarks := cm.Marks[baseVowel]

		for _, syn := range synonyms {
			cm.Marks[syn] = baseMarks + targetAccent
			cm.Letters[syn] = baseLetters + targetAccent
			cm.noteLength(syn)
		}
	}
	return nil
}

// Compile returns the compiled map for (fromName, toName), reusing r's
// single-slot cache when possible (spec.md §4.2, §5).
func Compile(r *Registry, fromName, toName string, opts Options) (*CompiledMap, error) {
	if cm, ok := r.cache.lookup(fromName, toName, opts); ok {
		return cm, nil
	}

	from, ok := r.Get(fromName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, fromName)
	}
	to, ok := r.Get(toName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, toName)
	}

	cm, err := compile(from, to)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("from", fromName).Str("to", toName).Msg("sanscript: compiled new scheme map")
	r.cache.store(fromName, toName, opts, cm)
	return cm, nil
}
