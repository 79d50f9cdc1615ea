// Package indic registers the remaining Brahmic abugidas by deriving each
// one from the canonical Devanagari table via the fixed Unicode-block
// offset that script shares with Devanagari — the same technique real
// Brahmic transliteration tables use for scripts whose codepoint layout
// parallels Devanagari's (SPEC_FULL.md's scheme-data supplement). It also
// registers the tamil_superscripted pseudo-scheme used by the top-level
// dispatcher's preprocessing-only reordering rule.
package indic

import (
	"fmt"

	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/common"
	_ "github.com/tassa-yoniso-manasi-karoto/go-sanscript/schemes/devanagari"
)

// blockOffsets is the codepoint delta from Devanagari's block start
// (U+0900) to each derived script's own block start.
var blockOffsets = map[string]rune{
	"bengali":   0x0980 - 0x0900,
	"gurmukhi":  0x0A00 - 0x0900,
	"gujarati":  0x0A80 - 0x0900,
	"oriya":     0x0B00 - 0x0900,
	"tamil":     0x0B80 - 0x0900,
	"telugu":    0x0C00 - 0x0900,
	"kannada":   0x0C80 - 0x0900,
	"malayalam": 0x0D00 - 0x0900,
}

// derivedGroups lists the groups whose codepoints reliably sit at the
// same block-relative offset across these scripts. Punctuation (danda,
// double danda) is shared, unshifted Unicode across all Brahmic scripts,
// and Vedic accent marks are not consistently encoded at the same
// relative offset outside Devanagari, so neither group is derived here.
var derivedGroups = []string{
	common.GroupVowels,
	common.GroupVowelMarks,
	common.GroupConsonants,
	common.GroupExtraConsonants,
	common.GroupVirama,
	common.GroupYogavaahas,
}

// tamilGaps lists canonical Devanagari keys with no corresponding distinct
// Tamil letter (Tamil script collapses several Sanskrit consonant and
// vowel distinctions); shifting would land on an unrelated or unassigned
// codepoint; SPEC_FULL.md notes round-trips through Tamil are best-effort.
var tamilGaps = map[string]bool{
	"ख": true, "घ": true, "छ": true, "झ": true, "ठ": true, "ढ": true,
	"थ": true, "ध": true, "फ": true, "भ": true,
	"ग": true, "ड": true, "द": true, "ब": true, "ँ": true,
	"ऋ": true, "ॠ": true, "ऌ": true, "ॡ": true,
	"ृ": true, "ॄ": true, "ॢ": true, "ॣ": true,
}

func init() {
	devanagari, ok := common.Default.Get("devanagari")
	if !ok {
		panic("schemes/indic: devanagari scheme not registered (blank-import schemes/devanagari first)")
	}

	for name, offset := range blockOffsets {
		derived := deriveScheme(devanagari, offset, name)
		if err := common.Default.AddBrahmicScheme(name, derived); err != nil {
			panic(fmt.Sprintf("schemes/indic: register %s: %v", name, err))
		}
	}

	if tamil, ok := common.Default.Get("tamil"); ok {
		if err := common.Default.AddBrahmicScheme("tamil_superscripted", tamil); err != nil {
			panic(fmt.Sprintf("schemes/indic: register tamil_superscripted: %v", err))
		}
	}
}

func deriveScheme(from *common.Scheme, offset rune, name string) *common.Scheme {
	s := common.NewScheme(false)
	for _, group := range derivedGroups {
		for key := range from.Group(group) {
			if name == "tamil" && tamilGaps[key] {
				continue
			}
			s.Set(group, key, shiftRunes(key, offset))
		}
	}
	// Danda and double danda are shared, unshifted Unicode across every
	// Brahmic script.
	s.Set(common.GroupSymbols, "।", "।")
	s.Set(common.GroupSymbols, "॥", "॥")
	return s
}

func shiftRunes(s string, offset rune) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, r+offset)
	}
	return string(out)
}
