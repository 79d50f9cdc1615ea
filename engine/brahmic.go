package engine

import (
	"strings"

	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/common"
)

// BrahmicOptions carries the Brahmic engine's recognized option flags. The
// engine currently has none of its own (skip_sgml and syncope apply only
// to Roman-source input), but the type keeps the two engines' call shape
// symmetric.
type BrahmicOptions struct{}

// Brahmic runs the single-codepoint Brahmic-source engine over data using
// cm, reordering yogavaaha-then-accent sequences in the input to
// accent-then-yogavaaha first when the target is Roman and carries
// accents, per spec.md §4.4.
func Brahmic(data string, cm *common.CompiledMap, from *common.Scheme, _ BrahmicOptions) string {
	input := data
	if cm.ToRoman && len(cm.Accents) > 0 {
		input = reorderYogavaahaBeforeAccent(input, keys(cm.Accents), from)
	}

	var out strings.Builder
	danglingHash := false
	skippingTrans := false
	hadRomanConsonant := false

	for _, r := range input {
		L := string(r)

		if L == "#" {
			if danglingHash {
				skippingTrans = !skippingTrans
				danglingHash = false
			} else {
				danglingHash = true
			}
			if hadRomanConsonant {
				out.WriteString(cm.ToSchemeA)
				hadRomanConsonant = false
			}
			continue
		}

		if skippingTrans {
			out.WriteString(L)
			continue
		}

		if target, ok := cm.Marks[L]; ok {
			out.WriteString(target)
			hadRomanConsonant = false
			continue
		}

		if danglingHash {
			out.WriteString("#")
			danglingHash = false
		}
		if hadRomanConsonant {
			out.WriteString(cm.ToSchemeA)
			hadRomanConsonant = false
		}

		if target, ok := cm.Letters[L]; ok {
			out.WriteString(target)
			hadRomanConsonant = cm.ToRoman && cm.IsConsonant(L)
		} else {
			out.WriteString(L)
		}
	}

	if danglingHash {
		out.WriteString("#")
	}
	if hadRomanConsonant {
		out.WriteString(cm.ToSchemeA)
	}
	return out.String()
}
