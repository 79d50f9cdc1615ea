// Package engine implements the two transliteration engines of spec.md
// §4.3-§4.4: a longest-match Roman-source lexer with an implicit-vowel
// state machine, and a single-codepoint Brahmic-source stream translator.
package engine

import (
	"strings"

	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/common"
)

// RomanOptions carries the Roman engine's recognized option flags.
type RomanOptions struct {
	SkipSGML bool
	Syncope  bool
}

// Roman runs the longest-match Roman-source engine over data using cm, and
// (when the target is Brahmic and carries accents) reorders
// accent-then-yogavaaha sequences in the output to yogavaaha-then-accent,
// per spec.md §4.3.
func Roman(data string, cm *common.CompiledMap, to *common.Scheme, opts RomanOptions) string {
	gs := graphemes(data)
	n := len(gs)

	var out strings.Builder
	hadConsonant := false
	skippingSGML := false
	toggledTrans := false

	i := 0
	for i < n {
		if skippingSGML {
			tok := gs[i]
			out.WriteString(tok)
			i++
			if tok == ">" {
				skippingSGML = false
			}
			continue
		}
		if gs[i] == "<" && opts.SkipSGML {
			if hadConsonant && !opts.Syncope {
				out.WriteString(cm.Virama)
			}
			hadConsonant = false
			skippingSGML = true
			out.WriteString(gs[i])
			i++
			continue
		}
		if i+1 < n && gs[i] == "#" && gs[i+1] == "#" {
			toggledTrans = !toggledTrans
			i += 2
			continue
		}

		if skippingSGML || toggledTrans {
			out.WriteString(gs[i])
			i++
			continue
		}

		matched := false
		maxLen := cm.MaxTokenLength
		if rem := n - i; maxLen > rem {
			maxLen = rem
		}
		for l := maxLen; l >= 1; l-- {
			token := strings.Join(gs[i:i+l], "")
			target, ok := cm.Letters[token]
			if !ok {
				continue
			}

			if cm.ToRoman {
				out.WriteString(target)
			} else {
				if hadConsonant {
					if mark, ok2 := cm.Marks[token]; ok2 {
						out.WriteString(mark)
					} else if token != cm.FromSchemeA {
						out.WriteString(cm.Virama)
						out.WriteString(target)
					}
					// else: inherent short-a absorbed by the previous consonant.
				} else {
					out.WriteString(target)
				}
				hadConsonant = cm.IsConsonant(token)
			}
			i += l
			matched = true
			break
		}

		if matched {
			continue
		}

		if hadConsonant && !opts.Syncope {
			out.WriteString(cm.Virama)
		}
		hadConsonant = false
		out.WriteString(gs[i])
		i++
	}

	if hadConsonant && !opts.Syncope {
		out.WriteString(cm.Virama)
	}

	result := out.String()
	if !cm.ToRoman && len(cm.Accents) > 0 {
		result = reorderAccentBeforeYogavaaha(result, values(cm.Accents), to)
	}
	return result
}
