package engine

import "github.com/rivo/uniseg"

// graphemes splits s into its grapheme clusters. The Roman engine's
// longest-match lexer scans grapheme-by-grapheme rather than rune-by-rune
// or byte-by-byte, so a source token built from combining marks (an
// accented Roman vowel) is never split across a match boundary (spec.md
// §9, "do not special-case ASCII"). The Brahmic engine does not use this
// helper; it walks its input one rune at a time.
func graphemes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}
