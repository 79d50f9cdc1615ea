package common

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"
)

// devanagariVowelToMark is the fixed table an addRomanScheme auto-derivation
// uses to turn a Roman scheme's vowels group into a vowel_marks group: the
// canonical (Devanagari) vowel key maps to the canonical vowel-mark key
// that the same sound takes after a consonant. अ has no mark (the
// inherent vowel) and is intentionally absent here.
var devanagariVowelToMark = map[string]string{
	"आ": "ा",
	"इ": "ि",
	"ई": "ी",
	"उ": "ु",
	"ऊ": "ू",
	"ऋ": "ृ",
	"ॠ": "ॄ",
	"ऌ": "ॢ",
	"ॡ": "ॣ",
	"ए": "े",
	"ऐ": "ै",
	"ओ": "ो",
	"औ": "ौ",
}

// Registry is a process-wide mapping from scheme name to scheme definition
// (spec.md §2.1). Registration is expected at startup; the zero value is
// not usable, use NewRegistry or the package-level Default.
type Registry struct {
	mu      sync.RWMutex
	schemes map[string]*Scheme
	cache   *mapCache
}

// NewRegistry returns an empty, ready-to-use registry.
func NewRegistry() *Registry {
	return &Registry{
		schemes: make(map[string]*Scheme),
		cache:   newMapCache(),
	}
}

// Default is the package-level registry backing the top-level sanscript
// package. Scheme packages register themselves into it from init().
var Default = NewRegistry()

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// AddBrahmicScheme registers s as a Brahmic (abugida) scheme under name.
// It invalidates the compiled-map cache so stale compiled maps referencing
// a previous definition of name are never reused (spec.md §5).
func (r *Registry) AddBrahmicScheme(name string, s *Scheme) error {
	s.IsRoman = false
	return r.add(name, s)
}

// AddRomanScheme registers s as a Roman (alphabetic) scheme under name. If
// s has no vowel_marks group, one is derived from its vowels group via
// devanagariVowelToMark. Returns ErrMalformedScheme if vowels lacks the
// short-a key, or if an accented-vowel alternate's base vowel isn't one of
// s's own vowel renderings (or one of their alternates).
func (r *Registry) AddRomanScheme(name string, s *Scheme) error {
	s.IsRoman = true

	vowels := s.Group(GroupVowels)
	if vowels == nil || vowels[ShortAKey] == "" {
		return fmt.Errorf("%w: %s: vowels group must define %s", ErrMalformedScheme, name, ShortAKey)
	}

	if len(s.Group(GroupVowelMarks)) == 0 {
		for vowelKey, markKey := range devanagariVowelToMark {
			if rendering, ok := vowels[vowelKey]; ok {
				s.Set(GroupVowelMarks, markKey, rendering)
			}
		}
	}

	vowelTokens := make(map[string]bool)
	for _, rendering := range vowels {
		vowelTokens[rendering] = true
		for _, alt := range s.Alternates[rendering] {
			vowelTokens[alt] = true
		}
	}
	for accentedKey := range s.AccentedVowelAlternates {
		baseVowel, _ := splitAccentedKey(accentedKey)
		if !vowelTokens[baseVowel] {
			return fmt.Errorf("%w: %s: accented_vowel_alternates key %q has no base vowel %q in vowels group",
				ErrMalformedScheme, name, accentedKey, baseVowel)
		}
	}

	return r.add(name, s)
}

func (r *Registry) add(name string, s *Scheme) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemes[normalize(name)] = s
	r.cache.invalidate()
	return nil
}

// Get returns the scheme registered under name (case-insensitive).
func (r *Registry) Get(name string) (*Scheme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemes[normalize(name)]
	return s, ok
}

// splitAccentedKey decomposes an accented-form key into its base vowel and
// the trailing accent character (spec.md §3: "Each key ends in one accent
// character; the substring before the final character is a plain vowel.").
func splitAccentedKey(accentedKey string) (baseVowel, accent string) {
	if accentedKey == "" {
		return "", ""
	}
	_, size := utf8.DecodeLastRuneInString(accentedKey)
	return accentedKey[:len(accentedKey)-size], accentedKey[len(accentedKey)-size:]
}
