package common

// Group names recognized by the map compiler. A scheme may omit any of
// these; the compiler skips groups the target scheme doesn't carry
// (spec.md §4.2).
const (
	GroupVowels           = "vowels"
	GroupVowelMarks        = "vowel_marks"
	GroupConsonants        = "consonants"
	GroupExtraConsonants   = "extra_consonants"
	GroupVirama            = "virama"
	GroupYogavaahas        = "yogavaahas"
	GroupAccents           = "accents"
	GroupSymbols           = "symbols"
	GroupZWJ               = "zwj"
	GroupSkip              = "skip"
)

// ViramaKey is the canonical (Devanagari) key of the virama group's single
// entry.
const ViramaKey = "्"

// ShortAKey is the canonical key of the short vowel "a", the Brahmic
// inherent vowel.
const ShortAKey = "अ"

// ShortcutPair is one (long-form, short-form) rewrite applied on input
// before, and on output after, the main engine runs (spec.md §3).
type ShortcutPair struct {
	Long  string
	Short string
}

// Scheme is a named writing-system definition: a mapping from group name to
// a mapping from canonical key (a Devanagari form shared by every scheme) to
// that scheme's rendering of the key, plus the side attributes the compiler
// and dispatcher consult but never copy into a compiled map (spec.md §3).
type Scheme struct {
	// IsRoman marks a scheme whose consonants are bare and whose vowels
	// are written explicitly (vs. a Brahmic abugida).
	IsRoman bool

	// Groups maps group name -> canonical key -> this scheme's rendering.
	Groups map[string]map[string]string

	// Alternates maps a canonical rendering to the ordered list of
	// alternate spellings this scheme also accepts for it.
	Alternates map[string][]string

	// AccentedVowelAlternates maps an accented-form key (a plain vowel key
	// plus one trailing accent character) to alternate accented spellings.
	AccentedVowelAlternates map[string][]string

	// Shortcuts are applied, in order, before the engine runs (long
	// literal substrings rewritten to their short form are rewritten back
	// to canonical long form) and after it runs (the symmetric rewrite).
	Shortcuts []ShortcutPair
}

// NewScheme returns an empty scheme with all group maps initialized, ready
// to be filled in by a schemes/* package.
func NewScheme(isRoman bool) *Scheme {
	return &Scheme{
		IsRoman:                 isRoman,
		Groups:                  make(map[string]map[string]string),
		Alternates:              make(map[string][]string),
		AccentedVowelAlternates: make(map[string][]string),
	}
}

// Group returns scheme's mapping for groupName, or nil if the scheme
// carries no such group.
func (s *Scheme) Group(groupName string) map[string]string {
	return s.Groups[groupName]
}

// Set stores rendering as scheme's entry for key within groupName,
// creating the group if necessary.
func (s *Scheme) Set(groupName, key, rendering string) {
	g, ok := s.Groups[groupName]
	if !ok {
		g = make(map[string]string)
		s.Groups[groupName] = g
	}
	g[key] = rendering
}
