package common

// Options carries the per-call knobs recognized by the top-level
// dispatcher (spec.md §6). The zero value is the documented default.
type Options struct {
	// SkipSGML passes `<...>` spans through unchanged in Roman input.
	SkipSGML bool

	// Syncope suppresses the virama normally emitted after a word-final
	// or otherwise-unmatched trailing Roman consonant.
	Syncope bool

	// PreferredAlternates maps a target scheme name to a mapping of
	// literal -> replacement, applied unconditionally after the engine
	// runs (spec.md §4.5 step 9).
	PreferredAlternates map[string]map[string]string

	// SplitAksara makes word-wise rendering join syllables with TAB on
	// both sides of the result pair.
	SplitAksara bool

	// MoveConsonant enables the optional consonant-pull rule of
	// spec.md §4.7 rule 2 during word-wise consonant migration.
	MoveConsonant bool
}
