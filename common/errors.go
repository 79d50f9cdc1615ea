package common

import "errors"

// Sentinel errors per the taxonomy of spec.md §7. UnrecognizedToken is
// never raised: an input token absent from a compiled map is emitted
// verbatim by the engines, by design.
var (
	// ErrUnknownScheme is returned by the compiler when a from/to scheme
	// name isn't registered.
	ErrUnknownScheme = errors.New("sanscript: unknown scheme")

	// ErrMalformedScheme is returned when registering a Roman scheme whose
	// vowels group lacks the short-a key, or whose accented-vowel
	// alternates reference a base vowel the scheme doesn't define.
	ErrMalformedScheme = errors.New("sanscript: malformed scheme")
)
