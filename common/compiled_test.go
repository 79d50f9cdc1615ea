package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/common"
)

func tinyDevanagari() *common.Scheme {
	s := common.NewScheme(false)
	s.Set(common.GroupVowels, "अ", "अ")
	s.Set(common.GroupVowels, "आ", "आ")
	s.Set(common.GroupVowelMarks, "ा", "ा")
	s.Set(common.GroupConsonants, "क", "क")
	s.Set(common.GroupConsonants, "न", "न")
	s.Set(common.GroupVirama, common.ViramaKey, common.ViramaKey)
	return s
}

func tinyHK() *common.Scheme {
	s := common.NewScheme(true)
	s.Set(common.GroupVowels, "अ", "a")
	s.Set(common.GroupVowels, "आ", "A")
	s.Set(common.GroupConsonants, "क", "k")
	s.Set(common.GroupConsonants, "न", "n")
	s.Set(common.GroupVirama, common.ViramaKey, "")
	return s
}

func newTestRegistry(t *testing.T) *common.Registry {
	t.Helper()
	r := common.NewRegistry()
	require.NoError(t, r.AddBrahmicScheme("devanagari", tinyDevanagari()))
	require.NoError(t, r.AddRomanScheme("hk", tinyHK()))
	return r
}

func TestCompile_LettersMarksConsonants(t *testing.T) {
	r := newTestRegistry(t)

	cm, err := common.Compile(r, "hk", "devanagari", common.Options{})
	require.NoError(t, err)

	assert.Equal(t, "क", cm.Letters["k"])
	assert.Equal(t, "न", cm.Letters["n"])
	assert.True(t, cm.IsConsonant("k"))
	assert.True(t, cm.IsConsonant("n"))
	assert.False(t, cm.IsConsonant("a"))
	assert.Equal(t, "ा", cm.Marks["A"])
	assert.Equal(t, "्", cm.Virama) // target (devanagari) scheme's own virama rendering
	assert.Equal(t, "a", cm.FromSchemeA)
	assert.Equal(t, "अ", cm.ToSchemeA)
	assert.GreaterOrEqual(t, cm.MaxTokenLength, 1)
}

func TestCompile_UnknownScheme(t *testing.T) {
	r := newTestRegistry(t)
	_, err := common.Compile(r, "hk", "nonexistent", common.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnknownScheme)
}

func TestCompile_CacheReusesPointer(t *testing.T) {
	r := newTestRegistry(t)
	a, err := common.Compile(r, "hk", "devanagari", common.Options{})
	require.NoError(t, err)
	b, err := common.Compile(r, "hk", "devanagari", common.Options{})
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestCompile_CacheInvalidatedByReRegistration(t *testing.T) {
	r := newTestRegistry(t)
	a, err := common.Compile(r, "hk", "devanagari", common.Options{})
	require.NoError(t, err)

	require.NoError(t, r.AddRomanScheme("hk", tinyHK()))

	b, err := common.Compile(r, "hk", "devanagari", common.Options{})
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}
