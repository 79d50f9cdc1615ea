package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/common"
)

func simpleRoman() *common.Scheme {
	s := common.NewScheme(true)
	s.Set(common.GroupVowels, "अ", "a")
	s.Set(common.GroupVowels, "आ", "A")
	s.Set(common.GroupConsonants, "क", "k")
	s.Set(common.GroupVirama, common.ViramaKey, "")
	return s
}

func TestAddRomanScheme_DerivesVowelMarks(t *testing.T) {
	r := common.NewRegistry()
	s := simpleRoman()
	require.NoError(t, r.AddRomanScheme("test-roman", s))

	marks := s.Group(common.GroupVowelMarks)
	require.NotNil(t, marks)
	assert.Equal(t, "A", marks["ा"])
}

func TestAddRomanScheme_RejectsMissingShortA(t *testing.T) {
	r := common.NewRegistry()
	s := common.NewScheme(true)
	s.Set(common.GroupVowels, "आ", "A")

	err := r.AddRomanScheme("bad", s)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMalformedScheme)
}

func TestAddRomanScheme_RejectsUnknownAccentBase(t *testing.T) {
	r := common.NewRegistry()
	s := simpleRoman()
	s.AccentedVowelAlternates["x`"] = []string{"X`"}

	err := r.AddRomanScheme("bad-accent", s)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMalformedScheme)
}

func TestRegistry_GetIsCaseInsensitive(t *testing.T) {
	r := common.NewRegistry()
	require.NoError(t, r.AddRomanScheme("HK", simpleRoman()))

	_, ok := r.Get("hk")
	assert.True(t, ok)
	_, ok = r.Get("Hk")
	assert.True(t, ok)
}
