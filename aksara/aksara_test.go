package aksara_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/aksara"
)

func TestSplit_Basic(t *testing.T) {
	got := aksara.Split("dharma")
	assert.Equal(t, []string{"dha", "rma"}, got)
}

func TestSplit_TrailingConsonant(t *testing.T) {
	got := aksara.Split("namas")
	assert.Equal(t, []string{"na", "ma", "s"}, got)
}

func TestSplit_PunctuationAndNumbers(t *testing.T) {
	got := aksara.Split("rāma,108")
	assert.Equal(t, []string{"rā", "ma", ",", "108"}, got)
}

func TestSplit_AudioMarker(t *testing.T) {
	got := aksara.Split("na▷1ma")
	assert.Equal(t, []string{"na", "▷", "1", "ma"}, got)
}

func TestType_Basics(t *testing.T) {
	assert.Equal(t, " ", aksara.Type(""))
	assert.Equal(t, "n", aksara.Type("108"))
	assert.Equal(t, "p", aksara.Type(","))
	assert.Equal(t, "u", aksara.Type("▷1a"))
}

func TestType_AksaraCodes(t *testing.T) {
	// no vowel, no consonant -> 0; one consonant, no vowel -> 1
	assert.Equal(t, "0", aksara.Type("-"))
	// vowel + single consonant -> 4 + 1 = 5
	assert.Equal(t, "5", aksara.Type("na"))
	// vowel + two consonants -> 4 + 2 = 6
	assert.Equal(t, "6", aksara.Type("rma"))
	// vowel only -> 4
	assert.Equal(t, "4", aksara.Type("a"))
}

func TestType_MultiPart(t *testing.T) {
	assert.Equal(t, "5n", aksara.Type("na\t108"))
}

func TestPickAndRefillAudioNumbers(t *testing.T) {
	stripped, numbers := aksara.PickAudioNumbers("na▷1ma▷2ta")
	assert.Equal(t, "na▷▷", stripped)
	assert.Equal(t, []string{"1ma", "2ta"}, numbers)

	refilled := aksara.RefillAudioNumbers(numbers, 0, stripped)
	assert.Equal(t, "na▷1ma▷2ta", refilled)
}

func TestPickAudioNumbers_NoTag(t *testing.T) {
	stripped, numbers := aksara.PickAudioNumbers("na▷ma")
	assert.Equal(t, "na▷ma", stripped)
	assert.Equal(t, []string{""}, numbers)
}

func TestMergeTrailingConsonant_FoldsOntoPrecedingVowel(t *testing.T) {
	got := aksara.MergeTrailingConsonant([]string{"na", "ma", "s"})
	assert.Equal(t, []string{"na", "mas"}, got)
}

func TestMergeTrailingConsonant_TolerantOfAudioMarker(t *testing.T) {
	got := aksara.MergeTrailingConsonant([]string{"na", "ma", "▷", "s"})
	assert.Equal(t, []string{"na", "mas", "▷"}, got)
}

func TestMergeTrailingConsonant_NoOpWhenPrecedingIsNotVowelFinal(t *testing.T) {
	got := aksara.MergeTrailingConsonant([]string{"ra", "m", "s"})
	assert.Equal(t, []string{"ra", "m", "s"}, got)
}

func TestCombineAdjacentConsonants_OrphanMergesRight(t *testing.T) {
	sy2 := []string{"ra", "m", "ta"}
	syllables := []string{"ra", "m", "ta"}

	gotSyl, gotSy2 := aksara.CombineAdjacentConsonants(syllables, sy2, false)
	assert.Equal(t, []string{"ra", "mta"}, gotSy2)
	assert.Equal(t, []string{"ra", "mta"}, gotSyl)
}

func TestCombineAdjacentConsonants_MoveConsonantPullsIntoSy2(t *testing.T) {
	// Split("kanaka") -> ["ka", "na", "ka"]; with move_consonant the lone
	// nasal lead "n" of "na" pulls back onto the preceding vowel-final
	// syllable "ka" in both the displayed syllables AND sy2, since sy2 is
	// what actually gets transliterated into the Result string.
	sy2 := []string{"ka", "na", "ka"}
	syllables := []string{"ka", "na", "ka"}

	gotSyl, gotSy2 := aksara.CombineAdjacentConsonants(syllables, sy2, true)
	assert.Equal(t, []string{"kan", "a", "ka"}, gotSyl)
	assert.Equal(t, []string{"kan", "a", "ka"}, gotSy2)
}

func TestCombineAdjacentConsonants_NoMoveWithoutFlag(t *testing.T) {
	sy2 := []string{"na", "ma"}
	syllables := []string{"na", "ma"}

	gotSyl, gotSy2 := aksara.CombineAdjacentConsonants(syllables, sy2, false)
	assert.Equal(t, []string{"na", "ma"}, gotSy2)
	assert.Equal(t, []string{"na", "ma"}, gotSyl)
}
