// Package load decodes a scheme's YAML table into a *common.Scheme. Each
// schemes/<name> subpackage embeds its own YAML file and calls Decode from
// its init(), mirroring the registration-at-init convention the rest of
// the schemes/* packages follow.
package load

import (
	"gopkg.in/yaml.v2"

	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/common"
)

// Table is the on-disk shape of a scheme's YAML definition.
type Table struct {
	IsRoman                 bool                `yaml:"is_roman"`
	Vowels                  map[string]string   `yaml:"vowels"`
	VowelMarks              map[string]string   `yaml:"vowel_marks"`
	Consonants              map[string]string   `yaml:"consonants"`
	ExtraConsonants         map[string]string   `yaml:"extra_consonants"`
	Virama                  map[string]string   `yaml:"virama"`
	Yogavaahas              map[string]string   `yaml:"yogavaahas"`
	Accents                 map[string]string   `yaml:"accents"`
	Symbols                 map[string]string   `yaml:"symbols"`
	ZWJ                     map[string]string   `yaml:"zwj"`
	Skip                    map[string]string   `yaml:"skip"`
	Alternates              map[string][]string `yaml:"alternates"`
	AccentedVowelAlternates map[string][]string `yaml:"accented_vowel_alternates"`
	Shortcuts               [][2]string         `yaml:"shortcuts"`
}

// Decode parses raw YAML into a *common.Scheme. It does not register the
// scheme; the caller passes the result to common.Default.AddBrahmicScheme
// or AddRomanScheme.
func Decode(raw []byte) (*common.Scheme, error) {
	var t Table
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, err
	}

	s := common.NewScheme(t.IsRoman)
	setGroup(s, common.GroupVowels, t.Vowels)
	setGroup(s, common.GroupVowelMarks, t.VowelMarks)
	setGroup(s, common.GroupConsonants, t.Consonants)
	setGroup(s, common.GroupExtraConsonants, t.ExtraConsonants)
	setGroup(s, common.GroupVirama, t.Virama)
	setGroup(s, common.GroupYogavaahas, t.Yogavaahas)
	setGroup(s, common.GroupAccents, t.Accents)
	setGroup(s, common.GroupSymbols, t.Symbols)
	setGroup(s, common.GroupZWJ, t.ZWJ)
	setGroup(s, common.GroupSkip, t.Skip)

	if t.Alternates != nil {
		s.Alternates = t.Alternates
	}
	if t.AccentedVowelAlternates != nil {
		s.AccentedVowelAlternates = t.AccentedVowelAlternates
	}
	for _, pair := range t.Shortcuts {
		s.Shortcuts = append(s.Shortcuts, common.ShortcutPair{Long: pair[0], Short: pair[1]})
	}

	return s, nil
}

func setGroup(s *common.Scheme, name string, values map[string]string) {
	for key, rendering := range values {
		s.Set(name, key, rendering)
	}
}
