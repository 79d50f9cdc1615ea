package engine

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/common"
)

// charClass builds an alternation regexp matching any one of chars, sorted
// longest-first so multi-rune tokens aren't shadowed by a shorter prefix.
func charClass(chars []string) *regexp.Regexp {
	uniq := make(map[string]struct{}, len(chars))
	var list []string
	for _, c := range chars {
		if c == "" {
			continue
		}
		if _, ok := uniq[c]; ok {
			continue
		}
		uniq[c] = struct{}{}
		list = append(list, c)
	}
	if len(list) == 0 {
		return nil
	}
	sort.Slice(list, func(i, j int) bool { return len(list[i]) > len(list[j]) })
	for i, c := range list {
		list[i] = regexp.QuoteMeta(c)
	}
	return regexp.MustCompile("(" + strings.Join(list, "|") + ")")
}

func yogavaahaValues(s *common.Scheme) []string {
	return values(s.Group(common.GroupYogavaahas))
}

func values(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// reorder rewrites every occurrence of firstRe immediately followed by
// secondRe into secondRe followed by firstRe.
func reorder(s string, firstRe, secondRe *regexp.Regexp) string {
	if firstRe == nil || secondRe == nil {
		return s
	}
	pairRe := regexp.MustCompile(firstRe.String() + secondRe.String())
	return pairRe.ReplaceAllString(s, "$2$1")
}

// reorderAccentBeforeYogavaaha rewrites (accent)(yogavaaha) -> (yogavaaha)(accent)
// in s, using brahmic's yogavaaha group and accentChars as the accent
// class. Used after the Roman engine emits Brahmic-script output.
func reorderAccentBeforeYogavaaha(s string, accentChars []string, brahmic *common.Scheme) string {
	accentRe := charClass(accentChars)
	yogaRe := charClass(yogavaahaValues(brahmic))
	return reorder(s, accentRe, yogaRe)
}

// reorderYogavaahaBeforeAccent rewrites (yogavaaha)(accent) -> (accent)(yogavaaha)
// in s, using brahmic's yogavaaha group and accentChars as the accent class.
// Used before the Brahmic engine consumes Brahmic-script input.
func reorderYogavaahaBeforeAccent(s string, accentChars []string, brahmic *common.Scheme) string {
	yogaRe := charClass(yogavaahaValues(brahmic))
	accentRe := charClass(accentChars)
	return reorder(s, yogaRe, accentRe)
}
