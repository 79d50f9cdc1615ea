// Package itrans registers the ITRANS ASCII transliteration scheme, whose
// several alternate spellings per sound (e.g. "aa"/"A" for आ) exercise the
// map compiler's alternates handling (spec.md §4.2).
package itrans

import (
	_ "embed"
	"fmt"

	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/common"
	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/schemes/load"
)

//go:embed itrans.yaml
var tableYAML []byte

func init() {
	s, err := load.Decode(tableYAML)
	if err != nil {
		panic(fmt.Sprintf("schemes/itrans: decode table: %v", err))
	}
	if err := common.Default.AddRomanScheme("itrans", s); err != nil {
		panic(fmt.Sprintf("schemes/itrans: register: %v", err))
	}
}
