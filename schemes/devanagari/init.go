// Package devanagari registers the canonical Devanagari scheme: its
// table's keys and values coincide, since every other scheme's keys are
// themselves Devanagari forms (spec.md §3).
package devanagari

import (
	_ "embed"
	"fmt"

	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/common"
	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/schemes/load"
)

//go:embed devanagari.yaml
var tableYAML []byte

func init() {
	s, err := load.Decode(tableYAML)
	if err != nil {
		panic(fmt.Sprintf("schemes/devanagari: decode table: %v", err))
	}
	if err := common.Default.AddBrahmicScheme("devanagari", s); err != nil {
		panic(fmt.Sprintf("schemes/devanagari: register: %v", err))
	}
}
