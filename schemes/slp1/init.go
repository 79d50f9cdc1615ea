// Package slp1 registers the SLP1 (Sanskrit Library Phonetic) Roman
// scheme, a case-sensitive one-to-one encoding popular in computational
// Sanskrit tooling.
package slp1

import (
	_ "embed"
	"fmt"

	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/common"
	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/schemes/load"
)

//go:embed slp1.yaml
var tableYAML []byte

func init() {
	s, err := load.Decode(tableYAML)
	if err != nil {
		panic(fmt.Sprintf("schemes/slp1: decode table: %v", err))
	}
	if err := common.Default.AddRomanScheme("slp1", s); err != nil {
		panic(fmt.Sprintf("schemes/slp1: register: %v", err))
	}
}
