// Package kolkata registers the Kolkata romanization scheme, IAST's
// National Library at Kolkata variant that spells long e/o as ē/ō.
package kolkata

import (
	_ "embed"
	"fmt"

	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/common"
	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/schemes/load"
)

//go:embed kolkata.yaml
var tableYAML []byte

func init() {
	s, err := load.Decode(tableYAML)
	if err != nil {
		panic(fmt.Sprintf("schemes/kolkata: decode table: %v", err))
	}
	if err := common.Default.AddRomanScheme("kolkata", s); err != nil {
		panic(fmt.Sprintf("schemes/kolkata: register: %v", err))
	}
}
