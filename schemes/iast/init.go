// Package iast registers the IAST (International Alphabet of Sanskrit
// Transliteration) Roman scheme.
package iast

import (
	_ "embed"
	"fmt"

	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/common"
	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/schemes/load"
)

//go:embed iast.yaml
var tableYAML []byte

func init() {
	s, err := load.Decode(tableYAML)
	if err != nil {
		panic(fmt.Sprintf("schemes/iast: decode table: %v", err))
	}
	if err := common.Default.AddRomanScheme("iast", s); err != nil {
		panic(fmt.Sprintf("schemes/iast: register: %v", err))
	}
}
