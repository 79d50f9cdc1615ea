// Package iso15919 registers the ISO 15919 romanization scheme.
package iso15919

import (
	_ "embed"
	"fmt"

	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/common"
	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/schemes/load"
)

//go:embed iso15919.yaml
var tableYAML []byte

func init() {
	s, err := load.Decode(tableYAML)
	if err != nil {
		panic(fmt.Sprintf("schemes/iso15919: decode table: %v", err))
	}
	if err := common.Default.AddRomanScheme("iso15919", s); err != nil {
		panic(fmt.Sprintf("schemes/iso15919: register: %v", err))
	}
}
