// Package velthuis registers the Velthuis ASCII transliteration scheme.
package velthuis

import (
	_ "embed"
	"fmt"

	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/common"
	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/schemes/load"
)

//go:embed velthuis.yaml
var tableYAML []byte

func init() {
	s, err := load.Decode(tableYAML)
	if err != nil {
		panic(fmt.Sprintf("schemes/velthuis: decode table: %v", err))
	}
	if err := common.Default.AddRomanScheme("velthuis", s); err != nil {
		panic(fmt.Sprintf("schemes/velthuis: register: %v", err))
	}
}
