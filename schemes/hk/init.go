// Package hk registers the Harvard-Kyoto Roman scheme.
package hk

import (
	_ "embed"
	"fmt"

	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/common"
	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/schemes/load"
)

//go:embed hk.yaml
var tableYAML []byte

func init() {
	s, err := load.Decode(tableYAML)
	if err != nil {
		panic(fmt.Sprintf("schemes/hk: decode table: %v", err))
	}
	if err := common.Default.AddRomanScheme("hk", s); err != nil {
		panic(fmt.Sprintf("schemes/hk: register: %v", err))
	}
}
