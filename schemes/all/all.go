// Package all blank-imports every bundled scheme package so that
// importing it alone registers the full set into common.Default.
package all

import (
	_ "github.com/tassa-yoniso-manasi-karoto/go-sanscript/schemes/devanagari"
	_ "github.com/tassa-yoniso-manasi-karoto/go-sanscript/schemes/hk"
	_ "github.com/tassa-yoniso-manasi-karoto/go-sanscript/schemes/iast"
	_ "github.com/tassa-yoniso-manasi-karoto/go-sanscript/schemes/indic"
	_ "github.com/tassa-yoniso-manasi-karoto/go-sanscript/schemes/iso15919"
	_ "github.com/tassa-yoniso-manasi-karoto/go-sanscript/schemes/itrans"
	_ "github.com/tassa-yoniso-manasi-karoto/go-sanscript/schemes/kolkata"
	_ "github.com/tassa-yoniso-manasi-karoto/go-sanscript/schemes/slp1"
	_ "github.com/tassa-yoniso-manasi-karoto/go-sanscript/schemes/velthuis"
)
