// Command sanscript is a thin wrapper around the go-sanscript library: it
// reads text from stdin (or from its arguments, joined with spaces) and writes the
// transliterated result to stdout. It contains no transliteration logic
// of its own.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	sanscript "github.com/tassa-yoniso-manasi-karoto/go-sanscript"
	"github.com/tassa-yoniso-manasi-karoto/go-sanscript/common"
	_ "github.com/tassa-yoniso-manasi-karoto/go-sanscript/schemes/all"
)

func main() {
	from := flag.String("from", "", "source scheme name, empty to auto-detect")
	to := flag.String("to", "devanagari", "target scheme name")
	wordwise := flag.Bool("wordwise", false, "render word by word through the aksara analyzer")
	skipSGML := flag.Bool("skip-sgml", false, "pass <...> spans through unchanged in Roman input")
	syncope := flag.Bool("syncope", false, "suppress the virama after a trailing unmatched Roman consonant")
	splitAksara := flag.Bool("split-aksara", false, "in -wordwise mode, join syllables with a tab")
	moveConsonant := flag.Bool("move-consonant", false, "enable the optional consonant-pull rule during word-wise rendering")
	flag.Parse()

	var input string
	if args := flag.Args(); len(args) > 0 {
		input = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			fmt.Fprintf(os.Stderr, "sanscript: reading stdin: %v\n", err)
			os.Exit(1)
		}
		input = strings.TrimRight(string(data), "\n")
	}

	opts := common.Options{
		SkipSGML:      *skipSGML,
		Syncope:       *syncope,
		SplitAksara:   *splitAksara,
		MoveConsonant: *moveConsonant,
	}

	if *wordwise {
		pairs, err := sanscript.TransliterateWordwise(input, *from, *to, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sanscript: %v\n", err)
			os.Exit(1)
		}
		for _, p := range pairs {
			fmt.Printf("%s\t%s\n", p.Original, p.Result)
		}
		return
	}

	result, err := sanscript.Transliterate(input, *from, *to, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sanscript: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(result)
}
