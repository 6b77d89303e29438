// Command bytedump prints every stage of the byte-literal pipeline for one
// source file, for debugging sources that assemble to the wrong bytes.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"bytelit/pkg/asm"
	"bytelit/pkg/listing"
)

const testSource = `"Hi" (10) (-1)   // greeting
00000011 ff
`

func main() {
	src := testSource
	name := "builtin"
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = string(data)
		name = os.Args[1]
	}

	if err := dump(os.Stdout, name, src); err != nil {
		fmt.Fprintln(os.Stderr, asm.Snippet(err, src))
		os.Exit(1)
	}
}

func dump(w io.Writer, name, src string) error {
	fmt.Fprintf(w, "Source:\n%s\n", src)

	lines := asm.StripComments(strings.Split(src, "\n"))
	fmt.Fprintln(w, "Stripped")
	printLines(w, lines)

	for i, line := range lines {
		s, err := asm.ExpandStrings(line, i+1)
		if err != nil {
			return err
		}
		lines[i] = s
	}
	fmt.Fprintln(w, "Strings expanded")
	printLines(w, lines)

	for i, line := range lines {
		n, err := asm.ExpandNumbers(line, i+1)
		if err != nil {
			return err
		}
		lines[i] = n
	}
	fmt.Fprintln(w, "Numbers expanded")
	printLines(w, lines)

	toks := asm.Tokenize(lines)
	fmt.Fprintf(w, "Tokens (%d)\n", len(toks))
	for _, tok := range toks {
		fmt.Fprintf(w, "  %d: %s\n", tok.Line, tok.Text)
	}
	fmt.Fprintln(w)

	res, err := asm.NewAssembler().Assemble(src)
	if err != nil {
		return err
	}
	listing.Render(w, name, res.Listing)
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "warning: line %d: %s: %s\n", warn.Line, warn.Token, warn.Msg)
	}
	return nil
}

func printLines(w io.Writer, lines []string) {
	for i, l := range lines {
		fmt.Fprintf(w, "  %3d | %q\n", i+1, l)
	}
	fmt.Fprintln(w)
}
