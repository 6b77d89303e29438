// Package listing renders the token-by-token listing of an assembled file.
package listing

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"bytelit/pkg/asm"
)

// Render writes entries as a table, one row per output byte.
func Render(w io.Writer, title string, entries []asm.Entry) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}

	t.AppendHeader(table.Row{"Offset", "Line", "Token", "Kind", "Byte"})
	for _, e := range entries {
		t.AppendRow(table.Row{
			fmt.Sprintf("%04x", e.Offset),
			e.Line,
			e.Token,
			e.Kind.String(),
			fmt.Sprintf("%02x", e.Value),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "Total", fmt.Sprintf("%d bytes", len(entries))})

	t.Render()
}
