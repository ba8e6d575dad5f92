package models

import (
	"flag"
	"io"

	"github.com/olekukonko/tablewriter"
)

// PrintFlags writes a borderless flag table for usage text.
func PrintFlags(w io.Writer, fs *flag.FlagSet) {
	table := tablewriter.NewWriter(w)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(true)
	table.SetColWidth(50)
	fs.VisitAll(func(f *flag.Flag) {
		def := ""
		if f.DefValue != "" && f.DefValue != "false" {
			def = "(" + f.DefValue + ")"
		}
		table.Append([]string{"-" + f.Name, def, f.Usage})
	})
	table.Render()
}
