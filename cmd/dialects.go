package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dwhforge/dwhforge/dialect"
)

var dialectsCmd = &cobra.Command{
	Use:   "dialects",
	Short: "List supported SQL dialects",
	Run: func(cmd *cobra.Command, args []string) {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Dialect", "Quoting", "Max Identifier", "Batch Separator"})

		for _, name := range dialect.List() {
			p, _ := dialect.Get(name)
			sep := ";"
			if p.BatchSeparator {
				sep = "GO"
			}
			t.AppendRow(table.Row{
				name,
				fmt.Sprintf("%sname%s", p.QuotePrefix, p.QuoteSuffix),
				p.MaxIdentifier,
				sep,
			})
		}
		t.Render()
	},
}
