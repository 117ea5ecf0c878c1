package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dwhforge/dwhforge/dictionary"
	"github.com/dwhforge/dwhforge/schema"
)

func init() {
	previewCmd.Flags().StringVarP(&dictionaryFile, "dictionary", "d", "", "Data dictionary CSV (default from config)")
	previewCmd.Flags().StringVarP(&mappingFile, "mapping", "m", "", "Type mapping CSV (default from config)")
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the table model built from the data dictionary",
	Long: `Build the table model and print it without generating any DDL.

Useful to check column order, resolved SQL types, keys and partition
columns before running generate.
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadProject()
		if err != nil {
			fmt.Println("❌ Loading config:", err)
			os.Exit(1)
		}
		if dictionaryFile != "" {
			cfg.Dictionary = dictionaryFile
		}
		if mappingFile != "" {
			cfg.TypeMapping = mappingFile
		}

		rows, err := dictionary.LoadRows(cfg.Dictionary)
		if err != nil {
			fmt.Println("❌ Loading dictionary:", err)
			os.Exit(1)
		}
		mapping, err := dictionary.LoadMapping(cfg.TypeMapping)
		if err != nil {
			fmt.Println("❌ Loading type mapping:", err)
			os.Exit(1)
		}
		model, err := schema.Build(rows, mapping)
		if err != nil {
			fmt.Println("❌ Building table model:", err)
			os.Exit(1)
		}

		for _, tbl := range model.Tables {
			fmt.Printf("\n%s\n", tbl.Name)

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Column", "Type", "Not Null", "Key", "Partition"})
			for _, col := range tbl.Columns {
				t.AppendRow(table.Row{
					col.Name,
					col.SQLType,
					mark(col.Enforce),
					mark(contains(tbl.Keys, col.Name)),
					mark(tbl.Partition == col.Name),
				})
			}
			t.Render()
		}
		fmt.Printf("\n%d table(s), %d layer(s) configured.\n", len(model.Tables), len(cfg.Layers))
	},
}

func mark(b bool) string {
	if b {
		return "X"
	}
	return ""
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
