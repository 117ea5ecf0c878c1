package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dwhforge/dwhforge/dictionary"
	"github.com/dwhforge/dwhforge/generator"
	"github.com/dwhforge/dwhforge/schema"
)

var (
	dictionaryFile string
	mappingFile    string
	outDir         string
	dryRunGenerate bool
)

func init() {
	generateCmd.Flags().StringVarP(&dictionaryFile, "dictionary", "d", "", "Data dictionary CSV (default from config)")
	generateCmd.Flags().StringVarP(&mappingFile, "mapping", "m", "", "Type mapping CSV (default from config)")
	generateCmd.Flags().StringVarP(&outDir, "out", "o", "sql", "Output folder for the generated DDL files")
	generateCmd.Flags().BoolVar(&dryRunGenerate, "dry-run", false, "Preview the SQL that would be generated without writing files")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate per-layer DDL files from the data dictionary",
	Long: `Generate DDL from the data dictionary and type mapping.

Every configured layer produces its own <layer>.sql file containing the
database bootstrap, the schema rebuild and one CREATE TABLE per
dictionary table, in dictionary order.

Examples:
  dwhforge generate                     # Use paths from dwhforge.yaml
  dwhforge generate -d fields.csv       # Override the dictionary file
  dwhforge generate --dry-run           # Print the DDL instead of writing it
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

		gen, err := generator.New(cfg)
		if err != nil {
			fmt.Println("❌ Configuring generator:", err)
			os.Exit(1)
		}
		files := gen.Generate(model)

		if dryRunGenerate {
			names := make([]string, 0, len(files))
			for name := range files {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("-- %s --\n%s\n\n", name, files[name])
			}
			fmt.Println("(Dry run only. No files were written.)")
			return
		}

		written, err := generator.WriteFiles(outDir, files)
		if err != nil {
			fmt.Println("❌ Writing DDL files:", err)
			os.Exit(1)
		}
		for _, path := range written {
			fmt.Println("✅ Generated:", path)
		}
	},
}
