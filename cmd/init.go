package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dwhforge/dwhforge/dictionary"
	"github.com/dwhforge/dwhforge/generator"
	"github.com/dwhforge/dwhforge/scaffold"
	"github.com/dwhforge/dwhforge/schema"
)

var initGenerate bool

func init() {
	initCmd.Flags().BoolVar(&initGenerate, "generate", false, "Also generate the DDL files into the new project's sql folder")
}

const starterConfig = `# dwhforge project configuration
project_name: my_warehouse
# base_dir: ~/projects          # where the project folder is created
database: postgresql            # mysql, postgresql or mssql
database_name: my_warehouse
source_system: crm
layers: [bronze, silver, gold]
dictionary: dictionary.csv
type_mapping: type_mapping.csv
docker: true
git_init: true
scripts: [mac, win]
`

const starterDictionary = `Table Name,Field Name,Datatype,Length,Decimal Places,Key,Enforce,Partition Column
customer,id,int_type,,,X,X,
customer,name,string_type,255,,,X,
customer,balance,money_type,10,2,,,
order,id,int_type,,,X,X,
order,customer_id,int_type,,,X,
order,ordered_at,date_type,,,,,X
`

const starterMapping = `Source Type,Target Type
int_type,int
string_type,varchar
money_type,decimal
date_type,date
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a dwhforge project",
	Long: `Initialize a dwhforge project.

Without a dwhforge.yaml in the working directory, init writes a starter
config plus example dictionary and type-mapping files for you to edit.

With a config present, init scaffolds the project structure under
base_dir: sql/, src/, docs/, scripts/, optionally docker/ and a git
repository.

Examples:
  dwhforge init              # Write starter files or scaffold the project
  dwhforge init --generate   # Scaffold and generate the DDL in one go
`,
	Run: func(cmd *cobra.Command, args []string) {
		if cfgFile == "" && !configPresent() {
			writeStarterFiles()
			return
		}

		cfg, err := loadProject()
		if err != nil {
			fmt.Println("❌ Loading config:", err)
			os.Exit(1)
		}

		root, err := scaffold.New(cfg).Build()
		if err != nil {
			fmt.Println("❌ Scaffolding project:", err)
			os.Exit(1)
		}
		fmt.Println("✅ Project created at:", root)

		if !initGenerate {
			fmt.Println("🚀 Run 'dwhforge generate -o", filepath.Join(root, "sql")+"' to generate the DDL")
			return
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
		written, err := generator.WriteFiles(filepath.Join(root, "sql"), gen.Generate(model))
		if err != nil {
			fmt.Println("❌ Writing DDL files:", err)
			os.Exit(1)
		}
		for _, path := range written {
			fmt.Println("✅ Generated:", path)
		}
	},
}

func configPresent() bool {
	for _, name := range []string{"dwhforge.yaml", "dwhforge.yml"} {
		if _, err := os.Stat(name); err == nil {
			return true
		}
	}
	return false
}

func writeStarterFiles() {
	starters := []struct {
		name    string
		content string
	}{
		{"dwhforge.yaml", starterConfig},
		{"dictionary.csv", starterDictionary},
		{"type_mapping.csv", starterMapping},
	}
	for _, s := range starters {
		if _, err := os.Stat(s.name); err == nil {
			fmt.Printf("❌ %s already exists!\n", s.name)
			return
		}
	}
	for _, s := range starters {
		if err := os.WriteFile(s.name, []byte(s.content), 0644); err != nil {
			fmt.Printf("❌ Error creating %s: %v\n", s.name, err)
			return
		}
	}
	fmt.Println("✅ Created dwhforge.yaml with example dictionary and type mapping.")
	fmt.Println("📝 Edit dwhforge.yaml, dictionary.csv and type_mapping.csv for your warehouse")
	fmt.Println("🚀 Run 'dwhforge init' again to scaffold the project")
}
