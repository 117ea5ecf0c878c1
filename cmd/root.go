package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dwhforge/dwhforge/config"
	"github.com/dwhforge/dwhforge/utils"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dwhforge",
	Short: "Scaffold data-warehouse projects and generate layered DDL",
	Long: `dwhforge turns a CSV data dictionary into dialect-specific DDL
(MySQL, PostgreSQL, SQL Server) with one document per schema layer,
and scaffolds the project structure around it.

Examples:

  dwhforge init
  dwhforge generate
  dwhforge validate
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.LoadEnv()
	},
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

// Register subcommands
func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Project config file (default dwhforge.yaml)")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(dialectsCmd)
}

// loadProject loads and validates the project configuration for commands
// that need it.
func loadProject() (*config.ProjectConfig, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
