package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dwhforge/dwhforge/dictionary"
	"github.com/dwhforge/dwhforge/validator"
)

var validateFormat string

func init() {
	validateCmd.Flags().StringVarP(&dictionaryFile, "dictionary", "d", "", "Data dictionary CSV (default from config)")
	validateCmd.Flags().StringVarP(&mappingFile, "mapping", "m", "", "Type mapping CSV (default from config)")
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "text", "Output format (text, json)")
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the data dictionary against the type mapping",
	Long: `Validate the data dictionary and type mapping without generating DDL.

Unlike generate, which stops at the first problem, validate walks the
whole dictionary and reports every finding at once:
- unknown logical types and missing length/decimals parameters
- empty field names and duplicate partition flags
- identifiers that exceed the target dialect's length limit
- tables with no declared key
- mapped types that no dictionary row references

Examples:
  dwhforge validate                   # Validate files from dwhforge.yaml
  dwhforge validate --format json     # Output findings as JSON
`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := validateDictionary(); err != nil {
			fmt.Printf("❌ Dictionary validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func validateDictionary() error {
	cfg, err := loadProject()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if dictionaryFile != "" {
		cfg.Dictionary = dictionaryFile
	}
	if mappingFile != "" {
		cfg.TypeMapping = mappingFile
	}

	rows, err := dictionary.LoadRows(cfg.Dictionary)
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}
	mapping, err := dictionary.LoadMapping(cfg.TypeMapping)
	if err != nil {
		return fmt.Errorf("loading type mapping: %w", err)
	}

	result := validator.New(cfg.Database).Validate(rows, mapping)

	if validateFormat == "json" {
		if err := outputJSON(result); err != nil {
			return err
		}
	} else {
		outputText(result)
	}

	if !result.Valid {
		os.Exit(1)
	}
	return nil
}

func outputJSON(result *validator.ValidationResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputText(result *validator.ValidationResult) {
	if result.Valid {
		color.Green("✅ Dictionary validation passed!")
	} else {
		color.Red("❌ Dictionary validation failed!")
	}

	printFindings := func(heading string, findings []validator.ValidationError) {
		if len(findings) == 0 {
			return
		}
		fmt.Printf("\n%s (%d):\n", heading, len(findings))
		for i, f := range findings {
			fmt.Printf("  %d. ", i+1)
			if f.Table != "" {
				fmt.Printf("[%s]", f.Table)
			}
			if f.Column != "" {
				fmt.Printf(".%s", f.Column)
			}
			fmt.Printf(": %s\n", f.Message)
		}
	}

	printFindings("🔴 Errors", result.Errors)
	printFindings("🟡 Warnings", result.Warnings)
	printFindings("🔵 Info", result.Info)

	fmt.Printf("\n📊 Summary:\n")
	fmt.Printf("  • Errors: %d\n", len(result.Errors))
	fmt.Printf("  • Warnings: %d\n", len(result.Warnings))
	fmt.Printf("  • Info: %d\n", len(result.Info))

	if result.Valid {
		fmt.Printf("\n🎉 Your dictionary is ready for DDL generation!\n")
	} else {
		fmt.Printf("\n💡 Fix the errors above before generating DDL.\n")
	}
}
