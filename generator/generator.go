// Package generator compiles a table model into dialect-specific DDL, one
// document per schema layer.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dwhforge/dwhforge/config"
	"github.com/dwhforge/dwhforge/dialect"
	"github.com/dwhforge/dwhforge/schema"
)

// Generator holds the immutable configuration and dialect profile of one
// compilation. It is stateless across Generate calls; separate instances
// may run in parallel.
type Generator struct {
	cfg     *config.ProjectConfig
	profile *dialect.Profile
	kind    dialect.Kind
}

// New validates the configuration once and returns a ready generator.
// Invalid names and unsupported dialect keys are ConfigErrors; nothing is
// re-checked per statement.
func New(cfg *config.ProjectConfig) (*Generator, error) {
	if cfg.ProjectName == "" || !dialect.SafeName(cfg.ProjectName) {
		return nil, &config.ConfigError{Field: "project_name", Msg: "invalid project name"}
	}
	profile, ok := dialect.Get(cfg.Database)
	if !ok {
		return nil, &config.ConfigError{Field: "database", Msg: fmt.Sprintf("unsupported database type %q", cfg.Database)}
	}
	if cfg.DatabaseName == "" || !dialect.SafeName(cfg.DatabaseName) {
		return nil, &config.ConfigError{Field: "database_name", Msg: "invalid database name"}
	}
	return &Generator{cfg: cfg, profile: profile, kind: profile.Kind}, nil
}

// Generate compiles DDL for every configured layer, keyed "<layer>.sql".
// Layers are processed in configuration order; duplicates each produce
// their own document. Output is deterministic for a given model.
func (g *Generator) Generate(model *schema.Model) map[string]string {
	ddl := make(map[string]string, len(g.cfg.Layers))
	for _, layer := range g.cfg.Layers {
		var stmts []string
		stmts = append(stmts, g.databaseStatements()...)
		stmts = append(stmts, g.schemaStatements(layer)...)
		stmts = append(stmts, g.tableStatements(layer, model)...)
		ddl[layer+".sql"] = g.joinStatements(stmts)
	}
	return ddl
}

func (g *Generator) databaseStatements() []string {
	quoted := g.profile.Quote(g.cfg.DatabaseName)
	stmts := make([]string, 0, len(g.profile.CreateDatabase))
	for _, tmpl := range g.profile.CreateDatabase {
		stmts = append(stmts, strings.ReplaceAll(tmpl, "{db}", quoted))
	}
	return stmts
}

// schemaStatements drops then recreates the layer schema: every compile
// assumes a destructive full rebuild.
func (g *Generator) schemaStatements(layer string) []string {
	quoted := g.profile.Quote(layer)
	return []string{
		strings.ReplaceAll(g.profile.DropSchema, "{schema}", quoted),
		strings.ReplaceAll(g.profile.CreateSchema, "{schema}", quoted),
	}
}

func (g *Generator) tableStatements(layer string, model *schema.Model) []string {
	var stmts []string
	for _, table := range model.Tables {
		qualified := g.profile.Quote(layer) + "." + g.profile.Quote(table.Name)

		columns := []string{
			strings.ReplaceAll(g.profile.SurrogateKey, "{column}", g.profile.Quote(table.Name+"_id")),
		}
		for _, col := range table.Columns {
			def := g.profile.Quote(col.Name) + " " + col.SQLType
			if col.Enforce {
				def += " NOT NULL"
			}
			columns = append(columns, def)
		}
		columns = append(columns,
			"DWH_RECORD_ID VARCHAR(255) NOT NULL",
			"DWH_JOB_RECORD_ID VARCHAR(255) NOT NULL",
			"DWH_SOURCE_SYSTEM VARCHAR(255) DEFAULT "+dialect.EscapeLiteral(g.cfg.SourceSystem, g.kind)+" NOT NULL",
			"DWH_SOURCE_TABLE VARCHAR(255) DEFAULT "+dialect.EscapeLiteral(table.Name, g.kind)+" NOT NULL",
			g.profile.IngestedAt,
		)

		if len(table.Keys) > 0 {
			quotedKeys := make([]string, 0, len(table.Keys))
			for _, key := range table.Keys {
				quotedKeys = append(quotedKeys, g.profile.Quote(key))
			}
			columns = append(columns, "PRIMARY KEY ("+strings.Join(quotedKeys, ", ")+")")
		}

		stmts = append(stmts,
			g.profile.DropTable(qualified),
			"CREATE TABLE "+qualified+" (\n    "+strings.Join(columns, ",\n    ")+"\n)",
		)
	}
	return stmts
}

func (g *Generator) joinStatements(stmts []string) string {
	if g.cfg.UseBatchSeparator() {
		return strings.Join(stmts, "\nGO\n") + "\nGO"
	}
	return strings.Join(stmts, ";\n") + ";"
}

// WriteFiles saves the generated DDL documents into dir, creating it if
// needed. Returns the written paths in name order.
func WriteFiles(dir string, files map[string]string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating sql folder: %w", err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	written := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", name, err)
		}
		written = append(written, path)
	}
	return written, nil
}
