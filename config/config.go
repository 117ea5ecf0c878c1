// Package config holds project configuration for dwhforge. It is decoupled
// from CLI concerns; the CLI and the generator both consume ProjectConfig
// read-only.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/dwhforge/dwhforge/dialect"
)

// ProjectConfig describes one warehouse project: where it lives, which SQL
// engine it targets and which schema layers it generates.
type ProjectConfig struct {
	ProjectName  string `koanf:"project_name"`
	BaseDir      string `koanf:"base_dir"`
	Database     string `koanf:"database"` // mssql, mysql, postgresql
	DatabaseName string `koanf:"database_name"`
	SourceSystem string `koanf:"source_system"`

	// Layers are the schema tiers receiving their own DDL document,
	// processed in order. Defaults to the medallion trio.
	Layers []string `koanf:"layers"`

	// BatchSeparator selects GO-terminated batches. Unset defaults to
	// true for MSSQL and false otherwise.
	BatchSeparator *bool `koanf:"batch_separator"`

	Dictionary  string `koanf:"dictionary"`
	TypeMapping string `koanf:"type_mapping"`

	Docker  bool     `koanf:"docker"`
	GitInit bool     `koanf:"git_init"`
	Scripts []string `koanf:"scripts"` // mac, win
}

// ConfigError reports an invalid project configuration value. It is
// detected once, before any row processing.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Msg)
}

// ProjectRoot is the directory the project is scaffolded into.
func (c *ProjectConfig) ProjectRoot() string {
	return filepath.Join(c.BaseDir, c.ProjectName)
}

// UseBatchSeparator resolves the batch-separator flag against its
// dialect-dependent default.
func (c *ProjectConfig) UseBatchSeparator() bool {
	if c.BatchSeparator != nil {
		return *c.BatchSeparator
	}
	return c.Database == string(dialect.MSSQL)
}

// Validate checks names against the identifier-safety pattern and the
// dialect key against the supported set.
func (c *ProjectConfig) Validate() error {
	if c.ProjectName == "" || !dialect.SafeName(c.ProjectName) {
		return &ConfigError{Field: "project_name", Msg: "invalid project name"}
	}
	if c.Database != "" {
		if _, ok := dialect.Get(c.Database); !ok {
			return &ConfigError{Field: "database", Msg: fmt.Sprintf("unsupported database type %q", c.Database)}
		}
		if c.DatabaseName == "" || !dialect.SafeName(c.DatabaseName) {
			return &ConfigError{Field: "database_name", Msg: "invalid database name"}
		}
	}
	if c.SourceSystem != "" && !dialect.SafeName(c.SourceSystem) {
		return &ConfigError{Field: "source_system", Msg: "invalid source system name"}
	}
	for _, layer := range c.Layers {
		if !dialect.SafeName(layer) {
			return &ConfigError{Field: "layers", Msg: fmt.Sprintf("invalid layer name %q", layer)}
		}
	}
	for _, s := range c.Scripts {
		if s != "mac" && s != "win" {
			return &ConfigError{Field: "scripts", Msg: fmt.Sprintf("unknown script target %q", s)}
		}
	}
	return nil
}
