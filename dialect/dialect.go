package dialect

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies a supported SQL engine.
type Kind string

const (
	MSSQL    Kind = "mssql"
	MySQL    Kind = "mysql"
	Postgres Kind = "postgresql"

	// Generic is used before a dialect is selected; sanitization falls
	// back to the most restrictive common identifier limit.
	Generic Kind = ""
)

// Profile describes the DDL syntax of one SQL engine. Templates use
// {db}, {schema} and {column} placeholders filled in by the generator.
type Profile struct {
	Kind Kind

	// SurrogateKey is the auto-incrementing identity column definition.
	// {column} receives the quoted "<table>_id" identifier.
	SurrogateKey string

	// IngestedAt is the ingestion-timestamp audit column, emitted verbatim.
	IngestedAt string

	// CreateDatabase statements run in order before anything else.
	CreateDatabase []string

	CreateSchema string
	DropSchema   string

	QuotePrefix string
	QuoteSuffix string

	// MaxIdentifier is the engine's identifier length limit.
	MaxIdentifier int

	// BatchSeparator selects GO-terminated batches instead of
	// semicolon-terminated statements.
	BatchSeparator bool
}

var profiles = map[string]*Profile{
	"mssql": {
		Kind:         MSSQL,
		SurrogateKey: "{column} INT IDENTITY(1,1) NOT NULL",
		IngestedAt:   "DWH_INGESTED_AT DATETIME2 DEFAULT SYSDATETIME()",
		CreateDatabase: []string{
			"USE master",
			"DROP DATABASE IF EXISTS {db}",
			"CREATE DATABASE {db}",
			"USE {db}",
		},
		CreateSchema:   "CREATE SCHEMA {schema}",
		DropSchema:     "IF EXISTS (SELECT * FROM sys.schemas WHERE name = '{schema}') DROP SCHEMA {schema}",
		QuotePrefix:    "[",
		QuoteSuffix:    "]",
		MaxIdentifier:  128,
		BatchSeparator: true,
	},
	"mysql": {
		Kind:         MySQL,
		SurrogateKey: "{column} INT AUTO_INCREMENT NOT NULL",
		IngestedAt:   "DWH_INGESTED_AT TIMESTAMP(6) DEFAULT CURRENT_TIMESTAMP(6)",
		CreateDatabase: []string{
			"DROP DATABASE IF EXISTS {db}",
			"CREATE DATABASE {db}",
			"USE {db}",
		},
		CreateSchema:  "CREATE SCHEMA IF NOT EXISTS {schema}",
		DropSchema:    "DROP SCHEMA IF EXISTS {schema}",
		QuotePrefix:   "`",
		QuoteSuffix:   "`",
		MaxIdentifier: 64,
	},
	"postgresql": {
		Kind:         Postgres,
		SurrogateKey: "{column} SERIAL NOT NULL",
		IngestedAt:   "DWH_INGESTED_AT TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP",
		CreateDatabase: []string{
			"DROP DATABASE IF EXISTS {db}",
			"CREATE DATABASE {db}",
		},
		CreateSchema:  "CREATE SCHEMA IF NOT EXISTS {schema}",
		DropSchema:    "DROP SCHEMA IF EXISTS {schema} CASCADE",
		QuotePrefix:   `"`,
		QuoteSuffix:   `"`,
		MaxIdentifier: 63,
	},
}

// Get returns the profile for a dialect key (case-insensitive).
func Get(name string) (*Profile, bool) {
	p, ok := profiles[strings.ToLower(name)]
	return p, ok
}

// List returns all supported dialect keys, sorted.
func List() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DropTable builds the drop statement for a fully-qualified table name.
// MSSQL uses an OBJECT_ID existence check so scripts also run on
// servers older than 2016.
func (p *Profile) DropTable(qualified string) string {
	if p.Kind == MSSQL {
		return fmt.Sprintf("IF OBJECT_ID('%s', 'U') IS NOT NULL DROP TABLE %s", qualified, qualified)
	}
	return "DROP TABLE IF EXISTS " + qualified
}

// Quote sanitizes an identifier and wraps it in the profile's quote pair.
func (p *Profile) Quote(name string) string {
	return p.QuotePrefix + Sanitize(name, p.Kind) + p.QuoteSuffix
}
