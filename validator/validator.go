// Package validator checks a data dictionary and type mapping against the
// same rules the model builder enforces, but collects every finding
// instead of stopping at the first one.
package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dwhforge/dwhforge/dialect"
	"github.com/dwhforge/dwhforge/schema"
)

// ValidationError represents a single validation finding.
type ValidationError struct {
	Type     string `json:"type"`
	Table    string `json:"table,omitempty"`
	Column   string `json:"column,omitempty"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // "error", "warning", "info"
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
	Info     []ValidationError `json:"info"`
}

// DictionaryValidator validates dictionary rows for a target dialect.
type DictionaryValidator struct {
	kind    dialect.Kind
	maxName int
}

// New creates a validator for the given dialect key. An empty key
// validates against the generic identifier limit.
func New(dialectKey string) *DictionaryValidator {
	v := &DictionaryValidator{kind: dialect.Generic, maxName: 64}
	if p, ok := dialect.Get(dialectKey); ok {
		v.kind = p.Kind
		v.maxName = p.MaxIdentifier
	}
	return v
}

type tableState struct {
	name      string
	columns   map[string]bool
	keys      int
	partition string
}

// Validate walks every dictionary row and reports all findings. Unlike
// schema.Build it never aborts, so one run surfaces every problem in the
// input at once.
func (v *DictionaryValidator) Validate(rows []schema.DictionaryRow, mapping schema.TypeMapping) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
		Info:     []ValidationError{},
	}

	tables := make(map[string]*tableState)
	var tableOrder []string
	usedTypes := make(map[string]bool)

	for i, row := range rows {
		tableName := dialect.Sanitize(strings.ToLower(row.TableName), dialect.Generic)
		if tableName == "" {
			if strings.TrimSpace(row.FieldName) != "" {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:     "table_name",
					Column:   row.FieldName,
					Message:  fmt.Sprintf("row %d has a field but no table name and will be skipped", i+2),
					Severity: "warning",
				})
			}
			continue
		}

		table, ok := tables[tableName]
		if !ok {
			table = &tableState{name: tableName, columns: make(map[string]bool)}
			tables[tableName] = table
			tableOrder = append(tableOrder, tableName)
		}

		fieldName := dialect.Sanitize(row.FieldName, dialect.Generic)
		if fieldName == "" {
			result.Errors = append(result.Errors, ValidationError{
				Type:     "field_name",
				Table:    tableName,
				Message:  fmt.Sprintf("row %d has an empty field name", i+2),
				Severity: "error",
			})
			continue
		}

		v.checkIdentifierLength(row.FieldName, tableName, fieldName, result)

		if table.columns[fieldName] {
			result.Warnings = append(result.Warnings, ValidationError{
				Type:     "field_name",
				Table:    tableName,
				Column:   fieldName,
				Message:  "duplicate field name",
				Severity: "warning",
			})
		}
		table.columns[fieldName] = true

		usedTypes[strings.ToLower(strings.TrimSpace(row.DataType))] = true
		if _, err := schema.ResolveType(row.DataType, mapping, row.Length, row.Decimals, fieldName); err != nil {
			result.Errors = append(result.Errors, v.classifyResolveError(err, tableName, fieldName))
		}

		if row.Key {
			table.keys++
		}
		if row.Partition {
			if table.partition != "" {
				result.Errors = append(result.Errors, ValidationError{
					Type:     "partition",
					Table:    tableName,
					Column:   fieldName,
					Message:  fmt.Sprintf("table already partitioned by %s", table.partition),
					Severity: "error",
				})
			} else {
				table.partition = fieldName
			}
		}
	}

	for _, name := range tableOrder {
		if tables[name].keys == 0 {
			result.Warnings = append(result.Warnings, ValidationError{
				Type:     "key",
				Table:    name,
				Message:  "no key fields declared; table gets only its surrogate key",
				Severity: "warning",
			})
		}
	}

	for logical := range mapping {
		if !usedTypes[logical] {
			result.Info = append(result.Info, ValidationError{
				Type:     "mapping",
				Message:  fmt.Sprintf("mapped type %q is never referenced", logical),
				Severity: "info",
			})
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func (v *DictionaryValidator) checkIdentifierLength(raw, table, clean string, result *ValidationResult) {
	if len(dialect.Filter(raw)) > v.maxName {
		result.Warnings = append(result.Warnings, ValidationError{
			Type:     "identifier",
			Table:    table,
			Column:   clean,
			Message:  fmt.Sprintf("identifier exceeds %d characters and will be truncated", v.maxName),
			Severity: "warning",
		})
	}
}

func (v *DictionaryValidator) classifyResolveError(err error, table, field string) ValidationError {
	var unknown *schema.UnknownTypeError
	var missing *schema.MissingParameterError

	switch {
	case errors.As(err, &unknown):
		return ValidationError{
			Type:     "datatype",
			Table:    table,
			Column:   field,
			Message:  err.Error(),
			Severity: "error",
		}
	case errors.As(err, &missing):
		return ValidationError{
			Type:     "parameters",
			Table:    table,
			Column:   field,
			Message:  err.Error(),
			Severity: "error",
		}
	default:
		return ValidationError{
			Type:     "datatype",
			Table:    table,
			Column:   field,
			Message:  err.Error(),
			Severity: "error",
		}
	}
}
