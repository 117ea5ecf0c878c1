// Package dictionary reads the tabular inputs of the generator: the data
// dictionary (one row per field) and the logical-to-SQL type mapping.
package dictionary

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dwhforge/dwhforge/dialect"
	"github.com/dwhforge/dwhforge/schema"
)

// MaxFileSize caps dictionary and mapping inputs at 10MB.
const MaxFileSize = 10 << 20

// requiredColumns is the dictionary header set, matched case-insensitively.
var requiredColumns = []string{
	"table name",
	"field name",
	"datatype",
	"length",
	"decimal places",
	"key",
	"enforce",
	"partition column",
}

// LoadRows reads the data dictionary CSV. Header matching is
// case-insensitive and a UTF-8 BOM is tolerated. Key, enforce and
// partition flags are "X" markers.
func LoadRows(path string) ([]schema.DictionaryRow, error) {
	f, err := openLimited(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, &schema.StructuralError{Msg: "empty dictionary file"}
	}
	if err != nil {
		return nil, fmt.Errorf("reading dictionary header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff")
		}
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &schema.StructuralError{
			Msg: "missing columns: " + strings.Join(missing, ", "),
		}
	}

	var rows []schema.DictionaryRow
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading dictionary row: %w", err)
		}
		cell := func(col string) string {
			i := idx[col]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		rows = append(rows, schema.DictionaryRow{
			TableName: cell("table name"),
			FieldName: cell("field name"),
			DataType:  cell("datatype"),
			Length:    cell("length"),
			Decimals:  cell("decimal places"),
			Key:       marker(cell("key")),
			Enforce:   marker(cell("enforce")),
			Partition: marker(cell("partition column")),
		})
	}
	return rows, nil
}

// LoadMapping reads the two-column type-mapping CSV. The header row is
// skipped without strict validation; short rows are ignored. Keys are
// lower-cased and sanitized. The base keyword of each value is sanitized
// while any parameter fragment after "(" is kept as-is: the resolver
// discards it and takes parameters from the dictionary row instead.
func LoadMapping(path string) (schema.TypeMapping, error) {
	f, err := openLimited(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF || (err == nil && len(header) < 2) {
		return nil, &schema.StructuralError{Msg: "invalid mapping file format"}
	}
	if err != nil {
		return nil, fmt.Errorf("reading mapping header: %w", err)
	}

	mapping := make(schema.TypeMapping)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading mapping row: %w", err)
		}
		if len(rec) < 2 {
			continue
		}

		source := dialect.Sanitize(strings.ToLower(strings.TrimSpace(rec[0])), dialect.Generic)
		target := sanitizeTarget(strings.TrimSpace(rec[1]))
		if source != "" && target != "" {
			mapping[source] = target
		}
	}

	if len(mapping) == 0 {
		return nil, &schema.StructuralError{Msg: "no valid mappings found in file"}
	}
	return mapping, nil
}

func sanitizeTarget(raw string) string {
	base, params, found := strings.Cut(raw, "(")
	clean := dialect.Sanitize(base, dialect.Generic)
	if clean == "" {
		return ""
	}
	if found {
		return clean + "(" + params
	}
	return clean
}

func marker(s string) bool {
	return strings.EqualFold(s, "x")
}

func openLimited(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > MaxFileSize {
		f.Close()
		return nil, &schema.StructuralError{
			Msg: fmt.Sprintf("%s exceeds 10MB limit", path),
		}
	}
	return f, nil
}
