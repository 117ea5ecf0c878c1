package schema

import (
	"fmt"
	"strings"

	"github.com/dwhforge/dwhforge/dialect"
)

// Build folds dictionary rows into a table model. Tables are created
// lazily on first sight and keep their first-seen order. The first
// resolver or structural failure aborts the whole build; callers must
// never emit DDL from a partially-built model.
func Build(rows []DictionaryRow, mapping TypeMapping) (*Model, error) {
	model := &Model{index: make(map[string]*TableDef)}

	for _, row := range rows {
		tableName := dialect.Sanitize(strings.ToLower(row.TableName), dialect.Generic)
		if tableName == "" {
			// Blank separator rows in source data are allowed.
			continue
		}

		table, ok := model.index[tableName]
		if !ok {
			table = &TableDef{Name: tableName}
			model.index[tableName] = table
			model.Tables = append(model.Tables, table)
		}

		fieldName := dialect.Sanitize(row.FieldName, dialect.Generic)
		if fieldName == "" {
			return nil, &StructuralError{
				Msg: fmt.Sprintf("empty field name in table %s", tableName),
			}
		}

		colType, err := ResolveType(row.DataType, mapping, row.Length, row.Decimals, fieldName)
		if err != nil {
			return nil, err
		}

		table.Columns = append(table.Columns, ColumnDef{
			Name:    fieldName,
			SQLType: colType.SQL,
			Enforce: row.Enforce,
		})

		if row.Key {
			table.Keys = append(table.Keys, fieldName)
		}
		if row.Partition {
			if table.Partition != "" {
				return nil, &DuplicatePartitionError{Table: tableName}
			}
			table.Partition = fieldName
			table.PartitionType = colType.Base
		}
	}

	return model, nil
}
