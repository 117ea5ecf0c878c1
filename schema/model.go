package schema

// DictionaryRow is one field definition from the data dictionary.
// Rows are transient; they are consumed once by Build.
type DictionaryRow struct {
	TableName string
	FieldName string
	DataType  string
	Length    string
	Decimals  string
	Key       bool
	Enforce   bool
	Partition bool
}

// ColumnDef is a resolved table column.
type ColumnDef struct {
	Name    string
	SQLType string
	Enforce bool
}

// TableDef accumulates the columns, keys and partition metadata of one
// table. Column order equals dictionary row order; key order equals
// first-seen order (composite primary keys rely on it).
type TableDef struct {
	Name          string
	Columns       []ColumnDef
	Keys          []string
	Partition     string
	PartitionType string
}

// TypeMapping maps lower-cased logical type names to SQL type strings.
// Immutable once loaded.
type TypeMapping map[string]string

// Model is the finalized table model. Tables preserves first-seen order,
// which fixes the table order in generated DDL.
type Model struct {
	Tables []*TableDef

	index map[string]*TableDef
}

// Table looks a table up by its sanitized name.
func (m *Model) Table(name string) (*TableDef, bool) {
	t, ok := m.index[name]
	return t, ok
}
