package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMapping = TypeMapping{
	"int_type":    "int",
	"string_type": "varchar",
	"money_type":  "decimal",
	"date_type":   "date",
}

func TestBuildPreservesFirstSeenTableOrder(t *testing.T) {
	rows := []DictionaryRow{
		{TableName: "zebra", FieldName: "id", DataType: "int_type"},
		{TableName: "alpha", FieldName: "id", DataType: "int_type"},
		{TableName: "zebra", FieldName: "code", DataType: "string_type", Length: "10"},
		{TableName: "milk", FieldName: "id", DataType: "int_type"},
	}

	model, err := Build(rows, testMapping)
	require.NoError(t, err)

	var order []string
	for _, table := range model.Tables {
		order = append(order, table.Name)
	}
	assert.Equal(t, []string{"zebra", "alpha", "milk"}, order)

	zebra, ok := model.Table("zebra")
	require.True(t, ok)
	assert.Len(t, zebra.Columns, 2)
}

func TestBuildColumnOrderAndFlags(t *testing.T) {
	rows := []DictionaryRow{
		{TableName: "Customer", FieldName: "id", DataType: "int_type", Key: true, Enforce: true},
		{TableName: "customer", FieldName: "name", DataType: "string_type", Length: "255", Enforce: true},
		{TableName: "customer", FieldName: "balance", DataType: "money_type", Length: "10", Decimals: "2"},
	}

	model, err := Build(rows, testMapping)
	require.NoError(t, err)
	require.Len(t, model.Tables, 1)

	table := model.Tables[0]
	assert.Equal(t, "customer", table.Name) // lower-cased on the way in

	require.Len(t, table.Columns, 3)
	assert.Equal(t, ColumnDef{Name: "id", SQLType: "int", Enforce: true}, table.Columns[0])
	assert.Equal(t, ColumnDef{Name: "name", SQLType: "varchar(255)", Enforce: true}, table.Columns[1])
	assert.Equal(t, ColumnDef{Name: "balance", SQLType: "decimal(10,2)", Enforce: false}, table.Columns[2])

	assert.Equal(t, []string{"id"}, table.Keys)
}

func TestBuildCompositeKeyOrder(t *testing.T) {
	rows := []DictionaryRow{
		{TableName: "order_item", FieldName: "order_id", DataType: "int_type", Key: true},
		{TableName: "order_item", FieldName: "qty", DataType: "int_type"},
		{TableName: "order_item", FieldName: "line_no", DataType: "int_type", Key: true},
	}

	model, err := Build(rows, testMapping)
	require.NoError(t, err)
	assert.Equal(t, []string{"order_id", "line_no"}, model.Tables[0].Keys)
}

func TestBuildSkipsBlankTableRows(t *testing.T) {
	rows := []DictionaryRow{
		{TableName: "customer", FieldName: "id", DataType: "int_type"},
		{}, // separator row
		{TableName: "   ", FieldName: "", DataType: ""},
		{TableName: "order", FieldName: "id", DataType: "int_type"},
	}

	model, err := Build(rows, testMapping)
	require.NoError(t, err)
	assert.Len(t, model.Tables, 2)
}

func TestBuildEmptyFieldNameIsStructural(t *testing.T) {
	rows := []DictionaryRow{
		{TableName: "customer", FieldName: "id", DataType: "int_type"},
		{TableName: "customer", FieldName: `";--"`, DataType: "int_type"},
	}

	model, err := Build(rows, testMapping)
	var structural *StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Contains(t, structural.Msg, "customer")
	assert.Nil(t, model)
}

func TestBuildPartition(t *testing.T) {
	rows := []DictionaryRow{
		{TableName: "events", FieldName: "id", DataType: "int_type", Key: true},
		{TableName: "events", FieldName: "day", DataType: "date_type", Partition: true},
	}

	model, err := Build(rows, testMapping)
	require.NoError(t, err)

	table := model.Tables[0]
	assert.Equal(t, "day", table.Partition)
	assert.Equal(t, "date", table.PartitionType)
}

func TestBuildDuplicatePartitionFails(t *testing.T) {
	rows := []DictionaryRow{
		{TableName: "events", FieldName: "day", DataType: "date_type", Partition: true},
		{TableName: "events", FieldName: "hour", DataType: "date_type", Partition: true},
	}

	model, err := Build(rows, testMapping)
	var dup *DuplicatePartitionError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "events", dup.Table)
	assert.Nil(t, model)
}

func TestBuildResolverFailureAbortsWholeBuild(t *testing.T) {
	rows := []DictionaryRow{
		{TableName: "customer", FieldName: "id", DataType: "int_type"},
		{TableName: "order", FieldName: "id", DataType: "mystery_type"},
	}

	model, err := Build(rows, testMapping)
	var unknown *UnknownTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Nil(t, model, "no partial model on failure")
}

func TestBuildSanitizesNames(t *testing.T) {
	rows := []DictionaryRow{
		{TableName: `"Customers"; DROP TABLE x`, FieldName: "[id]", DataType: "int_type"},
	}

	model, err := Build(rows, testMapping)
	require.NoError(t, err)
	require.Len(t, model.Tables, 1)
	assert.Equal(t, "customersdroptablex", model.Tables[0].Name)
	assert.Equal(t, "id", model.Tables[0].Columns[0].Name)
}
