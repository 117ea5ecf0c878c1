package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveType(t *testing.T) {
	mapping := TypeMapping{
		"int_type":    "int",
		"string_type": "varchar",
		"money_type":  "decimal",
		"legacy_type": "decimal(10,2)",
		"text_type":   "NVARCHAR",
	}

	tests := []struct {
		name     string
		logical  string
		length   string
		decimals string
		want     ColumnType
	}{
		{"bare type", "int_type", "", "", ColumnType{Base: "int", SQL: "int"}},
		{"bare ignores row params", "int_type", "12", "3", ColumnType{Base: "int", SQL: "int"}},
		{"varchar with length", "string_type", "255", "", ColumnType{Base: "varchar", SQL: "varchar(255)"}},
		{"decimal with both params", "money_type", "10", "2", ColumnType{Base: "decimal", SQL: "decimal(10,2)"}},
		{"lookup is case-insensitive", "INT_TYPE", "", "", ColumnType{Base: "int", SQL: "int"}},
		{"mapping value case-folded", "text_type", "50", "", ColumnType{Base: "nvarchar", SQL: "nvarchar(50)"}},
		{"row params override embedded ones", "legacy_type", "12", "4", ColumnType{Base: "decimal", SQL: "decimal(12,4)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveType(tt.logical, mapping, tt.length, tt.decimals, "f")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTypeUnknown(t *testing.T) {
	mapping := TypeMapping{"int_type": "int"}

	_, err := ResolveType("mystery_type", mapping, "", "", "f")
	var unknown *UnknownTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "mystery_type", unknown.Type)
}

func TestResolveTypeMissingParameters(t *testing.T) {
	mapping := TypeMapping{
		"string_type": "varchar",
		"money_type":  "decimal",
	}

	tests := []struct {
		name      string
		logical   string
		length    string
		decimals  string
		wantParam string
	}{
		{"varchar without length", "string_type", "", "", "length"},
		{"decimal without length", "money_type", "", "2", "length"},
		{"decimal without decimals", "money_type", "10", "", "decimals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveType(tt.logical, mapping, tt.length, tt.decimals, "amount")
			var missing *MissingParameterError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, "amount", missing.Field)
			assert.Equal(t, tt.wantParam, missing.Parameter)
		})
	}
}
