package schema

import (
	"fmt"
	"strings"
)

// ColumnType is the result of resolving a logical dictionary type.
type ColumnType struct {
	// Base is the bare SQL type keyword, lower-cased.
	Base string
	// SQL is the full type string including parameters, e.g. "decimal(10,2)".
	SQL string
}

// typeFamily lists the dictionary parameters a parameterized SQL type
// requires. Types outside the families table are emitted bare.
type typeFamily struct {
	needsLength bool
	needsScale  bool
}

var families = map[string]typeFamily{
	"nvarchar": {needsLength: true},
	"varchar":  {needsLength: true},
	"char":     {needsLength: true},
	"decimal":  {needsLength: true, needsScale: true},
	"numeric":  {needsLength: true, needsScale: true},
}

// ResolveType maps a logical type name through the type mapping and attaches
// the row's length/decimals parameters. The mapping value only supplies the
// type family: any parameters embedded after "(" in the mapping are
// discarded and the dictionary row's values are used instead, verbatim.
// field names the dictionary field in MissingParameterError.
func ResolveType(logical string, mapping TypeMapping, length, decimals, field string) (ColumnType, error) {
	mapped := mapping[strings.ToLower(strings.TrimSpace(logical))]
	base := strings.ToLower(strings.TrimSpace(strings.SplitN(mapped, "(", 2)[0]))
	if base == "" {
		return ColumnType{}, &UnknownTypeError{Type: logical}
	}

	fam, ok := families[base]
	if !ok {
		return ColumnType{Base: base, SQL: base}, nil
	}

	var params []string
	if fam.needsLength {
		if length == "" {
			return ColumnType{}, &MissingParameterError{Field: field, Parameter: "length"}
		}
		params = append(params, length)
	}
	if fam.needsScale {
		if decimals == "" {
			return ColumnType{}, &MissingParameterError{Field: field, Parameter: "decimals"}
		}
		params = append(params, decimals)
	}

	return ColumnType{
		Base: base,
		SQL:  fmt.Sprintf("%s(%s)", base, strings.Join(params, ",")),
	}, nil
}
