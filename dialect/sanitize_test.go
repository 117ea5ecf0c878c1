package dialect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind Kind
		want string
	}{
		{"plain", "customer", Postgres, "customer"},
		{"surrounding quotes stripped", `"customer"`, Postgres, "customer"},
		{"backticks stripped", "`customer`", MySQL, "customer"},
		{"brackets stripped", "[customer]", MSSQL, "customer"},
		{"whitespace stripped", "  customer \t", Postgres, "customer"},
		{"allowed specials kept", "src/sales.orders_v2-raw", Postgres, "src/sales.orders_v2-raw"},
		{"injection residue", `id"; DROP TABLE students;--`, Postgres, "idDROPTABLEstudents--"},
		{"spaces removed", "order id", MySQL, "orderid"},
		{"empty passes through", "", Postgres, ""},
		{"only unsafe chars", `'";%$!`, MySQL, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.raw, tt.kind))
		})
	}
}

func TestSanitizeTruncates(t *testing.T) {
	long := strings.Repeat("a", 200)

	tests := []struct {
		kind Kind
		want int
	}{
		{MSSQL, 128},
		{MySQL, 64},
		{Postgres, 63},
		{Generic, 64},
		{Kind("oracle"), 64},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Len(t, Sanitize(long, tt.kind), tt.want)
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"customer",
		`"quoted name"`,
		`id"; DROP TABLE x`,
		strings.Repeat("z", 300),
		"src/sales.orders-raw",
		"",
	}
	for _, raw := range inputs {
		for _, kind := range []Kind{MSSQL, MySQL, Postgres, Generic} {
			once := Sanitize(raw, kind)
			assert.Equal(t, once, Sanitize(once, kind), "raw=%q kind=%q", raw, kind)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{MSSQL, "[customer]"},
		{MySQL, "`customer`"},
		{Postgres, `"customer"`},
		{Kind("unknown"), "customer"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, Quote("customer", tt.kind))
		})
	}
}

func TestEscapeLiteral(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind Kind
		want string
	}{
		{"plain", "crm", Postgres, "'crm'"},
		{"quotes filtered before escaping", "O'Brien", MySQL, "'OBrien'"},
		{"injection collapses", "x'); DROP TABLE y;--", Postgres, "'xDROPTABLEy--'"},
		{"percent filtered", "100%done", Postgres, "'100done'"},
		{"empty", "", MSSQL, "''"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLiteral(tt.raw, tt.kind))
		})
	}
}

func TestSafeName(t *testing.T) {
	assert.True(t, SafeName("my_project"))
	assert.True(t, SafeName("sales-dwh.v2"))
	assert.True(t, SafeName("team/warehouse"))
	assert.False(t, SafeName(""))
	assert.False(t, SafeName("bad name"))
	assert.False(t, SafeName("semi;colon"))
	assert.False(t, SafeName(strings.Repeat("a", 129)))
}
