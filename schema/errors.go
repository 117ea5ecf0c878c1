package schema

import "fmt"

// StructuralError reports malformed dictionary or mapping input: missing
// required columns, empty files, or a field row that sanitizes to nothing.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string { return e.Msg }

// UnknownTypeError reports a logical type absent from the type mapping.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("undefined type: %s", e.Type)
}

// MissingParameterError reports a parameterized type missing a required
// length or decimals value.
type MissingParameterError struct {
	Field     string
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing %s for %s", e.Parameter, e.Field)
}

// DuplicatePartitionError reports a second partition flag within one table.
type DuplicatePartitionError struct {
	Table string
}

func (e *DuplicatePartitionError) Error() string {
	return fmt.Sprintf("multiple partition columns in %s", e.Table)
}
