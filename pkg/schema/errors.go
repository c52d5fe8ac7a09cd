package schema

import "fmt"

// SchemaError reports a defect in a schema definition itself, such as a
// missing or mistyped attribute. It belongs to the fatal error channel:
// unlike a validation Result it indicates a bug in the schema file, not a
// problem with the configuration being validated.
type SchemaError struct {
	Message string
}

func (e *SchemaError) Error() string {
	return e.Message
}

func schemaErrorf(format string, args ...any) *SchemaError {
	return &SchemaError{Message: fmt.Sprintf(format, args...)}
}
