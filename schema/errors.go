package schema

import (
	"fmt"
	"strconv"

	"github.com/adamluzsi/wordseq"
)

const (
	// ErrBlank is the NonBlank violation cause.
	ErrBlank wordseq.Error = `blank value`
	// ErrNotPositive is the Positive violation cause.
	ErrNotPositive wordseq.Error = `the number is not positive`
	// ErrNegative is the NonNegative violation cause.
	ErrNegative wordseq.Error = `the number is negative`

	// ErrBlankSchemaName rejects schemas declared without a name.
	ErrBlankSchemaName wordseq.Error = `schema: blank schema name`
	// ErrBlankFieldName rejects fields declared without a name.
	ErrBlankFieldName wordseq.Error = `schema: blank field name`
)

// ConstraintError is returned when a field rejects a value.
type ConstraintError struct {
	Field string
	Cause error
}

func (e ConstraintError) Error() string {
	return `schema: field ` + strconv.Quote(e.Field) + `: ` + e.Cause.Error()
}

func (e ConstraintError) Unwrap() error { return e.Cause }

// UnknownFieldError is returned when a record accessor receives a field name
// its schema does not declare.
type UnknownFieldError struct {
	Schema string
	Field  string
}

func (e UnknownFieldError) Error() string {
	return `schema: unknown field ` + strconv.Quote(e.Field) + ` in schema ` + strconv.Quote(e.Schema)
}

// DuplicateFieldError is returned when a schema declares one field name twice.
type DuplicateFieldError struct{ Field string }

func (e DuplicateFieldError) Error() string {
	return `schema: duplicate field ` + strconv.Quote(e.Field)
}

// AlreadyRegisteredError is returned when Register receives a type that already has a schema.
type AlreadyRegisteredError struct{ Type string }

func (e AlreadyRegisteredError) Error() string {
	return `schema: schema already registered for ` + e.Type
}

// NotRegisteredError is returned when Validate receives a value of a type without a registered schema.
type NotRegisteredError struct{ Type string }

func (e NotRegisteredError) Error() string {
	return `schema: no schema registered for ` + e.Type
}

// NotStructError is returned when a struct type was expected.
type NotStructError struct{ Got string }

func (e NotStructError) Error() string {
	return `schema: not a struct type (` + e.Got + `)`
}

// UnknownConstraintError is returned when a field tag names a constraint
// the package does not provide.
type UnknownConstraintError struct{ Name string }

func (e UnknownConstraintError) Error() string {
	return `schema: unknown constraint ` + strconv.Quote(e.Name) + ` in field tag`
}

// WrongTypeError is the violation cause when a constraint receives a value of the wrong type.
type WrongTypeError struct {
	Want string
	Got  string
}

func (e WrongTypeError) Error() string {
	return `wrong value type (want ` + e.Want + `, got ` + e.Got + `)`
}

// NotAllowedError is the OneOf violation cause.
type NotAllowedError struct{ Value interface{} }

func (e NotAllowedError) Error() string {
	return fmt.Sprintf(`value %v is not allowed`, e.Value)
}
