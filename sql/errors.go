package sql

import "gopkg.in/src-d/go-errors.v1"

// Errors raised while building expression trees.
var (
	// ErrInvalidType is returned when a value of an unsupported Go type
	// reaches a type conversion or an evaluation.
	ErrInvalidType = errors.NewKind("invalid type: %s")

	// ErrColumnNotFound is returned when a column is not part of the schema
	// a predicate is compiled against.
	ErrColumnNotFound = errors.NewKind("column %q could not be found in any table in scope")

	// ErrInvalidChildrenNumber is returned by WithChildren when it gets a
	// different number of children than the expression holds.
	ErrInvalidChildrenNumber = errors.NewKind("%T: invalid children number, got %d, expected %d")

	// ErrInvalidOperandColumns is returned when the left operand of a
	// comparison and one of its right operands have different arity.
	ErrInvalidOperandColumns = errors.NewKind("operand should have %d columns, but has %d")
)

// Errors raised while checking rows against a schema.
var (
	// ErrUnexpectedRowLength is returned when a row does not have a value
	// for every column of the schema.
	ErrUnexpectedRowLength = errors.NewKind("expected %d values, got %d")

	// ErrUnexpectedNullValue is returned when a NULL is found in a non
	// nullable column.
	ErrUnexpectedNullValue = errors.NewKind("unexpected NULL value in non-nullable column %q")

	// ErrUnexpectedType is returned when a value of a row can't be converted
	// to its column type.
	ErrUnexpectedType = errors.NewKind("value at %d has unexpected type: %T")
)
