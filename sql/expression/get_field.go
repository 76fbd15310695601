package expression

import (
	"fmt"

	errors "gopkg.in/src-d/go-errors.v1"

	"gopkg.in/src-d/go-sqlin.v0/sql"
)

// ErrIndexOutOfBounds is returned when the field index is out of the bounds.
var ErrIndexOutOfBounds = errors.NewKind("unable to find field with index %d in row of %d columns")

// GetField reads the value at a fixed position of the row. It is what an
// unresolved column becomes once it is found in the schema.
type GetField struct {
	table    string
	name     string
	index    int
	typ      sql.Type
	nullable bool
}

var _ sql.Expression = (*GetField)(nil)

// NewGetField creates a GetField expression.
func NewGetField(index int, fieldType sql.Type, fieldName string, nullable bool) *GetField {
	return NewGetFieldWithTable(index, fieldType, "", fieldName, nullable)
}

// NewGetFieldWithTable creates a GetField expression with table name.
func NewGetFieldWithTable(index int, fieldType sql.Type, table, fieldName string, nullable bool) *GetField {
	return &GetField{
		table:    table,
		name:     fieldName,
		index:    index,
		typ:      fieldType,
		nullable: nullable,
	}
}

// NewGetFieldFromSchema returns the field of the column at the given index of
// the schema.
func NewGetFieldFromSchema(schema sql.Schema, index int) *GetField {
	col := schema[index]
	return NewGetFieldWithTable(index, col.Type, col.Source, col.Name, col.Nullable)
}

// Index of the value in the row.
func (f *GetField) Index() int { return f.index }

// Table returns the name of the table the field belongs to, if any.
func (f *GetField) Table() string { return f.table }

// Name implements the Nameable interface.
func (f *GetField) Name() string { return f.name }

// Children implements the Expression interface.
func (*GetField) Children() []sql.Expression { return nil }

// Resolved implements the Expression interface.
func (*GetField) Resolved() bool { return true }

// IsNullable implements the Expression interface.
func (f *GetField) IsNullable() bool { return f.nullable }

// Type implements the Expression interface.
func (f *GetField) Type() sql.Type { return f.typ }

// Eval implements the Expression interface.
func (f *GetField) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	if f.index < 0 || f.index >= len(row) {
		return nil, ErrIndexOutOfBounds.New(f.index, len(row))
	}
	return row[f.index], nil
}

// WithChildren implements the Expression interface.
func (f *GetField) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if err := checkChildren(f, children, 0); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *GetField) String() string {
	if f.table == "" {
		return f.name
	}
	return f.table + "." + f.name
}

// DebugString implements the sql.DebugStringer interface.
func (f *GetField) DebugString() string {
	return fmt.Sprintf("[%s, idx=%d, type=%s, nullable=%t]", f, f.index, f.typ, f.nullable)
}
