package expression

import (
	"gopkg.in/src-d/go-sqlin.v0/sql"
)

// UnresolvedColumn is a column reference, optionally qualified by its table,
// that has not been looked up in the schema yet. It can't be evaluated: the
// analyzer replaces it with a GetField.
type UnresolvedColumn struct {
	table string
	name  string
}

var _ sql.Expression = (*UnresolvedColumn)(nil)

// NewUnresolvedColumn creates a new UnresolvedColumn expression.
func NewUnresolvedColumn(name string) *UnresolvedColumn {
	return &UnresolvedColumn{name: name}
}

// NewUnresolvedQualifiedColumn creates a new UnresolvedColumn expression
// with a table qualifier.
func NewUnresolvedQualifiedColumn(table, name string) *UnresolvedColumn {
	return &UnresolvedColumn{table: table, name: name}
}

// Name implements the Nameable interface.
func (uc *UnresolvedColumn) Name() string { return uc.name }

// Table returns the table qualifier, or an empty string if there is none.
func (uc *UnresolvedColumn) Table() string { return uc.table }

// Children implements the Expression interface.
func (*UnresolvedColumn) Children() []sql.Expression { return nil }

// Resolved implements the Expression interface.
func (*UnresolvedColumn) Resolved() bool { return false }

// IsNullable implements the Expression interface.
func (uc *UnresolvedColumn) IsNullable() bool { panic(uc.placeholder("IsNullable")) }

// Type implements the Expression interface.
func (uc *UnresolvedColumn) Type() sql.Type { panic(uc.placeholder("Type")) }

// Eval implements the Expression interface.
func (uc *UnresolvedColumn) Eval(*sql.Context, sql.Row) (interface{}, error) {
	panic(uc.placeholder("Eval"))
}

// WithChildren implements the Expression interface.
func (uc *UnresolvedColumn) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if err := checkChildren(uc, children, 0); err != nil {
		return nil, err
	}
	return uc, nil
}

func (uc *UnresolvedColumn) String() string {
	if uc.table == "" {
		return uc.name
	}
	return uc.table + "." + uc.name
}

func (uc *UnresolvedColumn) placeholder(method string) string {
	return "unresolved column " + uc.String() + " is a placeholder node, but " + method + " was called"
}
