package expression

import (
	"fmt"
	"strings"

	"gopkg.in/src-d/go-sqlin.v0/sql"
)

// Literal represents a literal expression (string, number, bool, ...).
type Literal struct {
	value     interface{}
	fieldType sql.Type
}

var _ sql.Expression = (*Literal)(nil)

// NewLiteral creates a new Literal expression.
func NewLiteral(value interface{}, fieldType sql.Type) *Literal {
	return &Literal{
		value:     value,
		fieldType: fieldType,
	}
}

// Resolved implements the Expression interface.
func (p *Literal) Resolved() bool {
	return true
}

// IsNullable implements the Expression interface.
func (p *Literal) IsNullable() bool {
	return p.value == nil
}

// Type implements the Expression interface.
func (p *Literal) Type() sql.Type {
	return p.fieldType
}

// Eval implements the Expression interface.
func (p *Literal) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return p.value, nil
}

func (p *Literal) String() string {
	switch v := p.value.(type) {
	case nil:
		return "NULL"
	case string:
		return fmt.Sprintf("%q", v)
	case []byte:
		return fmt.Sprintf("X'%X'", v)
	case []interface{}:
		elems := make([]string, len(v))
		for i, e := range v {
			elems[i] = fmt.Sprint(e)
		}
		return fmt.Sprintf("(%s)", strings.Join(elems, ", "))
	}

	if sqlVal, err := p.fieldType.SQL(p.value); err == nil && !sqlVal.IsNull() {
		if sql.IsTime(p.fieldType) {
			return fmt.Sprintf("%q", sqlVal.ToString())
		}
		return sqlVal.ToString()
	}
	return fmt.Sprint(p.value)
}

// DebugString implements the sql.DebugStringer interface.
func (p *Literal) DebugString() string {
	return fmt.Sprintf("%s (%s)", p, p.fieldType)
}

// WithChildren implements the Expression interface.
func (p *Literal) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if err := checkChildren(p, children, 0); err != nil {
		return nil, err
	}
	return p, nil
}

// Children implements the Expression interface.
func (*Literal) Children() []sql.Expression {
	return nil
}

// Value returns the literal value.
func (p *Literal) Value() interface{} {
	return p.value
}
