package expression

import (
	"fmt"
	"strings"

	"gopkg.in/src-d/go-errors.v1"

	"gopkg.in/src-d/go-sqlin.v0/sql"
)

// ErrConvertExpression is returned when a conversion is not possible.
var ErrConvertExpression = errors.NewKind("expression '%v': couldn't convert to %v")

// Targets of CAST and CONVERT.
const (
	ConvertToBinary   = "binary"
	ConvertToChar     = "char"
	ConvertToNChar    = "nchar"
	ConvertToDate     = "date"
	ConvertToDatetime = "datetime"
	ConvertToDouble   = "double"
	ConvertToReal     = "real"
	ConvertToSigned   = "signed"
	ConvertToUnsigned = "unsigned"
)

// castTarget describes how values are cast to one of the CAST targets.
// A nil onError makes a failed conversion an evaluation error; otherwise the
// conversion yields whatever onError returns.
type castTarget struct {
	typ     sql.Type
	onError func(interface{}) (interface{}, error)
}

func castToNull(interface{}) (interface{}, error) { return nil, nil }

var castTargets = map[string]castTarget{
	ConvertToBinary:   {typ: sql.Blob},
	ConvertToChar:     {typ: sql.Text},
	ConvertToNChar:    {typ: sql.Text},
	ConvertToDate:     {typ: sql.Date, onError: castToNull},
	ConvertToDatetime: {typ: sql.Datetime, onError: castToNull},
	ConvertToDouble:   {typ: sql.Float64, onError: zeroOf(sql.Float64)},
	ConvertToReal:     {typ: sql.Float64, onError: zeroOf(sql.Float64)},
	ConvertToSigned:   {typ: sql.Int64, onError: throughFloat(sql.Int64)},
	ConvertToUnsigned: {typ: sql.Uint64, onError: throughFloat(sql.Uint64)},
}

func zeroOf(typ sql.Type) func(interface{}) (interface{}, error) {
	return func(interface{}) (interface{}, error) { return typ.Zero(), nil }
}

// throughFloat retries the conversion from the value read as a float, so
// that '5.0' casts to 5. Values that are not numbers at all cast to zero.
func throughFloat(typ sql.Type) func(interface{}) (interface{}, error) {
	return func(v interface{}) (interface{}, error) {
		f, err := sql.Float64.Convert(v)
		if err != nil {
			return typ.Zero(), nil
		}
		return typ.Convert(f)
	}
}

// Convert is CAST(x AS T) or CONVERT(x, T). Casts are lenient the way MySQL
// casts are: invalid dates are NULL and invalid numbers are zero.
type Convert struct {
	UnaryExpression
	castTo string
}

var _ sql.Expression = (*Convert)(nil)

// NewConvert creates a new Convert expression.
func NewConvert(expr sql.Expression, castTo string) *Convert {
	return &Convert{UnaryExpression{Child: expr}, strings.ToLower(castTo)}
}

// IsNullable implements the Expression interface.
func (c *Convert) IsNullable() bool {
	if t, ok := castTargets[c.castTo]; ok && t.onError != nil && sql.IsTime(t.typ) {
		return true
	}
	return c.Child.IsNullable()
}

// Type implements the Expression interface. Unknown targets are typed NULL.
func (c *Convert) Type() sql.Type {
	if t, ok := castTargets[c.castTo]; ok {
		return t.typ
	}
	return sql.Null
}

func (c *Convert) String() string {
	return fmt.Sprintf("convert(%v, %v)", c.Child, c.castTo)
}

// WithChildren implements the Expression interface.
func (c *Convert) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if err := checkChildren(c, children, 1); err != nil {
		return nil, err
	}
	return NewConvert(children[0], c.castTo), nil
}

// Eval implements the Expression interface.
func (c *Convert) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	val, err := c.Child.Eval(ctx, row)
	if err != nil || val == nil {
		return nil, err
	}

	target, ok := castTargets[c.castTo]
	if !ok {
		return nil, nil
	}

	casted, err := target.typ.Convert(val)
	if err != nil && target.onError != nil {
		casted, err = target.onError(val)
	}
	if err != nil {
		return nil, ErrConvertExpression.Wrap(err, c.String(), c.castTo)
	}
	return casted, nil
}
