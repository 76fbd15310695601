package incode

import (
	"fmt"

	"gopkg.in/src-d/go-sqlin.v0/sql"
	"gopkg.in/src-d/go-sqlin.v0/sql/expression"
)

// Candidate is one element of the list on the right side of an IN predicate.
// It is either a constant, whose value is known when the predicate is
// compiled, or a residual expression that has to be evaluated for every row.
type Candidate struct {
	constant bool
	value    interface{}
	typ      sql.Type
	expr     sql.Expression
}

// Constant returns a constant candidate. A nil value is SQL NULL.
func Constant(value interface{}, typ sql.Type) Candidate {
	return Candidate{constant: true, value: value, typ: typ}
}

// Residual returns a candidate that is evaluated at run time.
func Residual(e sql.Expression) Candidate {
	return Candidate{expr: e, typ: e.Type()}
}

// IsConstant returns whether the candidate is a constant.
func (c Candidate) IsConstant() bool { return c.constant }

// IsNull returns whether the candidate is the NULL constant.
func (c Candidate) IsNull() bool { return c.constant && c.value == nil }

// Value returns the value of a constant candidate.
func (c Candidate) Value() interface{} { return c.value }

// Type returns the declared type of the candidate.
func (c Candidate) Type() sql.Type { return c.typ }

// Expression returns the candidate as an expression. Constants are returned
// as literals.
func (c Candidate) Expression() sql.Expression {
	if c.constant {
		return expression.NewLiteral(c.value, c.typ)
	}
	return c.expr
}

func (c Candidate) String() string {
	if c.constant && c.typ == nil {
		if c.value == nil {
			return "NULL"
		}
		return fmt.Sprint(c.value)
	}
	return c.Expression().String()
}

// CandidatesOf turns the elements of an IN list into candidates. Literals, and
// tuples made only of non-null literals, are constants. Everything else is a
// residual, even if it could be folded into a constant.
func CandidatesOf(exprs ...sql.Expression) []Candidate {
	result := make([]Candidate, len(exprs))
	for i, e := range exprs {
		if v, ok := constantValue(e); ok {
			result[i] = Constant(v, e.Type())
		} else {
			result[i] = Residual(e)
		}
	}
	return result
}

func constantValue(e sql.Expression) (interface{}, bool) {
	switch e := e.(type) {
	case *expression.Literal:
		return e.Value(), true
	case expression.Tuple:
		if len(e) == 1 {
			return constantValue(e[0])
		}

		vals := make([]interface{}, len(e))
		for i, el := range e {
			v, ok := constantValue(el)
			if !ok || v == nil {
				return nil, false
			}
			vals[i] = v
		}
		return vals, true
	}
	return nil, false
}

// Partition splits the candidates into the values of the constants, NULLs
// included, and the residual expressions in their original order.
func Partition(candidates []Candidate) (constants []interface{}, residuals []sql.Expression) {
	for _, c := range candidates {
		if c.constant {
			constants = append(constants, c.value)
		} else {
			residuals = append(residuals, c.expr)
		}
	}
	return constants, residuals
}
