package parse // import "gopkg.in/src-d/go-sqlin.v0/sql/parse"

import (
	"strconv"
	"strings"

	opentracing "github.com/opentracing/opentracing-go"
	"gopkg.in/src-d/go-errors.v1"
	"gopkg.in/src-d/go-vitess.v0/vt/sqlparser"

	"gopkg.in/src-d/go-sqlin.v0/sql"
	"gopkg.in/src-d/go-sqlin.v0/sql/expression"
)

var (
	// ErrUnsupportedSyntax is thrown when a specific syntax is not already supported
	ErrUnsupportedSyntax = errors.NewKind("unsupported syntax: %#v")

	// ErrUnsupportedFeature is thrown when a feature is not already supported
	ErrUnsupportedFeature = errors.NewKind("unsupported feature: %s")

	// ErrInvalidSQLValType is returned when a SQLVal type is not valid.
	ErrInvalidSQLValType = errors.NewKind("invalid SQLVal of type: %d")

	// ErrEmptyExpression is returned when there is nothing to parse once
	// comments and blanks are removed.
	ErrEmptyExpression = errors.NewKind("expression is empty")
)

// ParseExpr parses the given SQL expression, such as the condition of a
// WHERE clause, and returns the corresponding expression. Columns are left
// unresolved.
func ParseExpr(ctx *sql.Context, str string) (sql.Expression, error) {
	span, ctx := ctx.Span("parse_expr", opentracing.Tag{Key: "expression", Value: str})
	defer span.Finish()

	s := strings.TrimSpace(removeComments(str))
	s = strings.TrimSpace(strings.TrimSuffix(s, ";"))
	if s == "" {
		return nil, ErrEmptyExpression.New()
	}

	stmt, err := sqlparser.Parse("SELECT " + s)
	if err != nil {
		return nil, err
	}

	selectStmt, ok := stmt.(*sqlparser.Select)
	if !ok {
		return nil, ErrUnsupportedSyntax.New(stmt)
	}

	if selectStmt.Where != nil ||
		len(selectStmt.GroupBy) > 0 ||
		selectStmt.Having != nil ||
		len(selectStmt.OrderBy) > 0 ||
		selectStmt.Limit != nil {
		return nil, ErrUnsupportedSyntax.New(s)
	}

	if len(selectStmt.SelectExprs) != 1 {
		return nil, ErrUnsupportedFeature.New("more than one expression")
	}

	ae, ok := selectStmt.SelectExprs[0].(*sqlparser.AliasedExpr)
	if !ok {
		return nil, ErrUnsupportedSyntax.New(selectStmt.SelectExprs[0])
	}

	if !ae.As.IsEmpty() {
		return nil, ErrUnsupportedFeature.New("alias in expression")
	}

	ctx.GetLogger().WithField("expression", s).Debug("parsed expression")

	return exprToExpression(ae.Expr)
}

func exprToExpression(e sqlparser.Expr) (sql.Expression, error) {
	switch v := e.(type) {
	default:
		return nil, ErrUnsupportedSyntax.New(e)
	case *sqlparser.ComparisonExpr:
		return comparisonExprToExpression(v)
	case *sqlparser.IsExpr:
		return isExprToExpression(v)
	case *sqlparser.NotExpr:
		c, err := exprToExpression(v.Expr)
		if err != nil {
			return nil, err
		}

		return expression.NewNot(c), nil
	case *sqlparser.SQLVal:
		return convertVal(v)
	case sqlparser.BoolVal:
		return expression.NewLiteral(bool(v), sql.Boolean), nil
	case *sqlparser.NullVal:
		return expression.NewLiteral(nil, sql.Null), nil
	case *sqlparser.ColName:
		if !v.Qualifier.IsEmpty() {
			return expression.NewUnresolvedQualifiedColumn(
				v.Qualifier.Name.String(),
				v.Name.String(),
			), nil
		}
		return expression.NewUnresolvedColumn(v.Name.String()), nil
	case *sqlparser.ParenExpr:
		return exprToExpression(v.Expr)
	case *sqlparser.AndExpr:
		return binaryToExpression(v.Left, v.Right, func(l, r sql.Expression) sql.Expression {
			return expression.NewAnd(l, r)
		})
	case *sqlparser.OrExpr:
		return binaryToExpression(v.Left, v.Right, func(l, r sql.Expression) sql.Expression {
			return expression.NewOr(l, r)
		})
	case *sqlparser.ConvertExpr:
		expr, err := exprToExpression(v.Expr)
		if err != nil {
			return nil, err
		}

		return expression.NewConvert(expr, v.Type.Type), nil
	case *sqlparser.UnaryExpr:
		return unaryExprToExpression(v)
	case sqlparser.ValTuple:
		exprs, err := exprsToExpressions(v)
		if err != nil {
			return nil, err
		}
		return expression.NewTuple(exprs...), nil
	}
}

func exprsToExpressions(exprs []sqlparser.Expr) ([]sql.Expression, error) {
	result := make([]sql.Expression, len(exprs))
	for i, e := range exprs {
		var err error
		if result[i], err = exprToExpression(e); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func binaryToExpression(
	left, right sqlparser.Expr,
	build func(l, r sql.Expression) sql.Expression,
) (sql.Expression, error) {
	operands, err := exprsToExpressions([]sqlparser.Expr{left, right})
	if err != nil {
		return nil, err
	}
	return build(operands[0], operands[1]), nil
}

func convertVal(v *sqlparser.SQLVal) (sql.Expression, error) {
	switch v.Type {
	case sqlparser.StrVal:
		return expression.NewLiteral(string(v.Val), sql.Text), nil
	case sqlparser.IntVal:
		val, err := strconv.ParseInt(string(v.Val), 10, 64)
		if err != nil {
			// too big for a BIGINT
			uval, uerr := strconv.ParseUint(string(v.Val), 10, 64)
			if uerr != nil {
				return nil, err
			}
			return expression.NewLiteral(uval, sql.Uint64), nil
		}
		return expression.NewLiteral(val, sql.Int64), nil
	case sqlparser.FloatVal:
		val, err := strconv.ParseFloat(string(v.Val), 64)
		if err != nil {
			return nil, err
		}
		return expression.NewLiteral(val, sql.Float64), nil
	case sqlparser.HexNum:
		v := strings.ToLower(string(v.Val))
		if strings.HasPrefix(v, "0x") {
			v = v[2:]
		} else if strings.HasPrefix(v, "x") {
			v = strings.Trim(v[1:], "'")
		}

		val, err := strconv.ParseInt(v, 16, 64)
		if err != nil {
			return nil, err
		}
		return expression.NewLiteral(val, sql.Int64), nil
	case sqlparser.HexVal:
		val, err := v.HexDecode()
		if err != nil {
			return nil, err
		}
		return expression.NewLiteral(val, sql.Blob), nil
	case sqlparser.ValArg:
		return expression.NewLiteral(string(v.Val), sql.Text), nil
	}

	return nil, ErrInvalidSQLValType.New(v.Type)
}

// unaryExprToExpression only accepts a sign in front of a numeric literal.
// The parser already folds the minus of integers, but not of decimals.
func unaryExprToExpression(u *sqlparser.UnaryExpr) (sql.Expression, error) {
	e, err := exprToExpression(u.Expr)
	if err != nil {
		return nil, err
	}

	lit, ok := e.(*expression.Literal)
	if !ok {
		return nil, ErrUnsupportedFeature.New(u.Operator + " on " + e.String())
	}

	switch u.Operator {
	case sqlparser.UPlusStr:
		return lit, nil
	case sqlparser.UMinusStr:
		switch v := lit.Value().(type) {
		case int64:
			return expression.NewLiteral(-v, lit.Type()), nil
		case float64:
			return expression.NewLiteral(-v, lit.Type()), nil
		}
	}

	return nil, ErrUnsupportedFeature.New(u.Operator + " on " + e.String())
}

func isExprToExpression(c *sqlparser.IsExpr) (sql.Expression, error) {
	e, err := exprToExpression(c.Expr)
	if err != nil {
		return nil, err
	}

	switch c.Operator {
	case sqlparser.IsNullStr:
		return expression.NewIsNull(e), nil
	case sqlparser.IsNotNullStr:
		return expression.NewNot(expression.NewIsNull(e)), nil
	default:
		return nil, ErrUnsupportedSyntax.New(c)
	}
}

func comparisonExprToExpression(c *sqlparser.ComparisonExpr) (sql.Expression, error) {
	operands, err := exprsToExpressions([]sqlparser.Expr{c.Left, c.Right})
	if err != nil {
		return nil, err
	}

	left, right := operands[0], operands[1]
	switch c.Operator {
	case sqlparser.EqualStr:
		return expression.NewEquals(left, right), nil
	case sqlparser.NotEqualStr:
		return expression.NewNot(expression.NewEquals(left, right)), nil
	case sqlparser.InStr:
		return expression.NewInTuple(left, right), nil
	case sqlparser.NotInStr:
		return expression.NewNotInTuple(left, right), nil
	default:
		return nil, ErrUnsupportedFeature.New(c.Operator)
	}
}
