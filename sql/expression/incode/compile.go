package incode

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/src-d/go-errors.v1"

	"gopkg.in/src-d/go-sqlin.v0/sql"
)

var (
	// ErrCandidateTypeMismatch is returned when a candidate of an IN list is
	// not of the comparison type.
	ErrCandidateTypeMismatch = errors.NewKind("IN candidate %s is of type %s, but the comparison type is %s")

	// ErrInvalidCandidate is returned when a constant of an IN list can't be
	// represented in the comparison type.
	ErrInvalidCandidate = errors.NewKind("IN candidate %s can't be converted to %s")

	// ErrNilComparisonType is returned when no comparison type is given.
	ErrNilComparisonType = errors.NewKind("IN predicate has no comparison type")
)

// Compile builds the routine testing membership of a value of type t among
// the given candidates with the default options.
func Compile(ctx *sql.Context, t sql.Type, candidates []Candidate) (*Routine, error) {
	return DefaultOptions().Compile(ctx, t, candidates)
}

// Compile builds the routine testing membership of a value of type t among
// the given candidates. Every candidate must be declared with type t; NULL
// constants may also be of the Null type.
func (o Options) Compile(ctx *sql.Context, t sql.Type, candidates []Candidate) (*Routine, error) {
	if ctx == nil {
		ctx = sql.NewEmptyContext()
	}

	span, ctx := ctx.Span("incode.compile")
	defer span.Finish()

	if t == nil {
		return nil, ErrNilComparisonType.New()
	}

	for _, c := range candidates {
		if err := checkCandidate(t, c); err != nil {
			return nil, err
		}
	}

	strategy := o.Select(t, candidates)
	constants, residuals := Partition(candidates)

	r := &Routine{
		typ:       t,
		strategy:  strategy,
		size:      len(candidates),
		residuals: residuals,
	}

	seen := make(map[interface{}]struct{}, len(constants))
	for _, c := range constants {
		if c == nil {
			r.hasNull = true
			continue
		}

		v, err := t.Convert(c)
		if err != nil {
			return nil, ErrInvalidCandidate.Wrap(err, Constant(c, t), t)
		}

		if hasNullElement(v) {
			r.partial = append(r.partial, v)
			continue
		}

		key, err := canonicalKey(t, v)
		if err != nil {
			return nil, ErrInvalidCandidate.Wrap(err, Constant(c, t), t)
		}

		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		r.values = append(r.values, v)
	}

	var err error
	switch strategy {
	case DirectSwitch:
		r.table, err = newDirectSwitch(t, r.values, o.denseTableLimit())
	case HashSwitch:
		r.table, err = newHashSwitch(t, r.values)
	default:
		r.table, err = newSetContains(t, r.values)
	}
	if err != nil {
		return nil, err
	}

	span.SetTag("strategy", strategy.String())
	span.SetTag("candidates", len(candidates))

	ctx.GetLogger().WithFields(logrus.Fields{
		"type":       t.String(),
		"strategy":   strategy.String(),
		"constants":  r.table.len(),
		"residuals":  len(residuals),
		"null":       r.hasNull,
		"candidates": len(candidates),
	}).Debug("compiled IN predicate")

	return r, nil
}

func checkCandidate(t sql.Type, c Candidate) error {
	ct := c.Type()
	if c.IsNull() && (ct == nil || sql.IsNull(ct)) {
		return nil
	}

	if !c.IsConstant() && ct != nil && sql.IsNull(ct) {
		return nil
	}

	if ct == nil || !sql.TypesEqual(ct, t) {
		typeName := "<nil>"
		if ct != nil {
			typeName = ct.String()
		}
		return ErrCandidateTypeMismatch.New(c, typeName, t)
	}

	return nil
}
