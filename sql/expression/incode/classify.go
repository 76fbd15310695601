package incode

import (
	"time"

	"github.com/spf13/cast"

	"gopkg.in/src-d/go-sqlin.v0/sql"
)

// RepresentationClass describes how the values of a type are laid out for
// the purpose of dispatching on them.
type RepresentationClass byte

const (
	// Other is any type that is neither integer-like nor floating point:
	// text, blobs, tuples and unsigned 64 bit integers.
	Other RepresentationClass = iota
	// FixedWidthInteger types hold values that are exactly representable as
	// a signed 64 bit integer and can be used directly as dispatch keys.
	FixedWidthInteger
	// FloatingPoint types hold IEEE-754 values.
	FloatingPoint
)

func (c RepresentationClass) String() string {
	switch c {
	case FixedWidthInteger:
		return "FixedWidthInteger"
	case FloatingPoint:
		return "FloatingPoint"
	default:
		return "Other"
	}
}

// Classify returns the representation class of the given type.
func Classify(t sql.Type) RepresentationClass {
	switch {
	case t == nil || sql.IsNull(t) || sql.IsTuple(t):
		return Other
	case sql.IsFloat(t):
		return FloatingPoint
	case sql.IsSigned(t), sql.IsTime(t):
		return FixedWidthInteger
	case sql.IsUnsigned(t):
		if t.Type() == sql.Uint64.Type() {
			return Other
		}
		return FixedWidthInteger
	default:
		return Other
	}
}

const (
	secondsPerDay    = 24 * 60 * 60
	microsPerSecond  = int64(time.Second / time.Microsecond)
	nanosPerMicrosec = int64(time.Microsecond)
)

// integerKey returns the dispatch key of a value already converted to a
// FixedWidthInteger type. Dates are keyed by days since the epoch, datetimes
// and timestamps by microseconds since the epoch.
func integerKey(t sql.Type, v interface{}) (int64, error) {
	if !sql.IsTime(t) {
		return cast.ToInt64E(v)
	}

	ts, ok := v.(time.Time)
	if !ok {
		return 0, sql.ErrConvertingToTime.New(v)
	}

	secs := ts.Unix()
	if t.Type() == sql.Date.Type() {
		days := secs / secondsPerDay
		if secs%secondsPerDay < 0 {
			days--
		}
		return days, nil
	}

	return secs*microsPerSecond + int64(ts.Nanosecond())/nanosPerMicrosec, nil
}
