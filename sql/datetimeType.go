package sql

import (
	"math"
	"reflect"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/src-d/go-vitess.v0/sqltypes"
	"gopkg.in/src-d/go-vitess.v0/vt/proto/query"
)

const (
	// DateLayout is the layout used to print DATE values.
	DateLayout = "2006-01-02"
	// DatetimeLayout is the layout used to print DATETIME and TIMESTAMP
	// values.
	DatetimeLayout = "2006-01-02 15:04:05.999999"
)

var (
	// TimeLayouts are the layouts accepted when a string is converted to a
	// time type, in the order they are tried.
	TimeLayouts = []string{
		DatetimeLayout,
		DateLayout,
		time.RFC3339,
		"20060102150405",
		"20060102",
	}

	// zeroTime stands for the 0000-00-00 date, which Go cannot represent.
	zeroTime = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)

	minTimestamp = time.Unix(1, 0).UTC()
	maxTimestamp = time.Unix(math.MaxInt32, 999999000).UTC()

	// Date is a calendar day.
	Date Type = &timeType{
		baseType: sqltypes.Date,
		name:     "DATE",
		layout:   DateLayout,
		zero:     "0000-00-00",
		truncate: func(t time.Time) time.Time { return t.Truncate(24 * time.Hour) },
		inRange:  inCalendarRange,
	}
	// Datetime is a day and a time of the day with microsecond precision.
	Datetime Type = &timeType{
		baseType: sqltypes.Datetime,
		name:     "DATETIME",
		layout:   DatetimeLayout,
		zero:     "0000-00-00 00:00:00",
		truncate: truncateMicros,
		inRange:  inCalendarRange,
	}
	// Timestamp is an instant representable as a 32-bit unix time.
	Timestamp Type = &timeType{
		baseType: sqltypes.Timestamp,
		name:     "TIMESTAMP",
		layout:   DatetimeLayout,
		zero:     "0000-00-00 00:00:00",
		truncate: truncateMicros,
		inRange: func(t time.Time) bool {
			return !t.Before(minTimestamp) && !t.After(maxTimestamp)
		},
	}
)

// timeType holds time.Time values in UTC. Values out of the range of the
// type collapse into the zero date.
type timeType struct {
	baseType query.Type
	name     string
	layout   string
	zero     string
	truncate func(time.Time) time.Time
	inRange  func(time.Time) bool
}

func truncateMicros(t time.Time) time.Time { return t.Truncate(time.Microsecond) }

func inCalendarRange(t time.Time) bool {
	return t.Year() >= 1000 && t.Year() <= 9999
}

// Type implements Type interface.
func (t *timeType) Type() query.Type { return t.baseType }

// Zero implements Type interface.
func (t *timeType) Zero() interface{} { return zeroTime }

// String implements Type interface.
func (t *timeType) String() string { return t.name }

// Convert implements Type interface. Numbers are read as seconds since the
// epoch and strings with any of TimeLayouts.
func (t *timeType) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	var ts time.Time
	switch v := v.(type) {
	case time.Time:
		ts = v.UTC()
	case string:
		if v == "0000-00-00" || v == "0000-00-00 00:00:00" {
			return zeroTime, nil
		}
		parsed, err := parseTime(v)
		if err != nil {
			return nil, err
		}
		ts = parsed
	case float32, float64:
		f := cast.ToFloat64(v)
		sec := math.Floor(f)
		ts = time.Unix(int64(sec), int64((f-sec)*float64(time.Second))).UTC()
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		sec, err := cast.ToInt64E(v)
		if err != nil {
			return nil, err
		}
		ts = time.Unix(sec, 0).UTC()
	default:
		return nil, ErrInvalidType.New(reflect.TypeOf(v))
	}

	ts = t.truncate(ts)
	if !t.inRange(ts) {
		return zeroTime, nil
	}
	return ts, nil
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range TimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, ErrConvertingToTime.New(s)
}

// Compare implements Type interface.
func (t *timeType) Compare(a interface{}, b interface{}) (int, error) {
	if hasNulls, res := compareNulls(a, b); hasNulls {
		return res, nil
	}

	ca, err := t.Convert(a)
	if err != nil {
		return 0, err
	}

	cb, err := t.Convert(b)
	if err != nil {
		return 0, err
	}

	ta, tb := ca.(time.Time), cb.(time.Time)
	switch {
	case ta.Before(tb):
		return -1, nil
	case ta.After(tb):
		return 1, nil
	}
	return 0, nil
}

// SQL implements Type interface.
func (t *timeType) SQL(v interface{}) (sqltypes.Value, error) {
	if v == nil {
		return sqltypes.NULL, nil
	}

	c, err := t.Convert(v)
	if err != nil {
		return sqltypes.Value{}, err
	}

	ts := c.(time.Time)
	if ts.Equal(zeroTime) {
		return sqltypes.MakeTrusted(t.baseType, []byte(t.zero)), nil
	}
	return sqltypes.MakeTrusted(t.baseType, []byte(ts.Format(t.layout))), nil
}
