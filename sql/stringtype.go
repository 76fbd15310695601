package sql

import (
	"bytes"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/src-d/go-vitess.v0/sqltypes"
	"gopkg.in/src-d/go-vitess.v0/vt/proto/query"
)

var (
	// Text is a string type with binary collation.
	Text Type = stringType{baseType: sqltypes.Text}
	// Blob is a binary string type.
	Blob Type = stringType{baseType: sqltypes.Blob}
)

type stringType struct {
	baseType query.Type
}

// Type implements Type interface.
func (t stringType) Type() query.Type {
	return t.baseType
}

// Convert implements Type interface. Text values are strings, blobs are
// byte slices.
func (t stringType) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	if t.baseType == sqltypes.Blob {
		switch b := v.(type) {
		case []byte:
			return b, nil
		case string:
			return []byte(b), nil
		}
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, ErrInvalidType.New(t.String())
	}

	if t.baseType == sqltypes.Blob {
		return []byte(s), nil
	}
	return s, nil
}

// Compare implements Type interface.
func (t stringType) Compare(a interface{}, b interface{}) (int, error) {
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

	if t.baseType == sqltypes.Blob {
		return bytes.Compare(ca.([]byte), cb.([]byte)), nil
	}
	return strings.Compare(ca.(string), cb.(string)), nil
}

// SQL implements Type interface.
func (t stringType) SQL(v interface{}) (sqltypes.Value, error) {
	if v == nil {
		return sqltypes.NULL, nil
	}

	v, err := t.Convert(v)
	if err != nil {
		return sqltypes.Value{}, err
	}

	if b, ok := v.([]byte); ok {
		return sqltypes.MakeTrusted(t.baseType, b), nil
	}
	return sqltypes.MakeTrusted(t.baseType, []byte(v.(string))), nil
}

// Zero implements Type interface.
func (t stringType) Zero() interface{} {
	if t.baseType == sqltypes.Blob {
		return []byte{}
	}
	return ""
}

func (t stringType) String() string {
	if t.baseType == sqltypes.Blob {
		return "BLOB"
	}
	return "TEXT"
}
