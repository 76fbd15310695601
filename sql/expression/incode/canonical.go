package incode

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash"
	"github.com/mitchellh/hashstructure"
	"github.com/spf13/cast"

	"gopkg.in/src-d/go-sqlin.v0/sql"
)

// canonicalNaN is the single bit pattern all NaN values are folded into.
var canonicalNaN = math.Float64bits(math.NaN())

// canonicalKey returns a comparable value such that two values of type t
// have the same key if and only if t.Compare reports them as equal. The value
// must already be converted to t and must not be nil.
func canonicalKey(t sql.Type, v interface{}) (interface{}, error) {
	switch {
	case sql.IsTuple(t):
		keys, err := tupleKeys(t, v)
		if err != nil {
			return nil, err
		}
		return fmt.Sprintf("%#v", keys), nil
	case Classify(t) == FixedWidthInteger:
		return integerKey(t, v)
	case sql.IsFloat(t):
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, err
		}
		return floatBits(f), nil
	case sql.IsUnsigned(t):
		return cast.ToUint64E(v)
	case sql.IsBlob(t):
		if b, ok := v.([]byte); ok {
			return string(b), nil
		}
		return cast.ToStringE(v)
	default:
		return cast.ToStringE(v)
	}
}

func floatBits(f float64) uint64 {
	switch {
	case math.IsNaN(f):
		return canonicalNaN
	case f == 0:
		// -0 and +0 are equal
		return 0
	}
	return math.Float64bits(f)
}

func tupleKeys(t sql.Type, v interface{}) ([]interface{}, error) {
	vals, ok := v.([]interface{})
	if !ok {
		return nil, sql.ErrNotTuple.New(v)
	}

	types := sql.TupleTypes(t)
	if len(types) != len(vals) {
		return nil, sql.ErrInvalidColumnNumber.New(len(types), len(vals))
	}

	keys := make([]interface{}, len(vals))
	for i, val := range vals {
		if val == nil {
			continue
		}

		k, err := canonicalKey(types[i], val)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}
	return keys, nil
}

// hashValue hashes a value already converted to t. Scalars are hashed with
// xxhash over the bytes of their canonical key, tuples over the structure of
// their element keys.
func hashValue(t sql.Type, v interface{}) (uint64, error) {
	if sql.IsTuple(t) {
		keys, err := tupleKeys(t, v)
		if err != nil {
			return 0, err
		}
		return hashstructure.Hash(keys, nil)
	}

	key, err := canonicalKey(t, v)
	if err != nil {
		return 0, err
	}

	var buf [8]byte
	switch k := key.(type) {
	case int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
		return xxhash.Sum64(buf[:]), nil
	case uint64:
		binary.LittleEndian.PutUint64(buf[:], k)
		return xxhash.Sum64(buf[:]), nil
	case string:
		hash := xxhash.New()
		if _, err := hash.Write([]byte(k)); err != nil {
			return 0, err
		}
		return hash.Sum64(), nil
	default:
		return hashstructure.Hash(key, nil)
	}
}
