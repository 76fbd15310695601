package incode

import (
	"fmt"

	"gopkg.in/src-d/go-sqlin.v0/sql"
)

// hashSwitch groups the constants in buckets by hash. Entries of a bucket
// keep the order in which the constants were given, and a probe matches only
// if the type compares it equal to one of them.
type hashSwitch struct {
	typ     sql.Type
	hash    func(sql.Type, interface{}) (uint64, error)
	buckets map[uint64][]interface{}
	size    int
}

func newHashSwitch(t sql.Type, values []interface{}) (*hashSwitch, error) {
	return newHashSwitchWith(t, values, hashValue)
}

func newHashSwitchWith(
	t sql.Type,
	values []interface{},
	hash func(sql.Type, interface{}) (uint64, error),
) (*hashSwitch, error) {
	h := &hashSwitch{
		typ:     t,
		hash:    hash,
		buckets: make(map[uint64][]interface{}),
	}

	for _, v := range values {
		key, err := hash(t, v)
		if err != nil {
			return nil, err
		}

		bucket := h.buckets[key]
		found, err := h.find(bucket, v)
		if err != nil {
			return nil, err
		}

		if !found {
			h.buckets[key] = append(bucket, v)
			h.size++
		}
	}

	return h, nil
}

func (h *hashSwitch) find(bucket []interface{}, v interface{}) (bool, error) {
	for _, e := range bucket {
		cmp, err := h.typ.Compare(v, e)
		if err != nil {
			return false, err
		}

		if cmp == 0 {
			return true, nil
		}
	}
	return false, nil
}

func (h *hashSwitch) contains(v interface{}) (bool, error) {
	if h.size == 0 {
		return false, nil
	}

	key, err := h.hash(h.typ, v)
	if err != nil {
		return false, err
	}

	return h.find(h.buckets[key], v)
}

func (h *hashSwitch) len() int { return h.size }

func (h *hashSwitch) describe() string {
	var longest int
	for _, b := range h.buckets {
		if len(b) > longest {
			longest = len(b)
		}
	}
	return fmt.Sprintf("keys=%d, buckets=%d, longest=%d", h.size, len(h.buckets), longest)
}
