package incode

import (
	"fmt"

	"gopkg.in/src-d/go-sqlin.v0/sql"
)

// setContains stores the canonical keys of the constants in a set built when
// the routine is compiled.
type setContains struct {
	typ  sql.Type
	keys map[interface{}]struct{}
}

func newSetContains(t sql.Type, values []interface{}) (*setContains, error) {
	s := &setContains{
		typ:  t,
		keys: make(map[interface{}]struct{}, len(values)),
	}

	for _, v := range values {
		key, err := canonicalKey(t, v)
		if err != nil {
			return nil, err
		}
		s.keys[key] = struct{}{}
	}

	return s, nil
}

func (s *setContains) contains(v interface{}) (bool, error) {
	if len(s.keys) == 0 {
		return false, nil
	}

	key, err := canonicalKey(s.typ, v)
	if err != nil {
		return false, err
	}

	_, ok := s.keys[key]
	return ok, nil
}

func (s *setContains) len() int { return len(s.keys) }

func (s *setContains) describe() string {
	return fmt.Sprintf("keys=%d", len(s.keys))
}
