package incode

import (
	"fmt"
	"math/bits"

	"github.com/pilosa/pilosa/roaring"

	"gopkg.in/src-d/go-sqlin.v0/sql"
)

// directSwitch dispatches on integer keys normalized to the range
// [0, max-min]. Spans up to the dense table limit are stored as a plain
// bitset, wider ones as a roaring bitmap.
type directSwitch struct {
	typ    sql.Type
	min    int64
	span   uint64
	dense  []uint64
	sparse *roaring.Bitmap
	size   int
}

func newDirectSwitch(t sql.Type, values []interface{}, denseLimit int) (*directSwitch, error) {
	keys := make([]int64, 0, len(values))
	for _, v := range values {
		k, err := integerKey(t, v)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}

	d := &directSwitch{typ: t}
	if len(keys) == 0 {
		return d, nil
	}

	min, max := keys[0], keys[0]
	for _, k := range keys[1:] {
		if k < min {
			min = k
		}
		if k > max {
			max = k
		}
	}

	d.min = min
	d.span = uint64(max) - uint64(min)

	offsets := make([]uint64, len(keys))
	for i, k := range keys {
		offsets[i] = uint64(k) - uint64(min)
	}

	if d.span < uint64(denseLimit) {
		d.dense = make([]uint64, d.span/64+1)
		for _, off := range offsets {
			d.dense[off/64] |= 1 << (off % 64)
		}
		for _, w := range d.dense {
			d.size += bits.OnesCount64(w)
		}
	} else {
		d.sparse = roaring.NewBitmap(offsets...)
		d.size = int(d.sparse.Count())
	}

	return d, nil
}

func (d *directSwitch) contains(v interface{}) (bool, error) {
	if d.size == 0 {
		return false, nil
	}

	k, err := integerKey(d.typ, v)
	if err != nil {
		return false, err
	}

	if k < d.min {
		return false, nil
	}

	off := uint64(k) - uint64(d.min)
	if off > d.span {
		return false, nil
	}

	if d.dense != nil {
		return d.dense[off/64]&(1<<(off%64)) != 0, nil
	}
	return d.sparse.Contains(off), nil
}

func (d *directSwitch) len() int { return d.size }

func (d *directSwitch) describe() string {
	if d.size == 0 {
		return "empty"
	}

	form := "dense"
	if d.dense == nil {
		form = "sparse"
	}
	return fmt.Sprintf("%s, keys=%d, range=[%d, %d]", form, d.size, d.min, d.min+int64(d.span))
}
