package schema

import (
	"fmt"
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/godmap/atom"
)

// RangeSet is the set of range gates carried by a record's slist vector,
// backed by a roaring bitmap. The per-range vectors of RAWACF and FITACF
// records are indexed by slist position, so gate membership queries come up
// constantly when aligning records against the full 0..nrang-1 gate axis.
type RangeSet struct {
	rb *roaring.Bitmap
}

// NewRangeSet builds a RangeSet from the record's slist vector. Records with
// an empty placeholder slist yield an empty set. Negative gates are rejected.
func NewRangeSet(b *Bound) (*RangeSet, error) {
	rs := &RangeSet{rb: roaring.New()}

	vec, ok := b.Vector("slist")
	if !ok {
		return rs, nil
	}
	for i, v := range vec.Data {
		gate, ok := asGate(v)
		if !ok {
			return nil, fmt.Errorf("slist[%d]: not a valid gate value (%s)", i, v.Kind)
		}
		rs.rb.Add(gate)
	}
	return rs, nil
}

func asGate(v atom.Value) (uint32, bool) {
	switch v.Kind {
	case atom.KindInt8, atom.KindInt16, atom.KindInt32, atom.KindInt64:
		if v.I64 < 0 || v.I64 > math.MaxUint32 {
			return 0, false
		}
		return uint32(v.I64), true
	case atom.KindUint8, atom.KindUint16, atom.KindUint32, atom.KindUint64:
		if v.U64 > math.MaxUint32 {
			return 0, false
		}
		return uint32(v.U64), true
	default:
		return 0, false
	}
}

// Contains reports whether the gate is present.
func (rs *RangeSet) Contains(gate int) bool {
	if gate < 0 {
		return false
	}
	return rs.rb.Contains(uint32(gate))
}

// Cardinality returns the number of gates present.
func (rs *RangeSet) Cardinality() uint64 {
	return rs.rb.GetCardinality()
}

// IsEmpty reports whether no gates are present.
func (rs *RangeSet) IsEmpty() bool {
	return rs.rb.IsEmpty()
}

// Gates returns an iterator over the present gates in ascending order.
func (rs *RangeSet) Gates() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := rs.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Missing returns the gates in [0, nrang) with no data, in ascending order.
func (rs *RangeSet) Missing(nrang int) []int {
	var missing []int
	for gate := 0; gate < nrang; gate++ {
		if !rs.rb.Contains(uint32(gate)) {
			missing = append(missing, gate)
		}
	}
	return missing
}

// And intersects rs with other in place.
func (rs *RangeSet) And(other *RangeSet) {
	rs.rb.And(other.rb)
}

// Or unions rs with other in place.
func (rs *RangeSet) Or(other *RangeSet) {
	rs.rb.Or(other.rb)
}
