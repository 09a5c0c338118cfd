package record

import (
	"slices"

	"github.com/hupe1980/godmap/atom"
)

// Differences is the result of structurally comparing two records. It is the
// principal correctness assertion for round-trips: encode-then-decode of any
// record set must produce an empty Differences against the original.
type Differences struct {
	// UniqueToA lists field names present only in the first record.
	UniqueToA []string
	// UniqueToB lists field names present only in the second record.
	UniqueToB []string
	// DifferingScalars lists scalar names present in both with a kind or
	// value mismatch.
	DifferingScalars []string
	// DifferingVectors lists vector names present in both with a kind,
	// dimension or element mismatch.
	DifferingVectors []string
}

// Empty reports whether the two records were structurally identical.
func (d *Differences) Empty() bool {
	return len(d.UniqueToA) == 0 &&
		len(d.UniqueToB) == 0 &&
		len(d.DifferingScalars) == 0 &&
		len(d.DifferingVectors) == 0
}

// Diff compares two records field by field. Output slices are sorted so that
// results are deterministic regardless of map iteration order.
func Diff(a, b *Record) *Differences {
	d := &Differences{}

	for name, sa := range a.Scalars {
		sb, ok := b.Scalars[name]
		if !ok {
			d.UniqueToA = append(d.UniqueToA, name)
			continue
		}
		if !atom.Equal(sa.Value, sb.Value) {
			d.DifferingScalars = append(d.DifferingScalars, name)
		}
	}
	for name := range b.Scalars {
		if _, ok := a.Scalars[name]; !ok {
			d.UniqueToB = append(d.UniqueToB, name)
		}
	}

	for name, va := range a.Vectors {
		vb, ok := b.Vectors[name]
		if !ok {
			d.UniqueToA = append(d.UniqueToA, name)
			continue
		}
		if !vectorsEqual(va, vb) {
			d.DifferingVectors = append(d.DifferingVectors, name)
		}
	}
	for name := range b.Vectors {
		if _, ok := a.Vectors[name]; !ok {
			d.UniqueToB = append(d.UniqueToB, name)
		}
	}

	slices.Sort(d.UniqueToA)
	slices.Sort(d.UniqueToB)
	slices.Sort(d.DifferingScalars)
	slices.Sort(d.DifferingVectors)
	return d
}

func vectorsEqual(a, b Vector) bool {
	if a.Kind != b.Kind {
		return false
	}
	if !slices.Equal(a.Dims, b.Dims) {
		return false
	}
	if len(a.Data) != len(b.Data) {
		return false
	}
	for i := range a.Data {
		if !atom.Equal(a.Data[i], b.Data[i]) {
			return false
		}
	}
	return true
}
