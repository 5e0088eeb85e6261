package countsort

import (
	"github.com/joshuapare/keysort/vec"
)

// Sort returns a new array holding the records of in ordered by ascending
// key, equal keys in their order in in. in is not modified. The count table
// is charged to the options' budget for the duration of the call.
func Sort(in *vec.Vec[Record], opts ...vec.Option) (*vec.Vec[Record], error) {
	count, err := newCountTable(opts)
	if err != nil {
		return nil, err
	}
	defer count.Release()

	for _, r := range in.All() {
		if err := increment(count, int(r.Key)); err != nil {
			return nil, err
		}
	}
	prefixSums(count.Slice())
	return place(in, count, opts)
}

// SortRecords is Sort over a plain slice. The result is a fresh slice.
func SortRecords(records []Record) ([]Record, error) {
	in := vec.New[Record]()
	defer in.Release()
	if err := in.Append(records...); err != nil {
		return nil, err
	}

	out, err := Sort(in)
	if err != nil {
		return nil, err
	}
	defer out.Release()

	result := make([]Record, out.Size())
	copy(result, out.Slice())
	return result, nil
}

// IsSorted reports whether v is in ascending key order.
func IsSorted(v *vec.Vec[Record]) bool {
	s := v.Slice()
	for i := 1; i < len(s); i++ {
		if s[i-1].Key > s[i].Key {
			return false
		}
	}
	return true
}
