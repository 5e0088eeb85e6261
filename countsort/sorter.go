package countsort

import (
	"fmt"

	"github.com/joshuapare/keysort/vec"
)

// Sorter accumulates records and sorts them once. It owns an input array
// and a KeyDomain-slot count table that is updated on every Add, so Sort
// only has to run the prefix and placement passes.
type Sorter struct {
	opts     []vec.Option
	input    *vec.Vec[Record]
	count    *vec.Vec[int]
	consumed bool
}

// NewSorter allocates the count table. Options apply to every array the
// sorter creates, including the output of Sort.
func NewSorter(opts ...vec.Option) (*Sorter, error) {
	count, err := newCountTable(opts)
	if err != nil {
		return nil, err
	}
	return &Sorter{
		opts:  opts,
		input: vec.New[Record](opts...),
		count: count,
	}, nil
}

// Add appends r and counts its key.
func (s *Sorter) Add(r Record) error {
	if s.consumed {
		return ErrConsumed
	}
	if err := s.input.PushBack(r); err != nil {
		return fmt.Errorf("add record %d: %w", s.input.Size(), err)
	}
	return increment(s.count, int(r.Key))
}

// Len returns the number of records added.
func (s *Sorter) Len() int {
	return s.input.Size()
}

// Histogram summarises the keys added so far. It must be called before Sort;
// afterwards the count table is gone and the zero Histogram is returned.
func (s *Sorter) Histogram() Histogram {
	if s.consumed {
		return Histogram{}
	}
	return histogramOf(s.count.Slice())
}

// Sort returns the added records ordered by ascending key, equal keys in
// insertion order. The sorter's own arrays are released whether or not Sort
// succeeds; the caller owns the returned array.
func (s *Sorter) Sort() (*vec.Vec[Record], error) {
	if s.consumed {
		return nil, ErrConsumed
	}
	s.consumed = true
	defer s.Release()

	prefixSums(s.count.Slice())
	return place(s.input, s.count, s.opts)
}

// Release frees the input array and count table. It is safe to call more
// than once and after Sort.
func (s *Sorter) Release() {
	s.input.Release()
	s.count.Release()
}

// newCountTable returns a KeyDomain-slot table with every slot zeroed.
func newCountTable(opts []vec.Option) (*vec.Vec[int], error) {
	count, err := vec.Make[int](KeyDomain, opts...)
	if err != nil {
		return nil, fmt.Errorf("count table: %w", err)
	}
	clear(count.Slice())
	return count, nil
}

func increment(count *vec.Vec[int], k int) error {
	c, err := count.Get(k)
	if err != nil {
		return err
	}
	return count.Set(k, c+1)
}

// prefixSums turns per-key frequencies into the number of records with key
// <= i, which is one past the last output slot for key i.
func prefixSums(count []int) {
	for i := 1; i < len(count); i++ {
		count[i] += count[i-1]
	}
}

// place walks in from its last record to its first, putting each record at
// count[key]-1 and decrementing count[key]. The backward walk is what keeps
// equal keys in input order.
func place(in *vec.Vec[Record], count *vec.Vec[int], opts []vec.Option) (*vec.Vec[Record], error) {
	out, err := vec.Make[Record](in.Size(), opts...)
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}
	for i := in.Size() - 1; i >= 0; i-- {
		r, err := in.Get(i)
		if err != nil {
			out.Release()
			return nil, err
		}
		k := int(r.Key)
		pos, err := count.Get(k)
		if err != nil {
			out.Release()
			return nil, err
		}
		if err := out.Set(pos-1, r); err != nil {
			out.Release()
			return nil, fmt.Errorf("place record %d: %w", i, err)
		}
		if err := count.Set(k, pos-1); err != nil {
			out.Release()
			return nil, err
		}
	}
	return out, nil
}
