package vec

import (
	"fmt"
	"iter"

	"github.com/joshuapare/keysort/internal/buf"
)

// GrowthFactor is the multiplier applied to the capacity when a Resize
// outgrows the current store.
const GrowthFactor = 4

// Vec is a growable array of T. The zero value is an empty array with no
// store and no budget.
type Vec[T any] struct {
	// data is the backing store; len(data) is the capacity.
	data []T

	// size is the number of live slots at the front of data.
	size int

	budget *Budget
}

// New returns an empty array. It allocates no store and never fails.
func New[T any](opts ...Option) *Vec[T] {
	o := buildOptions(opts)
	return &Vec[T]{budget: o.budget}
}

// Make returns an array of n zero-valued live slots with capacity exactly n.
func Make[T any](n int, opts ...Option) (*Vec[T], error) {
	o := buildOptions(opts)
	data, err := allocStore[T](n, o.budget)
	if err != nil {
		return nil, err
	}
	return &Vec[T]{data: data, size: n, budget: o.budget}, nil
}

// Size returns the number of live slots.
func (v *Vec[T]) Size() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vec[T]) Capacity() int {
	if v == nil {
		return 0
	}
	return len(v.data)
}

// Budget returns the budget the array's store is charged to, possibly nil.
func (v *Vec[T]) Budget() *Budget {
	if v == nil {
		return nil
	}
	return v.budget
}

// Get returns the element at i.
func (v *Vec[T]) Get(i int) (T, error) {
	if !buf.InRange(i, v.Size()) {
		var zero T
		return zero, v.indexError(i)
	}
	return v.data[i], nil
}

// Set stores elem at i.
func (v *Vec[T]) Set(i int, elem T) error {
	if !buf.InRange(i, v.Size()) {
		return v.indexError(i)
	}
	v.data[i] = elem
	return nil
}

func (v *Vec[T]) indexError(i int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrOutOfBounds, i, v.Size())
}

// Resize changes the number of live slots to n.
//
// When n fits in the current capacity only the size changes; slots that
// become live again keep whatever they held before. Otherwise the store is
// reallocated with capacity max(Capacity(), 1) * GrowthFactor^k, the smallest
// such value >= n. On error the array is unchanged.
func (v *Vec[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	if n <= len(v.data) {
		v.size = n
		return nil
	}
	newCap, ok := buf.GeometricCap(len(v.data), n, GrowthFactor)
	if !ok {
		return fmt.Errorf("%w: capacity %d cannot grow to hold %d", ErrAlloc, len(v.data), n)
	}
	if err := v.reallocate(newCap); err != nil {
		return err
	}
	v.size = n
	return nil
}

// reallocate moves the live elements into a new store of newCap slots.
func (v *Vec[T]) reallocate(newCap int) error {
	data, err := allocStore[T](newCap, v.budget)
	if err != nil {
		return err
	}
	copy(data, v.data[:v.size])
	freeStore[T](len(v.data), v.budget)
	v.data = data
	return nil
}

// PushBack appends elem, growing the store geometrically when full.
func (v *Vec[T]) PushBack(elem T) error {
	if err := v.Resize(v.size + 1); err != nil {
		return err
	}
	v.data[v.size-1] = elem
	return nil
}

// Clone returns an independent copy with the same capacity and live
// elements, charged to the same budget.
func (v *Vec[T]) Clone() (*Vec[T], error) {
	data, err := allocStore[T](len(v.data), v.budget)
	if err != nil {
		return nil, err
	}
	copy(data, v.data[:v.size])
	return &Vec[T]{data: data, size: v.size, budget: v.budget}, nil
}

// CopyFrom replaces the contents of v with a copy of src. The new store is
// charged to v's budget and obtained before the old one is released, so on
// error v is unchanged.
func (v *Vec[T]) CopyFrom(src *Vec[T]) error {
	if v == src {
		return nil
	}
	data, err := allocStore[T](src.Capacity(), v.budget)
	if err != nil {
		return err
	}
	copy(data, src.Slice())
	freeStore[T](len(v.data), v.budget)
	v.data = data
	v.size = src.Size()
	return nil
}

// Take moves the store into a new array in O(1) and leaves v empty.
func (v *Vec[T]) Take() *Vec[T] {
	out := &Vec[T]{data: v.data, size: v.size, budget: v.budget}
	v.data = nil
	v.size = 0
	return out
}

// MoveFrom releases v's store and takes over src's, leaving src empty. The
// store keeps being charged to src's budget, which v adopts.
func (v *Vec[T]) MoveFrom(src *Vec[T]) {
	if v == src {
		return
	}
	v.Release()
	v.data, v.size, v.budget = src.data, src.size, src.budget
	src.data = nil
	src.size = 0
}

// Release frees the store and leaves v empty. Releasing an empty array is a
// no-op, so Release may be deferred and still called early.
func (v *Vec[T]) Release() {
	if v == nil {
		return
	}
	freeStore[T](len(v.data), v.budget)
	v.data = nil
	v.size = 0
}

// Slice returns the live region. It aliases the store: writes through it
// are visible to v, and it must not be used after the store is released or
// reallocated.
func (v *Vec[T]) Slice() []T {
	if v == nil {
		return nil
	}
	return v.data[:v.size:v.size]
}

// All yields the live elements with their indexes.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Size(); i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Append pushes every element of elems in order.
func (v *Vec[T]) Append(elems ...T) error {
	for _, e := range elems {
		if err := v.PushBack(e); err != nil {
			return err
		}
	}
	return nil
}
