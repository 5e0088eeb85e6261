package vec

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/joshuapare/keysort/internal/buf"
)

func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// allocStore obtains a zeroed store of n slots charged to b. A zero-length
// store is represented by nil and reserves nothing.
//
// Only failures the runtime reports as a recoverable runtime.Error (a length it
// refuses to allocate) are turned into ErrAlloc. Genuine exhaustion of process
// memory is fatal in Go and cannot be intercepted here; the budget is the
// supported way to bound memory.
func allocStore[T any](n int, b *Budget) (data []T, err error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	if n == 0 {
		return nil, nil
	}
	bytes, err := buf.StoreBytes(n, elemSize[T]())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAlloc, err)
	}
	if err := b.reserve(bytes); err != nil {
		return nil, err
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		b.release(bytes)
		rerr, ok := r.(runtime.Error)
		if !ok {
			panic(r)
		}
		data, err = nil, fmt.Errorf("%w: %d slots (%d bytes): %v", ErrAlloc, n, bytes, rerr)
	}()
	return make([]T, n), nil
}

// freeStore returns the bytes of a store of n slots to b.
func freeStore[T any](n int, b *Budget) {
	if n == 0 {
		return
	}
	// n*elemSize was validated when the store was reserved.
	b.release(n * elemSize[T]())
}
