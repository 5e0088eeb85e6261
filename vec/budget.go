package vec

import "fmt"

// Budget tracks the bytes held by the backing stores of a group of arrays.
// A nil *Budget accounts for nothing and never refuses.
type Budget struct {
	limit int64
	inUse int64
	peak  int64
}

// NewBudget returns a budget that refuses reservations beyond limit bytes.
// A limit <= 0 means unlimited; the budget then only records usage.
func NewBudget(limit int64) *Budget {
	if limit < 0 {
		limit = 0
	}
	return &Budget{limit: limit}
}

// Limit returns the configured limit, 0 when unlimited.
func (b *Budget) Limit() int64 {
	if b == nil {
		return 0
	}
	return b.limit
}

// InUse returns the bytes currently reserved.
func (b *Budget) InUse() int64 {
	if b == nil {
		return 0
	}
	return b.inUse
}

// Peak returns the highest value InUse has reached.
func (b *Budget) Peak() int64 {
	if b == nil {
		return 0
	}
	return b.peak
}

func (b *Budget) reserve(n int) error {
	if b == nil || n == 0 {
		return nil
	}
	want := b.inUse + int64(n)
	if want < b.inUse || (b.limit > 0 && want > b.limit) {
		return fmt.Errorf("%w: need %d bytes, %d of %d in use", ErrAlloc, n, b.inUse, b.limit)
	}
	b.inUse = want
	if want > b.peak {
		b.peak = want
	}
	return nil
}

func (b *Budget) release(n int) {
	if b == nil {
		return
	}
	b.inUse -= int64(n)
	if b.inUse < 0 {
		panic(fmt.Sprintf("vec: budget released more than reserved (%d bytes)", -b.inUse))
	}
}

// Option configures a Vec at construction.
type Option func(*options)

type options struct {
	budget *Budget
}

// WithBudget charges the array's backing stores to b.
func WithBudget(b *Budget) Option {
	return func(o *options) {
		o.budget = b
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
