// Package vec provides Vec, a growable array with an explicitly managed
// backing store.
//
// # Overview
//
// A Vec owns a contiguous store of Capacity() slots, of which the first Size()
// are live. Size() <= Capacity() holds at all times. Index access is checked
// against Size(), never against Capacity(): a slot that is allocated but not
// live is rejected with ErrOutOfBounds.
//
// # Growth
//
// Resize to a size that fits in the current capacity only moves the size. The
// slots it re-exposes are not cleared, so shrinking and regrowing makes their
// previous contents observable again:
//
//	v := vec.New[int]()
//	_ = v.PushBack(1)
//	_ = v.PushBack(2)
//	_ = v.Resize(1)
//	_ = v.Resize(2)
//	x, _ := v.Get(1) // x == 2
//
// Resize beyond the capacity multiplies the capacity by GrowthFactor (starting
// from 1 for an empty array) until it covers the new size, allocates a new
// store, copies the live elements and releases the old store. Pushing one
// element at a time from empty visits capacities 1, 4, 16, 64, ...
//
// Slots that become live through growth hold the zero value of T today, but
// callers must initialise them explicitly rather than rely on that.
//
// # Ownership
//
// Every store is released exactly once. Release frees it and leaves the array
// empty; a second Release is a no-op. Take and MoveFrom transfer a store in
// O(1) and leave the source empty. Clone and CopyFrom allocate independent
// stores.
//
// # Budgets
//
// A Budget accounts for the bytes held by every array created with
// WithBudget(b). With a non-zero limit, an allocation that would exceed it
// fails with ErrAlloc and reserves nothing:
//
//	b := vec.NewBudget(64 << 20)
//	table, err := vec.Make[int](1<<16, vec.WithBudget(b))
//	if err != nil {
//	    return err
//	}
//	defer table.Release()
//
// # Thread Safety
//
// Vec and Budget are not safe for concurrent use.
package vec
