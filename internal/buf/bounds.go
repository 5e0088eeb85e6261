// Package buf holds overflow-safe integer helpers shared by the array and
// sorting packages.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false when
// the result would overflow int or either operand is negative.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// StoreBytes returns the byte size of a backing store holding count elements
// of elemSize bytes each.
//
//	n, err := buf.StoreBytes(capacity, int(unsafe.Sizeof(zero)))
//	if err != nil {
//	    return fmt.Errorf("store: %w", err)
//	}
func StoreBytes(count, elemSize int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if elemSize < 0 {
		return 0, fmt.Errorf("negative element size: %d", elemSize)
	}
	total, ok := MulOverflowSafe(count, elemSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elemSize)
	}
	return total, nil
}

// GeometricCap returns the smallest value of the form max(cur, 1) * factor^k
// (k >= 0) that is >= need. ok is false when that value does not fit in an int.
func GeometricCap(cur, need, factor int) (int, bool) {
	if need < 0 || factor < 2 {
		return 0, false
	}
	c := max(cur, 1)
	for c < need {
		next, ok := MulOverflowSafe(c, factor)
		if !ok {
			return 0, false
		}
		c = next
	}
	return c, true
}

// InRange reports whether 0 <= i < n.
func InRange(i, n int) bool {
	return i >= 0 && i < n
}
