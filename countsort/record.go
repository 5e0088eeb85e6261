// Package countsort implements a stable counting sort of 16-bit keyed records
// on top of vec.Vec.
//
// Sorting runs in O(N + K) time and space, where N is the number of records
// and K = KeyDomain. Records with equal keys keep their input order.
//
//	s, err := countsort.NewSorter()
//	if err != nil {
//	    return err
//	}
//	defer s.Release()
//	for _, r := range records {
//	    if err := s.Add(r); err != nil {
//	        return err
//	    }
//	}
//	sorted, err := s.Sort()
package countsort

import (
	"errors"
	"fmt"
)

const (
	// KeyBits is the width of a record key.
	KeyBits = 16

	// KeyDomain is the number of distinct key values, one count slot each.
	KeyDomain = 1 << KeyBits
)

// ErrConsumed is returned when a Sorter is used after Sort.
var ErrConsumed = errors.New("countsort: sorter already sorted")

// Record is a key/value pair. Only Key participates in ordering.
type Record struct {
	Key   uint16
	Value uint64
}

func (r Record) String() string {
	return fmt.Sprintf("%d\t%d", r.Key, r.Value)
}
