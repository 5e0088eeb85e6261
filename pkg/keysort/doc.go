/*
Package keysort sorts streams of 16-bit keyed records with a stable counting sort.

# Quick Start

Sort stdin to stdout:

	stats, err := keysort.SortStream(os.Stdin, os.Stdout, nil)

# Input and Output

Input is a sequence of whitespace-separated token pairs, an unsigned 16-bit
key followed by an unsigned 64-bit value:

	5 100
	3 1
	5 200

Ingestion stops quietly at the end of input or at the first token that does not
parse; every record read up to that point is still sorted and written.
Stats.Truncated reports the latter case.

Output is one "<key>\t<value>" line per record in ascending key order. Records
with equal keys keep their input order:

	3	1
	5	100
	5	200

# Memory

Sorting holds the input, a 65536-slot count table and the output at the same
time. Options.MaxMemory caps the bytes those arrays may hold; exceeding it fails
the call with an error wrapping vec.ErrAlloc before anything is written:

	_, err := keysort.SortFile("records.txt", os.Stdout, &keysort.Options{
	    MaxMemory: 256 << 20,
	})
	if errors.Is(err, vec.ErrAlloc) {
	    // input too large for the budget
	}
*/
package keysort
