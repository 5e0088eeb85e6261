// Package recio reads whitespace-separated key/value token pairs and writes
// sorted records as tab-separated lines.
package recio

import (
	"bufio"
	"errors"
	"io"
	"strconv"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/keysort/countsort"
)

// StopReason tells why a Reader stopped producing records.
type StopReason int

const (
	// StopNone means the reader has not stopped yet.
	StopNone StopReason = iota
	// StopEOF means the input ended.
	StopEOF
	// StopMalformed means a token could not be parsed as a key or value.
	StopMalformed
	// StopReadError means the underlying reader failed; see Err.
	StopReadError
)

func (s StopReason) String() string {
	switch s {
	case StopNone:
		return "none"
	case StopEOF:
		return "eof"
	case StopMalformed:
		return "malformed"
	case StopReadError:
		return "read error"
	default:
		return "unknown"
	}
}

// Reader yields records from a stream of "<key> <value>" token pairs.
//
// Ingestion ends at the end of input or at the first token that is not an
// unsigned decimal integer in range (uint16 for keys, uint64 for values). A
// key without a following value also ends ingestion. None of these are
// errors: Next returns false and Stop reports the reason.
type Reader struct {
	sc   *bufio.Scanner
	stop StopReason
	err  error

	records  int
	badToken string
}

// NewReader returns a Reader over r. A leading byte-order mark is honoured:
// a UTF-8 BOM is skipped and UTF-16 input with a BOM is transcoded to UTF-8.
// Input without a BOM is read as is.
func NewReader(r io.Reader) *Reader {
	decoded := transform.NewReader(r, unicode.BOMOverride(transform.Nop))

	sc := bufio.NewScanner(decoded)
	buf := make([]byte, 0, ScannerInitialBufferSize)
	sc.Buffer(buf, ScannerMaxTokenSize)
	sc.Split(bufio.ScanWords)

	return &Reader{sc: sc}
}

// Next returns the next record. It returns false once the reader has stopped.
func (r *Reader) Next() (countsort.Record, bool) {
	if r.stop != StopNone {
		return countsort.Record{}, false
	}

	keyTok, ok := r.token()
	if !ok {
		return countsort.Record{}, false
	}
	key, err := strconv.ParseUint(keyTok, 10, countsort.KeyBits)
	if err != nil {
		r.malformed(keyTok)
		return countsort.Record{}, false
	}

	valTok, ok := r.token()
	if !ok {
		if r.stop == StopEOF {
			r.malformed(keyTok)
		}
		return countsort.Record{}, false
	}
	val, err := strconv.ParseUint(valTok, 10, 64)
	if err != nil {
		r.malformed(valTok)
		return countsort.Record{}, false
	}

	r.records++
	return countsort.Record{Key: uint16(key), Value: val}, true
}

func (r *Reader) token() (string, bool) {
	if r.sc.Scan() {
		return r.sc.Text(), true
	}
	err := r.sc.Err()
	switch {
	case err == nil:
		r.stop = StopEOF
	case errors.Is(err, bufio.ErrTooLong):
		r.malformed("")
	default:
		r.stop = StopReadError
		r.err = err
	}
	return "", false
}

func (r *Reader) malformed(tok string) {
	r.stop = StopMalformed
	r.badToken = tok
}

// Stop returns why the reader stopped, or StopNone while it is still going.
func (r *Reader) Stop() StopReason {
	return r.stop
}

// Err returns the underlying read error, if any. Parse failures are not
// errors and are reported through Stop and Malformed instead.
func (r *Reader) Err() error {
	return r.err
}

// Records returns the number of records returned so far.
func (r *Reader) Records() int {
	return r.records
}

// Malformed returns the token that stopped ingestion and the number of
// records read before it. ok is false unless Stop() == StopMalformed. The
// token is empty when it exceeded ScannerMaxTokenSize.
func (r *Reader) Malformed() (token string, records int, ok bool) {
	if r.stop != StopMalformed {
		return "", 0, false
	}
	return r.badToken, r.records, true
}
