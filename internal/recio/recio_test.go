package recio

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/keysort/countsort"
	"github.com/joshuapare/keysort/vec"
)

func readAll(r *Reader) []countsort.Record {
	var out []countsort.Record
	for {
		rec, ok := r.Next()
		if !ok {
			return out
		}
		out = append(out, rec)
	}
}

func TestReader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     []countsort.Record
		stop     StopReason
		badToken string
	}{
		{
			name:  "empty",
			input: "",
			stop:  StopEOF,
		},
		{
			name:  "whitespace only",
			input: " \n\t \r\n",
			stop:  StopEOF,
		},
		{
			name:  "lines",
			input: "5\t100\n3\t1\n5\t200\n",
			want:  []countsort.Record{{Key: 5, Value: 100}, {Key: 3, Value: 1}, {Key: 5, Value: 200}},
			stop:  StopEOF,
		},
		{
			name:  "pairs split across lines",
			input: "1\n2 3\n\n4",
			want:  []countsort.Record{{Key: 1, Value: 2}, {Key: 3, Value: 4}},
			stop:  StopEOF,
		},
		{
			name:  "domain limits",
			input: "0 0 65535 18446744073709551615",
			want:  []countsort.Record{{Key: 0, Value: 0}, {Key: 65535, Value: 18446744073709551615}},
			stop:  StopEOF,
		},
		{
			name:     "key out of range stops",
			input:    "1 1 65536 2 3 3",
			want:     []countsort.Record{{Key: 1, Value: 1}},
			stop:     StopMalformed,
			badToken: "65536",
		},
		{
			name:     "value out of range stops",
			input:    "1 1 2 18446744073709551616",
			want:     []countsort.Record{{Key: 1, Value: 1}},
			stop:     StopMalformed,
			badToken: "18446744073709551616",
		},
		{
			name:     "non numeric stops",
			input:    "7 1 seven 2",
			want:     []countsort.Record{{Key: 7, Value: 1}},
			stop:     StopMalformed,
			badToken: "seven",
		},
		{
			name:     "negative stops",
			input:    "-1 5",
			stop:     StopMalformed,
			badToken: "-1",
		},
		{
			name:     "dangling key",
			input:    "1 2 3",
			want:     []countsort.Record{{Key: 1, Value: 2}},
			stop:     StopMalformed,
			badToken: "3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.input))
			got := readAll(r)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.stop, r.Stop())
			assert.Equal(t, len(tt.want), r.Records())
			require.NoError(t, r.Err())

			tok, n, ok := r.Malformed()
			assert.Equal(t, tt.stop == StopMalformed, ok)
			if ok {
				assert.Equal(t, tt.badToken, tok)
				assert.Equal(t, len(tt.want), n)
			}

			_, more := r.Next()
			assert.False(t, more, "a stopped reader stays stopped")
		})
	}
}

func TestReader_UTF8BOM(t *testing.T) {
	r := NewReader(strings.NewReader("\ufeff9 1\n2 3\n"))
	assert.Equal(t, []countsort.Record{{Key: 9, Value: 1}, {Key: 2, Value: 3}}, readAll(r))
	assert.Equal(t, StopEOF, r.Stop())
}

func TestReader_UTF16WithBOM(t *testing.T) {
	for _, enc := range []unicode.Endianness{unicode.LittleEndian, unicode.BigEndian} {
		encoder := unicode.UTF16(enc, unicode.UseBOM).NewEncoder()
		data, err := encoder.Bytes([]byte("4 40\r\n1 10\r\n"))
		require.NoError(t, err)

		r := NewReader(bytes.NewReader(data))
		assert.Equal(t, []countsort.Record{{Key: 4, Value: 40}, {Key: 1, Value: 10}}, readAll(r))
		assert.Equal(t, StopEOF, r.Stop())
	}
}

func TestReader_ReadError(t *testing.T) {
	boom := errors.New("boom")
	r := NewReader(iotest.ErrReader(boom))
	_, ok := r.Next()
	assert.False(t, ok)
	assert.Equal(t, StopReadError, r.Stop())
	require.ErrorIs(t, r.Err(), boom)
}

func TestReader_TokenTooLong(t *testing.T) {
	r := NewReader(strings.NewReader("1 2 " + strings.Repeat("9", ScannerMaxTokenSize+1)))
	assert.Equal(t, []countsort.Record{{Key: 1, Value: 2}}, readAll(r))
	assert.Equal(t, StopMalformed, r.Stop())
	require.NoError(t, r.Err())
}

func TestWriter(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)

	require.NoError(t, w.Write(countsort.Record{Key: 3, Value: 1}))
	require.NoError(t, w.Write(countsort.Record{Key: 65535, Value: 18446744073709551615}))
	assert.Zero(t, out.Len(), "output is buffered until Flush")

	require.NoError(t, w.Flush())
	assert.Equal(t, "3\t1\n65535\t18446744073709551615\n", out.String())
	assert.Equal(t, 2, w.Written())
}

func TestWriter_WriteAll(t *testing.T) {
	v := vec.New[countsort.Record]()
	require.NoError(t, v.Append(countsort.Record{Key: 1, Value: 2}, countsort.Record{Key: 1, Value: 3}))

	var out bytes.Buffer
	w := NewWriter(&out)
	require.NoError(t, w.WriteAll(v))
	require.NoError(t, w.Flush())
	assert.Equal(t, "1\t2\n1\t3\n", out.String())
}

func TestWriter_Empty(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)
	require.NoError(t, w.WriteAll(vec.New[countsort.Record]()))
	require.NoError(t, w.Flush())
	assert.Empty(t, out.String())
}

// TestRoundTrip feeds writer output back through the reader.
func TestRoundTrip(t *testing.T) {
	in := []countsort.Record{{Key: 5, Value: 100}, {Key: 3, Value: 1}, {Key: 5, Value: 200}, {Key: 0, Value: 0}}
	var out bytes.Buffer
	w := NewWriter(&out)
	for _, rec := range in {
		require.NoError(t, w.Write(rec))
	}
	require.NoError(t, w.Flush())

	assert.Equal(t, in, readAll(NewReader(&out)))
}

func TestStopReasonString(t *testing.T) {
	assert.Equal(t, "eof", StopEOF.String())
	assert.Equal(t, "malformed", StopMalformed.String())
	assert.Equal(t, "unknown", StopReason(42).String())
}
