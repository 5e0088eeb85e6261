package recio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/joshuapare/keysort/countsort"
	"github.com/joshuapare/keysort/vec"
)

// Writer emits records as "<key>\t<value>\n" lines through a buffer.
// Callers must Flush when done.
type Writer struct {
	bw      *bufio.Writer
	line    []byte
	written int
}

// NewWriter returns a buffered Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		bw:   bufio.NewWriterSize(w, WriterBufferSize),
		line: make([]byte, 0, 32),
	}
}

// Write buffers one record line.
func (w *Writer) Write(rec countsort.Record) error {
	b := w.line[:0]
	b = strconv.AppendUint(b, uint64(rec.Key), 10)
	b = append(b, FieldSeparator)
	b = strconv.AppendUint(b, rec.Value, 10)
	b = append(b, LineTerminator)
	w.line = b

	if _, err := w.bw.Write(b); err != nil {
		return err
	}
	w.written++
	return nil
}

// WriteAll writes every live record of v in order.
func (w *Writer) WriteAll(v *vec.Vec[countsort.Record]) error {
	for _, rec := range v.All() {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered lines to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}

// Written returns the number of records written.
func (w *Writer) Written() int {
	return w.written
}
