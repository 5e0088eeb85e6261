package main

import (
	"io"
	"os"
	"path/filepath"
)

// output is the record destination. File output goes to a temporary file in
// the target directory and is renamed into place on Commit, so a failed run
// leaves the target untouched and the input may also be the output.
type output struct {
	io.Writer
	tmp  *os.File
	path string
}

func openOutput(stdout io.Writer, path string) (*output, error) {
	if path == "" || path == "-" {
		return &output{Writer: stdout}, nil
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, err
	}
	return &output{Writer: tmp, tmp: tmp, path: path}, nil
}

// Commit makes file output visible at its final path.
func (o *output) Commit() error {
	if o.tmp == nil {
		return nil
	}
	if err := o.tmp.Close(); err != nil {
		_ = os.Remove(o.tmp.Name())
		return err
	}
	if err := os.Rename(o.tmp.Name(), o.path); err != nil {
		_ = os.Remove(o.tmp.Name())
		return err
	}
	return nil
}

// Abort discards file output.
func (o *output) Abort() {
	if o.tmp == nil {
		return
	}
	_ = o.tmp.Close()
	_ = os.Remove(o.tmp.Name())
}
