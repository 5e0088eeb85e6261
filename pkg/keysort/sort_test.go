package keysort

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/keysort/countsort"
	"github.com/joshuapare/keysort/vec"
)

func TestSortStream(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		records   int
		truncated bool
	}{
		{
			name:    "stability",
			input:   "5 100\n3 1\n5 200\n",
			want:    "3\t1\n5\t100\n5\t200\n",
			records: 3,
		},
		{
			name:    "single key repeated",
			input:   "7 1\n7 2\n7 3\n",
			want:    "7\t1\n7\t2\n7\t3\n",
			records: 3,
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:      "malformed stops ingestion",
			input:     "9 9\n1 1\nx 2\n0 0\n",
			want:      "1\t1\n9\t9\n",
			records:   2,
			truncated: true,
		},
		{
			name:    "tab separated input",
			input:   "2\t20\n1\t10\n",
			want:    "1\t10\n2\t20\n",
			records: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			stats, err := SortStream(strings.NewReader(tt.input), &out, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
			assert.Equal(t, tt.records, stats.Records)
			assert.Equal(t, tt.truncated, stats.Truncated)
		})
	}
}

// TestSortStream_Idempotent verifies sorted output sorts to itself.
func TestSortStream_Idempotent(t *testing.T) {
	input := "65535 1\n0 2\n300 3\n0 4\n300 5\n1 6\n"

	var first, second bytes.Buffer
	_, err := SortStream(strings.NewReader(input), &first, nil)
	require.NoError(t, err)
	_, err = SortStream(bytes.NewReader(first.Bytes()), &second, nil)
	require.NoError(t, err)
	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, "0\t2\n0\t4\n1\t6\n300\t3\n300\t5\n65535\t1\n", first.String())
}

func TestSortStream_Stats(t *testing.T) {
	var out bytes.Buffer
	stats, err := SortStream(strings.NewReader("4 0 9 0 4 0 2 0 bad"), &out, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Records)
	assert.Equal(t, 3, stats.DistinctKeys)
	assert.Equal(t, uint16(2), stats.MinKey)
	assert.Equal(t, uint16(9), stats.MaxKey)
	assert.Equal(t, uint16(4), stats.TopKey)
	assert.Equal(t, 2, stats.TopKeyCount)
	assert.True(t, stats.Truncated)
	assert.Equal(t, "bad", stats.StopToken)
	assert.Greater(t, stats.PeakBytes, int64(countsort.KeyDomain))
}

// TestSortStream_MaxMemory verifies a refused allocation writes nothing.
func TestSortStream_MaxMemory(t *testing.T) {
	var out bytes.Buffer
	_, err := SortStream(strings.NewReader("1 1\n"), &out, &Options{MaxMemory: 1024})
	require.ErrorIs(t, err, vec.ErrAlloc)
	assert.Zero(t, out.Len())
}

func TestSortStream_ReadError(t *testing.T) {
	boom := errors.New("disk on fire")
	var out bytes.Buffer
	_, err := SortStream(iotest.ErrReader(boom), &out, nil)
	require.ErrorIs(t, err, boom)
	assert.Zero(t, out.Len())
}

func TestSortStream_WriteError(t *testing.T) {
	_, err := SortStream(strings.NewReader("1 1\n"), failingWriter{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write output")
}

func TestSortStream_Logs(t *testing.T) {
	var logs bytes.Buffer
	opts := &Options{Logger: slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	var out bytes.Buffer
	_, err := SortStream(strings.NewReader("1 1 oops"), &out, opts)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "input stopped at malformed token")
	assert.Contains(t, logs.String(), "token=oops")
	assert.Contains(t, logs.String(), "msg=sorted")
}

func TestSortFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("5 100\n3 1\n5 200\n"), 0o644))

	var out bytes.Buffer
	stats, err := SortFile(path, &out, nil)
	require.NoError(t, err)
	assert.Equal(t, "3\t1\n5\t100\n5\t200\n", out.String())
	assert.Equal(t, 3, stats.Records)
}

func TestSortFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	var out bytes.Buffer
	stats, err := SortFile(path, &out, nil)
	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Zero(t, stats.Records)
}

func TestSortFile_Missing(t *testing.T) {
	var out bytes.Buffer
	_, err := SortFile(filepath.Join(t.TempDir(), "nope.txt"), &out, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}
