package zim_test

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cybernic/zimtocorpus"
	"github.com/cybernic/zimtocorpus/zim"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeArchive builds an archive at path holding the given records.
func writeArchive(t *testing.T, path string, records ...string) {
	t.Helper()
	w, err := zim.Create(path)
	require.NoError(t, err)
	for _, r := range records {
		require.NoError(t, w.WriteRecord(r))
	}
	require.NoError(t, w.Close())
}

// readAll drains a reader until its first error.
func readAll(t *testing.T, r zimtocorpus.DumpReader) ([]string, error) {
	t.Helper()
	var records []string
	for {
		record, err := r.Next()
		if err != nil {
			return records, err
		}
		records = append(records, record)
	}
}

func TestReader(t *testing.T) {
	t.Parallel()

	t.Run("reads records back in order", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "wiki_en.zim.gz")
		want := []string{
			"<html><body><section><h2>A</h2></section></body></html>",
			"",
			"<html><body><section><h2>B</h2><p>text</p></section></body></html>",
		}
		writeArchive(t, path, want...)

		r, err := zim.Open(path)
		require.NoError(t, err)
		defer r.Close()

		got, err := readAll(t, r)
		assert.Equal(t, io.EOF, err)
		assert.Equal(t, want, got)
	})

	t.Run("returns a clean end for an archive with no records", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.zim.gz")
		writeArchive(t, path)

		r, err := zim.Open(path)
		require.NoError(t, err)
		defer r.Close()

		_, err = r.Next()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("reports truncation when the payload is cut short", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "cut.zim.gz")
		f, err := os.Create(path)
		require.NoError(t, err)
		gz := gzip.NewWriter(f)
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], 100)
		_, err = gz.Write(buf[:])
		require.NoError(t, err)
		_, err = gz.Write([]byte("only ten b"))
		require.NoError(t, err)
		require.NoError(t, gz.Close())
		require.NoError(t, f.Close())

		r, err := zim.Open(path)
		require.NoError(t, err)
		defer r.Close()

		_, err = r.Next()
		assert.Equal(t, zimtocorpus.ETRUNCATED, zimtocorpus.ErrorCode(err))
	})

	t.Run("reports truncation when the file is cut in the gzip trailer", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "trailer.zim.gz")
		writeArchive(t, path, "<html>1</html>", "<html>2</html>", "<html>3</html>")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data[:len(data)-1], 0o644))

		r, err := zim.Open(path)
		require.NoError(t, err)
		defer r.Close()

		got, err := readAll(t, r)
		assert.Equal(t, zimtocorpus.ETRUNCATED, zimtocorpus.ErrorCode(err))
		assert.Len(t, got, 3)
	})

	t.Run("reports truncation when the file is cut mid-stream", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "midstream.zim.gz")
		writeArchive(t, path, strings.Repeat("<p>filler</p>", 1000))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Greater(t, len(data), 14)
		require.NoError(t, os.WriteFile(path, data[:12], 0o644))

		r, err := zim.Open(path)
		require.NoError(t, err)
		defer r.Close()

		got, err := readAll(t, r)
		assert.Equal(t, zimtocorpus.ETRUNCATED, zimtocorpus.ErrorCode(err))
		assert.Empty(t, got)
	})

	t.Run("reports corruption when the integrity check fails", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "corrupt.zim.gz")
		writeArchive(t, path, "<html>1</html>", "<html>2</html>")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		data[len(data)-1] ^= 0xFF
		require.NoError(t, os.WriteFile(path, data, 0o644))

		r, err := zim.Open(path)
		require.NoError(t, err)
		defer r.Close()

		got, err := readAll(t, r)
		assert.Equal(t, zimtocorpus.EINVALID, zimtocorpus.ErrorCode(err))
		assert.Len(t, got, 2)
	})

	t.Run("rejects an absurd record length", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "absurd.zim.gz")
		f, err := os.Create(path)
		require.NoError(t, err)
		gz := gzip.NewWriter(f)
		_, err = gz.Write([]byte{0xFF, 0xFF, 0xFF, 0xFF})
		require.NoError(t, err)
		require.NoError(t, gz.Close())
		require.NoError(t, f.Close())

		r, err := zim.Open(path)
		require.NoError(t, err)
		defer r.Close()

		_, err = r.Next()
		assert.Equal(t, zimtocorpus.EINVALID, zimtocorpus.ErrorCode(err))
	})

	t.Run("rejects a file that is not gzip", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "plain.txt")
		require.NoError(t, os.WriteFile(path, []byte("plain text, not an archive"), 0o644))

		_, err := zim.Open(path)
		assert.Equal(t, zimtocorpus.EINVALID, zimtocorpus.ErrorCode(err))
	})

	t.Run("treats an empty file as truncated", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "zero.zim.gz")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		_, err := zim.Open(path)
		assert.Equal(t, zimtocorpus.ETRUNCATED, zimtocorpus.ErrorCode(err))
	})
}

func TestOpener(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "opened.zim.gz")
	writeArchive(t, path, "<html>only</html>")

	r, err := zim.Opener{}.Open(path)
	require.NoError(t, err)
	defer r.Close()

	record, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "<html>only</html>", record)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}
