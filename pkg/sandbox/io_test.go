package sandbox_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/arthur-debert/sandfix/pkg/errors"
	"github.com/arthur-debert/sandfix/pkg/sandbox"
)

func TestWriteReadRoundTrip(t *testing.T) {
	isolateConfig(t)
	sb := newSandbox(t, sandbox.Options{})

	content := []byte{0x00, 0x01, 0xff, 'a', 'b'}
	path, err := sb.Write("data.bin", content)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(sb.Path(), "data.bin"), path)

	got, err := sb.Read("data.bin")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestWriteCreatesIntermediateDirectories(t *testing.T) {
	isolateConfig(t)
	sb := newSandbox(t, sandbox.Options{})

	path, err := sb.Write("a/b/c/file.txt", []byte("deep"))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestWriteOverwrites(t *testing.T) {
	isolateConfig(t)
	sb := newSandbox(t, sandbox.Options{})

	_, err := sb.Write("f.txt", []byte("first"))
	require.NoError(t, err)
	_, err = sb.Write("f.txt", []byte("second"))
	require.NoError(t, err)

	got, err := sb.Read("f.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestWriteParts(t *testing.T) {
	isolateConfig(t)
	sb := newSandbox(t, sandbox.Options{})

	path, err := sb.WriteParts([]string{"subdir", "file.txt"}, []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(sb.Path(), "subdir", "file.txt"), path)
}

func TestTextRoundTrip(t *testing.T) {
	isolateConfig(t)
	sb := newSandbox(t, sandbox.Options{})

	for _, tc := range []struct {
		name    string
		content string
	}{
		{"ascii", "plain text"},
		{"unicode", "héllo wörld — ünïcode"},
	} {
		t.Run(tc.name+"_utf8", func(t *testing.T) {
			_, err := sb.WriteText("utf8.txt", tc.content, unicode.UTF8)
			require.NoError(t, err)

			got, err := sb.ReadText("utf8.txt", unicode.UTF8)
			require.NoError(t, err)
			assert.Equal(t, tc.content, got)
		})
	}

	t.Run("latin1", func(t *testing.T) {
		content := "café"
		_, err := sb.WriteText("latin1.txt", content, charmap.ISO8859_1)
		require.NoError(t, err)

		// The stored bytes are Latin-1, not UTF-8.
		raw, err := sb.Read("latin1.txt")
		require.NoError(t, err)
		assert.Equal(t, []byte{'c', 'a', 'f', 0xe9}, raw)

		got, err := sb.ReadText("latin1.txt", charmap.ISO8859_1)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})
}

func TestTextRequiresEncoding(t *testing.T) {
	isolateConfig(t)
	sb := newSandbox(t, sandbox.Options{})

	_, err := sb.WriteText("f.txt", "text", nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEncoding))

	_, err = sb.Write("f.txt", []byte("raw"))
	require.NoError(t, err)

	_, err = sb.ReadText("f.txt", nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEncoding))
}

func TestReadMissingFile(t *testing.T) {
	isolateConfig(t)
	sb := newSandbox(t, sandbox.Options{})

	_, err := sb.Read("missing.txt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestMakeDir(t *testing.T) {
	isolateConfig(t)
	sb := newSandbox(t, sandbox.Options{})

	first, err := sb.MakeDir("a/b/c")
	require.NoError(t, err)

	info, err := os.Stat(first)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent: same path both times, no error.
	second, err := sb.MakeDir("a/b/c")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMakeDirOverFile(t *testing.T) {
	isolateConfig(t)
	sb := newSandbox(t, sandbox.Options{})

	_, err := sb.Write("occupied", []byte("x"))
	require.NoError(t, err)

	_, err = sb.MakeDir("occupied")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
}
