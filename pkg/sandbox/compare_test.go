package sandbox_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/sandfix/pkg/errors"
	"github.com/arthur-debert/sandfix/pkg/filesystem"
	"github.com/arthur-debert/sandfix/pkg/sandbox"
)

func TestCompareMatchingListing(t *testing.T) {
	isolateConfig(t)
	sb := newSandbox(t, sandbox.Options{})
	populate(t, sb)

	assert.NoError(t, sb.Compare(
		".svn/",
		".svn/entries",
		"a.txt",
		"subdir/",
		"subdir/b.txt",
		"subdir/nested/",
		"subdir/nested/c.txt",
	))
}

func TestCompareMismatchPartitions(t *testing.T) {
	isolateConfig(t)
	sb := newSandbox(t, sandbox.Options{})

	_, err := sb.Write("a.txt", []byte("x"))
	require.NoError(t, err)
	_, err = sb.Write("extra.txt", []byte("x"))
	require.NoError(t, err)

	err = sb.Compare("a.txt", "missing.txt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrComparison))

	result, ok := sandbox.ComparisonDetail(err)
	require.True(t, ok)
	assert.Equal(t, []string{"a.txt"}, result.Same)
	assert.Equal(t, []string{"missing.txt"}, result.ExpectedOnly)
	assert.Equal(t, []string{"extra.txt"}, result.ActualOnly)
}

func TestCompareOrderIndependent(t *testing.T) {
	isolateConfig(t)
	sb := newSandbox(t, sandbox.Options{})

	_, err := sb.Write("b.txt", []byte("x"))
	require.NoError(t, err)
	_, err = sb.Write("a.txt", []byte("x"))
	require.NoError(t, err)

	assert.NoError(t, sb.Compare("b.txt", "a.txt"))
}

func TestCompareWithIgnorePatterns(t *testing.T) {
	isolateConfig(t)
	sb := newSandbox(t, sandbox.Options{Ignore: []string{`\.svn`}})

	_, err := sb.Write("a.txt", []byte("x"))
	require.NoError(t, err)
	_, err = sb.Write(".svn/entries", []byte("x"))
	require.NoError(t, err)

	assert.NoError(t, sb.Compare("a.txt"))
}

func TestCompareIgnoreOverride(t *testing.T) {
	isolateConfig(t)
	sb := newSandbox(t, sandbox.Options{Ignore: []string{`\.svn`}})

	_, err := sb.Write("a.txt", []byte("x"))
	require.NoError(t, err)
	_, err = sb.Write(".svn/entries", []byte("x"))
	require.NoError(t, err)

	// Per-call override replaces the sandbox patterns: an empty
	// non-nil slice disables filtering, so .svn shows up again.
	err = sb.CompareWith([]string{"a.txt"}, sandbox.CompareOptions{Ignore: []string{}})
	require.Error(t, err)

	result, ok := sandbox.ComparisonDetail(err)
	require.True(t, ok)
	assert.Equal(t, []string{".svn/", ".svn/entries"}, result.ActualOnly)

	// An override with a different pattern filters per call only.
	assert.NoError(t, sb.CompareWith(
		[]string{".svn/", ".svn/entries"},
		sandbox.CompareOptions{Ignore: []string{`a\.txt`}},
	))
}

func TestCompareFilesOnly(t *testing.T) {
	isolateConfig(t)
	sb := newSandbox(t, sandbox.Options{})
	populate(t, sb)

	assert.NoError(t, sb.CompareWith(
		[]string{".svn/entries", "a.txt", "subdir/b.txt", "subdir/nested/c.txt"},
		sandbox.CompareOptions{FilesOnly: true},
	))
}

func TestCompareShallow(t *testing.T) {
	isolateConfig(t)
	sb := newSandbox(t, sandbox.Options{})
	populate(t, sb)

	assert.NoError(t, sb.CompareWith(
		[]string{".svn", "a.txt", "subdir"},
		sandbox.CompareOptions{Shallow: true},
	))
}

func TestCompareSubPath(t *testing.T) {
	isolateConfig(t)
	sb := newSandbox(t, sandbox.Options{})
	populate(t, sb)

	assert.NoError(t, sb.CompareWith(
		[]string{"b.txt", "nested/", "nested/c.txt"},
		sandbox.CompareOptions{Path: "subdir"},
	))
}

func TestCompareStrictDirectoryMarkers(t *testing.T) {
	isolateConfig(t)
	sb := newSandbox(t, sandbox.Options{})

	_, err := sb.Write("subdir/file.txt", []byte("x"))
	require.NoError(t, err)

	// "subdir" without the trailing separator names a different entry
	// than the listed "subdir/": no silent normalization.
	err = sb.Compare("subdir", "subdir/file.txt")
	require.Error(t, err)

	result, ok := sandbox.ComparisonDetail(err)
	require.True(t, ok)
	assert.Equal(t, []string{"subdir"}, result.ExpectedOnly)
	assert.Equal(t, []string{"subdir/"}, result.ActualOnly)
}

func TestCompareMissingPath(t *testing.T) {
	isolateConfig(t)
	sb := newSandbox(t, sandbox.Options{})

	err := sb.CompareWith([]string{"x"}, sandbox.CompareOptions{Path: "missing"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

// TestEndToEnd follows the full lifecycle: create, write, compare at
// the root and a sub-path, clean up, verify removal.
func TestEndToEnd(t *testing.T) {
	isolateConfig(t)

	sb, err := sandbox.New()
	require.NoError(t, err)

	_, err = sb.Write("subdir/file.txt", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, sb.Compare("subdir/", "subdir/file.txt"))
	require.NoError(t, sb.CompareWith([]string{"file.txt"}, sandbox.CompareOptions{Path: "subdir"}))

	require.NoError(t, sb.Cleanup())

	_, err = os.Stat(sb.Path())
	assert.True(t, os.IsNotExist(err))
}

// TestMemoryBackend runs the core scenario against an in-memory
// filesystem: identical semantics, no disk.
func TestMemoryBackend(t *testing.T) {
	isolateConfig(t)

	sb, err := sandbox.NewWithOptions(sandbox.Options{FS: filesystem.NewMemory()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sb.Cleanup() })

	_, err = sb.Write("subdir/file.txt", []byte("mem"))
	require.NoError(t, err)

	got, err := sb.Read("subdir/file.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("mem"), got)

	require.NoError(t, sb.Compare("subdir/", "subdir/file.txt"))

	// Nothing touched the real filesystem.
	_, err = os.Stat(sb.Path())
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, sb.Cleanup())
}
