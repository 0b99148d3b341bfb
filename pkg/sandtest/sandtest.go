// Package sandtest provides testing.T conveniences over the sandbox
// package: automatic cleanup, fixture helpers and assertions.
package sandtest

import (
	"os"
	"testing"

	"github.com/arthur-debert/sandfix/pkg/sandbox"
)

// New creates a sandbox tied to the test's lifetime: it is cleaned up
// automatically when the test (and its subtests) complete.
func New(t *testing.T) *sandbox.Sandbox {
	t.Helper()
	return NewWithOptions(t, sandbox.Options{})
}

// NewWithOptions is New with explicit sandbox options.
func NewWithOptions(t *testing.T, opts sandbox.Options) *sandbox.Sandbox {
	t.Helper()

	sb, err := sandbox.NewWithOptions(opts)
	if err != nil {
		t.Fatalf("Failed to create sandbox: %v", err)
	}
	t.Cleanup(func() {
		if err := sb.Cleanup(); err != nil {
			t.Errorf("Failed to clean up sandbox %s: %v", sb.Path(), err)
		}
	})
	return sb
}

// With runs fn with a fresh sandbox that is cleaned up when fn
// returns, even if fn fails the test or panics.
func With(t *testing.T, fn func(sb *sandbox.Sandbox)) {
	t.Helper()

	sb, err := sandbox.New()
	if err != nil {
		t.Fatalf("Failed to create sandbox: %v", err)
	}
	defer func() {
		if err := sb.Cleanup(); err != nil {
			t.Errorf("Failed to clean up sandbox %s: %v", sb.Path(), err)
		}
	}()

	fn(sb)
}

// WriteFiles writes each path/content pair into the sandbox, creating
// intermediate directories as needed.
func WriteFiles(t *testing.T, sb *sandbox.Sandbox, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		if _, err := sb.Write(rel, []byte(content)); err != nil {
			t.Fatalf("Failed to write %s: %v", rel, err)
		}
	}
}

// RequireContents fails the test unless the sandbox's recursive
// listing equals expected. On mismatch the comparison report is the
// failure message.
func RequireContents(t *testing.T, sb *sandbox.Sandbox, expected ...string) {
	t.Helper()

	if err := sb.Compare(expected...); err != nil {
		t.Fatalf("Sandbox contents mismatch:\n%v", err)
	}
}

// RequireFileContent fails the test unless the file at rel exists with
// exactly the given content.
func RequireFileContent(t *testing.T, sb *sandbox.Sandbox, rel, content string) {
	t.Helper()

	got, err := sb.Read(rel)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", rel, err)
	}
	if string(got) != content {
		t.Fatalf("File %s content mismatch\nExpected: %q\nActual: %q", rel, content, got)
	}
}

// RequireGone fails the test if path still exists on the OS
// filesystem. Useful after cleanup assertions.
func RequireGone(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("Path %s still exists", path)
	}
}
