// Package sandbox provides isolated directory trees for file-based
// test fixtures.
//
// A Sandbox either owns a freshly allocated temporary directory
// (removed on Cleanup) or wraps an externally supplied path (left
// intact). All relative-path arguments use forward slashes regardless
// of host OS, and may never escape the sandbox root.
//
// Typical usage:
//
//	sb, release, err := sandbox.Acquire()
//	if err != nil {
//		return err
//	}
//	defer release()
//
//	sb.Write("subdir/file.txt", []byte("content"))
//	err = sb.Compare("subdir/", "subdir/file.txt")
//
// Every live owned sandbox is tracked in a process-wide registry so
// CleanupAll can release them in bulk during suite teardown.
package sandbox
