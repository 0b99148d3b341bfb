package filesystem

import "io/fs"

// FS is the filesystem abstraction sandboxes operate through.
// The OS implementation is the default; the afero implementation
// backs in-memory sandboxes in tests.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
	RemoveAll(path string) error
	ReadDir(name string) ([]fs.DirEntry, error)
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// TempDir creates a new unique directory under dir (or the
	// backend's default temp location when dir is empty) and returns
	// its path.
	TempDir(dir, prefix string) (string, error)
}
