package sandbox

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"golang.org/x/text/encoding"

	"github.com/arthur-debert/sandfix/pkg/errors"
)

// Write writes content to the file at rel, creating any missing
// intermediate directories and overwriting an existing file. It
// returns the resolved absolute path.
func (s *Sandbox) Write(rel string, content []byte) (string, error) {
	return s.WriteParts([]string{rel}, content)
}

// WriteParts is Write with the relative path given as segments.
func (s *Sandbox) WriteParts(parts []string, content []byte) (string, error) {
	path, err := s.Resolve(parts...)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(path); dir != s.root {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return "", errors.Wrapf(err, errors.ErrDirCreate,
				"cannot create parent directories for %s", path)
		}
	}

	if err := s.fs.WriteFile(path, content, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
	}
	return path, nil
}

// WriteText encodes content with enc and writes it to the file at rel.
// Text content always needs an explicit encoding: a nil enc fails with
// an ENCODING error.
func (s *Sandbox) WriteText(rel, content string, enc encoding.Encoding) (string, error) {
	if enc == nil {
		return "", errors.Newf(errors.ErrEncoding,
			"text content for %q requires an encoding", rel)
	}
	encoded, err := enc.NewEncoder().Bytes([]byte(content))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrEncoding, "cannot encode content for %q", rel)
	}
	return s.Write(rel, encoded)
}

// Read returns the raw content of the file at rel. A missing file is a
// NOT_FOUND error.
func (s *Sandbox) Read(rel string) ([]byte, error) {
	path, err := s.Resolve(rel)
	if err != nil {
		return nil, err
	}

	content, err := s.fs.ReadFile(path)
	if err != nil {
		if isNotExist(err) {
			return nil, errors.Newf(errors.ErrNotFound, "%s does not exist", rel)
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", path)
	}
	return content, nil
}

// ReadText reads the file at rel and decodes it with enc. A nil enc
// fails with an ENCODING error.
func (s *Sandbox) ReadText(rel string, enc encoding.Encoding) (string, error) {
	if enc == nil {
		return "", errors.Newf(errors.ErrEncoding,
			"decoding %q requires an encoding", rel)
	}
	content, err := s.Read(rel)
	if err != nil {
		return "", err
	}
	decoded, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrEncoding, "cannot decode content of %q", rel)
	}
	return string(decoded), nil
}

// MakeDir creates the directory at rel along with any missing
// intermediate directories, and returns the resolved absolute path. An
// existing directory is fine; anything else at that path is an error.
func (s *Sandbox) MakeDir(rel string) (string, error) {
	path, err := s.Resolve(rel)
	if err != nil {
		return "", err
	}

	if info, err := s.fs.Stat(path); err == nil && !info.IsDir() {
		return "", errors.Newf(errors.ErrDirCreate,
			"%s exists and is not a directory", rel)
	}

	if err := s.fs.MkdirAll(path, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", path)
	}
	return path, nil
}

func isNotExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist)
}
