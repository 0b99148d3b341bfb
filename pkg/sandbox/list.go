package sandbox

import (
	"path/filepath"
	"regexp"
	"sort"

	"github.com/arthur-debert/sandfix/pkg/errors"
)

// List returns the entries beneath rel (the sandbox root when rel is
// empty), sorted lexicographically and filtered through the sandbox's
// ignore patterns. Non-recursive listings hold one level of plain
// names; recursive listings hold the full subtree as slash-separated
// relative paths with directories marked by a trailing "/".
//
// An empty result is an empty slice, not an error; a missing path is a
// NOT_FOUND error.
func (s *Sandbox) List(rel string, recursive bool) ([]string, error) {
	return s.list(rel, recursive, s.ignore)
}

func (s *Sandbox) list(rel string, recursive bool, patterns []*regexp.Regexp) ([]string, error) {
	path, err := s.Resolve(rel)
	if err != nil {
		return nil, err
	}

	if _, err := s.fs.Stat(path); err != nil {
		if isNotExist(err) {
			return nil, errors.Newf(errors.ErrNotFound, "%s does not exist", displayRel(rel))
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot stat %s", path)
	}

	var entries []string
	if recursive {
		entries, err = s.walk(path, "")
	} else {
		entries, err = s.level(path)
	}
	if err != nil {
		return nil, err
	}

	filtered := make([]string, 0, len(entries))
	for _, e := range entries {
		if !isIgnored(e, patterns) {
			filtered = append(filtered, e)
		}
	}
	sort.Strings(filtered)
	return filtered, nil
}

// level lists one directory level as plain names.
func (s *Sandbox) level(path string) ([]string, error) {
	dirEntries, err := s.fs.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot list %s", path)
	}
	names := make([]string, 0, len(dirEntries))
	for _, entry := range dirEntries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// walk lists the full subtree, directories suffixed with "/".
func (s *Sandbox) walk(path, prefix string) ([]string, error) {
	dirEntries, err := s.fs.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot list %s", path)
	}

	var entries []string
	for _, entry := range dirEntries {
		rel := prefix + entry.Name()
		if entry.IsDir() {
			entries = append(entries, rel+"/")
			children, err := s.walk(filepath.Join(path, entry.Name()), rel+"/")
			if err != nil {
				return nil, err
			}
			entries = append(entries, children...)
		} else {
			entries = append(entries, rel)
		}
	}
	return entries, nil
}

func displayRel(rel string) string {
	if rel == "" {
		return "."
	}
	return rel
}
