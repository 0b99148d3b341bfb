package sandbox

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sandfix/pkg/errors"
)

// Resolve joins relative path parts onto the sandbox root and returns
// the absolute result. Each part may itself be slash-separated; parts
// are split on "/" regardless of host OS, which keeps test code
// independent of host path conventions. Resolve is pure path
// computation and creates nothing.
//
// Absolute parts and any ".." traversal fail with a PATH_ESCAPE error.
func (s *Sandbox) Resolve(parts ...string) (string, error) {
	segments, err := splitParts(parts)
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{s.root}, segments...)...), nil
}

// splitParts flattens slash-separated parts into clean segments,
// rejecting anything that could escape the sandbox root.
func splitParts(parts []string) ([]string, error) {
	var segments []string
	for _, part := range parts {
		if strings.HasPrefix(part, "/") || filepath.IsAbs(part) {
			return nil, errors.Newf(errors.ErrPathEscape,
				"absolute path %q not allowed inside sandbox", part)
		}
		for _, seg := range strings.Split(part, "/") {
			switch seg {
			case "", ".":
				// Redundant separators and self references are harmless.
			case "..":
				return nil, errors.Newf(errors.ErrPathEscape,
					"path %q would escape the sandbox root", strings.Join(parts, "/"))
			default:
				segments = append(segments, seg)
			}
		}
	}
	return segments, nil
}
