package sandbox

import (
	"strings"

	"github.com/arthur-debert/sandfix/pkg/compare"
	"github.com/arthur-debert/sandfix/pkg/errors"
	"github.com/arthur-debert/sandfix/pkg/logging"
)

// Detail keys carried by COMPARISON errors.
const (
	detailSame         = "same"
	detailExpectedOnly = "expected_only"
	detailActualOnly   = "actual_only"
)

// CompareOptions controls Compare.
type CompareOptions struct {
	// Path restricts the comparison to the subtree beneath this
	// relative path. Empty means the sandbox root.
	Path string

	// FilesOnly drops directory entries from the actual listing, so
	// expected only needs to name files.
	FilesOnly bool

	// Shallow compares a single directory level instead of the full
	// subtree.
	Shallow bool

	// Ignore replaces the sandbox's ignore patterns for this
	// comparison. Nil keeps them; an empty non-nil slice disables
	// filtering entirely.
	Ignore []string
}

// Compare asserts that the sandbox's recursive content listing equals
// expected, order-independent. Directory entries carry a trailing "/";
// an expected entry naming a directory without it does not match.
//
// On mismatch the returned COMPARISON error message renders the three
// partitions (same, expected-only, actual-only) and ComparisonDetail
// recovers them.
func (s *Sandbox) Compare(expected ...string) error {
	return s.CompareWith(expected, CompareOptions{})
}

// CompareWith is Compare with explicit options.
func (s *Sandbox) CompareWith(expected []string, opts CompareOptions) error {
	logger := logging.GetLogger("sandbox")
	defer logging.LogOperationStart(logger, "compare")()

	patterns := s.ignore
	if opts.Ignore != nil {
		var err error
		patterns, err = compilePatterns(opts.Ignore)
		if err != nil {
			return err
		}
	}

	actual, err := s.list(opts.Path, !opts.Shallow, patterns)
	if err != nil {
		return err
	}

	if opts.FilesOnly {
		files := make([]string, 0, len(actual))
		for _, entry := range actual {
			if !strings.HasSuffix(entry, "/") {
				files = append(files, entry)
			}
		}
		actual = files
	}

	result := compare.Sets(expected, actual)
	if result.Equal() {
		return nil
	}

	return errors.Newf(errors.ErrComparison,
		"sandbox contents differ under %s\n%s", displayRel(opts.Path), result.Diff()).
		WithDetail(detailSame, result.Same).
		WithDetail(detailExpectedOnly, result.ExpectedOnly).
		WithDetail(detailActualOnly, result.ActualOnly)
}

// ComparisonDetail recovers the set partitions from a COMPARISON
// error. The second return is false when err does not carry them.
func ComparisonDetail(err error) (compare.Result, bool) {
	if !errors.IsErrorCode(err, errors.ErrComparison) {
		return compare.Result{}, false
	}
	details := errors.GetErrorDetails(err)
	if details == nil {
		return compare.Result{}, false
	}

	same, ok1 := details[detailSame].([]string)
	expectedOnly, ok2 := details[detailExpectedOnly].([]string)
	actualOnly, ok3 := details[detailActualOnly].([]string)
	if !ok1 || !ok2 || !ok3 {
		return compare.Result{}, false
	}
	return compare.Result{
		Same:         same,
		ExpectedOnly: expectedOnly,
		ActualOnly:   actualOnly,
	}, true
}
