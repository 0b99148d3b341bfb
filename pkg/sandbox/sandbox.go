package sandbox

import (
	"path/filepath"
	"regexp"
	"sync"

	"github.com/arthur-debert/sandfix/pkg/config"
	"github.com/arthur-debert/sandfix/pkg/errors"
	"github.com/arthur-debert/sandfix/pkg/filesystem"
	"github.com/arthur-debert/sandfix/pkg/logging"
)

const tempPrefix = "sandfix-"

// Options configures sandbox creation.
type Options struct {
	// Path wraps an existing directory instead of allocating a new
	// temporary one. A wrapped sandbox is never owned: Cleanup leaves
	// it intact.
	Path string

	// Ignore lists regular expressions excluded from listings and
	// comparisons, in addition to any configured defaults. Patterns
	// are compiled at creation time; a bad pattern fails construction.
	Ignore []string

	// FS selects the filesystem backend. Nil means the OS filesystem.
	FS filesystem.FS
}

// Sandbox is an isolated directory tree for file-based test fixtures.
type Sandbox struct {
	root   string
	owned  bool
	fs     filesystem.FS
	ignore []*regexp.Regexp

	mu      sync.Mutex
	cleaned bool
}

// New creates a sandbox in a freshly allocated unique temporary
// directory, owned and registered for bulk cleanup. Default ignore
// patterns and the temp root come from configuration.
func New() (*Sandbox, error) {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a sandbox per opts. See Options.
func NewWithOptions(opts Options) (*Sandbox, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	patterns, err := compilePatterns(append(append([]string{}, cfg.Ignore...), opts.Ignore...))
	if err != nil {
		return nil, err
	}

	sb := &Sandbox{
		fs:     fs,
		ignore: patterns,
	}

	logger := logging.GetLogger("sandbox")

	if opts.Path != "" {
		abs, err := filepath.Abs(opts.Path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput,
				"cannot resolve sandbox path %q", opts.Path)
		}
		sb.root = abs
		logger.Debug().Str("root", sb.root).Msg("Wrapped existing directory")
		return sb, nil
	}

	root, err := fs.TempDir(cfg.TempRoot, tempPrefix)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "cannot allocate sandbox directory")
	}
	sb.root = root
	sb.owned = true
	register(sb)
	logger.Debug().Str("root", sb.root).Msg("Created sandbox")
	return sb, nil
}

// Path returns the absolute root path of the sandbox.
func (s *Sandbox) Path() string {
	return s.root
}

// Owned reports whether Cleanup will remove the sandbox directory.
func (s *Sandbox) Owned() bool {
	return s.owned
}

// Cleanup releases the sandbox. Owned sandboxes have their directory
// tree removed recursively; wrapped sandboxes are left intact. Cleanup
// is idempotent: calling it twice is a no-op, never an error. A failed
// removal leaves the sandbox live and registered so a later call can
// retry.
func (s *Sandbox) Cleanup() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cleaned {
		return nil
	}

	logger := logging.GetLogger("sandbox")
	if !s.owned {
		s.cleaned = true
		logger.Debug().Str("root", s.root).Msg("Skipping cleanup of unowned sandbox")
		return nil
	}

	if err := s.fs.RemoveAll(s.root); err != nil {
		return errors.Wrapf(err, errors.ErrCleanup, "cannot remove sandbox %s", s.root)
	}
	s.cleaned = true
	unregister(s)
	logger.Debug().Str("root", s.root).Msg("Removed sandbox")
	return nil
}

// Acquire creates a sandbox and returns it with a release function
// suitable for defer. The release function swallows cleanup errors;
// call Cleanup directly when they matter.
func Acquire() (*Sandbox, func(), error) {
	return AcquireWith(Options{})
}

// AcquireWith is Acquire with explicit options.
func AcquireWith(opts Options) (*Sandbox, func(), error) {
	sb, err := NewWithOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	return sb, func() { _ = sb.Cleanup() }, nil
}

// Run creates a sandbox, passes it to fn and guarantees cleanup
// whether fn returns or panics.
func Run(fn func(*Sandbox) error) error {
	return RunWith(Options{}, fn)
}

// RunWith is Run with explicit options.
func RunWith(opts Options, fn func(*Sandbox) error) error {
	sb, err := NewWithOptions(opts)
	if err != nil {
		return err
	}
	defer func() { _ = sb.Cleanup() }()
	return fn(sb)
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPatternInvalid,
				"invalid ignore pattern %q", p)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// isIgnored reports whether rel matches any of the given patterns.
// Patterns are search expressions: a match anywhere in the relative
// path excludes the entry.
func isIgnored(rel string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(rel) {
			return true
		}
	}
	return false
}
