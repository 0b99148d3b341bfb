package sandbox

import (
	"sync"

	"github.com/arthur-debert/sandfix/pkg/errors"
)

// Process-wide registry of live owned sandboxes, so suite teardown can
// release sandboxes whose handles were not retained.
var (
	liveMu sync.Mutex
	live   = make(map[*Sandbox]struct{})
)

func register(sb *Sandbox) {
	liveMu.Lock()
	defer liveMu.Unlock()
	live[sb] = struct{}{}
}

func unregister(sb *Sandbox) {
	liveMu.Lock()
	defer liveMu.Unlock()
	delete(live, sb)
}

// LiveCount returns the number of currently registered owned sandboxes.
func LiveCount() int {
	liveMu.Lock()
	defer liveMu.Unlock()
	return len(live)
}

// CleanupAll drains the registry, cleaning up every live owned
// sandbox. It keeps going on failure and reports the first error
// encountered.
func CleanupAll() error {
	liveMu.Lock()
	pending := make([]*Sandbox, 0, len(live))
	for sb := range live {
		pending = append(pending, sb)
	}
	liveMu.Unlock()

	var firstErr error
	for _, sb := range pending {
		if err := sb.Cleanup(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return errors.Wrap(firstErr, errors.ErrCleanup, "bulk cleanup failed")
	}
	return nil
}
