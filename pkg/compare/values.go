package compare

import (
	"reflect"
	"sync"

	"github.com/arthur-debert/sandfix/pkg/errors"
)

// Func compares an expected and actual value of the same type.
// It returns nil when the values are considered equal.
type Func func(expected, actual interface{}) error

var (
	registryMu sync.RWMutex
	registry   = make(map[reflect.Type]Func)
)

// Register installs a comparer for the dynamic type of sample. Values
// consults registered comparers before falling back to deep equality.
// Registering again for the same type replaces the previous comparer.
func Register(sample interface{}, fn Func) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[reflect.TypeOf(sample)] = fn
}

// Unregister removes any comparer registered for the dynamic type of sample.
func Unregister(sample interface{}) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, reflect.TypeOf(sample))
}

func lookup(t reflect.Type) (Func, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := registry[t]
	return fn, ok
}

// Values compares expected against actual. A comparer registered for
// their common type wins; otherwise reflect.DeepEqual decides. The
// returned error carries both values in its details.
func Values(expected, actual interface{}) error {
	if expected == nil && actual == nil {
		return nil
	}

	expectedType := reflect.TypeOf(expected)
	actualType := reflect.TypeOf(actual)
	if expectedType != actualType {
		return errors.Newf(errors.ErrComparison,
			"type mismatch: expected %v, got %v", expectedType, actualType).
			WithDetail("expected", expected).
			WithDetail("actual", actual)
	}

	if fn, ok := lookup(expectedType); ok {
		return fn(expected, actual)
	}

	if !reflect.DeepEqual(expected, actual) {
		return errors.Newf(errors.ErrComparison,
			"values differ:\nexpected: %#v\nactual:   %#v", expected, actual).
			WithDetail("expected", expected).
			WithDetail("actual", actual)
	}
	return nil
}
