package compare

import (
	"fmt"
	"sort"
	"strings"
)

// Result holds the three partitions of a set comparison.
type Result struct {
	Same         []string
	ExpectedOnly []string
	ActualOnly   []string
}

// Equal reports whether the two sets matched exactly.
func (r Result) Equal() bool {
	return len(r.ExpectedOnly) == 0 && len(r.ActualOnly) == 0
}

// Diff renders the partitions as a human-readable report.
func (r Result) Diff() string {
	var b strings.Builder
	writeSection(&b, "same", r.Same)
	writeSection(&b, "expected but not found", r.ExpectedOnly)
	writeSection(&b, "found but not expected", r.ActualOnly)
	return strings.TrimRight(b.String(), "\n")
}

func writeSection(b *strings.Builder, title string, entries []string) {
	fmt.Fprintf(b, "%s:\n", title)
	if len(entries) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(b, "  %s\n", e)
	}
}

// Sets compares two collections of strings as sets, order-independent.
// Duplicates within a collection are collapsed. All partitions are
// returned sorted.
func Sets(expected, actual []string) Result {
	expectedSet := make(map[string]struct{}, len(expected))
	for _, e := range expected {
		expectedSet[e] = struct{}{}
	}
	actualSet := make(map[string]struct{}, len(actual))
	for _, a := range actual {
		actualSet[a] = struct{}{}
	}

	var result Result
	for e := range expectedSet {
		if _, ok := actualSet[e]; ok {
			result.Same = append(result.Same, e)
		} else {
			result.ExpectedOnly = append(result.ExpectedOnly, e)
		}
	}
	for a := range actualSet {
		if _, ok := expectedSet[a]; !ok {
			result.ActualOnly = append(result.ActualOnly, a)
		}
	}

	sort.Strings(result.Same)
	sort.Strings(result.ExpectedOnly)
	sort.Strings(result.ActualOnly)
	return result
}
