// Package compare provides the generic value comparison utilities that
// back sandbox content checks and field-wise struct equality.
//
// Set comparisons partition entries into same / expected-only /
// actual-only so failures read as a diagnostic report rather than a
// bare boolean. Value comparisons consult a process-wide registry of
// per-type comparers, which lets callers replace a type's own equality
// (for example an Equal method keyed on identity) with field-by-field
// comparison.
package compare
