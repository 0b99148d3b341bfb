package compare

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/arthur-debert/sandfix/pkg/errors"
)

// FieldOptions controls field-wise struct comparison.
type FieldOptions struct {
	// IncludeReadOnly also compares fields tagged `compare:"readonly"`,
	// which are skipped by default.
	IncludeReadOnly bool

	// Exclude lists field names to skip entirely.
	Exclude []string
}

// Fields compares two struct values (or pointers to structs) of the
// same type field by field, bypassing any equality method the type
// defines. Only exported fields participate. Fields tagged
// `compare:"-"` are always skipped; fields tagged `compare:"readonly"`
// are skipped unless opts.IncludeReadOnly is set.
//
// On mismatch the returned error lists every differing field with both
// values, and its details carry the differing field names.
func Fields(expected, actual interface{}, opts FieldOptions) error {
	expectedVal, err := structValue(expected)
	if err != nil {
		return err
	}
	actualVal, err := structValue(actual)
	if err != nil {
		return err
	}

	if expectedVal.Type() != actualVal.Type() {
		return errors.Newf(errors.ErrComparison,
			"type mismatch: expected %v, got %v", expectedVal.Type(), actualVal.Type())
	}

	excluded := make(map[string]struct{}, len(opts.Exclude))
	for _, name := range opts.Exclude {
		excluded[name] = struct{}{}
	}

	structType := expectedVal.Type()
	var mismatches []string
	var fields []string
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}
		if _, skip := excluded[field.Name]; skip {
			continue
		}
		switch field.Tag.Get("compare") {
		case "-":
			continue
		case "readonly":
			if !opts.IncludeReadOnly {
				continue
			}
		}

		e := expectedVal.Field(i).Interface()
		a := actualVal.Field(i).Interface()
		if !reflect.DeepEqual(e, a) {
			fields = append(fields, field.Name)
			mismatches = append(mismatches,
				fmt.Sprintf("%s: expected %#v, got %#v", field.Name, e, a))
		}
	}

	if len(mismatches) > 0 {
		return errors.Newf(errors.ErrComparison,
			"%s fields differ:\n%s", structType.Name(), strings.Join(mismatches, "\n")).
			WithDetail("fields", fields)
	}
	return nil
}

// RegisterFields installs a field comparer for the struct type of
// sample, so Values applies field-by-field equality to values of that
// type instead of deep equality or the type's own equality method.
func RegisterFields(sample interface{}, opts FieldOptions) {
	Register(sample, func(expected, actual interface{}) error {
		return Fields(expected, actual, opts)
	})
}

func structValue(v interface{}) (reflect.Value, error) {
	if v == nil {
		return reflect.Value{}, errors.New(errors.ErrInvalidInput, "cannot compare fields of nil")
	}
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return reflect.Value{}, errors.New(errors.ErrInvalidInput, "cannot compare fields of nil pointer")
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return reflect.Value{}, errors.Newf(errors.ErrInvalidInput,
			"field comparison requires a struct, got %v", val.Kind())
	}
	return val, nil
}
