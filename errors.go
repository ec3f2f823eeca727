package probemap

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidArgument is returned for nil keys or values and for bad
	// capacities.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned by Get and Delete when the key is not live.
	ErrNotFound = errors.New("key not found")
)

// isNil reports whether v is a nil interface or a nil pointer, map, slice,
// chan or func.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
