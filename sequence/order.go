package sequence

import (
	"cmp"
	"reflect"

	seqerrors "github.com/kbukum/seqkit/errors"
)

// DefaultComparer resolves a natural total order for K from its runtime
// kind. It serves key types that carry an ordering at runtime but cannot
// satisfy the cmp.Ordered constraint statically (interface-typed keys after
// a CastTo, or type parameters constrained only by comparable).
//
// Integers, unsigned integers, floats, and strings order numerically or
// lexically; booleans order false before true. Any other kind has no
// natural ordering and yields an invalid-configuration error directing the
// caller to supply an explicit comparer.
func DefaultComparer[K any]() (func(K, K) int, error) {
	t := reflect.TypeFor[K]()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b K) int {
			return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b K) int {
			return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}, nil
	case reflect.Float32, reflect.Float64:
		return func(a, b K) int {
			return cmp.Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}, nil
	case reflect.String:
		return func(a, b K) int {
			return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}, nil
	case reflect.Bool:
		return func(a, b K) int {
			av, bv := reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool()
			switch {
			case av == bv:
				return 0
			case bv:
				return -1
			default:
				return 1
			}
		}, nil
	default:
		return nil, seqerrors.NoNaturalOrder(t.String())
	}
}
