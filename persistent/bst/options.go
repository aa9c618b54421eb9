package bst

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// props are properties shared between all versions of a tree. They are set at
// creation time and never change afterwards.
type props[K any] struct {
	compare   func(K, K) int
	isMissing func(K) bool
}

// Option is a type to help initializing trees at creation time.
type Option[K any] func(*props[K])

// MissingKey is an option to set a predicate for keys to reject with ErrInvalidArgument.
// The default predicate rejects nil keys for pointer-like key types (pointers, interfaces,
// maps, slices, funcs and channels), including interface keys holding a typed nil pointer.
// No value of other key types is considered missing.
//
// Use it like this, to reject empty names:
//
//     tree := bst.Immutable[string, int](bst.MissingKey(func(k string) bool {
//         return k == ""
//     }))
//
func MissingKey[K any](isMissing func(K) bool) Option[K] {
	return func(p *props[K]) {
		if isMissing != nil {
			p.isMissing = isMissing
		}
	}
}

func newProps[K any](cmp func(K, K) int, opts []Option[K]) *props[K] {
	assertThat(cmp != nil, "tree needs a comparison function for keys")
	p := &props[K]{
		compare:   cmp,
		isMissing: isNilKey[K],
	}
	for _, option := range opts {
		option(p)
	}
	return p
}

// compareOrdered is the natural ordering for ordered types.
func compareOrdered[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	}
	return 0
}

func isNilKey[K any](key K) bool {
	return isNil(reflect.ValueOf(&key).Elem())
}

// isNil looks through interfaces, so a typed nil pointer wrapped in an interface
// counts as nil as well.
func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface:
		return v.IsNil() || isNil(v.Elem())
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
