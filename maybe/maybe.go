/*
Package maybe implements optional values.

A Maybe either holds a value (Just) or it doesn't (Nothing). Clients
inspect it with a type-safe pattern match:

	var e Entry
	switch m := tree.Min().Match(); m {
	case m.Just(&e):
		… use e
	case m.Nothing():
		… tree is empty
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	Get() (T, bool)
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	just  bool
}

// Just wraps x into a Maybe.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, just: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{}
}

func (m maybe[T]) Match() Matcher[T] {
	return &matcher[T]{value: m.value, just: m.just}
}

// Get unwraps m in comma-ok style.
func (m maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

func (m maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.just {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may fail onto x.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to destructure a Maybe.
// Exactly one of its methods returns the matcher itself, the other one returns nil.
//
// Matchers are pointers, so matching never compares the wrapped values and works
// for element types which are not comparable.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	value T
	just  bool
}

// Just matches if a value is present and copies it to v, if v is non-nil.
func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if !mm.just {
		return nil
	}
	if v != nil {
		*v = mm.value
	}
	return mm
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if mm.just {
		return nil
	}
	return mm
}
