package container

import "fmt"

// Option holds a value that may be absent. Chips use it for optional event text and for per-frame rectangles, where
// None means the chip was culled.
type Option[T any] struct {
	v   T
	set bool
}

func (opt Option[T]) String() string {
	if !opt.set {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", opt.v)
}

func None[T any]() Option[T] {
	return Option[T]{
		set: false,
	}
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		v:   v,
		set: true,
	}
}

// NonEmpty returns Some(s) for non-empty strings and None otherwise.
func NonEmpty(s string) Option[string] {
	if s == "" {
		return None[string]()
	}
	return Some(s)
}

func (m Option[T]) Get() (T, bool) {
	return m.v, m.set
}

func (m Option[T]) GetOr(alt T) T {
	if m.set {
		return m.v
	} else {
		return alt
	}
}

func (m Option[T]) Set() bool {
	return m.set
}

func (m Option[T]) MustGet() T {
	if !m.set {
		panic("called MustGet on unset Option")
	}
	return m.v
}
