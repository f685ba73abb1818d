// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package optional

// Optional holds a value that may be absent. The zero value is absent.
type Optional[T any] struct {
	present bool
	value   T
}

func (self Optional[T]) IsPresent() bool {
	return self.present
}

// Value returns the held value, or the zero value of T when absent.
func (self Optional[T]) Value() T {
	return self.value
}

// ValueOr returns the held value, or fallback when absent.
func (self Optional[T]) ValueOr(fallback T) T {
	if !self.present {
		return fallback
	}
	return self.value
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Map converts a present value with f and leaves an absent value absent.
func Map[T any, U any](o Optional[T], f func(T) U) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return Some(f(o.value))
}
