// Package opt provides generic single-consumer containers: Option for
// values that may be absent and Result for operations that may fail.
//
// Extracting operations are destructive reads: they move the payload
// out of the container, and the same instance afterwards behaves as
// empty. Checking operations never consume.
//
// Containers carry no internal synchronization. An instance is meant
// for a single owner; sharing one across goroutines requires external
// synchronization by the caller.
package opt

import (
	"fmt"
	"iter"
)

// Option represents an optional value: every Option is either Some and
// contains a value, or Null and does not.
//
// Presence is tracked by an explicit discriminant, so an Option holding
// T's zero value is still Some.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an [Option] containing v.
func Some[T any](v T) Option[T] {
	return Option[T]{
		value: v,
		some:  true,
	}
}

// Null returns an empty [Option].
func Null[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option is a Some value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNull reports whether the option is a Null value.
func (o Option[T]) IsNull() bool {
	return !o.some
}

// pop moves the value out, leaving a Null in its place.
func (o *Option[T]) pop() T {
	v := o.value

	var zero T
	o.value = zero
	o.some = false

	return v
}

// Unwrap moves the contained value out of the option, leaving it Null.
// It panics with an error wrapping [ErrInvalidState] if the option is
// Null, including when a previous extraction already consumed the
// value.
func (o *Option[T]) Unwrap() T {
	if !o.some {
		panic(fmt.Errorf("%w: called Unwrap on a null Option", ErrInvalidState))
	}

	return o.pop()
}

// UnwrapOr moves the contained value out, or returns def if the option
// is Null.
func (o *Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}

	return o.pop()
}

// UnwrapOrElse moves the contained value out, or computes it from f if
// the option is Null.
func (o *Option[T]) UnwrapOrElse(f func() T) T {
	if !o.some {
		return f()
	}

	return o.pop()
}

// UnwrapUnchecked moves the contained value out without checking the
// discriminant. On a null option it returns T's zero value, which is
// indistinguishable from a stored zero; callers own that risk.
func (o *Option[T]) UnwrapUnchecked() T {
	return o.pop()
}

// Expect behaves like [Option.Unwrap] but panics with the supplied
// message when the option is Null.
func (o *Option[T]) Expect(msg string) T {
	return o.UnwrapOrElse(func() T {
		panic(fmt.Errorf("%w: %s", ErrInvalidState, msg))
	})
}

// Replace stores v in the option and returns the previous content,
// Some or Null, as a new option.
func (o *Option[T]) Replace(v T) Option[T] {
	old := *o

	o.value = v
	o.some = true

	return old
}

// Take moves the content out of the option, leaving a Null in its
// place, and returns the previous content as a new option.
func (o *Option[T]) Take() Option[T] {
	old := *o

	o.pop()

	return old
}

// Iter returns an iterator over the possibly contained value. The
// sequence is lazy: it yields the value once if the option is Some when
// iteration starts and yields nothing otherwise. Iterating does not
// consume the value.
func (o *Option[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}

// Map moves the value out of o and returns a new option containing
// f(value), or a null Option[U] if o is null.
//
// Methods cannot introduce type parameters, so the mapping family is
// package-level.
func Map[T, U any](o *Option[T], f func(T) U) Option[U] {
	if !o.some {
		return Null[U]()
	}

	return Some(f(o.pop()))
}

// MapOr returns f applied to the contained value if o is Some, or def
// if it is null. It never panics and does not consume the value.
func MapOr[T, U any](o *Option[T], def U, f func(T) U) U {
	if !o.some {
		return def
	}

	return f(o.value)
}

// MapOrElse returns f applied to the contained value if o is Some, or
// computes a default from def if it is null.
func MapOrElse[T, U any](o *Option[T], def func() U, f func(T) U) U {
	if !o.some {
		return def()
	}

	return f(o.value)
}
