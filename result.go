package opt

import (
	"fmt"
	"iter"
)

// Result represents either success (Ok) or failure (Err).
//
// The tag is fixed at construction and never changes. Extraction moves
// the payload out of the tagged cell; a second extraction attempt on
// the same instance panics with an error wrapping [ErrConsumed] rather
// than observing the cleared cell.
type Result[T, E any] struct {
	val      T
	err      E
	isErr    bool
	consumed bool
}

// Ok returns a success [Result] containing v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{val: v}
}

// Err returns a failure [Result] containing e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e, isErr: true}
}

// IsOk reports whether the result is Ok. The tag survives consumption.
func (r Result[T, E]) IsOk() bool {
	return !r.isErr
}

// IsErr reports whether the result is Err.
func (r Result[T, E]) IsErr() bool {
	return r.isErr
}

// Ok converts the result to an [Option] holding the success value, or
// a null option on the Err tag, discarding the error. The conversion
// copies the payload and does not consume it. A consumed success cell
// converts to a null option.
func (r Result[T, E]) Ok() Option[T] {
	if r.isErr || r.consumed {
		return Null[T]()
	}

	return Some(r.val)
}

// Err converts the result to an [Option] holding the failure value, or
// a null option on the Ok tag, discarding the success value.
func (r Result[T, E]) Err() Option[E] {
	if !r.isErr || r.consumed {
		return Null[E]()
	}

	return Some(r.err)
}

// popVal moves the success payload out and marks the cell consumed.
func (r *Result[T, E]) popVal() T {
	v := r.val

	var zero T
	r.val = zero
	r.consumed = true

	return v
}

// popErr moves the failure payload out and marks the cell consumed.
func (r *Result[T, E]) popErr() E {
	e := r.err

	var zero E
	r.err = zero
	r.consumed = true

	return e
}

// Unwrap moves the success value out of the result. It panics with an
// error wrapping [ErrInvalidState], reporting the failure payload, if
// the result is Err, and with an error wrapping [ErrConsumed] if the
// cell was already extracted.
func (r *Result[T, E]) Unwrap() T {
	if r.consumed {
		panic(fmt.Errorf("%w: called Unwrap on a consumed Result", ErrConsumed))
	}

	if r.isErr {
		panic(fmt.Errorf("%w: called Unwrap on an Err value: %v", ErrInvalidState, r.err))
	}

	return r.popVal()
}

// Expect behaves like [Result.Unwrap] but panics with the supplied
// message on the Err tag.
func (r *Result[T, E]) Expect(msg string) T {
	if r.consumed {
		panic(fmt.Errorf("%w: called Expect on a consumed Result", ErrConsumed))
	}

	if r.isErr {
		panic(fmt.Errorf("%w: %s", ErrInvalidState, msg))
	}

	return r.popVal()
}

// UnwrapOr moves the success value out, or returns def on the Err tag
// or after consumption. It never panics.
func (r *Result[T, E]) UnwrapOr(def T) T {
	if r.isErr || r.consumed {
		return def
	}

	return r.popVal()
}

// UnwrapOrElse moves the success value out, or computes it from f on
// the Err tag or after consumption. The thunk receives the failure
// payload; once a cell has been moved out it receives E's zero value.
func (r *Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if r.isErr || r.consumed {
		return f(r.err)
	}

	return r.popVal()
}

// UnwrapUnchecked moves the success value out without checking the tag
// or the consumption state. On the Err tag it returns T's zero value.
func (r *Result[T, E]) UnwrapUnchecked() T {
	return r.popVal()
}

// UnwrapErr moves the failure value out of the result. It panics with
// an error wrapping [ErrInvalidState], reporting the success payload,
// if the result is Ok, and with an error wrapping [ErrConsumed] if the
// cell was already extracted.
func (r *Result[T, E]) UnwrapErr() E {
	if r.consumed {
		panic(fmt.Errorf("%w: called UnwrapErr on a consumed Result", ErrConsumed))
	}

	if !r.isErr {
		panic(fmt.Errorf("%w: called UnwrapErr on an Ok value: %v", ErrInvalidState, r.val))
	}

	return r.popErr()
}

// UnwrapErrUnchecked moves the failure value out without checking the
// tag or the consumption state.
func (r *Result[T, E]) UnwrapErrUnchecked() E {
	return r.popErr()
}

// Iter returns an iterator over the possibly contained success value.
// The sequence is lazy: it yields the value once if the result is Ok
// and not yet consumed when iteration starts, nothing otherwise.
func (r *Result[T, E]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !r.isErr && !r.consumed {
			yield(r.val)
		}
	}
}

// MapResult moves the success value out of r and returns a new result
// containing f(value), keeping the failure payload on the Err tag. A
// consumed result maps to a failure carrying E's zero value.
func MapResult[T, U, E any](r *Result[T, E], f func(T) U) Result[U, E] {
	if r.isErr || r.consumed {
		return Err[U](r.err)
	}

	return Ok[U, E](f(r.popVal()))
}
