package opt

import "errors"

// ErrInvalidState is wrapped by panics raised when an extracting
// operation is called on a container whose tag does not support it:
// [Option.Unwrap] or [Option.Expect] on a null option, [Result.Unwrap]
// or [Result.Expect] on an Err result, [Result.UnwrapErr] on an Ok
// result.
var ErrInvalidState = errors.New("invalid state")

// ErrConsumed is wrapped by panics raised when a [Result] cell is
// extracted a second time after its payload has already been moved out.
var ErrConsumed = errors.New("already consumed")
