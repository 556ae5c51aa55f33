package stream

import "iter"

// ============================================================================
// TERMINALS (FOLDS / DRIVING LOOPS)
// ============================================================================

// Reduce folds the stream into a single accumulator, one element at a time,
// in the calling goroutine. It is not a spawned stage: any concurrency
// benefit comes from the producer of in already running in parallel. Reduce
// blocks until end-of-stream and returns the final accumulator.
//
// Parameters:
//
//	in: The stream to fold. Reduce consumes it.
//	init: The initial accumulator value.
//	fn: The reduction function combining one element into the accumulator.
//
// Returns:
//
//	Acc: The final accumulated value.
func Reduce[T, Acc any](in Stream[T], init Acc, fn func(T, Acc) Acc) Acc {
	acc := init
	Each(in, func(v T) {
		acc = fn(v, acc)
	})
	return acc
}

// Collect drains the stream into a slice, in read order. It blocks until
// end-of-stream and consumes the stream.
//
// Parameters:
//
//	in: The stream to drain.
//
// Returns:
//
//	[]T: Every element of the stream, in order.
func Collect[T any](in Stream[T]) []T {
	return Reduce(in, []T(nil), func(v T, acc []T) []T {
		return append(acc, v)
	})
}

// ToSeq exposes the stream as a lazy, finite, single-use sequence. Each
// advance pulls exactly one element with Next; end-of-stream terminates the
// sequence. The sequence is not restartable: ranging over it a second time
// resumes from wherever the stream was left, since reading consumes.
//
// Parameters:
//
//	in: The stream to pull from.
//
// Returns:
//
//	iter.Seq[T]: A pull-per-advance view of the stream.
func ToSeq[T any](in Stream[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := in.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Each reads the stream to end-of-stream, invoking fn on every element, in
// the calling goroutine. It is purely a driving loop.
//
// Parameters:
//
//	in: The stream to drive. Each consumes it.
//	fn: The function invoked on each element.
func Each[T any](in Stream[T], fn func(T)) {
	for {
		v, ok := in.Next()
		if !ok {
			return
		}
		fn(v)
	}
}

// TryEach is Each for fallible callbacks: the first non-nil error from fn
// stops iteration immediately and is returned, leaving the rest of the
// stream unread. Reaching end-of-stream without error returns nil.
//
// Parameters:
//
//	in: The stream to drive.
//	fn: The function invoked on each element until it fails.
//
// Returns:
//
//	error: The first error fn returned, or nil at end-of-stream.
func TryEach[T any](in Stream[T], fn func(T) error) error {
	for {
		v, ok := in.Next()
		if !ok {
			return nil
		}
		if err := fn(v); err != nil {
			return err
		}
	}
}

// With runs fn against the stream, closes the stream, and returns fn's
// result. The close happens only on the normal return path: a panic in fn
// escapes With without closing, by design, so an abandoned producer never
// sees a spurious end marker. Callers wanting a hard guarantee defer the
// Close themselves.
//
// Parameters:
//
//	s: The stream to scope.
//	fn: The function given the stream.
//
// Returns:
//
//	R: Whatever fn returned.
func With[T, R any](s Stream[T], fn func(Stream[T]) R) R {
	result := fn(s)
	s.Close()
	return result
}
