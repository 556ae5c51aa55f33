package stream

import (
	"github.com/RyanBrewer317/glimmer/pkg/dream"
)

// ============================================================================
// TRANSFORMATION OPERATORS
// ============================================================================

// Map applies fn to each element of the input stream, producing a new stream
// of the results in input order. The stage runs as a linked spawned task: it
// drains in to end-of-stream, writes each mapped value, then closes the
// output. A panic in fn is fatal to the program, never an error on the
// output stream.
//
// Parameters:
//
//	in: The input stream. Map consumes it.
//	fn: The function to apply to each element.
//
// Returns:
//
//	Stream[Out]: A new stream of the mapped elements.
func Map[In, Out any](in Stream[In], fn func(In) Out) Stream[Out] {
	out := New[Out]()
	dream.Spawn(func() {
		Each(in, func(v In) {
			out.Write(fn(v))
		})
		out.Close()
	})
	return out
}

// Filter produces a new stream carrying only the elements of the input for
// which keep returns true, in input order. The stage runs as a linked
// spawned task and closes the output at end-of-stream. A panic in keep is
// fatal to the program.
//
// Parameters:
//
//	in: The input stream. Filter consumes it.
//	keep: The predicate selecting elements to pass through.
//
// Returns:
//
//	Stream[T]: A new stream of the passing elements.
func Filter[T any](in Stream[T], keep func(T) bool) Stream[T] {
	out := New[T]()
	dream.Spawn(func() {
		Each(in, func(v T) {
			if keep(v) {
				out.Write(v)
			}
		})
		out.Close()
	})
	return out
}
