package stream

import (
	"github.com/RyanBrewer317/glimmer/pkg/dream"
)

// ============================================================================
// SOURCE OPERATORS
// ============================================================================

// FromList returns a stream that will carry every element of items in order,
// followed by the end marker. The stream is returned immediately; the writes
// happen in a linked spawned task, so the caller never blocks here.
//
// Parameters:
//
//	items: The elements to stream, in order.
//
// Returns:
//
//	Stream[T]: A stream being populated concurrently.
func FromList[T any](items []T) Stream[T] {
	out := New[T]()
	dream.Spawn(func() {
		for _, item := range items {
			out.Write(item)
		}
		out.Close()
	})
	return out
}

// Generator creates a stream from a generator function driven by
// continuation passing. The generator receives a yield callback that writes
// one value and a stop callback that writes the end marker.
//
// The generator runs synchronously in the calling goroutine: Generator
// returns only after gen itself returns, and introduces no concurrency of
// its own. A caller that wants a concurrent producer wraps the call in a
// spawn explicitly.
//
// Parameters:
//
//	gen: A function producing data through its yield and stop callbacks.
//
// Returns:
//
//	Stream[T]: The stream gen wrote into.
func Generator[T any](gen func(yield func(T), stop func())) Stream[T] {
	out := New[T]()
	gen(out.Write, out.Close)
	return out
}
