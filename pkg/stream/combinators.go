package stream

import (
	"golang.org/x/sync/errgroup"

	"github.com/RyanBrewer317/glimmer/pkg/dream"
)

// ============================================================================
// FAN-OUT / FAN-IN COMBINATORS
// ============================================================================

// Duplicate splits one input stream into two output streams carrying
// structurally identical, identically ordered sequences. One linked spawned
// stage reads the input to exhaustion, writing each element to the first
// output and then the second, and closes both outputs at end-of-stream.
//
// The input is consumed; after Duplicate only the two outputs are readable.
//
// Parameters:
//
//	in: The input stream. Duplicate consumes it.
//
// Returns:
//
//	Stream[T]: The first output stream.
//	Stream[T]: The second output stream.
func Duplicate[T any](in Stream[T]) (Stream[T], Stream[T]) {
	outA := New[T]()
	outB := New[T]()
	dream.Spawn(func() {
		Each(in, func(v T) {
			outA.Write(v)
			outB.Write(v)
		})
		outA.Close()
		outB.Close()
	})
	return outA, outB
}

// Merge combines any number of input streams into one output stream. Each
// input gets its own linked forwarder, so elements from one input keep their
// relative order while interleaving across inputs is unspecified. The output
// closes once every input has ended.
//
// Parameters:
//
//	ins: The input streams. Merge consumes all of them.
//
// Returns:
//
//	Stream[T]: A single stream carrying every element of every input.
func Merge[T any](ins ...Stream[T]) Stream[T] {
	out := New[T]()

	var g errgroup.Group
	for _, in := range ins {
		g.Go(func() error {
			Each(in, out.Write)
			return nil
		})
	}

	// Closer stage: the output ends only when all forwarders have.
	dream.Spawn(func() {
		// Forwarders never return errors; panics in them are fatal.
		_ = g.Wait()
		out.Close()
	})

	return out
}
