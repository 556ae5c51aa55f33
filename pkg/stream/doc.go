// Package stream provides a concurrent, lazy sequence abstraction built on
// actor-style mailboxes.
//
// A Stream is a handle to one unbounded mailbox carrying a two-variant
// sentinel protocol: an element, or an end marker. Producers write values
// and eventually close the stream; consumers block on Next until the end
// marker arrives. Reading is destructive: a Stream is not a data structure,
// it is not indexable or replayable, and each successful read permanently
// consumes one element.
//
// Combinators (Map, Filter, Duplicate, Merge) interpose spawned pipeline
// stages between an input stream and a fresh output stream. Stages are
// always spawned linked: a panic in a user callback is fatal to the program,
// never an error value on the output stream. Terminal operations (Reduce,
// Collect, Each, TryEach, ToSeq) drain a stream in the calling goroutine.
//
// There is no backpressure (writers never block) and no cancellation (a
// read timeout bounds only the wait, the producer keeps running). Both are
// deliberate: buffering is unbounded by design, and abandoning a consumer
// never signals the producer.
package stream
