package stream

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RyanBrewer317/glimmer/pkg/stream/mailbox"
)

// ============================================================================
// SENTINEL PROTOCOL & CORE TYPE
// ============================================================================

// envelope is the sentinel protocol message: either one element or the end
// marker, never both.
type envelope[T any] struct {
	value T
	end   bool
}

// Stream is a handle to exactly one mailbox of sentinel envelopes. It holds
// no buffer of its own; all buffering lives in the mailbox. Copying the
// struct copies the handle, not the sequence.
type Stream[T any] struct {
	box *mailbox.Mailbox[envelope[T]]
	id  string
}

// New allocates a fresh, empty stream.
//
// Returns:
//
//	Stream[T]: A stream with no values written and no end marker.
func New[T any]() Stream[T] {
	s := Stream[T]{
		box: mailbox.New[envelope[T]](),
		id:  uuid.NewString(),
	}
	debugLogger().Debug("stream created", zap.String("stream", s.id))
	return s
}

// Write enqueues one value. It is fire-and-forget: it never blocks and never
// fails from the caller's perspective. Values written by the same caller
// arrive in write order; interleaving across concurrent writers is
// unspecified.
func (s Stream[T]) Write(v T) {
	s.box.Send(envelope[T]{value: v})
}

// Close enqueues the end marker. It is not idempotent: closing twice
// enqueues two markers, and only the first is meaningful to a sequential
// reader. Writing after Close is a protocol violation left to the caller.
func (s Stream[T]) Close() {
	s.box.Send(envelope[T]{end: true})
	debugLogger().Debug("stream closed", zap.String("stream", s.id))
}

// Next blocks for the next value, bounded by DefaultReceiveTimeout.
//
// The false return collapses two distinct causes: the end marker arrived, or
// the bound elapsed with no envelope at all. The two are deliberately not
// distinguished; a caller that must tell them apart has to arrange its own
// signal. Use NextWithTimeout to tighten the bound.
//
// Returns:
//
//	T: The next value, or the zero value when none was produced.
//	bool: Whether a value was produced.
func (s Stream[T]) Next() (T, bool) {
	return s.NextWithTimeout(DefaultReceiveTimeout)
}

// NextWithTimeout is Next with a caller-supplied bound. The timeout bounds
// only this wait; it does not cancel or signal the producer, which may keep
// writing to the abandoned stream.
func (s Stream[T]) NextWithTimeout(timeout time.Duration) (T, bool) {
	env, ok := s.box.Receive(timeout)
	if !ok {
		debugLogger().Debug("stream receive timed out",
			zap.String("stream", s.id),
			zap.Duration("timeout", timeout))
		var zero T
		return zero, false
	}
	if env.end {
		var zero T
		return zero, false
	}
	return env.value, true
}
