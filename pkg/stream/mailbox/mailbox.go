// Package mailbox provides the unbounded FIFO queue underlying streams.
//
// A Mailbox is the actor-style channel primitive: any number of senders may
// enqueue without ever blocking, and a receiver blocks for up to a timeout
// waiting for the next item. Ordering is FIFO with respect to a single
// sender; interleaving across concurrent senders is unspecified.
package mailbox

import (
	"sync"
	"time"
)

// Mailbox is an unbounded multi-producer queue with timed blocking receive.
// Storage is a growable power-of-2 ring, so steady-state operation does not
// shift elements or allocate.
type Mailbox[T any] struct {
	mu     sync.Mutex
	buffer []T
	mask   uint64
	head   uint64
	tail   uint64
	// wakeup has capacity 1; senders signal it without blocking and
	// receivers wait on it alongside their timer.
	wakeup chan struct{}
}

const initialCapacity = 16

// New creates an empty Mailbox.
//
// Returns:
//
//	*Mailbox[T]: A mailbox ready for concurrent senders and receivers.
func New[T any]() *Mailbox[T] {
	return &Mailbox[T]{
		buffer: make([]T, initialCapacity),
		mask:   initialCapacity - 1,
		wakeup: make(chan struct{}, 1),
	}
}

// Send enqueues an item. It never blocks the caller: the buffer grows as
// needed, so a lagging receiver translates into memory growth, not
// backpressure.
//
// Parameters:
//
//	item: The item to enqueue.
func (m *Mailbox[T]) Send(item T) {
	m.mu.Lock()
	if m.tail-m.head > m.mask {
		m.grow()
	}
	m.buffer[m.tail&m.mask] = item
	m.tail++
	m.mu.Unlock()

	m.notify()
}

// Receive dequeues the next item, blocking for up to timeout if the mailbox
// is empty. The second return value is false only if the timeout elapsed
// with no item available.
//
// Parameters:
//
//	timeout: The maximum time to wait for an item.
//
// Returns:
//
//	T: The dequeued item, or the zero value on timeout.
//	bool: Whether an item was dequeued.
func (m *Mailbox[T]) Receive(timeout time.Duration) (T, bool) {
	if item, ok := m.poll(); ok {
		return item, true
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-m.wakeup:
			if item, ok := m.poll(); ok {
				return item, true
			}
			// Another receiver won the race; keep waiting on the
			// remaining time.
		case <-timer.C:
			var zero T
			return zero, false
		}
	}
}

// Len reports the number of items currently queued.
func (m *Mailbox[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int(m.tail - m.head)
}

// poll removes the head item without waiting.
func (m *Mailbox[T]) poll() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.head == m.tail {
		var zero T
		return zero, false
	}

	slot := &m.buffer[m.head&m.mask]
	item := *slot
	var zero T
	*slot = zero // release the reference for GC
	m.head++

	if m.head != m.tail {
		// Items remain: re-arm the wakeup so a second waiting
		// receiver is not stranded by a collapsed signal.
		m.notify()
	}
	return item, true
}

// notify signals the wakeup channel without blocking. A full channel means a
// signal is already pending, which is sufficient.
func (m *Mailbox[T]) notify() {
	select {
	case m.wakeup <- struct{}{}:
	default:
	}
}

// grow doubles the ring, unwrapping items into the new buffer in FIFO order.
// Caller must hold mu.
func (m *Mailbox[T]) grow() {
	next := make([]T, len(m.buffer)*2)
	n := m.tail - m.head
	for i := uint64(0); i < n; i++ {
		next[i] = m.buffer[(m.head+i)&m.mask]
	}
	m.buffer = next
	m.mask = uint64(len(next) - 1)
	m.head = 0
	m.tail = n
}
