// Package dream wraps goroutine spawning into linked and unlinked tasks with
// joinable completion handles.
//
// A linked task couples its failure domain to the spawning context: a panic
// inside it is not recovered, and since Go offers no way to terminate a
// single owning goroutine, the panic takes the whole program down. This is
// the fail-fast supervision coupling the library is built around. An
// unlinked task is fully isolated: a panic inside it is recovered and
// reported only to the debug logger.
//
// Async produces a Dream, a handle that resolves exactly once to either a
// value or a crash reason. The Try family of awaits returns errors; the
// plain family is fatal and panics the caller on timeout or crash, mirroring
// the linked philosophy.
package dream

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrTimeout is returned by the Try awaits when the wait bound elapses
// before the task resolves. The task itself keeps running.
var ErrTimeout = errors.New("dream: await timed out")

// ExitError reports that a task terminated abnormally. Reason is the opaque
// value the task panicked with.
type ExitError struct {
	Reason any
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("dream: task exited: %v", e.Reason)
}

// Dream is the completion handle of a task started with Async. It resolves
// exactly once, to either a value or an exit reason.
type Dream[T any] struct {
	done   chan struct{}
	value  T
	reason any
}

var (
	loggerMu sync.RWMutex
	logger   = zap.NewNop()
)

// SetLogger installs a logger for debug events: unlinked task crashes and
// captured async crash reasons. The default is a no-op logger.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func debugLogger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// Spawn starts f as a linked task. There is no handle and no result; a panic
// in f terminates the program.
func Spawn(f func()) {
	go f()
}

// SpawnUnlinked starts f as an isolated task. A panic in f is recovered and
// written to the debug logger; the spawning context is never affected.
func SpawnUnlinked(f func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				debugLogger().Warn("unlinked task crashed",
					zap.Any("reason", r))
			}
		}()
		f()
	}()
}

// Async starts f as a linked, joinable task and returns its handle. A panic
// in f is captured into the handle as the exit reason and surfaces at the
// await: the Try awaits return it as an *ExitError, the fatal awaits
// re-panic with it in the awaiting context. A crashed handle that is never
// awaited is otherwise invisible, so the reason is also written to the
// debug logger.
func Async[T any](f func() T) *Dream[T] {
	d := &Dream[T]{done: make(chan struct{})}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				d.reason = r
				debugLogger().Debug("async task crashed",
					zap.Any("reason", r))
			}
			close(d.done)
		}()
		d.value = f()
	}()
	return d
}

// TryAwaitWithTimeout blocks until d resolves or timeout elapses.
//
// Parameters:
//
//	d: The handle to await.
//	timeout: The maximum time to wait.
//
// Returns:
//
//	T: The task's value, or the zero value on error.
//	error: ErrTimeout if the bound elapsed, an *ExitError if the task
//	crashed, nil otherwise.
func TryAwaitWithTimeout[T any](d *Dream[T], timeout time.Duration) (T, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-d.done:
		return d.resolve()
	case <-timer.C:
		var zero T
		return zero, ErrTimeout
	}
}

// TryAwait blocks without bound until d resolves.
//
// Returns:
//
//	T: The task's value, or the zero value on error.
//	error: An *ExitError if the task crashed, nil otherwise.
func TryAwait[T any](d *Dream[T]) (T, error) {
	<-d.done
	return d.resolve()
}

// AwaitWithTimeout is the fatal form of TryAwaitWithTimeout: on timeout or
// crash it panics with the error instead of returning it. A handle is meant
// to be awaited fatally at most once; behavior beyond the first resolution
// is outside the contract.
func AwaitWithTimeout[T any](d *Dream[T], timeout time.Duration) T {
	v, err := TryAwaitWithTimeout(d, timeout)
	if err != nil {
		panic(err)
	}
	return v
}

// Await is the fatal form of TryAwait: it blocks without bound and panics
// with an *ExitError if the task crashed.
func Await[T any](d *Dream[T]) T {
	v, err := TryAwait(d)
	if err != nil {
		panic(err)
	}
	return v
}

func (d *Dream[T]) resolve() (T, error) {
	if d.reason != nil {
		var zero T
		return zero, &ExitError{Reason: d.reason}
	}
	return d.value, nil
}
