package dream

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncAwaitReturnsValue(t *testing.T) {
	d := Async(func() int {
		return 42
	})
	assert.Equal(t, 42, Await(d))
}

func TestTryAwaitReturnsValue(t *testing.T) {
	d := Async(func() string {
		time.Sleep(10 * time.Millisecond)
		return "done"
	})

	v, err := TryAwait(d)
	require.NoError(t, err)
	assert.Equal(t, "done", v)
}

func TestTryAwaitWithTimeoutTimesOut(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	d := Async(func() int {
		<-block
		return 0
	})

	_, err := TryAwaitWithTimeout(d, 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestTryAwaitReportsCrashAsExit(t *testing.T) {
	d := Async(func() int {
		panic("boom")
	})

	_, err := TryAwait(d)
	var exit *ExitError
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, "boom", exit.Reason)
}

func TestAwaitIsFatalOnCrash(t *testing.T) {
	d := Async(func() int {
		panic(errors.New("bad"))
	})

	assert.PanicsWithError(t, (&ExitError{Reason: errors.New("bad")}).Error(), func() {
		Await(d)
	})
}

func TestAwaitWithTimeoutIsFatalOnTimeout(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	d := Async(func() int {
		<-block
		return 0
	})

	assert.Panics(t, func() {
		AwaitWithTimeout(d, 20*time.Millisecond)
	})
}

func TestSpawnRunsConcurrently(t *testing.T) {
	done := make(chan struct{})
	Spawn(func() {
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("spawned task never ran")
	}
}

func TestSpawnUnlinkedIsolatesCrash(t *testing.T) {
	// A panic in an unlinked task must not disturb this test. Verify the
	// crash is swallowed and later tasks still run.
	crashed := make(chan struct{})
	SpawnUnlinked(func() {
		defer close(crashed)
		panic("isolated")
	})
	<-crashed

	var ran atomic.Bool
	done := make(chan struct{})
	SpawnUnlinked(func() {
		ran.Store(true)
		close(done)
	})
	<-done
	assert.True(t, ran.Load())
}
