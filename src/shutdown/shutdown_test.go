package shutdown_test

import (
	"simassert/src/shutdown"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitRunsHooksBeforeExiting(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	hookCalls := atomic.Int32{}
	exitCode := -1
	s := shutdown.New(func(code int) {
		assert.Equal(int32(2), hookCalls.Load(), "hooks have to finish before the process exits")
		exitCode = code
	})
	s.Add(func() { hookCalls.Add(1) })
	s.Add(func() { hookCalls.Add(1) })

	s.Exit(0)

	assert.Equal(0, exitCode)
	assert.Equal(int32(2), hookCalls.Load())
}

func TestAbortSkipsHooks(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	hookCalls := atomic.Int32{}
	exitCode := -1
	s := shutdown.New(func(code int) { exitCode = code })
	s.Add(func() { hookCalls.Add(1) })

	s.Abort(1)

	assert.Equal(1, exitCode)
	assert.Equal(int32(0), hookCalls.Load())
}

func TestHooksRunOnce(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	hookCalls := atomic.Int32{}
	s := shutdown.New(func(code int) {})
	s.Add(func() { hookCalls.Add(1) })

	s.ExecuteHooks()
	s.Exit(0)

	assert.Equal(int32(1), hookCalls.Load())
}

func TestLenCountsPendingHooks(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := shutdown.New(func(int) {})
	assert.Equal(0, s.Len())
	s.Add(func() {})
	s.Add(func() {})
	assert.Equal(2, s.Len())

	s.ExecuteHooks()
	assert.Equal(0, s.Len())
}
