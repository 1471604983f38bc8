package schedule

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Planning(t *testing.T) {
	s := NewSchedule()

	fired := make(chan struct{}, 10)
	require.NoError(t, s.Planning("@every 1s", func() { fired <- struct{}{} }))

	s.Start()
	defer s.Stop()

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("job was not fired")
	}
}

func Test_Planning_badSpec(t *testing.T) {
	s := NewSchedule()
	assert.Error(t, s.Planning("every day", func() {}))
}

func Test_SkipIfStillRunning(t *testing.T) {
	s := NewSchedule()

	var running, maxRunning atomic.Int32
	require.NoError(t, s.Planning("@every 1s", func() {
		n := running.Add(1)
		if n > maxRunning.Load() {
			maxRunning.Store(n)
		}
		time.Sleep(2500 * time.Millisecond)
		running.Add(-1)
	}))

	s.Start()
	time.Sleep(4 * time.Second)
	s.Stop()

	assert.EqualValues(t, 1, maxRunning.Load())
}
