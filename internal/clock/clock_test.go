package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)

func TestFakeFiresInDeadlineOrder(t *testing.T) {
	t.Parallel()

	c := NewFake(epoch)

	var fired []string
	c.AfterFunc(3*time.Second, func() { fired = append(fired, "three") })
	c.AfterFunc(time.Second, func() { fired = append(fired, "one") })
	c.AfterFunc(time.Second, func() { fired = append(fired, "one-bis") })

	c.Advance(999 * time.Millisecond)
	assert.Empty(t, fired)
	assert.Equal(t, 3, c.Pending())

	c.Advance(time.Millisecond)
	assert.Equal(t, []string{"one", "one-bis"}, fired)

	c.Advance(5 * time.Second)
	assert.Equal(t, []string{"one", "one-bis", "three"}, fired)
	assert.Equal(t, epoch.Add(6*time.Second), c.Now())
	assert.Zero(t, c.Pending())
}

func TestFakeStop(t *testing.T) {
	t.Parallel()

	c := NewFake(epoch)

	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Advance(time.Minute)
	assert.False(t, fired)
}

func TestFakeChainedTimers(t *testing.T) {
	t.Parallel()

	c := NewFake(epoch)

	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			c.AfterFunc(time.Second, tick)
		}
	}
	c.AfterFunc(time.Second, tick)

	c.Advance(10 * time.Second)
	assert.Equal(t, 3, count)
}

func TestScopeCancel(t *testing.T) {
	t.Parallel()

	c := NewFake(epoch)
	s := NewScope(c)

	fired := 0
	s.AfterFunc(time.Second, func() { fired++ })
	s.AfterFunc(2*time.Second, func() { fired++ })
	assert.Equal(t, 2, s.Pending())

	s.Cancel()
	assert.Zero(t, s.Pending())

	c.Advance(time.Minute)
	assert.Zero(t, fired)

	s.AfterFunc(time.Second, func() { fired++ })
	c.Advance(time.Second)
	assert.Equal(t, 1, fired)
	assert.Zero(t, s.Pending())
}

func TestScopeWithRealClock(t *testing.T) {
	t.Parallel()

	s := NewScope(Real())

	done := make(chan struct{})
	s.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}
