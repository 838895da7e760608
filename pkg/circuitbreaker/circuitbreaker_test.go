package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBroker = errors.New("broker unreachable")

// fakeClock 手动推进的时钟
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newBreaker(t *testing.T) (*CircuitBreaker, *fakeClock, *[]string) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
	cb := New("mq", Config{
		MaxRequests: 2,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(c Counts) bool { return c.ConsecutiveFailures >= 3 },
	})
	cb.now = clock.Now
	cb.resetWindow(clock.Now())

	var transitions []string
	cb.OnStateChange(func(_ string, from, to State) {
		transitions = append(transitions, from.String()+"->"+to.String())
	})
	return cb, clock, &transitions
}

func fail() error { return errBroker }
func succeed() error { return nil }

func TestCircuitBreaker_TripsAfterConsecutiveFailures(t *testing.T) {
	cb, _, _ := newBreaker(t)

	for i := 0; i < 2; i++ {
		assert.ErrorIs(t, cb.Execute(fail), errBroker)
	}
	assert.Equal(t, StateClosed, cb.State())

	// 一次成功会清零连续失败
	require.NoError(t, cb.Execute(succeed))
	assert.Equal(t, uint32(0), cb.Counts().ConsecutiveFailures)

	for i := 0; i < 3; i++ {
		_ = cb.Execute(fail)
	}
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrOpenState)
	assert.False(t, called, "熔断期间不应执行请求")
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	cb, clock, transitions := newBreaker(t)
	for i := 0; i < 3; i++ {
		_ = cb.Execute(fail)
	}

	clock.Advance(31 * time.Second)
	assert.Equal(t, StateHalfOpen, cb.State())

	require.NoError(t, cb.Execute(succeed))
	assert.Equal(t, StateHalfOpen, cb.State(), "需要连续MaxRequests次成功")
	require.NoError(t, cb.Execute(succeed))
	assert.Equal(t, StateClosed, cb.State())

	assert.Equal(t, []string{"CLOSED->OPEN", "OPEN->HALF_OPEN", "HALF_OPEN->CLOSED"}, *transitions)
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb, clock, _ := newBreaker(t)
	for i := 0; i < 3; i++ {
		_ = cb.Execute(fail)
	}
	clock.Advance(31 * time.Second)

	_ = cb.Execute(fail)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_HalfOpenLimitsProbes(t *testing.T) {
	cb, clock, _ := newBreaker(t)
	for i := 0; i < 3; i++ {
		_ = cb.Execute(fail)
	}
	clock.Advance(31 * time.Second)

	// 探测请求还没返回时，第三个请求被拒绝
	var inner error
	err := cb.Execute(func() error {
		return cb.Execute(func() error {
			inner = cb.Execute(succeed)
			return nil
		})
	})
	require.NoError(t, err)
	assert.ErrorIs(t, inner, ErrOpenState)
}

func TestCircuitBreaker_WindowResets(t *testing.T) {
	cb, clock, _ := newBreaker(t)
	_ = cb.Execute(fail)
	_ = cb.Execute(fail)

	clock.Advance(2 * time.Minute)
	_ = cb.Execute(fail)
	assert.Equal(t, StateClosed, cb.State(), "统计窗口过期后计数清零")
	assert.Equal(t, uint32(1), cb.Counts().ConsecutiveFailures)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "UNKNOWN", State(9).String())
}
