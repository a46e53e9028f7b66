package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	assert.True(t, t2.After(t1))
	assert.GreaterOrEqual(t, t2.Sub(t1), 10*time.Millisecond)
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)
	assert.True(t, mock.Now().Equal(startTime))

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	assert.True(t, mock.Now().Equal(newTime))

	mock.Advance(time.Hour)
	mock.Advance(30 * time.Minute)
	assert.True(t, mock.Now().Equal(newTime.Add(90*time.Minute)))
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	start := mock.Now()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, time.Second, mock.Now().Sub(start))
}

func TestFrameClock(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock, 100*time.Millisecond)

	mock.Advance(16 * time.Millisecond)
	dt, now := clock.Tick()
	assert.Equal(t, 16*time.Millisecond, dt)
	assert.Equal(t, mock.Now(), now)

	mock.Advance(time.Second)
	dt, _ = clock.Tick()
	assert.Equal(t, 100*time.Millisecond, dt, "clamped")

	dt, _ = clock.Tick()
	assert.Zero(t, dt)

	mock.SetTime(mock.Now().Add(-time.Minute))
	dt, _ = clock.Tick()
	assert.Zero(t, dt, "clock going backwards yields no time")
}

func TestFrameClockUnclamped(t *testing.T) {
	var provider TimeProvider = NewMockTimeProvider(time.Unix(0, 0))
	clock := NewFrameClock(provider, 0)

	provider.(*MockTimeProvider).Advance(time.Hour)
	dt, _ := clock.Tick()
	assert.Equal(t, time.Hour, dt)
}
