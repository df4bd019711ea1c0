package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhenders/tock/internal/clock"
)

func TestSystem_ReturnsCurrentTime(t *testing.T) {
	before := time.Now()
	now := clock.System.Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestMock_TimeOnlyMovesOnAdvance(t *testing.T) {
	fixed := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	m := clock.NewMock(fixed)

	assert.Equal(t, fixed, m.Now())
	assert.Equal(t, fixed, m.Now())

	m.Advance(time.Hour)
	assert.Equal(t, fixed.Add(time.Hour), m.Now())
}

func TestMock_Set(t *testing.T) {
	m := clock.NewMock(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	target := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	m.Set(target)
	assert.Equal(t, target, m.Now())
}
