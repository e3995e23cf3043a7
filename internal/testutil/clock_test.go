package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClockReturnsPinnedDate(t *testing.T) {
	clock := Date(2024, time.March, 15)

	expected := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, expected, clock.Today())

	// Reads do not advance the clock.
	assert.Equal(t, expected, clock.Today())
}

func TestFixedClockSet(t *testing.T) {
	clock := Date(2024, time.March, 15)

	next := time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)
	clock.Set(next)
	assert.Equal(t, next, clock.Today())
}

func TestFixedClockConcurrentReads(t *testing.T) {
	clock := Date(2024, time.March, 15)
	done := make(chan struct{})

	for i := 0; i < 10; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = clock.Today()
			}
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}
