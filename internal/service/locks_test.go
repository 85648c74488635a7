package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocks_SerializesHousehold(t *testing.T) {
	locks := NewLocks()

	counter := 0
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("hh-1")
			defer unlock()
			v := counter
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Zero(t, locks.held(), "released locks are forgotten")
}

func TestLocks_IndependentHouseholds(t *testing.T) {
	locks := NewLocks()

	unlockA := locks.Lock("hh-a")
	done := make(chan struct{})
	go func() {
		unlock := locks.Lock("hh-b")
		unlock()
		close(done)
	}()
	<-done

	assert.Equal(t, 1, locks.held())
	unlockA()
	assert.Zero(t, locks.held())
}
