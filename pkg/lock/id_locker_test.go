package lock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLockSerializesSameID(t *testing.T) {
	locker := NewIDLocker()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := locker.WithLock(1, func() error {
				counter++
				return nil
			})
			require.NoError(t, err)
		}()
	}

	wg.Wait()
	assert.Equal(t, 100, counter)
}

func TestWithLockDifferentIDsDoNotBlock(t *testing.T) {
	locker := NewIDLocker()

	locker.Acquire(1)
	defer locker.Release(1)

	done := make(chan struct{})
	go func() {
		_ = locker.WithLock(2, func() error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("lock on a different id blocked")
	}
}

func TestWithLockReturnsCallbackError(t *testing.T) {
	locker := NewIDLocker()

	err := locker.WithLock(1, func() error { return assert.AnError })
	require.ErrorIs(t, err, assert.AnError)
}
