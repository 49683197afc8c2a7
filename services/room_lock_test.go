package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoomLocksSerializeSameRoom(t *testing.T) {
	locks := NewRoomLocks()

	const workers = 20
	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock(1)
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestRoomLocksIndependentRooms(t *testing.T) {
	locks := NewRoomLocks()

	unlock1 := locks.Lock(1)
	defer unlock1()

	// A different room must not block.
	done := make(chan struct{})
	go func() {
		unlock2 := locks.Lock(2)
		unlock2()
		close(done)
	}()
	<-done
}

func TestRoomLocksReentryAfterUnlock(t *testing.T) {
	locks := NewRoomLocks()

	unlock := locks.Lock(5)
	unlock()

	unlock = locks.Lock(5)
	unlock()
}

func TestRoomLocksDropIdleEntries(t *testing.T) {
	locks := NewRoomLocks()

	unlockA := locks.Lock(1)
	unlockB := locks.Lock(2)

	locks.mu.Lock()
	assert.Len(t, locks.locks, 2)
	locks.mu.Unlock()

	unlockA()
	unlockB()

	locks.mu.Lock()
	assert.Empty(t, locks.locks)
	locks.mu.Unlock()
}

func TestRoomLocksKeepEntryWhileContended(t *testing.T) {
	locks := NewRoomLocks()

	unlock := locks.Lock(1)

	acquired := make(chan func())
	go func() {
		acquired <- locks.Lock(1)
	}()

	// Second waiter is registered before the holder releases; the entry
	// must survive the first unlock.
	for {
		locks.mu.Lock()
		m := locks.locks[1]
		waiting := m != nil && m.waiters == 2
		locks.mu.Unlock()
		if waiting {
			break
		}
		time.Sleep(time.Millisecond)
	}

	unlock()
	unlock2 := <-acquired

	locks.mu.Lock()
	assert.Len(t, locks.locks, 1)
	locks.mu.Unlock()

	unlock2()

	locks.mu.Lock()
	assert.Empty(t, locks.locks)
	locks.mu.Unlock()
}
