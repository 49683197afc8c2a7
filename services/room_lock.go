package services

import "sync"

// RoomLocks serializes the check-then-act sequence of booking mutations per
// room. Two concurrent requests for the same room could otherwise both pass
// the overlap scan against a stale read before either commits; holding the
// room's mutex for the duration of guard checks plus the write transaction
// closes that race within the process. Entries are reference-counted and
// dropped when the last waiter releases, so the map only holds rooms with
// in-flight mutations.
type RoomLocks struct {
	mu    sync.Mutex
	locks map[uint]*roomMutex
}

type roomMutex struct {
	mu      sync.Mutex
	waiters int
}

func NewRoomLocks() *RoomLocks {
	return &RoomLocks{locks: make(map[uint]*roomMutex)}
}

// Lock acquires the mutex for roomID and returns its unlock function.
func (r *RoomLocks) Lock(roomID uint) func() {
	r.mu.Lock()
	m, ok := r.locks[roomID]
	if !ok {
		m = &roomMutex{}
		r.locks[roomID] = m
	}
	m.waiters++
	r.mu.Unlock()

	m.mu.Lock()
	return func() {
		m.mu.Unlock()

		r.mu.Lock()
		m.waiters--
		if m.waiters == 0 {
			delete(r.locks, roomID)
		}
		r.mu.Unlock()
	}
}
