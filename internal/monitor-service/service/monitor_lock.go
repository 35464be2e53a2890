package service

import "sync"

// monitorLocks hands out one mutex per monitor id and drops it once nobody holds or waits for it.
type monitorLocks struct {
	mu    sync.Mutex
	locks map[string]*monitorLock
}

type monitorLock struct {
	sync.Mutex
	refs int
}

func newMonitorLocks() *monitorLocks {
	return &monitorLocks{locks: map[string]*monitorLock{}}
}

// lock blocks until the caller owns monitorID and returns the matching unlock.
func (l *monitorLocks) lock(monitorID string) func() {
	l.mu.Lock()
	ml, ok := l.locks[monitorID]
	if !ok {
		ml = &monitorLock{}
		l.locks[monitorID] = ml
	}
	ml.refs++
	l.mu.Unlock()

	ml.Lock()
	return func() {
		ml.Unlock()
		l.mu.Lock()
		ml.refs--
		if ml.refs == 0 {
			delete(l.locks, monitorID)
		}
		l.mu.Unlock()
	}
}

func (l *monitorLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
