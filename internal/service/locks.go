package service

import "sync"

// deskLocks hands out one mutex per desk id. Any check-then-commit sequence
// against a desk (create, block, reserve) runs under that desk's mutex, so
// two concurrent reservations for the same free day cannot both pass the
// conflict check. Entries are created lazily and never removed; the desk
// inventory is small and desks are not deletable.
type deskLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newDeskLocks() *deskLocks {
	return &deskLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *deskLocks) get(deskID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[deskID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[deskID] = m
	}
	return m
}
