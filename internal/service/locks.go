package service

import "sync"

// accountLocks serializes every read-transform-write of a user record.
// Confirm, Water, Plant, and the delayed growth commit all write whole
// records, so they must not interleave: a stale copy saved from one path
// would roll back points or stage changes persisted by another.
var accountLocks userLocks

type userLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func (l *userLocks) lock(username string) func() {
	l.mu.Lock()
	if l.m == nil {
		l.m = make(map[string]*sync.Mutex)
	}
	um, ok := l.m[username]
	if !ok {
		um = &sync.Mutex{}
		l.m[username] = um
	}
	l.mu.Unlock()
	um.Lock()
	return um.Unlock
}
