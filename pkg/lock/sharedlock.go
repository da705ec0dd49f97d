// Package lock implements the re-entrant lock shared by every
// ControlledEntity managed by one controller.
//
// C++ Reference: avdeccControlledEntityImpl.hpp::LockInformation
package lock

import "sync"

// Token identifies one logical thread of control for reentrancy
// tracking. Go has no portable, comparable goroutine identifier, so
// callers own a Token (typically one per worker goroutine, held for
// its lifetime) and pass the same Token on every Lock/Unlock pair
// issued from that goroutine. A Token is a *int, compared by pointer
// identity; NewToken allocates one per worker.
type Token = *int

// NewToken allocates a fresh reentrancy token.
func NewToken() Token {
	return new(int)
}

// SharedLock is a counted, owner-tracking re-entrant mutex shared by
// all ControlledEntity instances belonging to one controller. A
// single controller operation frequently touches several entities;
// the orchestrator holds the lock across the whole operation,
// re-enters through per-entity APIs on the same token, and can
// release it in bulk with UnlockAll when it must call out to an
// untrusted observer.
type SharedLock struct {
	mu sync.Mutex // the actual blocking lock

	meta        sync.Mutex // guards owner/lockedCount below
	lockedCount uint32
	owner       Token
}

// New creates an unlocked SharedLock.
func New() *SharedLock {
	return &SharedLock{}
}

// Lock acquires the lock for the given token. If the token already
// owns the lock, the hold count is incremented instead of blocking.
func (l *SharedLock) Lock(token Token) {
	l.meta.Lock()
	if l.owner == token && l.lockedCount > 0 {
		l.lockedCount++
		l.meta.Unlock()
		return
	}
	l.meta.Unlock()

	l.mu.Lock()
	l.meta.Lock()
	l.owner = token
	l.lockedCount = 1
	l.meta.Unlock()
}

// Unlock releases one level of the lock held by token.
// Unlock panics if token does not currently own the lock — a
// programmer error, matching the source's AVDECC_ASSERT discipline.
func (l *SharedLock) Unlock(token Token) {
	l.meta.Lock()
	if !(l.owner == token && l.lockedCount > 0) {
		l.meta.Unlock()
		panic("lock: unlock called by a token that does not hold the lock")
	}
	l.lockedCount--
	releaseMu := l.lockedCount == 0
	if releaseMu {
		l.owner = nil
	}
	l.meta.Unlock()

	if releaseMu {
		l.mu.Unlock()
	}
}

// LockAll re-acquires the lock n times for token. Used to restore
// state previously captured by UnlockAll.
func (l *SharedLock) LockAll(token Token, n uint32) {
	for i := uint32(0); i < n; i++ {
		l.Lock(token)
	}
}

// UnlockAll releases every level of the lock currently held by token
// and returns how many levels were released. UnlockAll panics if
// token does not currently hold the lock.
func (l *SharedLock) UnlockAll(token Token) uint32 {
	if !l.isSelfLocked(token) {
		panic("lock: unlockAll called by a token that does not hold the lock")
	}
	n := l.lockedCount
	for l.isSelfLocked(token) {
		l.Unlock(token)
	}
	return n
}

// IsSelfLocked reports whether token currently owns the lock.
func (l *SharedLock) IsSelfLocked(token Token) bool {
	return l.isSelfLocked(token)
}

func (l *SharedLock) isSelfLocked(token Token) bool {
	l.meta.Lock()
	defer l.meta.Unlock()
	return l.owner == token && l.lockedCount > 0
}

// Guard acquires the lock for token and returns a release function.
// Typical use:
//
//	release := shared.Guard(token)
//	defer release()
func (l *SharedLock) Guard(token Token) func() {
	l.Lock(token)
	return func() { l.Unlock(token) }
}
