package concurrency

import (
	"sync"
)

// LockManager handles named locks. Every mutating operation on an account
// runs under that account's lock, so concurrent requests for the same player
// are applied one at a time.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// LockAccount acquires the lock for a player and returns the unlock func.
func (lm *LockManager) LockAccount(playerID string) func() {
	mu := lm.GetLock(playerID)
	mu.Lock()
	return mu.Unlock
}
