package command

import (
	"fmt"
	"sync"

	"github.com/ttkcys/milliyetciler/internal/list/domain"
)

// keyedMutex serializes read-modify-write cycles per (user, kind) so
// two concurrent mutations of the same list column cannot lose an
// update. Different users and different kinds proceed in parallel.
type keyedMutex struct {
	locks sync.Map
}

// SharedLocks is the lock table shared by the add and remove handlers.
type SharedLocks struct {
	mu keyedMutex
}

// NewSharedLocks creates an empty lock table
func NewSharedLocks() *SharedLocks {
	return &SharedLocks{}
}

// Lock acquires the mutex for the given key and returns its unlock func.
func (m *keyedMutex) Lock(userID uint, kind domain.ListKind) func() {
	key := fmt.Sprintf("%d:%s", userID, kind)
	entry, _ := m.locks.LoadOrStore(key, &sync.Mutex{})
	mu := entry.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
