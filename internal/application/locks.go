package application

import (
	"sync"

	"github.com/bnema/verbtrainer/internal/domain"
)

// userLocks hands out one mutex per user id. Entries are never removed, so a
// user who comes back reuses the same mutex.
type userLocks struct {
	mu    sync.Mutex
	locks map[domain.UserID]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: map[domain.UserID]*sync.Mutex{}}
}

func (l *userLocks) forUser(id domain.UserID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	if mu, ok := l.locks[id]; ok {
		return mu
	}

	mu := &sync.Mutex{}
	l.locks[id] = mu
	return mu
}

func (l *userLocks) lock(id domain.UserID) func() {
	mu := l.forUser(id)
	mu.Lock()
	return mu.Unlock
}
