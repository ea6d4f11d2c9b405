package repository

import (
	"context"
	"sync"

	"github.com/ecosnap/ecosnap-backend/internal/model"
)

// In-memory implementations for single-device mode (no DB configured) and
// for tests. Records are deep-copied on the way in and out so callers hold
// their own value, matching the read-transform-write-whole contract.

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*model.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]*model.User)}
}

func copyUser(u *model.User) *model.User {
	cp := *u
	cp.Trees = append([]model.Tree(nil), u.Trees...)
	cp.CategoryCounts = append([]model.CategoryCount(nil), u.CategoryCounts...)
	return &cp
}

func (r *memoryUserRepository) Get(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return copyUser(u), nil
}

func (r *memoryUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Username] = copyUser(user)
	return nil
}

func (r *memoryUserRepository) Save(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Username] = copyUser(user)
	return nil
}

type memorySessionRepository struct {
	mu       sync.Mutex
	username string
}

func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{}
}

func (r *memorySessionRepository) Current(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.username == "" {
		return "", ErrNoSession
	}
	return r.username, nil
}

func (r *memorySessionRepository) Set(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.username = username
	return nil
}

func (r *memorySessionRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.username = ""
	return nil
}

type memoryLedgerRepository struct {
	mu     sync.Mutex
	cap    int
	hashes map[string][]string
}

func NewMemoryLedgerRepository(capacity int) LedgerRepository {
	if capacity <= 0 {
		capacity = 500
	}
	return &memoryLedgerRepository{cap: capacity, hashes: make(map[string][]string)}
}

func (r *memoryLedgerRepository) Has(ctx context.Context, username, fingerprint string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range r.hashes[username] {
		if h == fingerprint {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryLedgerRepository) Add(ctx context.Context, username, fingerprint string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.hashes[username]
	for _, h := range list {
		if h == fingerprint {
			return nil
		}
	}
	list = append(list, fingerprint)
	if len(list) > r.cap {
		list = list[len(list)-r.cap:]
	}
	r.hashes[username] = list
	return nil
}
