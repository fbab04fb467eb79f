package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	profileDomain "mattespel/internal/domain/profile"
	"mattespel/internal/domain/user"
	errs "mattespel/internal/errors"
)

// In-memory storages used by tests and local development.

type MemoryUserStorage struct {
	mu    sync.Mutex
	users map[string]user.User
}

func NewMemoryUserStorage() *MemoryUserStorage {
	return &MemoryUserStorage{users: make(map[string]user.User)}
}

func (m *MemoryUserStorage) GetByEmail(_ context.Context, email string) (user.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, true
		}
	}
	return user.User{}, false
}

func (m *MemoryUserStorage) GetByID(_ context.Context, id string) (user.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	return u, ok
}

func (m *MemoryUserStorage) Create(_ context.Context, email, name, passwordHash string) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return user.User{}, errs.ErrUserExists
		}
	}
	now := time.Now()
	newUser := user.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
		PasswordHash: passwordHash,
	}
	m.users[newUser.ID] = newUser
	return newUser, nil
}

type MemorySessionStorage struct {
	mu       sync.Mutex
	sessions map[string]string
}

func NewMemorySessionStorage() *MemorySessionStorage {
	return &MemorySessionStorage{sessions: make(map[string]string)}
}

func (m *MemorySessionStorage) GetUserIDBySession(_ context.Context, token string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	userID, ok := m.sessions[token]
	return userID, ok
}

func (m *MemorySessionStorage) StoreSession(_ context.Context, token, userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = userID
}

func (m *MemorySessionStorage) DeleteSession(_ context.Context, token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[token]; !ok {
		return false
	}
	delete(m.sessions, token)
	return true
}

// MemoryProfileStorage serializes updates with a mutex, which gives the
// same effective guarantee the redis storage provides through WATCH.
type MemoryProfileStorage struct {
	mu       sync.Mutex
	profiles map[string]profileDomain.Profile
}

func NewMemoryProfileStorage() *MemoryProfileStorage {
	return &MemoryProfileStorage{profiles: make(map[string]profileDomain.Profile)}
}

func (m *MemoryProfileStorage) Get(_ context.Context, userID string) (profileDomain.Profile, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userID]
	return p, ok, nil
}

func (m *MemoryProfileStorage) Save(_ context.Context, userID string, p profileDomain.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[userID] = p.Normalize()
	return nil
}

func (m *MemoryProfileStorage) Update(_ context.Context, userID string, mutate func(profileDomain.Profile) (profileDomain.Profile, error)) (profileDomain.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userID]
	if !ok {
		return profileDomain.Profile{}, errs.ErrProfileNotFound
	}
	next, err := mutate(p.Normalize())
	if err != nil {
		return profileDomain.Profile{}, err
	}
	next = next.Normalize()
	m.profiles[userID] = next
	return next, nil
}
