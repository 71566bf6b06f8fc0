package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"dc-atlas-api-server/internal/models"
)

var ErrDuplicateEmail = errors.New("store: duplicate email")

// UserStore holds registered accounts in memory. Passwords are stored as
// bcrypt hashes; credential checks live in the handlers.
type UserStore struct {
	mu    sync.RWMutex
	users []models.User
}

func NewUserStore(seed []models.User) *UserStore {
	users := make([]models.User, len(seed))
	copy(users, seed)
	return &UserStore{users: users}
}

func (s *UserStore) List() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *UserStore) GetByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *UserStore) GetByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *UserStore) Create(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.ID == u.ID {
			return ErrDuplicateID
		}
		if strings.EqualFold(existing.Email, u.Email) {
			return ErrDuplicateEmail
		}
	}
	s.users = append(s.users, u)
	return nil
}

// Replace swaps the entire account record at id, preserving the stored
// password hash when the replacement carries none.
func (s *UserStore) Replace(id string, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.users {
		if existing.ID == id {
			u.ID = id
			if u.Password == "" {
				u.Password = existing.Password
			}
			s.users[i] = u
			return nil
		}
	}
	return ErrNotFound
}

func (s *UserStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.users {
		if existing.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// TouchLogin stamps the account's last login time.
func (s *UserStore) TouchLogin(id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].LastLogin = &at
			return nil
		}
	}
	return ErrNotFound
}

func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
