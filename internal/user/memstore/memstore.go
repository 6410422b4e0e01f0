// Package memstore keeps users in process memory. It backs the server when
// no database is configured and the end-to-end tests.
package memstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/ferdiebergado/kubodir/internal/model"
	"github.com/ferdiebergado/kubodir/internal/pkg/id"
	"github.com/ferdiebergado/kubodir/internal/user"
)

var _ user.Repository = (*Store)(nil)

type Store struct {
	mu      sync.RWMutex
	users   map[string]user.User
	byEmail map[string]string
	now     func() time.Time
}

func New() *Store {
	return &Store{
		users:   make(map[string]user.User),
		byEmail: make(map[string]string),
		now:     time.Now,
	}
}

func (s *Store) Create(_ context.Context, params user.CreateUserParams) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[params.Email]; ok {
		return nil, user.ErrDuplicateEmail
	}

	now := s.now().UTC()
	u := user.User{
		Model: model.Model{
			ID:        id.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        params.Email,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		DisplayName:  params.DisplayName,
		Phone:        params.Phone,
		PasswordHash: params.PasswordHash,
		IsActive:     true,
	}

	s.users[u.ID] = u
	s.byEmail[u.Email] = u.ID

	return &u, nil
}

func (s *Store) Find(_ context.Context, userID string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, user.ErrNotFound
	}
	return &u, nil
}

func (s *Store) FindByEmail(_ context.Context, email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.byEmail[email]
	if !ok {
		return nil, user.ErrNotFound
	}

	u := s.users[userID]
	return &u, nil
}

// Save replaces the mutable fields of the stored user. Email and creation time are kept.
func (s *Store) Save(_ context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.users[u.ID]
	if !ok {
		return user.ErrNotFound
	}

	cur.FirstName = u.FirstName
	cur.LastName = u.LastName
	cur.DisplayName = u.DisplayName
	cur.Phone = u.Phone
	cur.IsActive = u.IsActive
	cur.IsVerified = u.IsVerified
	cur.IsPrivileged = u.IsPrivileged
	cur.UpdatedAt = u.UpdatedAt
	cur.LastLoginAt = u.LastLoginAt

	s.users[u.ID] = cur
	*u = cur

	return nil
}

func (s *Store) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return user.ErrNotFound
	}

	delete(s.users, userID)
	delete(s.byEmail, u.Email)

	return nil
}

func (s *Store) Query(_ context.Context, q user.Query) ([]user.User, int, error) {
	s.mu.RLock()
	matched := make([]user.User, 0, len(s.users))
	for _, u := range s.users {
		if q.Matches(&u) {
			matched = append(matched, u)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b user.User) int {
		switch {
		case q.Less(&a, &b):
			return -1
		case q.Less(&b, &a):
			return 1
		default:
			return 0
		}
	})

	total := len(matched)
	if q.Offset >= total {
		return []user.User{}, total, nil
	}

	end := min(q.Offset+q.Limit, total)
	return matched[q.Offset:end], total, nil
}

func (s *Store) Ping(context.Context) error {
	return nil
}
