package social

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"pulse/backend/pkg/errors"
	"pulse/backend/pkg/logger"
)

// Service implements the social-graph operations over an identity store
type Service struct {
	store  *Store
	mu     sync.Mutex // protects rng, which is not safe for concurrent use
	rng    *rand.Rand
	logger *zap.Logger
}

// NewService creates a service with a time-seeded random source for
// suggestion sampling
func NewService(store *Store) *Service {
	return NewServiceWithRand(store, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewServiceWithRand creates a service with an injected random source so
// tests can make suggestion sampling deterministic
func NewServiceWithRand(store *Store, rng *rand.Rand) *Service {
	return &Service{
		store:  store,
		rng:    rng,
		logger: logger.Get(),
	}
}

// Store exposes the underlying identity store for read projections
func (s *Service) Store() *Store {
	return s.store
}

// Register creates a new user account. Email uniqueness is case-sensitive.
func (s *Service) Register(email, name, secret string) (*User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, errors.EmptyContent("email")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.EmptyContent("name")
	}
	if secret == "" {
		return nil, errors.EmptyContent("password")
	}

	user, err := s.store.CreateUser(email, name, secret)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID))
	return user, nil
}

// Authenticate checks the stored credentials with an exact match.
// Secret hashing at rest is deliberately out of scope here; the comparison
// contract is exact match.
func (s *Service) Authenticate(email, secret string) (*User, error) {
	user, err := s.store.UserByEmail(email)
	if err != nil {
		return nil, errors.InvalidCredentials()
	}
	if user.Secret != secret {
		return nil, errors.InvalidCredentials()
	}
	return user, nil
}

// User returns the user with the given ID
func (s *Service) User(id string) (*User, error) {
	return s.store.UserByID(id)
}

// Follow makes actor follow target. Self-follows and duplicate follows are
// silent no-ops.
func (s *Service) Follow(actorID, targetID string) error {
	return s.store.Follow(actorID, targetID)
}

// Unfollow removes actor's follow of target, a no-op when not following
func (s *Service) Unfollow(actorID, targetID string) error {
	return s.store.Unfollow(actorID, targetID)
}

// Search matches the query case-insensitively against name, specialty and
// location. An empty query returns no users.
func (s *Service) Search(query string) []*User {
	if query == "" {
		return []*User{}
	}

	lowerQuery := strings.ToLower(query)
	matches := []*User{}
	for _, user := range s.store.AllUsers() {
		if strings.Contains(strings.ToLower(user.Name), lowerQuery) ||
			strings.Contains(strings.ToLower(user.Specialty), lowerQuery) ||
			strings.Contains(strings.ToLower(user.Location), lowerQuery) {
			matches = append(matches, user)
		}
	}
	return matches
}

// Suggest returns a uniform random sample of users the given user does not
// follow yet, excluding the user themselves. Repeated calls may return
// different results.
func (s *Service) Suggest(forUserID string, limit int) ([]*User, error) {
	if !s.store.Exists(forUserID) {
		return nil, errors.NotFound("user", forUserID)
	}
	if limit <= 0 {
		return []*User{}, nil
	}

	candidates := []*User{}
	for _, user := range s.store.AllUsers() {
		if user.ID == forUserID || s.store.IsFollowing(forUserID, user.ID) {
			continue
		}
		candidates = append(candidates, user)
	}

	s.mu.Lock()
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	s.mu.Unlock()

	if limit > len(candidates) {
		limit = len(candidates)
	}
	return candidates[:limit], nil
}
