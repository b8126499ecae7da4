package social

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"pulse/backend/pkg/errors"
)

// followEdge is a directed follow relationship from follower to followee.
// The edge set is the single authoritative source for the social graph;
// per-user follower/following lists are always derived from it.
type followEdge struct {
	FollowerID string
	FolloweeID string
}

// Store is the in-memory identity store and follow graph
type Store struct {
	mu      sync.RWMutex
	users   map[string]*User
	byEmail map[string]string         // email -> user ID, case-sensitive
	edges   map[followEdge]time.Time  // edge -> creation time
}

// NewStore creates an empty identity store
func NewStore() *Store {
	return &Store{
		users:   make(map[string]*User),
		byEmail: make(map[string]string),
		edges:   make(map[followEdge]time.Time),
	}
}

// ============================================================================
// User Operations
// ============================================================================

// CreateUser inserts a new user with role "user" and no relationships.
// Email uniqueness is a case-sensitive exact match.
func (s *Store) CreateUser(email, name, secret string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return nil, errors.DuplicateEmail(email)
	}

	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New().String(),
		Email:     email,
		Secret:    secret,
		Name:      name,
		Role:      RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.users[user.ID] = user
	s.byEmail[email] = user.ID

	return s.viewLocked(user), nil
}

// UserByID returns a copy of the user with derived relationship lists
func (s *Store) UserByID(id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, errors.NotFound("user", id)
	}
	return s.viewLocked(user), nil
}

// UserByEmail returns a copy of the user registered under the exact email
func (s *Store) UserByEmail(email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, errors.NotFound("user", email)
	}
	return s.viewLocked(s.users[id]), nil
}

// Exists reports whether a user with the given ID is registered
func (s *Store) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[id]
	return ok
}

// AllUsers returns copies of every user, oldest registration first
func (s *Store) AllUsers() []*User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, s.viewLocked(u))
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID < users[j].ID
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users
}

// SetRole changes a user's role. Used by seeding; there is no self-service
// promotion path.
func (s *Store) SetRole(id string, role Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return errors.NotFound("user", id)
	}
	user.Role = role
	user.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateProfile replaces the mutable profile attributes of a user
func (s *Store) UpdateProfile(id, name, bio, avatar, specialty, location string, yearsOfExperience int) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, errors.NotFound("user", id)
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.EmptyContent("name")
	}

	user.Name = name
	user.Bio = bio
	user.Avatar = avatar
	user.Specialty = specialty
	user.Location = location
	user.YearsOfExperience = yearsOfExperience
	user.UpdatedAt = time.Now().UTC()

	return s.viewLocked(user), nil
}

// ============================================================================
// Follow Graph Operations
// ============================================================================

// Follow inserts a follow edge from actor to target. Following yourself or
// someone you already follow is a no-op, not an error. The single edge write
// keeps both derived lists consistent with no partially applied state.
func (s *Store) Follow(actorID, targetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[actorID]; !ok {
		return errors.NotFound("user", actorID)
	}
	if _, ok := s.users[targetID]; !ok {
		return errors.NotFound("user", targetID)
	}
	if actorID == targetID {
		return nil
	}

	edge := followEdge{FollowerID: actorID, FolloweeID: targetID}
	if _, exists := s.edges[edge]; exists {
		return nil
	}
	s.edges[edge] = time.Now().UTC()
	return nil
}

// Unfollow removes the follow edge from actor to target, a no-op when absent
func (s *Store) Unfollow(actorID, targetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[actorID]; !ok {
		return errors.NotFound("user", actorID)
	}
	if _, ok := s.users[targetID]; !ok {
		return errors.NotFound("user", targetID)
	}

	delete(s.edges, followEdge{FollowerID: actorID, FolloweeID: targetID})
	return nil
}

// IsFollowing reports whether follower currently follows followee
func (s *Store) IsFollowing(followerID, followeeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.edges[followEdge{FollowerID: followerID, FolloweeID: followeeID}]
	return ok
}

// FollowersOf returns the IDs of users following the given user, in the
// order the follow edges were created
func (s *Store) FollowersOf(id string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.followersOfLocked(id)
}

// FollowingOf returns the IDs of users the given user follows, in the
// order the follow edges were created
func (s *Store) FollowingOf(id string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.followingOfLocked(id)
}

type edgeRef struct {
	id string
	at time.Time
}

func (s *Store) followersOfLocked(id string) []string {
	refs := make([]edgeRef, 0)
	for edge, at := range s.edges {
		if edge.FolloweeID == id {
			refs = append(refs, edgeRef{id: edge.FollowerID, at: at})
		}
	}
	return sortEdgeRefs(refs)
}

func (s *Store) followingOfLocked(id string) []string {
	refs := make([]edgeRef, 0)
	for edge, at := range s.edges {
		if edge.FollowerID == id {
			refs = append(refs, edgeRef{id: edge.FolloweeID, at: at})
		}
	}
	return sortEdgeRefs(refs)
}

func sortEdgeRefs(refs []edgeRef) []string {
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].at.Equal(refs[j].at) {
			return refs[i].id < refs[j].id
		}
		return refs[i].at.Before(refs[j].at)
	})
	ids := make([]string, len(refs))
	for i, ref := range refs {
		ids[i] = ref.id
	}
	return ids
}

// viewLocked builds a caller-owned copy of the user with relationship lists
// derived from the edge set. Callers must hold at least a read lock.
func (s *Store) viewLocked(u *User) *User {
	view := *u
	view.Followers = s.followersOfLocked(u.ID)
	view.Following = s.followingOfLocked(u.ID)
	return &view
}
