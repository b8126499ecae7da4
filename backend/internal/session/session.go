package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"pulse/backend/internal/constants"
	"pulse/backend/internal/social"
	"pulse/backend/pkg/logger"
)

// Store persists the single serialized current-user record, keyed by a fixed
// storage slot. It is written on login and registration and cleared on
// logout; it is the only durable state the core relies on.
type Store struct {
	path   string
	logger *zap.Logger
}

// NewStore creates a session store rooted at the given data directory
func NewStore(dataDir string) *Store {
	return &Store{
		path:   filepath.Join(dataDir, constants.SessionSlotFile),
		logger: logger.Get(),
	}
}

// Save writes the user record to the session slot
func (s *Store) Save(user *social.User) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Load reads the stored user record. A missing slot yields (nil, nil); a
// corrupt slot is cleared and also yields (nil, nil).
func (s *Store) Load() (*social.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var user social.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.logger.Warn("Failed to parse stored session, clearing slot", zap.Error(err))
		_ = s.Clear()
		return nil, nil
	}
	return &user, nil
}

// Clear removes the session slot; clearing an empty slot is a no-op
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
