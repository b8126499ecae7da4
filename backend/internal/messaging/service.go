package messaging

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"pulse/backend/internal/social"
	"pulse/backend/pkg/errors"
	"pulse/backend/pkg/logger"
)

// Service holds the in-memory message log and implements conversation
// threading and unread accounting. Messages are append-only; the only
// mutation after creation is the read flag.
type Service struct {
	mu       sync.RWMutex
	messages []*Message // creation order
	users    *social.Store
	logger   *zap.Logger
}

// NewService creates an empty messaging service sharing the identity store
func NewService(users *social.Store) *Service {
	return &Service{
		messages: []*Message{},
		users:    users,
		logger:   logger.Get(),
	}
}

// Send delivers a message from sender to receiver. Self-messaging is
// rejected and new messages always start unread.
func (s *Service) Send(senderID, receiverID, content string) (*Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.EmptyContent("message content")
	}
	if senderID == receiverID {
		return nil, errors.NotAuthorized(senderID, "message themselves")
	}
	if !s.users.Exists(senderID) {
		return nil, errors.NotFound("user", senderID)
	}
	if !s.users.Exists(receiverID) {
		return nil, errors.NotFound("user", receiverID)
	}

	message := &Message{
		ID:         uuid.New().String(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Read:       false,
		CreatedAt:  time.Now().UTC(),
	}

	s.mu.Lock()
	s.messages = append(s.messages, message)
	s.mu.Unlock()

	s.logger.Debug("Message sent",
		zap.String("message_id", message.ID),
		zap.String("sender_id", senderID),
		zap.String("receiver_id", receiverID),
	)

	clone := *message
	return &clone, nil
}

// Conversation returns all messages between the unordered pair (a, b) in
// send order, oldest first
func (s *Service) Conversation(userA, userB string) []*Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conversation := []*Message{}
	for _, message := range s.messages {
		if message.Between(userA, userB) {
			clone := *message
			conversation = append(conversation, &clone)
		}
	}
	return conversation
}

// UnreadCount counts unread messages sent by fromUserID to ownerID
func (s *Service) UnreadCount(ownerID, fromUserID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, message := range s.messages {
		if message.SenderID == fromUserID && message.ReceiverID == ownerID && !message.Read {
			count++
		}
	}
	return count
}

// MarkRead marks every message from fromUserID to ownerID as read. Only the
// receiving side of a conversation can flip the flag.
func (s *Service) MarkRead(ownerID, fromUserID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, message := range s.messages {
		if message.SenderID == fromUserID && message.ReceiverID == ownerID {
			message.Read = true
		}
	}
}

// ContactsOf returns the distinct IDs of everyone the user has exchanged
// messages with, ordered by first contact
func (s *Service) ContactsOf(userID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	contacts := []string{}
	for _, message := range s.messages {
		var other string
		switch userID {
		case message.SenderID:
			other = message.ReceiverID
		case message.ReceiverID:
			other = message.SenderID
		default:
			continue
		}
		if !seen[other] {
			seen[other] = true
			contacts = append(contacts, other)
		}
	}
	return contacts
}
