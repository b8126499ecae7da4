package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"pulse/backend/pkg/errors"
	"pulse/backend/pkg/logger"
)

// Completer produces a text completion for a prompt. The production
// implementation performs a network call; tests inject a canned one.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Role distinguishes the two sides of an assistant transcript
type Role string

const (
	// RoleUser marks a message typed by the member
	RoleUser Role = "user"
	// RoleAssistant marks a reply from the completion collaborator
	RoleAssistant Role = "assistant"
)

// Message is one entry in a user's assistant transcript
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

const promptPreamble = "You are the Pulse of Nursing assistant, a helpful AI for a community " +
	"of nursing professionals. Answer questions about nursing practice, continuing education, " +
	"careers, and using the platform. Keep answers concise and practical."

// Service keeps per-user assistant transcripts. Completions run on their own
// goroutine; a collaborator failure never surfaces to the caller and never
// touches any other state.
type Service struct {
	mu          sync.RWMutex
	completer   Completer
	transcripts map[string][]Message
	logger      *zap.Logger
}

// NewService creates an assistant service backed by the given completer
func NewService(completer Completer) *Service {
	return &Service{
		completer:   completer,
		transcripts: make(map[string][]Message),
		logger:      logger.Get(),
	}
}

// Send appends the user's message to their transcript and dispatches the
// completion in the background. The returned message is the user entry; the
// assistant reply appears in the transcript once the collaborator answers.
func (s *Service) Send(userID, content string) (*Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.EmptyContent("message")
	}

	message := Message{
		Role:      RoleUser,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}

	s.mu.Lock()
	s.transcripts[userID] = append(s.transcripts[userID], message)
	s.mu.Unlock()

	go s.respond(context.Background(), userID, content)

	clone := message
	return &clone, nil
}

// respond asks the collaborator and appends its reply. Any failure is logged
// and dropped; "no answer available" is represented by the absence of an
// assistant entry.
func (s *Service) respond(ctx context.Context, userID, content string) {
	reply, err := s.completer.Complete(ctx, buildPrompt(content))
	if err != nil {
		s.logger.Warn("Assistant completion failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return
	}
	if strings.TrimSpace(reply) == "" {
		return
	}

	s.mu.Lock()
	s.transcripts[userID] = append(s.transcripts[userID], Message{
		Role:      RoleAssistant,
		Content:   reply,
		Timestamp: time.Now().UTC(),
	})
	s.mu.Unlock()
}

// History returns a copy of the user's transcript in chronological order
func (s *Service) History(userID string) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Message{}, s.transcripts[userID]...)
}

// Clear discards the user's transcript
func (s *Service) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.transcripts, userID)
}

// buildPrompt frames the user's question with the assistant preamble
func buildPrompt(content string) string {
	return promptPreamble + "\n\nQuestion: " + content
}
