package messaging

import "time"

// Message is a direct message between two distinct users. Messages are
// created unread and flipped by an explicit MarkRead call from the receiver.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Between reports whether the message belongs to the conversation of the
// unordered user pair (a, b)
func (m *Message) Between(a, b string) bool {
	return (m.SenderID == a && m.ReceiverID == b) ||
		(m.SenderID == b && m.ReceiverID == a)
}
