package constants

import "time"

// Session constants
const (
	// SessionSlotFile is the fixed storage slot for the serialized current user
	SessionSlotFile = "pulse_user.json"
)

// Social graph constants
const (
	// DefaultSuggestionLimit is the number of suggested users returned when
	// the caller does not ask for a specific count
	DefaultSuggestionLimit = 5
)

// Auth constants
const (
	// TokenTTL is the lifetime of issued bearer tokens
	TokenTTL = 24 * time.Hour
)
