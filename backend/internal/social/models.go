package social

import "time"

// Role is the access level of a user
type Role string

const (
	// RoleUser is the default role assigned at registration
	RoleUser Role = "user"
	// RoleAdmin marks platform administrators; admin posts become announcements
	RoleAdmin Role = "admin"
)

// User represents a member of the community. Followers and Following are
// derived from the store's follow-edge set and populated on every read; they
// are never the authoritative state.
type User struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Secret            string    `json:"-"`
	Name              string    `json:"name"`
	Role              Role      `json:"role"`
	Bio               string    `json:"bio,omitempty"`
	Avatar            string    `json:"avatar,omitempty"`
	Specialty         string    `json:"specialty,omitempty"`
	Location          string    `json:"location,omitempty"`
	YearsOfExperience int       `json:"yearsOfExperience,omitempty"`
	Followers         []string  `json:"followers"`
	Following         []string  `json:"following"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
