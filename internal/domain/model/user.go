package model

import "time"

// User represents a registered account of the learning platform.
// Password is an opaque credential owned by the store; it must never be
// exposed outside the repository boundary — use Public before returning
// a record to any caller.
type User struct {
	ID        int64
	Email     string
	Password  string
	Name      string
	Role      Role
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicUser is the projection of a User with the credential stripped.
// This is the only user shape that crosses into session state or onto
// the wire.
type PublicUser struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// Public strips the credential from the record.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}
