package model

import "time"

// User represents a registered member of the group.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Roles.
const (
	RoleWardrobeKeeper = "wardrobe_keeper"
	RoleDancer         = "dancer"
	RoleMusician       = "musician"
)

// ValidRole checks if role is one of the allowed roles.
func ValidRole(role string) bool {
	switch role {
	case RoleWardrobeKeeper, RoleDancer, RoleMusician:
		return true
	}
	return false
}
