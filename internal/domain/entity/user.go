// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultUserName is used when a phone number verifies without signup metadata.
const DefaultUserName = "User"

// User is an account identified by its phone number. The phone number never
// changes once the account exists.
type User struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Role        Role      `json:"user_type"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// IsBusinessOwner reports whether the user signed up as a business owner.
func (u *User) IsBusinessOwner() bool {
	return u != nil && u.Role == RoleBusinessOwner
}
