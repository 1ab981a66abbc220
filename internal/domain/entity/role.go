// Package entity contains the core business objects of the project.
package entity

// Role represents the type of account a phone number signed up as.
type Role string

const (
	// RoleConsumer is a member of the public looking up businesses.
	RoleConsumer Role = "consumer"
	// RoleBusinessOwner owns and manages one or more businesses.
	RoleBusinessOwner Role = "business_owner"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleConsumer, RoleBusinessOwner:
		return true
	default:
		return false
	}
}

// RoleOrDefault returns r when valid, otherwise RoleConsumer.
func RoleOrDefault(r Role) Role {
	if r.IsValid() {
		return r
	}

	return RoleConsumer
}
