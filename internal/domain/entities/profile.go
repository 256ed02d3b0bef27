package entities

import "time"

// UserType categorizes marketplace accounts. Only owners and agents may
// create listings; admins drive the review workflow.
type UserType string

const (
	UserTypeBuyer UserType = "buyer"
	UserTypeOwner UserType = "owner"
	UserTypeAgent UserType = "agent"
	UserTypeAdmin UserType = "admin"
)

// Profile mirrors the BaaS profiles table. Authentication itself is handled
// by the identity provider; this record carries the marketplace-facing
// attributes (user type, display name) referenced by listings and analytics.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	UserType  UserType  `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}

// CanListProperties reports whether this account type may submit listings.
func (p Profile) CanListProperties() bool {
	return p.UserType == UserTypeOwner || p.UserType == UserTypeAgent
}
