package model

import "time"

// Role separates administrators from assessment candidates.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCandidate Role = "candidate"
)

// User is an account in the system. Candidates are created when an invite
// token is redeemed; admins are seeded or created by other admins.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"passwordHash,omitempty"`
	Role         Role      `json:"role" bson:"role"`
	FullName     string    `json:"fullName" bson:"fullName"`
	Locale       string    `json:"locale" bson:"locale"` // "en" or "ar"
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}
