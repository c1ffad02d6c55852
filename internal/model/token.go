package model

import "time"

// TokenStatus is the lifecycle state of an invite token.
type TokenStatus string

const (
	TokenActive  TokenStatus = "active"
	TokenUsed    TokenStatus = "used"
	TokenRevoked TokenStatus = "revoked"
)

// InviteToken is a single-use code minted by an admin that admits one
// candidate to one assessment. A token is consumed exactly once, when the
// candidate's submission is finalized (one report per token use).
type InviteToken struct {
	ID           string      `json:"id" bson:"_id,omitempty"`
	Code         string      `json:"code" bson:"code"`
	AssessmentID string      `json:"assessmentId" bson:"assessmentId"`
	IssuedBy     string      `json:"issuedBy" bson:"issuedBy"`
	Status       TokenStatus `json:"status" bson:"status"`
	UsedBy       string      `json:"usedBy,omitempty" bson:"usedBy,omitempty"`
	UsedAt       *time.Time  `json:"usedAt,omitempty" bson:"usedAt,omitempty"`
	CreatedAt    time.Time   `json:"createdAt" bson:"createdAt"`
}
