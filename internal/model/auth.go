package model

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are JWT claims for administrator sessions. Role is checked at
// validation time so a token minted for one role never passes the other
// role's middleware.
type AdminClaims struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

// CandidateClaims are JWT claims for candidate sessions, scoped to the
// assessment the invite token admits them to.
type CandidateClaims struct {
	UserID       string `json:"userId"`
	Role         Role   `json:"role"`
	AssessmentID string `json:"assessmentId"`
	TokenID      string `json:"tokenId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for admin login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
}

// RedeemRequest is the request body for redeeming an invite token.
type RedeemRequest struct {
	Code     string `json:"code"`
	FullName string `json:"fullName"`
	Locale   string `json:"locale"`
}

// RedeemResponse is returned after a successful redeem: a candidate session
// token scoped to the invited assessment.
type RedeemResponse struct {
	Token        string `json:"token"`
	UserID       string `json:"userId"`
	AssessmentID string `json:"assessmentId"`
}
