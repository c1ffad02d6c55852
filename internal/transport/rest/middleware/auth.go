package middleware

import (
	"context"
	"net/http"
	"strings"

	"qiyada/internal/service"
)

type contextKey string

const (
	AdminIDKey      contextKey = "adminId"
	CandidateIDKey  contextKey = "candidateId"
	AssessmentIDKey contextKey = "assessmentId"
	TokenIDKey      contextKey = "tokenId"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireAdmin validates admin JWT from Authorization header
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateAdminToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), AdminIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireCandidate validates candidate JWT from Authorization header or
// query param
func (m *AuthMiddleware) RequireCandidate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			token = r.URL.Query().Get("token")
		}
		if token == "" {
			http.Error(w, `{"error":"missing authorization"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateCandidateToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, CandidateIDKey, claims.UserID)
		ctx = context.WithValue(ctx, AssessmentIDKey, claims.AssessmentID)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminID extracts admin user ID from context
func GetAdminID(ctx context.Context) string {
	if v := ctx.Value(AdminIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetCandidateID extracts candidate user ID from context
func GetCandidateID(ctx context.Context) string {
	if v := ctx.Value(CandidateIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetAssessmentID extracts the candidate's assessment scope from context
func GetAssessmentID(ctx context.Context) string {
	if v := ctx.Value(AssessmentIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetTokenID extracts the candidate's invite token ID from context
func GetTokenID(ctx context.Context) string {
	if v := ctx.Value(TokenIDKey); v != nil {
		return v.(string)
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
