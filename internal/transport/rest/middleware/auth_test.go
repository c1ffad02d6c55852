package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"qiyada/internal/model"
	"qiyada/internal/service"
)

type stubUserRepo struct {
	user *model.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *model.User) (string, error) {
	return "u-1", nil
}
func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.user, nil
}
func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.user, nil
}
func (s *stubUserRepo) List(ctx context.Context, role model.Role) ([]*model.User, error) {
	return nil, nil
}
func (s *stubUserRepo) Delete(ctx context.Context, id string) error { return nil }

func adminToken(t *testing.T, authSvc *service.AuthService) string {
	t.Helper()
	resp, err := authSvc.Login(context.Background(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	return resp.Token
}

func TestRequireAdmin(t *testing.T) {
	hash, err := service.HashPassword("s3cret")
	if err != nil {
		t.Fatal(err)
	}
	repo := &stubUserRepo{user: &model.User{
		ID: "admin-1", Username: "admin", PasswordHash: hash, Role: model.RoleAdmin,
	}}
	authSvc := service.NewAuthService(repo)
	mw := NewAuthMiddleware(authSvc)

	var gotAdminID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAdminID = GetAdminID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := mw.RequireAdmin(next)

	candidateToken, err := authSvc.GenerateCandidateToken("u-1", "a-1", "t-1")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
		{"candidate token", "Bearer " + candidateToken, http.StatusUnauthorized},
		{"valid token", "Bearer " + adminToken(t, authSvc), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/users", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("want status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantStatus == http.StatusOK && gotAdminID != "admin-1" {
				t.Errorf("admin ID not propagated: got %q", gotAdminID)
			}
		})
	}
}

func TestRequireCandidate(t *testing.T) {
	authSvc := service.NewAuthService(&stubUserRepo{})
	mw := NewAuthMiddleware(authSvc)

	token, err := authSvc.GenerateCandidateToken("u-1", "a-1", "t-1")
	if err != nil {
		t.Fatal(err)
	}

	var gotUser, gotAssessment, gotToken string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = GetCandidateID(r.Context())
		gotAssessment = GetAssessmentID(r.Context())
		gotToken = GetTokenID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := mw.RequireCandidate(next)

	req := httptest.NewRequest("POST", "/v1/submissions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	if gotUser != "u-1" || gotAssessment != "a-1" || gotToken != "t-1" {
		t.Errorf("claims not propagated: user=%q assessment=%q token=%q", gotUser, gotAssessment, gotToken)
	}

	// Token also accepted via query param for websocket-style clients.
	req = httptest.NewRequest("GET", "/v1/my/assessment?token="+token, nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("query-param token: want 200, got %d", rec.Code)
	}

	req = httptest.NewRequest("POST", "/v1/submissions", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: want 401, got %d", rec.Code)
	}
}
