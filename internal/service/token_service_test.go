package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"qiyada/internal/model"
)

func activeAssessment(id string) *model.Assessment {
	return &model.Assessment{
		ID:     id,
		Type:   "rating",
		Title:  model.LocalizedText{EN: "Test", AR: "اختبار"},
		Active: true,
	}
}

func newTokenService(tokenRepo *mockTokenRepo, userRepo *mockUserRepo, assessmentRepo *mockAssessmentRepo) *TokenService {
	return NewTokenService(tokenRepo, userRepo, assessmentRepo, NewAuthService(userRepo))
}

func TestMint(t *testing.T) {
	tokenRepo := new(mockTokenRepo)
	assessmentRepo := new(mockAssessmentRepo)
	assessmentRepo.On("GetByID", mock.Anything, "a-1").Return(activeAssessment("a-1"), nil)
	tokenRepo.On("Create", mock.Anything, mock.Anything).Return("t-id", nil)

	svc := newTokenService(tokenRepo, new(mockUserRepo), assessmentRepo)

	tokens, err := svc.Mint(context.Background(), "admin-1", "a-1", 3)
	assert.NoError(t, err)
	assert.Len(t, tokens, 3)

	seen := map[string]bool{}
	for _, tok := range tokens {
		assert.Equal(t, "a-1", tok.AssessmentID)
		assert.Equal(t, "admin-1", tok.IssuedBy)
		assert.Equal(t, model.TokenActive, tok.Status)
		assert.NotEmpty(t, tok.Code)
		assert.False(t, seen[tok.Code], "codes must be unique")
		seen[tok.Code] = true
	}
	tokenRepo.AssertNumberOfCalls(t, "Create", 3)
}

func TestMintInactiveAssessment(t *testing.T) {
	assessmentRepo := new(mockAssessmentRepo)
	closed := activeAssessment("a-1")
	closed.Active = false
	assessmentRepo.On("GetByID", mock.Anything, "a-1").Return(closed, nil)

	svc := newTokenService(new(mockTokenRepo), new(mockUserRepo), assessmentRepo)

	_, err := svc.Mint(context.Background(), "admin-1", "a-1", 1)
	assert.ErrorIs(t, err, ErrAssessmentClosed)
}

func TestRedeem(t *testing.T) {
	tokenRepo := new(mockTokenRepo)
	userRepo := new(mockUserRepo)
	assessmentRepo := new(mockAssessmentRepo)

	tokenRepo.On("GetByCode", mock.Anything, "code-1").Return(&model.InviteToken{
		ID:           "t-1",
		Code:         "code-1",
		AssessmentID: "a-1",
		Status:       model.TokenActive,
	}, nil)
	assessmentRepo.On("GetByID", mock.Anything, "a-1").Return(activeAssessment("a-1"), nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Role == model.RoleCandidate && u.FullName == "Sara" && u.Locale == "ar"
	})).Return("u-1", nil)

	svc := newTokenService(tokenRepo, userRepo, assessmentRepo)

	resp, err := svc.Redeem(context.Background(), "code-1", "Sara", "ar")
	assert.NoError(t, err)
	assert.Equal(t, "u-1", resp.UserID)
	assert.Equal(t, "a-1", resp.AssessmentID)
	assert.NotEmpty(t, resp.Token)

	// The session token must be scoped to the assessment and invite token.
	claims, err := svc.authSvc.ValidateCandidateToken(resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, "a-1", claims.AssessmentID)
	assert.Equal(t, "t-1", claims.TokenID)
}

func TestRedeemNormalizesLocale(t *testing.T) {
	tokenRepo := new(mockTokenRepo)
	userRepo := new(mockUserRepo)
	assessmentRepo := new(mockAssessmentRepo)

	tokenRepo.On("GetByCode", mock.Anything, "code-1").Return(&model.InviteToken{
		ID: "t-1", Code: "code-1", AssessmentID: "a-1", Status: model.TokenActive,
	}, nil)
	assessmentRepo.On("GetByID", mock.Anything, "a-1").Return(activeAssessment("a-1"), nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Locale == "en"
	})).Return("u-1", nil)

	svc := newTokenService(tokenRepo, userRepo, assessmentRepo)

	_, err := svc.Redeem(context.Background(), "code-1", "Sam", "fr")
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestRedeemUsedToken(t *testing.T) {
	tokenRepo := new(mockTokenRepo)
	tokenRepo.On("GetByCode", mock.Anything, "code-1").Return(&model.InviteToken{
		ID: "t-1", Code: "code-1", AssessmentID: "a-1", Status: model.TokenUsed,
	}, nil)

	svc := newTokenService(tokenRepo, new(mockUserRepo), new(mockAssessmentRepo))

	_, err := svc.Redeem(context.Background(), "code-1", "Sara", "en")
	assert.ErrorIs(t, err, ErrTokenUnavailable)
}

func TestRedeemUnknownCode(t *testing.T) {
	tokenRepo := new(mockTokenRepo)
	tokenRepo.On("GetByCode", mock.Anything, "nope").Return(nil, nil)

	svc := newTokenService(tokenRepo, new(mockUserRepo), new(mockAssessmentRepo))

	_, err := svc.Redeem(context.Background(), "nope", "Sara", "en")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestRevoke(t *testing.T) {
	tokenRepo := new(mockTokenRepo)
	tokenRepo.On("GetByID", mock.Anything, "t-1").Return(&model.InviteToken{
		ID: "t-1", Status: model.TokenActive,
	}, nil)
	tokenRepo.On("UpdateStatus", mock.Anything, "t-1", model.TokenRevoked).Return(nil)

	svc := newTokenService(tokenRepo, new(mockUserRepo), new(mockAssessmentRepo))

	assert.NoError(t, svc.Revoke(context.Background(), "t-1"))
	tokenRepo.AssertExpectations(t)
}

func TestRevokeUsedToken(t *testing.T) {
	tokenRepo := new(mockTokenRepo)
	tokenRepo.On("GetByID", mock.Anything, "t-1").Return(&model.InviteToken{
		ID: "t-1", Status: model.TokenUsed,
	}, nil)

	svc := newTokenService(tokenRepo, new(mockUserRepo), new(mockAssessmentRepo))

	assert.ErrorIs(t, svc.Revoke(context.Background(), "t-1"), ErrTokenUnavailable)
}

func TestConsume(t *testing.T) {
	tokenRepo := new(mockTokenRepo)
	tokenRepo.On("GetByID", mock.Anything, "t-1").Return(&model.InviteToken{
		ID: "t-1", Status: model.TokenActive,
	}, nil)
	tokenRepo.On("MarkUsed", mock.Anything, "t-1", "u-1").Return(nil)

	svc := newTokenService(tokenRepo, new(mockUserRepo), new(mockAssessmentRepo))

	assert.NoError(t, svc.Consume(context.Background(), "t-1", "u-1"))
	tokenRepo.AssertExpectations(t)
}

// One report per token: a second consume attempt must fail.
func TestConsumeTwice(t *testing.T) {
	tokenRepo := new(mockTokenRepo)
	tokenRepo.On("GetByID", mock.Anything, "t-1").Return(&model.InviteToken{
		ID: "t-1", Status: model.TokenUsed,
	}, nil)

	svc := newTokenService(tokenRepo, new(mockUserRepo), new(mockAssessmentRepo))

	assert.ErrorIs(t, svc.Consume(context.Background(), "t-1", "u-1"), ErrTokenUnavailable)
}
