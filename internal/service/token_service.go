package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"qiyada/internal/model"
	"qiyada/internal/repository"
)

var (
	ErrTokenNotFound    = errors.New("invite token not found")
	ErrTokenUnavailable = errors.New("invite token already used or revoked")
	ErrAssessmentClosed = errors.New("assessment not found or inactive")
)

// TokenService manages single-use invite tokens: admins mint them, candidates
// redeem them, and a token is consumed exactly once when its submission is
// finalized.
type TokenService struct {
	tokenRepo      repository.TokenRepo
	userRepo       repository.UserRepo
	assessmentRepo repository.AssessmentRepo
	authSvc        *AuthService
}

// NewTokenService creates a new token service
func NewTokenService(
	tokenRepo repository.TokenRepo,
	userRepo repository.UserRepo,
	assessmentRepo repository.AssessmentRepo,
	authSvc *AuthService,
) *TokenService {
	return &TokenService{
		tokenRepo:      tokenRepo,
		userRepo:       userRepo,
		assessmentRepo: assessmentRepo,
		authSvc:        authSvc,
	}
}

// Mint creates count invite tokens for an assessment
func (s *TokenService) Mint(ctx context.Context, adminID, assessmentID string, count int) ([]*model.InviteToken, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil || !assessment.Active {
		return nil, ErrAssessmentClosed
	}

	if count < 1 {
		count = 1
	}

	tokens := make([]*model.InviteToken, 0, count)
	for i := 0; i < count; i++ {
		token := &model.InviteToken{
			Code:         uuid.New().String(),
			AssessmentID: assessmentID,
			IssuedBy:     adminID,
			Status:       model.TokenActive,
		}
		if _, err := s.tokenRepo.Create(ctx, token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// List returns all tokens minted for an assessment
func (s *TokenService) List(ctx context.Context, assessmentID string) ([]*model.InviteToken, error) {
	return s.tokenRepo.ListByAssessment(ctx, assessmentID)
}

// Revoke marks an unused token as revoked
func (s *TokenService) Revoke(ctx context.Context, tokenID string) error {
	token, err := s.tokenRepo.GetByID(ctx, tokenID)
	if err != nil {
		return err
	}
	if token == nil {
		return ErrTokenNotFound
	}
	if token.Status != model.TokenActive {
		return ErrTokenUnavailable
	}
	return s.tokenRepo.UpdateStatus(ctx, tokenID, model.TokenRevoked)
}

// Redeem exchanges a valid invite code for a candidate account and an
// assessment-scoped session token. The invite token itself stays active
// until the candidate's submission is finalized.
func (s *TokenService) Redeem(ctx context.Context, code, fullName, locale string) (*model.RedeemResponse, error) {
	token, err := s.tokenRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, ErrTokenNotFound
	}
	if token.Status != model.TokenActive {
		return nil, ErrTokenUnavailable
	}

	assessment, err := s.assessmentRepo.GetByID(ctx, token.AssessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil || !assessment.Active {
		return nil, ErrAssessmentClosed
	}

	if locale != "ar" {
		locale = "en"
	}

	user := &model.User{
		Username: "candidate_" + uuid.New().String()[:8],
		Role:     model.RoleCandidate,
		FullName: fullName,
		Locale:   locale,
	}
	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	sessionToken, err := s.authSvc.GenerateCandidateToken(userID, token.AssessmentID, token.ID)
	if err != nil {
		return nil, err
	}

	return &model.RedeemResponse{
		Token:        sessionToken,
		UserID:       userID,
		AssessmentID: token.AssessmentID,
	}, nil
}

// Consume marks a token used when the candidate's submission is finalized.
// One report per token use: a token that is no longer active rejects the
// submission.
func (s *TokenService) Consume(ctx context.Context, tokenID, userID string) error {
	token, err := s.tokenRepo.GetByID(ctx, tokenID)
	if err != nil {
		return err
	}
	if token == nil {
		return ErrTokenNotFound
	}
	if token.Status != model.TokenActive {
		return ErrTokenUnavailable
	}
	return s.tokenRepo.MarkUsed(ctx, tokenID, userID)
}
