package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"qiyada/internal/model"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context, role model.Role) ([]*model.User, error) {
	args := m.Called(ctx, role)
	if u := args.Get(0); u != nil {
		return u.([]*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockTokenRepo struct {
	mock.Mock
}

func (m *mockTokenRepo) Create(ctx context.Context, token *model.InviteToken) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *mockTokenRepo) GetByID(ctx context.Context, id string) (*model.InviteToken, error) {
	args := m.Called(ctx, id)
	if t := args.Get(0); t != nil {
		return t.(*model.InviteToken), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTokenRepo) GetByCode(ctx context.Context, code string) (*model.InviteToken, error) {
	args := m.Called(ctx, code)
	if t := args.Get(0); t != nil {
		return t.(*model.InviteToken), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTokenRepo) ListByAssessment(ctx context.Context, assessmentID string) ([]*model.InviteToken, error) {
	args := m.Called(ctx, assessmentID)
	if t := args.Get(0); t != nil {
		return t.([]*model.InviteToken), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTokenRepo) MarkUsed(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *mockTokenRepo) UpdateStatus(ctx context.Context, id string, status model.TokenStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type mockAssessmentRepo struct {
	mock.Mock
}

func (m *mockAssessmentRepo) Create(ctx context.Context, assessment *model.Assessment) (string, error) {
	args := m.Called(ctx, assessment)
	return args.String(0), args.Error(1)
}

func (m *mockAssessmentRepo) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*model.Assessment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAssessmentRepo) List(ctx context.Context, activeOnly bool) ([]*model.Assessment, error) {
	args := m.Called(ctx, activeOnly)
	if a := args.Get(0); a != nil {
		return a.([]*model.Assessment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAssessmentRepo) Update(ctx context.Context, assessment *model.Assessment) error {
	args := m.Called(ctx, assessment)
	return args.Error(0)
}

func (m *mockAssessmentRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
