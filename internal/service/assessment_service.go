package service

import (
	"context"
	"errors"

	"qiyada/internal/model"
	"qiyada/internal/repository"
	"qiyada/internal/rubric"
	"qiyada/internal/scoring"
)

var ErrInvalidAssessment = errors.New("assessment definition is invalid")

// AssessmentService handles question bank CRUD operations
type AssessmentService struct {
	assessmentRepo repository.AssessmentRepo
	catalog        *rubric.Catalog
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(assessmentRepo repository.AssessmentRepo, catalog *rubric.Catalog) *AssessmentService {
	return &AssessmentService{
		assessmentRepo: assessmentRepo,
		catalog:        catalog,
	}
}

// Create validates and stores a new assessment
func (s *AssessmentService) Create(ctx context.Context, assessment *model.Assessment) (string, error) {
	if err := validateAssessment(assessment); err != nil {
		return "", err
	}
	return s.assessmentRepo.Create(ctx, assessment)
}

// GetByID retrieves an assessment by ID
func (s *AssessmentService) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	return s.assessmentRepo.GetByID(ctx, id)
}

// List retrieves assessments, optionally only active ones
func (s *AssessmentService) List(ctx context.Context, activeOnly bool) ([]*model.Assessment, error) {
	return s.assessmentRepo.List(ctx, activeOnly)
}

// Update validates and replaces an existing assessment
func (s *AssessmentService) Update(ctx context.Context, assessment *model.Assessment) error {
	if err := validateAssessment(assessment); err != nil {
		return err
	}
	return s.assessmentRepo.Update(ctx, assessment)
}

// Delete removes an assessment
func (s *AssessmentService) Delete(ctx context.Context, id string) error {
	return s.assessmentRepo.Delete(ctx, id)
}

// LocalizedQuestion is the candidate-facing view of a question.
type LocalizedQuestion struct {
	Key        string            `json:"key"`
	Competency string            `json:"competency"`
	Prompt     string            `json:"prompt"`
	Options    []LocalizedOption `json:"options,omitempty"`
}

// LocalizedOption is the candidate-facing view of a scenario option.
type LocalizedOption struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// LocalizedAssessment is what a candidate sees when taking an assessment:
// prompts in their locale, rating-scale labels, no option scores.
type LocalizedAssessment struct {
	ID          string              `json:"id"`
	Type        string              `json:"type"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Questions   []LocalizedQuestion `json:"questions"`
	ScaleLabels []string            `json:"scaleLabels,omitempty"`
}

// Localize renders an assessment for one locale. Option point values are
// deliberately not exposed to candidates.
func (s *AssessmentService) Localize(assessment *model.Assessment, locale string) *LocalizedAssessment {
	loc := rubric.LocaleEN
	if locale == "ar" {
		loc = rubric.LocaleAR
	}

	questions := make([]LocalizedQuestion, 0, len(assessment.Questions))
	for _, q := range assessment.Questions {
		lq := LocalizedQuestion{
			Key:        q.Key,
			Competency: q.Competency,
			Prompt:     q.Prompt.Resolve(locale),
		}
		for _, opt := range q.Options {
			lq.Options = append(lq.Options, LocalizedOption{
				Key:  opt.Key,
				Text: opt.Text.Resolve(locale),
			})
		}
		questions = append(questions, lq)
	}

	view := &LocalizedAssessment{
		ID:          assessment.ID,
		Type:        assessment.Type,
		Title:       assessment.Title.Resolve(locale),
		Description: assessment.Description.Resolve(locale),
		Questions:   questions,
	}
	if assessment.Type == string(scoring.TypeRating) {
		view.ScaleLabels = s.catalog.ScaleLabels(loc)
	}
	return view
}

func validateAssessment(assessment *model.Assessment) error {
	if assessment.Type != string(scoring.TypeScenario) && assessment.Type != string(scoring.TypeRating) {
		return ErrInvalidAssessment
	}
	if len(assessment.Questions) == 0 {
		return ErrInvalidAssessment
	}
	for _, q := range assessment.Questions {
		if q.Key == "" || q.Competency == "" {
			return ErrInvalidAssessment
		}
		if assessment.Type == string(scoring.TypeScenario) && len(q.Options) == 0 {
			return ErrInvalidAssessment
		}
	}
	return nil
}
