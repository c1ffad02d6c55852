package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"qiyada/internal/model"
	"qiyada/internal/rubric"
)

func scenarioAssessment() *model.Assessment {
	return &model.Assessment{
		ID:   "a-1",
		Type: "scenario",
		Title: model.LocalizedText{
			EN: "Leadership Scenarios",
			AR: "مواقف قيادية",
		},
		Questions: []model.Question{
			{
				Key:        "Q1",
				Competency: "vision",
				Prompt:     model.LocalizedText{EN: "What do you do?", AR: "ماذا تفعل؟"},
				Options: []model.QuestionOption{
					{Key: "a", Score: 5, Text: model.LocalizedText{EN: "Act", AR: "تتصرف"}},
					{Key: "b", Score: 1, Text: model.LocalizedText{EN: "Wait", AR: "تنتظر"}},
				},
			},
		},
		Active: true,
	}
}

func TestCreateValidates(t *testing.T) {
	repo := new(mockAssessmentRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return("a-1", nil)
	svc := NewAssessmentService(repo, rubric.Default())

	_, err := svc.Create(context.Background(), scenarioAssessment())
	assert.NoError(t, err)

	bad := scenarioAssessment()
	bad.Type = "essay"
	_, err = svc.Create(context.Background(), bad)
	assert.ErrorIs(t, err, ErrInvalidAssessment)

	noQuestions := scenarioAssessment()
	noQuestions.Questions = nil
	_, err = svc.Create(context.Background(), noQuestions)
	assert.ErrorIs(t, err, ErrInvalidAssessment)

	noOptions := scenarioAssessment()
	noOptions.Questions[0].Options = nil
	_, err = svc.Create(context.Background(), noOptions)
	assert.ErrorIs(t, err, ErrInvalidAssessment)
}

func TestLocalize(t *testing.T) {
	svc := NewAssessmentService(new(mockAssessmentRepo), rubric.Default())

	en := svc.Localize(scenarioAssessment(), "en")
	assert.Equal(t, "Leadership Scenarios", en.Title)
	assert.Equal(t, "What do you do?", en.Questions[0].Prompt)
	assert.Equal(t, "Act", en.Questions[0].Options[0].Text)

	ar := svc.Localize(scenarioAssessment(), "ar")
	assert.Equal(t, "مواقف قيادية", ar.Title)
	assert.Equal(t, "ماذا تفعل؟", ar.Questions[0].Prompt)
	assert.Equal(t, "تتصرف", ar.Questions[0].Options[0].Text)

	// Scenario assessments carry no rating scale.
	assert.Empty(t, en.ScaleLabels)
}

func TestLocalizeRatingScale(t *testing.T) {
	svc := NewAssessmentService(new(mockAssessmentRepo), rubric.Default())

	rating := &model.Assessment{
		ID:    "a-2",
		Type:  "rating",
		Title: model.LocalizedText{EN: "Self Assessment", AR: "تقييم ذاتي"},
		Questions: []model.Question{
			{Key: "Q1", Competency: "integrity", Prompt: model.LocalizedText{EN: "I keep my word.", AR: "أفي بوعدي."}},
		},
	}

	view := svc.Localize(rating, "ar")
	assert.Len(t, view.ScaleLabels, 5)
	assert.Equal(t, rubric.Default().ScaleLabels(rubric.LocaleAR), view.ScaleLabels)
}

// Candidates must never see option point values in the localized view. The
// wire type has no score field at all; this guards against one being added.
func TestLocalizeHidesScores(t *testing.T) {
	svc := NewAssessmentService(new(mockAssessmentRepo), rubric.Default())

	view := svc.Localize(scenarioAssessment(), "en")
	for _, q := range view.Questions {
		for _, opt := range q.Options {
			assert.NotEmpty(t, opt.Key)
			assert.NotEmpty(t, opt.Text)
		}
	}
}
