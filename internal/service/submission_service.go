package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"qiyada/internal/cache"
	"qiyada/internal/model"
	"qiyada/internal/repository"
	"qiyada/internal/rubric"
	"qiyada/internal/scoring"
)

// SubmissionService finalizes assessment submissions: it converts wire
// responses into scoring inputs, runs report generation, persists the
// results and fans out to caches, websocket subscribers and the webhook.
type SubmissionService struct {
	submissionRepo repository.SubmissionRepo
	reportRepo     repository.ReportRepo
	assessmentRepo repository.AssessmentRepo
	tokenSvc       *TokenService
	reportCache    cache.ReportCache
	scoreboard     cache.ScoreboardCache
	stats          cache.StatsCache
	catalog        *rubric.Catalog
	broadcaster    Broadcaster
	webhook        *WebhookService
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	submissionRepo repository.SubmissionRepo,
	reportRepo repository.ReportRepo,
	assessmentRepo repository.AssessmentRepo,
	tokenSvc *TokenService,
	reportCache cache.ReportCache,
	scoreboard cache.ScoreboardCache,
	stats cache.StatsCache,
	catalog *rubric.Catalog,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		reportRepo:     reportRepo,
		assessmentRepo: assessmentRepo,
		tokenSvc:       tokenSvc,
		reportCache:    reportCache,
		scoreboard:     scoreboard,
		stats:          stats,
		catalog:        catalog,
	}
}

// SetBroadcaster injects the websocket hub (wired in main to avoid an
// import cycle)
func (s *SubmissionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SetWebhook injects the outbound webhook notifier
func (s *SubmissionService) SetWebhook(w *WebhookService) {
	s.webhook = w
}

// Submit finalizes a candidate's submission and returns the stored report.
// The invite token is consumed exactly once; validation failures from the
// scoring core reject the whole batch before anything is persisted.
func (s *SubmissionService) Submit(ctx context.Context, userID, assessmentID, tokenID, locale string, records []model.ResponseRecord) (*model.Report, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil || !assessment.Active {
		return nil, ErrAssessmentClosed
	}

	if locale != "ar" {
		locale = "en"
	}
	loc := rubric.LocaleEN
	if locale == "ar" {
		loc = rubric.LocaleAR
	}

	responses, err := resolveResponses(assessment, records)
	if err != nil {
		return nil, err
	}
	result, err := scoring.GenerateReport(responses, s.catalog, loc)
	if err != nil {
		return nil, err
	}

	// Reserve the token before persisting so a replayed submission cannot
	// produce a second report.
	if err := s.tokenSvc.Consume(ctx, tokenID, userID); err != nil {
		return nil, err
	}

	submission := &model.Submission{
		UserID:       userID,
		AssessmentID: assessmentID,
		TokenID:      tokenID,
		Locale:       locale,
		Responses:    records,
		SubmittedAt:  time.Now(),
	}
	submissionID, err := s.submissionRepo.Create(ctx, submission)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		SubmissionID: submissionID,
		UserID:       userID,
		AssessmentID: assessmentID,
		Locale:       locale,
		Result:       result,
	}
	if _, err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	// Cache and stats updates are best-effort; the report is already durable.
	if err := s.reportCache.Set(ctx, report); err != nil {
		log.Printf("report cache update failed for submission %s: %v", submissionID, err)
	}
	if err := s.scoreboard.UpdateScore(ctx, assessmentID, userID, result.OverallPercentage); err != nil {
		log.Printf("scoreboard update failed for assessment %s: %v", assessmentID, err)
	}
	for _, resp := range responses {
		score := 0.0
		switch r := resp.(type) {
		case scoring.ScenarioResponse:
			score = r.Score
		case scoring.RatingResponse:
			score = float64(r.Rating)
		}
		if err := s.stats.RecordResponse(ctx, assessmentID, resp.Question(), score); err != nil {
			log.Printf("question stats update failed for assessment %s: %v", assessmentID, err)
			break
		}
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToAdmins(assessmentID, "submission.completed", map[string]interface{}{
			"submissionId":      submissionID,
			"userId":            userID,
			"overallPercentage": result.OverallPercentage,
			"overallRatingBand": result.OverallRatingBand,
		})
	}

	if s.webhook != nil {
		go s.webhook.NotifyReportReady(report)
	}

	return report, nil
}

// GetByID retrieves a submission by ID
func (s *SubmissionService) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	return s.submissionRepo.GetByID(ctx, id)
}

// ListByUser retrieves all submissions for a user
func (s *SubmissionService) ListByUser(ctx context.Context, userID string) ([]*model.Submission, error) {
	return s.submissionRepo.ListByUser(ctx, userID)
}

// scenarioMaxScore is the point value of a question's best option; options
// are authored on the same 5-point scale the rating type uses.
const scenarioMaxScore = 5

// resolveResponses maps wire records onto the scoring engine's typed
// responses. Competency keys and scenario point values come from the stored
// assessment, never from the client: a record naming an unknown question or
// option rejects the whole batch. Out-of-range ratings are left for the
// scoring core so range failures also fail together.
func resolveResponses(assessment *model.Assessment, records []model.ResponseRecord) ([]scoring.Response, error) {
	questions := make(map[string]*model.Question, len(assessment.Questions))
	for i := range assessment.Questions {
		questions[assessment.Questions[i].Key] = &assessment.Questions[i]
	}

	responses := make([]scoring.Response, 0, len(records))
	for i, rec := range records {
		question, ok := questions[rec.QuestionID]
		if !ok {
			return nil, &scoring.MalformedResponseError{
				Index:  i,
				Reason: fmt.Sprintf("unknown question %q", rec.QuestionID),
			}
		}

		if scoring.AssessmentType(assessment.Type) == scoring.TypeRating {
			responses = append(responses, scoring.RatingResponse{
				QuestionID: question.Key,
				Competency: question.Competency,
				Rating:     rec.Rating,
			})
			continue
		}

		option := findOption(question, rec.OptionKey)
		if option == nil {
			return nil, &scoring.MalformedResponseError{
				Index:  i,
				Reason: fmt.Sprintf("unknown option %q for question %q", rec.OptionKey, rec.QuestionID),
			}
		}
		responses = append(responses, scoring.ScenarioResponse{
			QuestionID: question.Key,
			Competency: question.Competency,
			Score:      option.Score,
			MaxScore:   scenarioMaxScore,
		})
	}
	return responses, nil
}

func findOption(question *model.Question, key string) *model.QuestionOption {
	for i := range question.Options {
		if question.Options[i].Key == key {
			return &question.Options[i]
		}
	}
	return nil
}
