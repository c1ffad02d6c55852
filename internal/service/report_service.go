package service

import (
	"context"
	"log"

	"qiyada/internal/cache"
	"qiyada/internal/model"
	"qiyada/internal/repository"
)

// ReportService serves stored reports and the admin dashboard aggregates
type ReportService struct {
	reportRepo  repository.ReportRepo
	userRepo    repository.UserRepo
	reportCache cache.ReportCache
	scoreboard  cache.ScoreboardCache
	stats       cache.StatsCache
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo repository.ReportRepo,
	userRepo repository.UserRepo,
	reportCache cache.ReportCache,
	scoreboard cache.ScoreboardCache,
	stats cache.StatsCache,
) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		userRepo:    userRepo,
		reportCache: reportCache,
		scoreboard:  scoreboard,
		stats:       stats,
	}
}

// GetByID retrieves a report by its ID
func (s *ReportService) GetByID(ctx context.Context, id string) (*model.Report, error) {
	return s.reportRepo.GetByID(ctx, id)
}

// GetBySubmission retrieves a report by submission ID, cache-first
func (s *ReportService) GetBySubmission(ctx context.Context, submissionID string) (*model.Report, error) {
	cached, err := s.reportCache.Get(ctx, submissionID)
	if err != nil {
		log.Printf("report cache read failed for submission %s: %v", submissionID, err)
	}
	if cached != nil {
		return cached, nil
	}

	report, err := s.reportRepo.GetBySubmissionID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if report != nil {
		if err := s.reportCache.Set(ctx, report); err != nil {
			log.Printf("report cache refill failed for submission %s: %v", submissionID, err)
		}
	}
	return report, nil
}

// ListByUser retrieves all reports generated for a user
func (s *ReportService) ListByUser(ctx context.Context, userID string) ([]*model.Report, error) {
	return s.reportRepo.ListByUser(ctx, userID)
}

// LatestByUser returns the most recently created report for a user, or nil
// when none exist. Selection is by createdAt rather than listing order.
func (s *ReportService) LatestByUser(ctx context.Context, userID string) (*model.Report, error) {
	reports, err := s.reportRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var latest *model.Report
	for _, report := range reports {
		if latest == nil || report.CreatedAt.After(latest.CreatedAt) {
			latest = report
		}
	}
	return latest, nil
}

// ScoreboardRow is one candidate's position on the admin dashboard.
type ScoreboardRow struct {
	Rank       int    `json:"rank"`
	UserID     string `json:"userId"`
	FullName   string `json:"fullName"`
	Percentage int    `json:"percentage"`
}

// Scoreboard returns the top candidates of an assessment, enriched with
// names from the user store.
func (s *ReportService) Scoreboard(ctx context.Context, assessmentID string, limit int) ([]ScoreboardRow, error) {
	if limit <= 0 {
		limit = 50
	}
	entries, err := s.scoreboard.GetTop(ctx, assessmentID, limit)
	if err != nil {
		return nil, err
	}

	rows := make([]ScoreboardRow, 0, len(entries))
	for _, e := range entries {
		row := ScoreboardRow{
			Rank:       e.Rank,
			UserID:     e.UserID,
			Percentage: e.Percentage,
		}
		user, err := s.userRepo.GetByID(ctx, e.UserID)
		if err == nil && user != nil {
			row.FullName = user.FullName
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// QuestionStats returns the per-question item analysis for an assessment
func (s *ReportService) QuestionStats(ctx context.Context, assessmentID string) (map[string]cache.QuestionStats, error) {
	return s.stats.GetQuestionStats(ctx, assessmentID)
}
