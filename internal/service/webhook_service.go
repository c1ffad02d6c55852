package service

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"qiyada/internal/model"
)

// WebhookService posts report-ready notifications to an external system
// (e.g. an HR platform ingesting assessment outcomes). Disabled unless
// WEBHOOK_URL is set; delivery is best-effort with a few retries.
type WebhookService struct {
	url        string
	httpClient *http.Client
	maxRetries int
}

// NewWebhookService creates a new webhook notifier
func NewWebhookService() *WebhookService {
	url := os.Getenv("WEBHOOK_URL")
	if url == "" {
		log.Println("Warning: WEBHOOK_URL not set, report notifications disabled")
	}

	return &WebhookService{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		maxRetries: 3,
	}
}

// IsEnabled returns true if a webhook URL is configured
func (s *WebhookService) IsEnabled() bool {
	return s.url != ""
}

// reportReadyEvent is the webhook payload
type reportReadyEvent struct {
	Event             string `json:"event"`
	ReportID          string `json:"reportId"`
	SubmissionID      string `json:"submissionId"`
	UserID            string `json:"userId"`
	AssessmentID      string `json:"assessmentId"`
	OverallPercentage int    `json:"overallPercentage"`
	OverallRatingBand string `json:"overallRatingBand"`
}

// NotifyReportReady posts a report.ready event. Safe to call from a
// goroutine; failures are logged and retried with backoff.
func (s *WebhookService) NotifyReportReady(report *model.Report) {
	if !s.IsEnabled() || report.Result == nil {
		return
	}

	event := reportReadyEvent{
		Event:             "report.ready",
		ReportID:          report.ID,
		SubmissionID:      report.SubmissionID,
		UserID:            report.UserID,
		AssessmentID:      report.AssessmentID,
		OverallPercentage: report.Result.OverallPercentage,
		OverallRatingBand: string(report.Result.OverallRatingBand),
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("webhook payload marshal failed: %v", err)
		return
	}

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * time.Second)
		}

		resp, err := s.httpClient.Post(s.url, "application/json", bytes.NewReader(body))
		if err != nil {
			log.Printf("webhook delivery attempt %d failed: %v", attempt+1, err)
			continue
		}
		resp.Body.Close()

		if resp.StatusCode < 300 {
			return
		}
		log.Printf("webhook delivery attempt %d got status %d", attempt+1, resp.StatusCode)
	}
	log.Printf("webhook delivery gave up for report %s", report.ID)
}
