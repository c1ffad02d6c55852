package model

import (
	"time"

	"qiyada/internal/scoring"
)

// Report wraps a generated score report for persistence. The embedded result
// is owned by this record and never mutated after creation; a new submission
// produces a new Report.
type Report struct {
	ID           string          `json:"id" bson:"_id,omitempty"`
	SubmissionID string          `json:"submissionId" bson:"submissionId"`
	UserID       string          `json:"userId" bson:"userId"`
	AssessmentID string          `json:"assessmentId" bson:"assessmentId"`
	Locale       string          `json:"locale" bson:"locale"`
	Result       *scoring.Report `json:"result" bson:"result"`
	CreatedAt    time.Time       `json:"createdAt" bson:"createdAt"`
}
