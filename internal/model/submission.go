package model

import "time"

// ResponseRecord is the wire/storage shape of one answered question. The
// assessment type decides which field is meaningful: scenario submissions
// carry the chosen option key, rating submissions carry the rating. Point
// values and competency keys are never taken from the client; the submission
// service resolves them from the stored assessment before any scoring
// happens.
type ResponseRecord struct {
	QuestionID string `json:"questionId" bson:"questionId"`
	OptionKey  string `json:"optionKey,omitempty" bson:"optionKey,omitempty"`
	Rating     int    `json:"rating,omitempty" bson:"rating,omitempty"`
}

// Submission is one candidate's completed assessment. Immutable once stored;
// finalization happens exactly once per invite token.
type Submission struct {
	ID           string           `json:"id" bson:"_id,omitempty"`
	UserID       string           `json:"userId" bson:"userId"`
	AssessmentID string           `json:"assessmentId" bson:"assessmentId"`
	TokenID      string           `json:"tokenId" bson:"tokenId"`
	Locale       string           `json:"locale" bson:"locale"`
	Responses    []ResponseRecord `json:"responses" bson:"responses"`
	SubmittedAt  time.Time        `json:"submittedAt" bson:"submittedAt"`
}
