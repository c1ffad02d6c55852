package model

import "time"

// LocalizedText carries both languages for a user-facing string.
type LocalizedText struct {
	EN string `json:"en" bson:"en"`
	AR string `json:"ar" bson:"ar"`
}

// Resolve returns the string for a locale, falling back to English.
func (t LocalizedText) Resolve(locale string) string {
	if locale == "ar" && t.AR != "" {
		return t.AR
	}
	return t.EN
}

// QuestionOption is one selectable answer of a scenario question, worth
// Score points out of the question's 5-point maximum.
type QuestionOption struct {
	Key   string        `json:"key" bson:"key"`
	Text  LocalizedText `json:"text" bson:"text"`
	Score float64       `json:"score" bson:"score"`
}

// Question is one item of an assessment's question bank.
type Question struct {
	Key        string        `json:"key" bson:"key"` // e.g. "Q1"
	Competency string        `json:"competency" bson:"competency"`
	Prompt     LocalizedText `json:"prompt" bson:"prompt"`
	// Options is populated for scenario assessments only; rating
	// assessments use the fixed 1-5 scale.
	Options []QuestionOption `json:"options,omitempty" bson:"options,omitempty"`
}

// Assessment is a persistent questionnaire template managed by admins.
type Assessment struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Type        string        `json:"type" bson:"type"` // "scenario" or "rating"
	Title       LocalizedText `json:"title" bson:"title"`
	Description LocalizedText `json:"description" bson:"description"`
	Questions   []Question    `json:"questions" bson:"questions"`
	Active      bool          `json:"active" bson:"active"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updatedAt"`
}
