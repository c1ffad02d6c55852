package scoring

import (
	"errors"
	"fmt"
)

// AssessmentType selects which response shape a submission carries.
type AssessmentType string

const (
	TypeScenario AssessmentType = "scenario"
	TypeRating   AssessmentType = "rating"
)

// ErrEmptyResponseSet is returned when report generation is attempted with no
// responses. Callers should surface this as "assessment incomplete" rather
// than rendering a zeroed report.
var ErrEmptyResponseSet = errors.New("scoring: empty response set")

// MalformedResponseError rejects a whole submission batch: partial scoring is
// never attempted.
type MalformedResponseError struct {
	Index  int
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("scoring: malformed response at index %d: %s", e.Index, e.Reason)
}

// Response is a single answered question. It is a sealed sum of
// ScenarioResponse and RatingResponse so the calculator branches exhaustively
// instead of sniffing field presence.
type Response interface {
	Question() string
	Group() string

	// value reports the response on the common 0-5 scale.
	value() float64
	validate() error
}

// ScenarioResponse is an answer to a scenario question: the chosen option is
// worth Score out of MaxScore points. In the shipped question bank MaxScore is
// always 5, so value() coincides with Score.
type ScenarioResponse struct {
	QuestionID string  `json:"questionId"`
	Competency string  `json:"groupKey"`
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"maxScore"`
}

func (r ScenarioResponse) Question() string { return r.QuestionID }
func (r ScenarioResponse) Group() string    { return r.Competency }

func (r ScenarioResponse) value() float64 {
	return r.Score / r.MaxScore * 5
}

func (r ScenarioResponse) validate() error {
	if r.Competency == "" {
		return errors.New("missing group key")
	}
	if r.MaxScore <= 0 {
		return errors.New("maxScore must be positive")
	}
	if r.Score < 0 || r.Score > r.MaxScore {
		return fmt.Errorf("score %g outside [0, %g]", r.Score, r.MaxScore)
	}
	return nil
}

// RatingResponse is a Likert-style answer on the fixed 1-5 scale.
type RatingResponse struct {
	QuestionID string `json:"questionId"`
	Competency string `json:"groupKey"`
	Rating     int    `json:"rating"`
}

func (r RatingResponse) Question() string { return r.QuestionID }
func (r RatingResponse) Group() string    { return r.Competency }

func (r RatingResponse) value() float64 { return float64(r.Rating) }

func (r RatingResponse) validate() error {
	if r.Competency == "" {
		return errors.New("missing group key")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating %d outside 1..5", r.Rating)
	}
	return nil
}
