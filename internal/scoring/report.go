package scoring

import "qiyada/internal/rubric"

// Report is the full scored outcome of one submission. It is freshly
// allocated per generation and never mutated afterwards; a re-submission
// produces a new Report.
type Report struct {
	OverallScore      float64            `json:"overallScore"`
	OverallPercentage int                `json:"overallPercentage"`
	OverallRatingBand Band               `json:"overallRatingBand"`
	Competencies      []CompetencyResult `json:"competencies"`
	Strengths         []CompetencyResult `json:"strengths"`
	DevelopmentAreas  []CompetencyResult `json:"developmentAreas"`
	Recommendations   []Recommendation   `json:"recommendations"`
	ActionPlan        []ActionPlanItem   `json:"actionPlan"`
	TotalQuestions    int                `json:"totalQuestions"`
}

// GenerateReport runs the full scoring pipeline: validate, aggregate, score,
// rank, recommend, plan. It is pure and deterministic for a given input.
//
// An empty submission returns ErrEmptyResponseSet; any invalid response
// rejects the whole batch with a MalformedResponseError. Unknown group keys
// and missing translations degrade gracefully via the rubric's fallbacks.
func GenerateReport(responses []Response, cat *rubric.Catalog, loc rubric.Locale) (*Report, error) {
	if len(responses) == 0 {
		return nil, ErrEmptyResponseSet
	}
	for i, resp := range responses {
		if err := resp.validate(); err != nil {
			return nil, &MalformedResponseError{Index: i, Reason: err.Error()}
		}
	}

	aggregates := Aggregate(responses)
	results := ComputeCompetencyResults(aggregates, cat, loc)
	overall, overallPct := Overall(results)
	ranking := Rank(results)

	return &Report{
		OverallScore:      overall,
		OverallPercentage: overallPct,
		OverallRatingBand: BandFor(overallPct),
		Competencies:      ranking.Sorted,
		Strengths:         ranking.Strengths,
		DevelopmentAreas:  ranking.DevelopmentAreas,
		Recommendations:   GenerateRecommendations(ranking.Sorted, cat, loc),
		ActionPlan:        BuildActionPlan(ranking.DevelopmentAreas, cat, loc),
		TotalQuestions:    len(responses),
	}, nil
}
