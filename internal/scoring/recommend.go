package scoring

import "qiyada/internal/rubric"

// Priority indicates how urgently a recommendation should be acted on.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// recommendationThreshold is the percentage below which a competency gets a
// recommendation; highPriorityThreshold splits high from medium.
const (
	recommendationThreshold = 70
	highPriorityThreshold   = 50
)

// Recommendation is a set of localized improvement actions for one
// underperforming competency.
type Recommendation struct {
	Competency     string   `json:"competency"`
	CompetencyName string   `json:"competencyName"`
	Priority       Priority `json:"priority"`
	Actions        []string `json:"actions"`
}

// GenerateRecommendations walks every scored competency in the given (ranked)
// order and emits one Recommendation per competency under 70%. Output order
// follows the input; it is not re-sorted by priority. Competencies at or
// above 70% produce nothing, so a strong profile yields an empty list.
func GenerateRecommendations(results []CompetencyResult, cat *rubric.Catalog, loc rubric.Locale) []Recommendation {
	recommendations := []Recommendation{}
	for _, r := range results {
		if r.Percentage >= recommendationThreshold {
			continue
		}
		priority := PriorityMedium
		if r.Percentage < highPriorityThreshold {
			priority = PriorityHigh
		}
		recommendations = append(recommendations, Recommendation{
			Competency:     r.ID,
			CompetencyName: r.DisplayName,
			Priority:       priority,
			Actions:        cat.Actions(r.ID, loc),
		})
	}
	return recommendations
}
