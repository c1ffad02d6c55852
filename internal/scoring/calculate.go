package scoring

import (
	"math"
	"sort"

	"qiyada/internal/rubric"
)

// Band is the qualitative rating assigned to a percentage.
type Band string

const (
	BandExcellent        Band = "excellent"
	BandGood             Band = "good"
	BandAverage          Band = "average"
	BandNeedsImprovement Band = "needs-improvement"
)

// BandFor maps a percentage to its rating band.
func BandFor(percentage int) Band {
	switch {
	case percentage >= 85:
		return BandExcellent
	case percentage >= 70:
		return BandGood
	case percentage >= 55:
		return BandAverage
	default:
		return BandNeedsImprovement
	}
}

// CompetencyResult is the scored outcome for one competency.
type CompetencyResult struct {
	ID            string  `json:"id"`
	DisplayName   string  `json:"displayName"`
	Description   string  `json:"description"`
	AverageScore  float64 `json:"averageScore"`
	Percentage    int     `json:"percentage"`
	ResponseCount int     `json:"responseCount"`
	RatingBand    Band    `json:"ratingBand"`
}

// ComputeCompetencyResults scores each aggregate on the 0-5 scale and
// resolves display text from the rubric. Results come back in first-seen
// input order; ranking happens separately. An empty aggregate map yields an
// empty slice and the caller must treat the overall score as not computable.
func ComputeCompetencyResults(aggregates map[string]*GroupAggregate, cat *rubric.Catalog, loc rubric.Locale) []CompetencyResult {
	results := make([]CompetencyResult, 0, len(aggregates))
	for _, agg := range aggregates {
		avg := agg.Mean()
		pct := int(math.Round(avg / 5 * 100))
		name := agg.Group
		desc := ""
		if cat != nil {
			name = cat.Name(agg.Group, loc)
			desc = cat.Description(agg.Group, loc)
		}
		results = append(results, CompetencyResult{
			ID:            agg.Group,
			DisplayName:   name,
			Description:   desc,
			AverageScore:  round2(avg),
			Percentage:    pct,
			ResponseCount: agg.Count,
			RatingBand:    BandFor(pct),
		})
	}
	// Map iteration order is random; restore first-seen input order.
	seq := make(map[string]int, len(aggregates))
	for key, agg := range aggregates {
		seq[key] = agg.seq
	}
	sort.Slice(results, func(i, j int) bool { return seq[results[i].ID] < seq[results[j].ID] })
	return results
}

// Overall returns the mean of competency average scores (2 decimals) and the
// matching percentage. Callers must not invoke it with an empty result set.
func Overall(results []CompetencyResult) (score float64, percentage int) {
	sum := 0.0
	for _, r := range results {
		sum += r.AverageScore
	}
	avg := sum / float64(len(results))
	return round2(avg), int(math.Round(avg / 5 * 100))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
