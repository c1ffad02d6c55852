package scoring

import "sort"

// Ranking splits scored competencies into strengths and development areas.
type Ranking struct {
	// Sorted is every competency, descending by percentage.
	Sorted []CompetencyResult
	// Strengths is the top 3 (or all, when fewer exist).
	Strengths []CompetencyResult
	// DevelopmentAreas is the bottom 3, worst first.
	DevelopmentAreas []CompetencyResult
}

// Rank orders competencies descending by percentage. The sort is stable so
// ties keep their input order. With fewer than 3 competencies the strengths
// and development areas overlap; that is accepted behavior, not deduplicated.
func Rank(results []CompetencyResult) Ranking {
	sorted := make([]CompetencyResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percentage > sorted[j].Percentage
	})

	n := len(sorted)
	top := n
	if top > 3 {
		top = 3
	}

	strengths := make([]CompetencyResult, top)
	copy(strengths, sorted[:top])

	// Bottom slice reversed: worst first.
	areas := make([]CompetencyResult, 0, top)
	for i := n - 1; i >= n-top; i-- {
		areas = append(areas, sorted[i])
	}

	return Ranking{Sorted: sorted, Strengths: strengths, DevelopmentAreas: areas}
}
