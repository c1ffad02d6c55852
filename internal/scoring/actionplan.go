package scoring

import "qiyada/internal/rubric"

// ActionPlanItem is one stage of the 30/60/90-day development plan.
type ActionPlanItem struct {
	Priority       int      `json:"priority"`
	Competency     string   `json:"competency"`
	CompetencyName string   `json:"competencyName"`
	CurrentLevel   int      `json:"currentLevel"`
	TargetLevel    int      `json:"targetLevel"`
	Timeline       string   `json:"timeline"`
	Actions        []string `json:"actions"`
}

var planTimelines = [3]string{"30 days", "60 days", "90 days"}

// BuildActionPlan stages the development areas (already worst-first, at most
// 3) into a plan with increasing timelines. Each stage targets a 20-point
// uplift capped at 100 and carries the first two template actions.
func BuildActionPlan(developmentAreas []CompetencyResult, cat *rubric.Catalog, loc rubric.Locale) []ActionPlanItem {
	plan := make([]ActionPlanItem, 0, len(developmentAreas))
	for i, area := range developmentAreas {
		if i >= len(planTimelines) {
			break
		}
		target := area.Percentage + 20
		if target > 100 {
			target = 100
		}
		actions := cat.Actions(area.ID, loc)
		if len(actions) > 2 {
			actions = actions[:2]
		}
		plan = append(plan, ActionPlanItem{
			Priority:       i + 1,
			Competency:     area.ID,
			CompetencyName: area.DisplayName,
			CurrentLevel:   area.Percentage,
			TargetLevel:    target,
			Timeline:       planTimelines[i],
			Actions:        actions,
		})
	}
	return plan
}
