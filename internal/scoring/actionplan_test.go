package scoring

import (
	"testing"

	"qiyada/internal/rubric"
)

func TestBuildActionPlan(t *testing.T) {
	cat := rubric.Default()
	areas := []CompetencyResult{
		{ID: "integrity", DisplayName: "Integrity & Accountability", Percentage: 30},
		{ID: "vision", DisplayName: "Vision & Strategic Thinking", Percentage: 55},
		{ID: "communication", DisplayName: "Communication", Percentage: 62},
	}

	plan := BuildActionPlan(areas, cat, rubric.LocaleEN)

	if len(plan) != 3 {
		t.Fatalf("expected 3 plan items, got %d", len(plan))
	}

	wantTimelines := []string{"30 days", "60 days", "90 days"}
	for i, item := range plan {
		if item.Priority != i+1 {
			t.Errorf("item %d: want priority %d, got %d", i, i+1, item.Priority)
		}
		if item.Timeline != wantTimelines[i] {
			t.Errorf("item %d: want timeline %q, got %q", i, wantTimelines[i], item.Timeline)
		}
		if item.TargetLevel != item.CurrentLevel+20 {
			t.Errorf("item %d: want target %d, got %d", i, item.CurrentLevel+20, item.TargetLevel)
		}
		if len(item.Actions) != 2 {
			t.Errorf("item %d: want 2 actions, got %d", i, len(item.Actions))
		}
	}

	// Worst area leads the plan.
	if plan[0].Competency != "integrity" || plan[0].CurrentLevel != 30 {
		t.Errorf("plan[0]: want integrity@30, got %s@%d", plan[0].Competency, plan[0].CurrentLevel)
	}
}

func TestBuildActionPlanTargetCap(t *testing.T) {
	areas := []CompetencyResult{
		{ID: "vision", Percentage: 95},
	}

	plan := BuildActionPlan(areas, rubric.Default(), rubric.LocaleEN)
	if len(plan) != 1 {
		t.Fatalf("expected 1 plan item, got %d", len(plan))
	}
	if plan[0].TargetLevel != 100 {
		t.Errorf("target level should cap at 100, got %d", plan[0].TargetLevel)
	}
}

func TestBuildActionPlanIgnoresExtraAreas(t *testing.T) {
	areas := []CompetencyResult{
		{ID: "a", Percentage: 10},
		{ID: "b", Percentage: 20},
		{ID: "c", Percentage: 30},
		{ID: "d", Percentage: 40},
	}

	plan := BuildActionPlan(areas, rubric.Default(), rubric.LocaleEN)
	if len(plan) != 3 {
		t.Fatalf("plan should hold at most 3 stages, got %d", len(plan))
	}
}
