package scoring

import "testing"

func TestRank(t *testing.T) {
	results := []CompetencyResult{
		{ID: "a", Percentage: 60},
		{ID: "b", Percentage: 90},
		{ID: "c", Percentage: 30},
		{ID: "d", Percentage: 75},
		{ID: "e", Percentage: 45},
		{ID: "f", Percentage: 80},
	}

	ranking := Rank(results)

	wantSorted := []string{"b", "f", "d", "a", "e", "c"}
	for i, id := range wantSorted {
		if ranking.Sorted[i].ID != id {
			t.Fatalf("sorted[%d]: want %q, got %q", i, id, ranking.Sorted[i].ID)
		}
	}

	wantStrengths := []string{"b", "f", "d"}
	if len(ranking.Strengths) != 3 {
		t.Fatalf("expected 3 strengths, got %d", len(ranking.Strengths))
	}
	for i, id := range wantStrengths {
		if ranking.Strengths[i].ID != id {
			t.Errorf("strengths[%d]: want %q, got %q", i, id, ranking.Strengths[i].ID)
		}
	}

	// Worst first.
	wantAreas := []string{"c", "e", "a"}
	if len(ranking.DevelopmentAreas) != 3 {
		t.Fatalf("expected 3 development areas, got %d", len(ranking.DevelopmentAreas))
	}
	for i, id := range wantAreas {
		if ranking.DevelopmentAreas[i].ID != id {
			t.Errorf("developmentAreas[%d]: want %q, got %q", i, id, ranking.DevelopmentAreas[i].ID)
		}
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	results := []CompetencyResult{
		{ID: "a", Percentage: 10},
		{ID: "b", Percentage: 90},
	}
	Rank(results)
	if results[0].ID != "a" || results[1].ID != "b" {
		t.Error("Rank mutated its input slice")
	}
}

func TestRankTiesAreStable(t *testing.T) {
	results := []CompetencyResult{
		{ID: "first", Percentage: 70},
		{ID: "second", Percentage: 70},
		{ID: "third", Percentage: 70},
	}

	ranking := Rank(results)
	want := []string{"first", "second", "third"}
	for i, id := range want {
		if ranking.Sorted[i].ID != id {
			t.Errorf("sorted[%d]: want %q, got %q", i, id, ranking.Sorted[i].ID)
		}
	}
}

// With fewer than 3 competencies, strengths and development areas overlap.
func TestRankFewCompetencies(t *testing.T) {
	results := []CompetencyResult{
		{ID: "a", Percentage: 80},
		{ID: "b", Percentage: 40},
	}

	ranking := Rank(results)
	if len(ranking.Strengths) != 2 || len(ranking.DevelopmentAreas) != 2 {
		t.Fatalf("want 2/2, got %d strengths, %d areas",
			len(ranking.Strengths), len(ranking.DevelopmentAreas))
	}
	if ranking.Strengths[0].ID != "a" {
		t.Errorf("strengths[0]: want a, got %q", ranking.Strengths[0].ID)
	}
	if ranking.DevelopmentAreas[0].ID != "b" {
		t.Errorf("developmentAreas[0]: want b, got %q", ranking.DevelopmentAreas[0].ID)
	}
}
