package scoring

import (
	"math/rand"
	"testing"
)

func TestAggregate(t *testing.T) {
	responses := []Response{
		ScenarioResponse{QuestionID: "Q1", Competency: "vision", Score: 5, MaxScore: 5},
		ScenarioResponse{QuestionID: "Q2", Competency: "communication", Score: 3, MaxScore: 5},
		ScenarioResponse{QuestionID: "Q3", Competency: "vision", Score: 4, MaxScore: 5},
	}

	aggregates := Aggregate(responses)

	if len(aggregates) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(aggregates))
	}

	vision := aggregates["vision"]
	if vision == nil {
		t.Fatal("missing vision aggregate")
	}
	if vision.Count != 2 || vision.Total != 9 {
		t.Errorf("vision: want count=2 total=9, got count=%d total=%g", vision.Count, vision.Total)
	}
	if got := vision.Mean(); got != 4.5 {
		t.Errorf("vision mean: want 4.5, got %g", got)
	}

	comm := aggregates["communication"]
	if comm == nil {
		t.Fatal("missing communication aggregate")
	}
	if comm.Count != 1 || comm.Total != 3 {
		t.Errorf("communication: want count=1 total=3, got count=%d total=%g", comm.Count, comm.Total)
	}
}

func TestAggregateEmpty(t *testing.T) {
	aggregates := Aggregate(nil)
	if len(aggregates) != 0 {
		t.Fatalf("expected empty map, got %d entries", len(aggregates))
	}
}

func TestAggregateMixedTypes(t *testing.T) {
	responses := []Response{
		ScenarioResponse{QuestionID: "Q1", Competency: "integrity", Score: 4, MaxScore: 5},
		RatingResponse{QuestionID: "Q2", Competency: "integrity", Rating: 2},
	}

	aggregates := Aggregate(responses)
	agg := aggregates["integrity"]
	if agg == nil {
		t.Fatal("missing integrity aggregate")
	}
	if agg.Count != 2 || agg.Total != 6 {
		t.Errorf("want count=2 total=6, got count=%d total=%g", agg.Count, agg.Total)
	}
}

// Shuffling the input must not change per-group totals; only first-seen
// ordering of the groups depends on input order.
func TestAggregateShuffleInvariant(t *testing.T) {
	responses := []Response{
		RatingResponse{QuestionID: "Q1", Competency: "vision", Rating: 5},
		RatingResponse{QuestionID: "Q2", Competency: "vision", Rating: 3},
		RatingResponse{QuestionID: "Q3", Competency: "empowerment", Rating: 2},
		RatingResponse{QuestionID: "Q4", Competency: "adaptability", Rating: 4},
		RatingResponse{QuestionID: "Q5", Competency: "empowerment", Rating: 4},
	}

	base := Aggregate(responses)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]Response, len(responses))
		copy(shuffled, responses)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := Aggregate(shuffled)
		if len(got) != len(base) {
			t.Fatalf("shuffle %d: group count changed: %d vs %d", i, len(got), len(base))
		}
		for key, want := range base {
			agg, ok := got[key]
			if !ok {
				t.Fatalf("shuffle %d: group %q missing", i, key)
			}
			if agg.Total != want.Total || agg.Count != want.Count {
				t.Errorf("shuffle %d: group %q: want total=%g count=%d, got total=%g count=%d",
					i, key, want.Total, want.Count, agg.Total, agg.Count)
			}
		}
	}
}
