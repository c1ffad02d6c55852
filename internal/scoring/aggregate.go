package scoring

// GroupAggregate is the per-competency fold of a submission's responses.
// Totals are on the common 0-5 scale. Built fresh per report generation and
// discarded after.
type GroupAggregate struct {
	Group  string
	Total  float64
	Count  int
	Scores []float64

	// seq is the index of the group's first appearance in the input, used to
	// keep result ordering deterministic before ranking.
	seq int
}

// Mean returns the average raw score for the group.
func (a *GroupAggregate) Mean() float64 {
	if a.Count == 0 {
		return 0
	}
	return a.Total / float64(a.Count)
}

// Aggregate folds responses by group key. Unknown keys are aggregated like
// any other; they surface later through the rubric's raw-key fallback. An
// empty input yields an empty map. Pure: the input is never modified.
func Aggregate(responses []Response) map[string]*GroupAggregate {
	aggregates := make(map[string]*GroupAggregate, len(responses))
	for _, resp := range responses {
		agg, ok := aggregates[resp.Group()]
		if !ok {
			agg = &GroupAggregate{Group: resp.Group(), seq: len(aggregates)}
			aggregates[resp.Group()] = agg
		}
		v := resp.value()
		agg.Total += v
		agg.Count++
		agg.Scores = append(agg.Scores, v)
	}
	return aggregates
}
