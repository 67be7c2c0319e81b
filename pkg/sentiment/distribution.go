package sentiment

// Distribution counts labels across one scored batch. It is derived data,
// recomputed per batch and never merged across batches.
type Distribution map[Label]int

// Tally counts label occurrences. Callers only pass labels of articles that
// were actually scored, so the counts sum to the scored-article count.
func Tally(labels []Label) Distribution {
	dist := make(Distribution)
	for _, l := range labels {
		dist[l]++
	}
	return dist
}
