package result

// Diff is the difference between two Result objects: per-source trust
// deltas, per-variable-value belief deltas, and the change in time taken
// and iteration count, restricted to the labels the two results share.
type Diff struct {
	Trust      map[string]float64
	Belief     map[string]map[string]float64
	TimeTaken  float64
	Iterations *int
}

// NewDiff computes b minus a, keeping only sources, variables and values
// present in both results.
func NewDiff(a, b *Result) *Diff {
	d := &Diff{
		Trust:     make(map[string]float64),
		Belief:    make(map[string]map[string]float64),
		TimeTaken: b.TimeTaken - a.TimeTaken,
	}

	for source, trustA := range a.Trust {
		if trustB, ok := b.Trust[source]; ok {
			d.Trust[source] = trustB - trustA
		}
	}

	for variable, scoresA := range a.Belief {
		scoresB, ok := b.Belief[variable]
		if !ok {
			continue
		}
		diffs := make(map[string]float64)
		for val, scoreA := range scoresA {
			if scoreB, ok := scoresB[val]; ok {
				diffs[val] = scoreB - scoreA
			}
		}
		if len(diffs) > 0 {
			d.Belief[variable] = diffs
		}
	}

	if a.Iterations != nil && b.Iterations != nil {
		delta := *b.Iterations - *a.Iterations
		d.Iterations = &delta
	}

	return d
}
