// Package result holds the outcome of a truth discovery run and the views
// derived from it (most-believed values, filtering, summary statistics,
// and the difference between two runs), grounded on the reference
// implementation's truthdiscovery/output/result.py and diff.py.
package result

import (
	"math"
	"sort"
)

// Stats is the (mean, standard deviation) pair returned by TrustStats and
// BeliefStats.
type Stats struct {
	Mean   float64
	StdDev float64
}

// Result holds the trust and belief scores produced by an algorithm run.
type Result struct {
	Trust      map[string]float64
	Belief     map[string]map[string]float64
	TimeTaken  float64
	Iterations *int
}

// New builds a Result from the dictionaries an algorithm produces.
// iterations is nil for non-iterative kernels (Voting).
func New(trust map[string]float64, belief map[string]map[string]float64, timeTaken float64, iterations *int) *Result {
	return &Result{
		Trust:      trust,
		Belief:     belief,
		TimeTaken:  timeTaken,
		Iterations: iterations,
	}
}

// MostBelievedValues returns the values with maximum belief for a
// variable, in ascending order of label to make ties deterministic. More
// than one value may be returned when there is a tie for maximum belief.
func (r *Result) MostBelievedValues(variable string) ([]string, error) {
	scores, ok := r.Belief[variable]
	if !ok {
		return nil, ErrUnknownVariable
	}

	type entry struct {
		val   string
		score float64
	}
	entries := make([]entry, 0, len(scores))
	for val, score := range scores {
		entries = append(entries, entry{val, score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return entries[i].val < entries[j].val
	})

	if len(entries) == 0 {
		return nil, nil
	}

	maxBelief := entries[0].score
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.score < maxBelief {
			break
		}
		out = append(out, e.val)
	}
	return out, nil
}

// Filter narrows trust and belief scores down to the given source and
// variable labels. A nil slice performs no filtering for that dimension.
func (r *Result) Filter(sources, variables []string) *Result {
	newTrust := r.Trust
	if sources != nil {
		newTrust = filterMap(r.Trust, sources)
	} else {
		newTrust = cloneFlat(r.Trust)
	}

	newBelief := r.Belief
	if variables != nil {
		newBelief = filterNested(r.Belief, variables)
	} else {
		newBelief = cloneNested(r.Belief)
	}

	return &Result{
		Trust:      newTrust,
		Belief:     newBelief,
		TimeTaken:  r.TimeTaken,
		Iterations: r.Iterations,
	}
}

func filterMap(m map[string]float64, keep []string) map[string]float64 {
	out := make(map[string]float64, len(keep))
	for _, k := range keep {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

func cloneFlat(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func filterNested(m map[string]map[string]float64, keep []string) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(keep))
	for _, k := range keep {
		if v, ok := m[k]; ok {
			out[k] = cloneFlat(v)
		}
	}
	return out
}

func cloneNested(m map[string]map[string]float64) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(m))
	for k, v := range m {
		out[k] = cloneFlat(v)
	}
	return out
}

// TrustStats returns the mean and standard deviation of the trust scores.
func (r *Result) TrustStats() (Stats, error) {
	return computeStats(r.Trust)
}

// BeliefStats returns the mean and standard deviation of belief scores for
// each variable.
func (r *Result) BeliefStats() (map[string]Stats, error) {
	out := make(map[string]Stats, len(r.Belief))
	for variable, scores := range r.Belief {
		stats, err := computeStats(scores)
		if err != nil {
			return nil, err
		}
		out[variable] = stats
	}
	return out, nil
}

func computeStats(scores map[string]float64) (Stats, error) {
	if len(scores) == 0 {
		return Stats{}, ErrEmptyScores
	}

	var sum float64
	for _, v := range scores {
		sum += v
	}
	mean := sum / float64(len(scores))

	var variance float64
	for _, v := range scores {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(scores))

	return Stats{Mean: mean, StdDev: math.Sqrt(variance)}, nil
}
