package evaluator

import (
	"math/rand"

	"github.com/katalvlaran/truthdiscovery/result"
)

// Evaluator computes the accuracy of truth-discovery results against a set
// of known true values, with ties among equally-believed values broken by
// an injected random source (spec.md §5's "randomness must be injected").
type Evaluator struct {
	trueValues map[string]string
	rng        *rand.Rand
}

// New builds an Evaluator. trueValues maps variable label to its known
// correct value; rng breaks ties when a result has more than one
// most-believed value for a variable.
func New(trueValues map[string]string, rng *rand.Rand) *Evaluator {
	return &Evaluator{trueValues: trueValues, rng: rng}
}

// Accuracy returns the fraction of scorable variables whose most-believed
// value (tie-broken via the evaluator's rng) equals the known true value.
// A variable with only one claimed value is never scorable, since every
// algorithm necessarily "guesses" the one value on offer; if every
// variable falls into that category, accuracy is vacuously 1.0 (spec.md
// §8's "every claim is the true value" scenario), rather than undefined —
// there is no disagreement anywhere for the result to have gotten wrong.
func (e *Evaluator) Accuracy(res *result.Result) (float64, error) {
	if len(e.trueValues) == 0 {
		return 0, ErrNoScorableVariables
	}

	var total, correct int

	for variable, trueValue := range e.trueValues {
		beliefs, ok := res.Belief[variable]
		if !ok {
			return 0, ErrUnknownVariable
		}
		if len(beliefs) == 1 {
			continue
		}
		total++

		candidates, err := res.MostBelievedValues(variable)
		if err != nil {
			return 0, err
		}
		chosen := candidates[e.rng.Intn(len(candidates))]
		if chosen == trueValue {
			correct++
		}
	}

	if total == 0 {
		return 1.0, nil
	}

	return float64(correct) / float64(total), nil
}
