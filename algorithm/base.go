package algorithm

import (
	"time"

	"github.com/katalvlaran/truthdiscovery/dataset"
	"github.com/katalvlaran/truthdiscovery/iterator"
	"github.com/katalvlaran/truthdiscovery/result"
	"github.com/katalvlaran/truthdiscovery/telemetry"
)

// Algorithm is the shared interface every truth-discovery kernel
// implements (spec.md §4.D "BaseAlgorithm").
type Algorithm interface {
	Run(d *dataset.Dataset) (*result.Result, error)
}

// runState names the engine's internal state machine (spec.md §4.D "State
// machine"), used only for the structured log line the engine emits; it is
// never exposed on Result.
type runState string

const (
	stateConverged   runState = "converged"
	stateLimitFailed runState = "limit_failed"
	stateEarlyStop   runState = "early_stop"
	stateDone        runState = "done" // non-iterative kernels (Voting)
)

// step computes one iteration: given the current (trust, belief), it
// returns the next (trust, belief). earlyStop signals numerical
// infeasibility (spec.md §4.D "EARLY_STOP"): the engine then stops and
// keeps the *previous* iteration's vectors, not the partially-updated ones.
type step func(trust, belief []float64) (newTrust, newBelief []float64, earlyStop bool, err error)

// runIterative drives the shared fixed-point loop (spec.md §4.E): reset
// the iterator, time the run, repeatedly call fn while the iterator is not
// finished, and package the result. name is used only for logging.
func runIterative(
	name string,
	d *dataset.Dataset,
	it iterator.Iterator,
	trust, belief []float64,
	fn step,
) (*result.Result, error) {
	if d.NumClaims() == 0 {
		return nil, dataset.ErrEmptyDataset
	}

	it.Reset()
	start := time.Now()

	state := stateConverged
	for {
		done, err := it.Finished()
		if err != nil {
			// DidNotConverge: surfaces from the engine unchanged
			// (spec.md §7 "Only DidNotConverge surfaces ... during
			// normal operation; callers must catch it").
			telemetry.Log().Warn().
				Str("algorithm", name).
				Str("state", string(stateLimitFailed)).
				Int("iterations", it.Count()).
				Err(err).
				Msg("truth discovery run failed to converge")
			return nil, err
		}
		if done {
			break
		}

		newTrust, newBelief, earlyStop, err := fn(trust, belief)
		if err != nil {
			return nil, err
		}
		if earlyStop {
			state = stateEarlyStop
			break
		}

		if err := it.Compare(trust, newTrust); err != nil {
			return nil, err
		}
		trust, belief = newTrust, newBelief
	}

	elapsed := time.Since(start)
	iterations := it.Count()

	return packageResult(name, d, trust, belief, elapsed, &iterations, state)
}

// runOnce packages a non-iterative kernel's single-shot result (Voting).
func runOnce(name string, d *dataset.Dataset, trust, belief []float64, elapsed time.Duration) (*result.Result, error) {
	if d.NumClaims() == 0 {
		return nil, dataset.ErrEmptyDataset
	}

	return packageResult(name, d, trust, belief, elapsed, nil, stateDone)
}

func packageResult(
	name string,
	d *dataset.Dataset,
	trust, belief []float64,
	elapsed time.Duration,
	iterations *int,
	state runState,
) (*result.Result, error) {
	trustDict, err := d.TrustDict(trust)
	if err != nil {
		return nil, err
	}
	beliefDict, err := d.BeliefDict(belief)
	if err != nil {
		return nil, err
	}

	event := telemetry.Log().Info().
		Str("algorithm", name).
		Str("state", string(state)).
		Dur("time_taken", elapsed)
	if iterations != nil {
		event = event.Int("iterations", *iterations)
	}
	event.Msg("truth discovery run complete")

	return result.New(trustDict, beliefDict, elapsed.Seconds(), iterations), nil
}
