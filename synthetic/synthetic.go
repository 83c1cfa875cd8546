package synthetic

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/truthdiscovery/dataset"
)

type options struct {
	numVariables     int
	claimProbability float64
	domainSize       int
}

// Option configures Generate.
type Option func(*options)

// WithNumVariables sets how many artificial variables to generate
// (default 100).
func WithNumVariables(n int) Option {
	return func(o *options) { o.numVariables = n }
}

// WithClaimProbability sets the probability a source makes a claim about
// any given variable (default 0.5).
func WithClaimProbability(p float64) Option {
	return func(o *options) { o.claimProbability = p }
}

// WithDomainSize sets the number of possible values each variable may
// take (default 4).
func WithDomainSize(n int) Option {
	return func(o *options) { o.domainSize = n }
}

// Generate builds a random Dataset from a source trust vector: trust[i] is
// interpreted as the probability that source i's claim about a variable is
// correct. Every source makes at least one claim, and every variable
// receives at least one claim, so the generated dataset is never
// degenerate. rng must be supplied by the caller (spec.md §5: randomness
// is injected, never global).
func Generate(trust []float64, rng *rand.Rand, opts ...Option) (*dataset.Dataset, map[string]string, error) {
	cfg := options{numVariables: 100, claimProbability: 0.5, domainSize: 4}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(trust) == 0 {
		return nil, nil, ErrBadParameter
	}
	for _, t := range trust {
		if t < 0 || t > 1 {
			return nil, nil, ErrBadParameter
		}
	}
	if cfg.claimProbability <= 0 || cfg.claimProbability > 1 {
		return nil, nil, ErrBadParameter
	}
	if cfg.domainSize <= 1 {
		return nil, nil, ErrBadParameter
	}

	numSources := len(trust)
	grid := make([][]string, numSources)
	for s := range grid {
		grid[s] = make([]string, cfg.numVariables)
		for v := range grid[s] {
			grid[s][v] = dataset.MaskValue
		}
	}

	trueValues := make([]int, cfg.numVariables)
	trueValueLabels := make(map[string]string, cfg.numVariables)

	for v := 0; v < cfg.numVariables; v++ {
		trueValue := rng.Intn(cfg.domainSize)
		trueValues[v] = trueValue
		trueValueLabels[strconv.Itoa(v)] = strconv.Itoa(trueValue)

		claimMade := false
		for s, trustVal := range trust {
			if rng.Float64() <= cfg.claimProbability {
				claimMade = true
				grid[s][v] = strconv.Itoa(generateClaim(rng, trustVal, trueValue, cfg.domainSize))
			}
		}
		if !claimMade {
			s := rng.Intn(numSources)
			grid[s][v] = strconv.Itoa(generateClaim(rng, trust[s], trueValue, cfg.domainSize))
		}
	}

	for s := range grid {
		hasClaim := false
		for _, cell := range grid[s] {
			if cell != dataset.MaskValue {
				hasClaim = true
				break
			}
		}
		if !hasClaim {
			v := rng.Intn(cfg.numVariables)
			grid[s][v] = strconv.Itoa(generateClaim(rng, trust[s], trueValues[v], cfg.domainSize))
		}
	}

	d, err := dataset.NewMatrixDataset(grid)
	if err != nil {
		return nil, nil, err
	}

	return d, trueValueLabels, nil
}

// generateClaim draws a claimed value for a variable: the true value with
// probability trustVal, and an incorrect value uniformly otherwise.
func generateClaim(rng *rand.Rand, trustVal float64, trueValue, domainSize int) int {
	wrongProb := (1 - trustVal) / float64(domainSize-1)
	weights := make([]float64, domainSize)
	for i := range weights {
		weights[i] = wrongProb
	}
	weights[trueValue] = trustVal

	var sum float64
	for _, w := range weights {
		sum += w
	}
	r := rng.Float64() * sum
	var cum float64
	for i, w := range weights {
		cum += w
		if r < cum {
			return i
		}
	}

	return domainSize - 1
}
