package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/truthdiscovery/algorithm"
	"github.com/katalvlaran/truthdiscovery/iterator"
)

// AlgorithmConfig is the YAML-serializable form of spec.md §6's "Algorithm
// parameter vocabulary". Name selects the kernel; the remaining fields are
// optional overrides of that kernel's defaults. Pointer fields distinguish
// "not set" from "set to zero".
type AlgorithmConfig struct {
	Name            string   `yaml:"name"`
	Priors          string   `yaml:"priors,omitempty"`
	Iterator        string   `yaml:"iterator,omitempty"`
	G               *float64 `yaml:"g,omitempty"`
	InfluenceParam  *float64 `yaml:"influence_param,omitempty"`
	DampeningFactor *float64 `yaml:"dampening_factor,omitempty"`
	InitialTrust    *float64 `yaml:"initial_trust,omitempty"`
}

// Load reads and parses an AlgorithmConfig from a YAML file.
func Load(path string) (*AlgorithmConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := &AlgorithmConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config back out as YAML.
func (c *AlgorithmConfig) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// Build resolves the config into a live algorithm.Algorithm, ready to Run.
func (c *AlgorithmConfig) Build() (algorithm.Algorithm, error) {
	var it iterator.Iterator
	if c.Iterator != "" {
		parsed, err := parseIterator(c.Iterator)
		if err != nil {
			return nil, err
		}
		it = parsed
	}

	priors, havePriors, err := parsePriors(c.Priors)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(c.Name) {
	case "voting":
		return algorithm.NewVoting(), nil

	case "sums":
		opts := []algorithm.SumsOption{}
		if it != nil {
			opts = append(opts, algorithm.WithSumsIterator(it))
		}
		if havePriors {
			opts = append(opts, algorithm.WithSumsPriors(priors))
		}
		return algorithm.NewSums(opts...), nil

	case "average_log", "averagelog":
		opts := []algorithm.AverageLogOption{}
		if it != nil {
			opts = append(opts, algorithm.WithAverageLogIterator(it))
		}
		if havePriors {
			opts = append(opts, algorithm.WithAverageLogPriors(priors))
		}
		return algorithm.NewAverageLog(opts...), nil

	case "investment":
		opts := []algorithm.InvestmentOption{}
		if it != nil {
			opts = append(opts, algorithm.WithInvestmentIterator(it))
		}
		if havePriors {
			opts = append(opts, algorithm.WithInvestmentPriors(priors))
		}
		if c.G != nil {
			opts = append(opts, algorithm.WithInvestmentG(*c.G))
		}
		return algorithm.NewInvestment(opts...), nil

	case "pooled_investment", "pooledinvestment":
		opts := []algorithm.PooledInvestmentOption{}
		if it != nil {
			opts = append(opts, algorithm.WithPooledInvestmentIterator(it))
		}
		if havePriors {
			opts = append(opts, algorithm.WithPooledInvestmentPriors(priors))
		}
		if c.G != nil {
			opts = append(opts, algorithm.WithPooledInvestmentG(*c.G))
		}
		return algorithm.NewPooledInvestment(opts...), nil

	case "truth_finder", "truthfinder":
		opts := []algorithm.TruthFinderOption{}
		if it != nil {
			opts = append(opts, algorithm.WithTruthFinderIterator(it))
		}
		if c.InfluenceParam != nil {
			opts = append(opts, algorithm.WithTruthFinderInfluenceParam(*c.InfluenceParam))
		}
		if c.DampeningFactor != nil {
			opts = append(opts, algorithm.WithTruthFinderDampeningFactor(*c.DampeningFactor))
		}
		if c.InitialTrust != nil {
			opts = append(opts, algorithm.WithTruthFinderInitialTrust(*c.InitialTrust))
		}
		return algorithm.NewTruthFinder(opts...), nil

	case "unbounded_sums", "unboundedsums":
		opts := []algorithm.UnboundedSumsOption{}
		if it != nil {
			opts = append(opts, algorithm.WithUnboundedSumsIterator(it))
		}
		return algorithm.NewUnboundedSums(opts...), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, c.Name)
	}
}

func parsePriors(s string) (algorithm.Priors, bool, error) {
	if s == "" {
		return "", false, nil
	}

	switch strings.ToLower(s) {
	case "fixed":
		return algorithm.PriorsFixed, true, nil
	case "voted":
		return algorithm.PriorsVoted, true, nil
	case "uniform":
		return algorithm.PriorsUniform, true, nil
	case "count":
		return algorithm.PriorsCount, true, nil
	default:
		return "", false, fmt.Errorf("%w: %q", ErrUnknownPriors, s)
	}
}

// parseIterator parses spec.md §6's iterator vocabulary:
// "fixed-N", "ordinal-N", or "<measure>-convergence-<threshold>[-limit-N]"
// where measure is one of l1, l2, l_inf, cosine.
func parseIterator(spec string) (iterator.Iterator, error) {
	parts := strings.Split(spec, "-")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrBadIteratorSpec, spec)
	}

	switch parts[0] {
	case "fixed":
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadIteratorSpec, spec)
		}
		return iterator.NewFixed(n)

	case "ordinal":
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadIteratorSpec, spec)
		}
		return iterator.NewOrdinal(n)

	case string(iterator.L1), string(iterator.L2), string(iterator.LInf), string(iterator.Cosine):
		if len(parts) < 3 || parts[1] != "convergence" {
			return nil, fmt.Errorf("%w: %q", ErrBadIteratorSpec, spec)
		}
		threshold, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadIteratorSpec, spec)
		}

		limit := 0
		if len(parts) == 5 && parts[3] == "limit" {
			limit, err = strconv.Atoi(parts[4])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadIteratorSpec, spec)
			}
		} else if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrBadIteratorSpec, spec)
		}

		return iterator.NewConvergence(iterator.Measure(parts[0]), threshold, limit)

	default:
		return nil, fmt.Errorf("%w: %q", ErrBadIteratorSpec, spec)
	}
}
