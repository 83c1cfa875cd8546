// Package config parses the algorithm parameter vocabulary of spec.md §6
// ("priors", "iterator", and per-kernel numerics) from YAML into live
// algorithm.Algorithm instances.
package config

import "errors"

var (
	// ErrUnknownAlgorithm is returned when AlgorithmConfig.Name does not
	// name one of the seven kernels.
	ErrUnknownAlgorithm = errors.New("config: unknown algorithm name")

	// ErrUnknownPriors is returned when Priors does not match one of
	// "fixed", "voted", "uniform", "count".
	ErrUnknownPriors = errors.New("config: unknown priors")

	// ErrBadIteratorSpec is returned when Iterator does not parse as one
	// of "fixed-N", "<measure>-convergence-<threshold>[-limit-N]" or
	// "ordinal-N".
	ErrBadIteratorSpec = errors.New("config: malformed iterator spec")
)
