// Package iterator provides the stopping-rule strategies that drive the
// truth-discovery engine's fixed-point loop: Fixed (run N times),
// Convergence (run until a vector distance drops below a threshold), and
// Ordinal (run until a ranking stabilises for K consecutive iterations).
package iterator

import "errors"

// ErrDidNotConverge is returned by a Convergence iterator's Finished method
// when its safety limit is exhausted without the distance ever dropping
// below the configured threshold.
var ErrDidNotConverge = errors.New("iterator: did not converge within limit")

// ErrNegativeLimit indicates a negative iteration limit was requested.
var ErrNegativeLimit = errors.New("iterator: limit cannot be negative")

// ErrInvalidThreshold indicates a non-positive Ordinal threshold.
var ErrInvalidThreshold = errors.New("iterator: threshold must be positive")

// ErrDimensionMismatch indicates Compare was called with vectors of
// different lengths.
var ErrDimensionMismatch = errors.New("iterator: dimension mismatch")
