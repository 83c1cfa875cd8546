// Package algorithm implements the six truth-discovery kernels (plus the
// UnboundedSums variant) named in spec.md §4.D, sharing one iterative
// engine (spec.md §4.E) that resets the iterator, times the run, and
// packages the result.
package algorithm

import "errors"

// ErrEmptyAssertion indicates AverageLog, Investment or PooledInvestment
// was run against a dataset where some source makes zero claims, which
// would require dividing by that source's zero claim count in the trust
// update.
var ErrEmptyAssertion = errors.New("algorithm: a source makes no claims")

// ErrUnknownPriors indicates a Priors value outside the enumerated set.
var ErrUnknownPriors = errors.New("algorithm: unknown prior belief type")
