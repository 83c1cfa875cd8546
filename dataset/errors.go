// Package dataset builds the sparse incidence matrices (source-claim,
// mutual-exclusion, implication) that every truth-discovery algorithm
// kernel operates on, from either a stream of (source, variable, value)
// triples or a masked source-by-variable grid.
package dataset

import "errors"

// ErrDuplicateAssertion indicates the same source asserted two different
// values for one variable while strict (non-multi) mode was in effect.
var ErrDuplicateAssertion = errors.New("dataset: source asserted more than one value for a variable")

// ErrEmptyDataset indicates an algorithm was run against a dataset with no
// claims at all.
var ErrEmptyDataset = errors.New("dataset: no claims present")

// ErrBadShape indicates a malformed matrix or CSV input: non-2D input, a
// ragged row, or a true-values vector of the wrong length.
var ErrBadShape = errors.New("dataset: invalid shape")

// ErrBadImplicationValue indicates an implication function returned a value
// outside [-1, 1].
var ErrBadImplicationValue = errors.New("dataset: implication value out of [-1, 1]")

// ErrUnknownLabel indicates a lookup against a label never seen during
// construction. No function in this package currently returns it:
// VariableID reports ids.ErrUnknownLabel, and BeliefDict/TrustDict report
// ids.ErrUnknownID for an out-of-range ID.
var ErrUnknownLabel = errors.New("dataset: unknown label")
