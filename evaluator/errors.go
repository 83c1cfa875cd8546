// Package evaluator scores truth-discovery results against known true
// values, grounded on truthdiscovery/input/supervised_dataset.py's
// get_accuracy.
package evaluator

import "errors"

// ErrUnknownVariable indicates a true value was supplied for a variable
// that does not appear in the result's belief mapping.
var ErrUnknownVariable = errors.New("evaluator: unknown variable")

// ErrNoScorableVariables indicates no true values were supplied at all, so
// there is nothing to score. (When true values are supplied but every one
// belongs to a variable with only one claimed value, Accuracy returns 1.0
// instead.)
var ErrNoScorableVariables = errors.New("evaluator: no variable has more than one claimed value")
