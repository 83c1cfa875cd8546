package result

import "errors"

// ErrUnknownVariable indicates MostBelievedValues was asked about a
// variable that does not appear in the belief mapping.
var ErrUnknownVariable = errors.New("result: unknown variable")

// ErrEmptyScores indicates stats were requested over an empty score map.
var ErrEmptyScores = errors.New("result: no scores to summarise")
