// Package synthetic generates random supervised datasets from a given
// source trust vector, grounded on
// truthdiscovery/input/{synthetic_data,synthetic_dataset}.py.
package synthetic

import "errors"

// ErrBadParameter indicates an invalid trust vector, claim probability or
// domain size was supplied to Generate.
var ErrBadParameter = errors.New("synthetic: invalid generator parameter")
