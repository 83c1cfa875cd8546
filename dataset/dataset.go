package dataset

import (
	"github.com/katalvlaran/truthdiscovery/ids"
	"github.com/katalvlaran/truthdiscovery/tdmatrix"
)

// Triple is one source's assertion that a variable takes a value. Source,
// Variable and Value are modelled as strings at the dataset boundary, the
// "string-wrapping default for I/O layers" spec.md §9 recommends for a
// systems-language port of a dynamically-typed value model.
type Triple struct {
	Source   string
	Variable string
	Value    string
}

// ImplicationFunc computes the confidence that claim "var=val1" implies
// claim "var=val2". It returns ok=false when no implication should be
// recorded for this pair (the Python reference's "return None").
type ImplicationFunc func(variable, val1, val2 string) (value float64, ok bool)

type options struct {
	allowMultiple bool
	implicationFn ImplicationFunc
}

// Option configures Dataset construction.
type Option func(*options)

// WithAllowMultiple permits a source to assert more than one value for a
// variable; only the first assertion encountered is kept, later ones are
// silently dropped instead of raising ErrDuplicateAssertion.
func WithAllowMultiple() Option {
	return func(o *options) { o.allowMultiple = true }
}

// WithImplicationFunc supplies the pairwise implication function used to
// build IMP. Without it, Dataset.Imp returns an all-zero matrix.
func WithImplicationFunc(fn ImplicationFunc) Option {
	return func(o *options) { o.implicationFn = fn }
}

// claimKey identifies a claim by its (variable, value) ID pair, used as the
// key for the claim identifier table.
type claimKey struct {
	varID, valID int
}

// Dataset owns the identifier tables and sparse incidence matrices for one
// truth-discovery instance. Datasets are immutable after construction;
// algorithm kernels never mutate SC, MutEx or Imp.
type Dataset struct {
	sourceIDs   *ids.Table[string]
	varIDs      *ids.Table[string]
	valIDs      *ids.Table[string]
	claimIDs    *ids.Table[claimKey]
	sc          *tdmatrix.CSR
	mutEx       *tdmatrix.CSR
	imp         *tdmatrix.CSR // all-zero if no implication function was supplied
	numSources  int
	numVars     int
	numClaims   int
}

// New builds a Dataset from an ordered slice of triples. By default a
// source asserting two values for one variable is rejected with
// ErrDuplicateAssertion; pass WithAllowMultiple to keep only the first.
func New(triples []Triple, opts ...Option) (*Dataset, error) {
	return newFromTriples(triples, nil, nil, opts...)
}

// newFromTriples is New's implementation, with optional presetSources and
// presetVariables labels registered before any triple is processed. This
// lets NewMatrixDataset preserve a source or variable whose every cell is
// masked: without preregistration that label would never appear in any
// triple and so would silently vanish from the dataset, rather than
// surfacing as a source or variable with zero claims.
func newFromTriples(triples []Triple, presetSources, presetVariables []string, opts ...Option) (*Dataset, error) {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	sourceIDs := ids.NewTable[string]()
	varIDs := ids.NewTable[string]()
	valIDs := ids.NewTable[string]()
	claimIDs := ids.NewTable[claimKey]()

	for _, label := range presetSources {
		if _, err := sourceIDs.GetID(label, true); err != nil {
			return nil, err
		}
	}
	for _, label := range presetVariables {
		if _, err := varIDs.GetID(label, true); err != nil {
			return nil, err
		}
	}

	sourceVarSeen := make(map[[2]int]bool)
	mutExGroups := make(map[int]map[int]bool) // varID -> set of claimIDs

	var scRows, scCols []int
	var scVals []float64

	for _, t := range triples {
		sID, err := sourceIDs.GetID(t.Source, true)
		if err != nil {
			return nil, err
		}
		varID, err := varIDs.GetID(t.Variable, true)
		if err != nil {
			return nil, err
		}
		valID, err := valIDs.GetID(t.Value, true)
		if err != nil {
			return nil, err
		}

		key := [2]int{sID, varID}
		if sourceVarSeen[key] {
			if cfg.allowMultiple {
				continue
			}
			return nil, ErrDuplicateAssertion
		}
		sourceVarSeen[key] = true

		claimID, err := claimIDs.GetID(claimKey{varID: varID, valID: valID}, true)
		if err != nil {
			return nil, err
		}

		scRows = append(scRows, sID)
		scCols = append(scCols, claimID)
		scVals = append(scVals, 1)

		if mutExGroups[varID] == nil {
			mutExGroups[varID] = make(map[int]bool)
		}
		mutExGroups[varID][claimID] = true
	}

	numSources := sourceIDs.Count()
	numVars := varIDs.Count()
	numClaims := claimIDs.Count()

	sc, err := buildSC(numSources, numClaims, scRows, scCols, scVals)
	if err != nil {
		return nil, err
	}

	mutEx, err := buildMutEx(numClaims, mutExGroups)
	if err != nil {
		return nil, err
	}

	d := &Dataset{
		sourceIDs:  sourceIDs,
		varIDs:     varIDs,
		valIDs:     valIDs,
		claimIDs:   claimIDs,
		sc:         sc,
		mutEx:      mutEx,
		numSources: numSources,
		numVars:    numVars,
		numClaims:  numClaims,
	}

	if cfg.implicationFn != nil && numClaims > 0 {
		imp, err := buildImp(d, cfg.implicationFn)
		if err != nil {
			return nil, err
		}
		d.imp = imp
	} else {
		// TruthFinder tolerates a zero implication matrix implicitly
		// (spec.md §9); give Imp() a real all-zero CSR rather than nil
		// so kernels never need a special case for "no implication fn".
		zero, err := buildMutEx(numClaims, nil)
		if err != nil {
			return nil, err
		}
		d.imp = zero
	}

	return d, nil
}

func buildSC(numSources, numClaims int, rows, cols []int, vals []float64) (*tdmatrix.CSR, error) {
	// A dataset with zero claims/sources is legal at construction time
	// (EmptyDataset is only raised when an algorithm is later run); give
	// CSR a minimal 1x1 shape in that degenerate case instead of erroring.
	r, c := numSources, numClaims
	if r == 0 {
		r = 1
	}
	if c == 0 {
		c = 1
	}

	return tdmatrix.NewCSR(r, c, rows, cols, vals)
}

func buildMutEx(numClaims int, groups map[int]map[int]bool) (*tdmatrix.CSR, error) {
	c := numClaims
	if c == 0 {
		c = 1
	}

	var rows, cols []int
	var vals []float64
	for _, claims := range groups {
		ordered := make([]int, 0, len(claims))
		for claimID := range claims {
			ordered = append(ordered, claimID)
		}
		for _, i := range ordered {
			for _, j := range ordered {
				rows = append(rows, i)
				cols = append(cols, j)
				vals = append(vals, 1)
			}
		}
	}

	return tdmatrix.NewCSR(c, c, rows, cols, vals)
}

func buildImp(d *Dataset, fn ImplicationFunc) (*tdmatrix.CSR, error) {
	var rows, cols []int
	var vals []float64
	var firstErr error

	d.mutEx.Nonzeros(func(i, j int, val float64) {
		if i == j || val == 0 || firstErr != nil {
			return
		}
		key1, err1 := d.claimIDs.LabelOf(i)
		key2, err2 := d.claimIDs.LabelOf(j)
		if err1 != nil || err2 != nil {
			return
		}
		varLabel, _ := d.varIDs.LabelOf(key1.varID)
		val1Label, _ := d.valIDs.LabelOf(key1.valID)
		val2Label, _ := d.valIDs.LabelOf(key2.valID)

		impVal, ok := fn(varLabel, val1Label, val2Label)
		if !ok {
			return
		}
		if impVal < -1 || impVal > 1 {
			firstErr = ErrBadImplicationValue
			return
		}
		rows = append(rows, i)
		cols = append(cols, j)
		vals = append(vals, impVal)
	})
	if firstErr != nil {
		return nil, firstErr
	}

	c := d.numClaims
	if c == 0 {
		c = 1
	}

	return tdmatrix.NewCSR(c, c, rows, cols, vals)
}

// NumSources returns the number of distinct sources.
func (d *Dataset) NumSources() int { return d.numSources }

// NumVariables returns the number of distinct variables.
func (d *Dataset) NumVariables() int { return d.numVars }

// NumClaims returns the number of distinct (variable, value) claims.
func (d *Dataset) NumClaims() int { return d.numClaims }

// SC returns the |S| x |C| source-claim incidence matrix.
func (d *Dataset) SC() *tdmatrix.CSR { return d.sc }

// MutEx returns the |C| x |C| mutual-exclusion indicator matrix.
func (d *Dataset) MutEx() *tdmatrix.CSR { return d.mutEx }

// Imp returns the |C| x |C| implication matrix. It is all-zero if no
// ImplicationFunc was supplied at construction time.
func (d *Dataset) Imp() *tdmatrix.CSR { return d.imp }

// SourceLabel returns the label registered for source ID id.
func (d *Dataset) SourceLabel(id int) (string, error) { return d.sourceIDs.LabelOf(id) }

// VariableLabel returns the label registered for variable ID id.
func (d *Dataset) VariableLabel(id int) (string, error) { return d.varIDs.LabelOf(id) }

// VariableID returns the ID registered for variable label, without
// inserting it if missing.
func (d *Dataset) VariableID(label string) (int, error) { return d.varIDs.GetID(label, false) }

// BeliefDict converts a claim-indexed belief vector into the
// {variable: {value: belief}} form Result expects.
func (d *Dataset) BeliefDict(claimBelief []float64) (map[string]map[string]float64, error) {
	out := make(map[string]map[string]float64)
	for claimID, score := range claimBelief {
		key, err := d.claimIDs.LabelOf(claimID)
		if err != nil {
			return nil, err
		}
		varLabel, err := d.varIDs.LabelOf(key.varID)
		if err != nil {
			return nil, err
		}
		valLabel, err := d.valIDs.LabelOf(key.valID)
		if err != nil {
			return nil, err
		}
		if out[varLabel] == nil {
			out[varLabel] = make(map[string]float64)
		}
		out[varLabel][valLabel] = score
	}

	return out, nil
}

// TrustDict converts a source-indexed trust vector into the
// {source: trust} form Result expects.
func (d *Dataset) TrustDict(trust []float64) (map[string]float64, error) {
	out := make(map[string]float64, len(trust))
	for sourceID, score := range trust {
		label, err := d.sourceIDs.LabelOf(sourceID)
		if err != nil {
			return nil, err
		}
		out[label] = score
	}

	return out, nil
}
