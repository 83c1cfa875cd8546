package tdmatrix

import "sort"

// CSR is an immutable compressed-sparse-row float64 matrix. Construct with
// NewCSR; all methods are read-only, matching the dataset package's
// "datasets are immutable after construction" contract.
type CSR struct {
	rows, cols int
	rowPtr     []int     // len rows+1; row r's entries are [rowPtr[r], rowPtr[r+1])
	colIdx     []int     // len nnz, column index per entry, sorted within each row
	vals       []float64 // len nnz, value per entry
}

type triplet struct {
	row, col int
	val      float64
}

// NewCSR builds a CSR matrix of shape rows x cols from parallel
// rowIdx/colIdx/vals slices (COO-style triplets). Duplicate (row, col) pairs
// are summed, matching scipy.sparse's csr_matrix constructor behaviour.
func NewCSR(rows, cols int, rowIdx, colIdx []int, vals []float64) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if len(rowIdx) != len(colIdx) || len(colIdx) != len(vals) {
		return nil, ErrDimensionMismatch
	}

	triplets := make([]triplet, len(vals))
	for i := range vals {
		if rowIdx[i] < 0 || rowIdx[i] >= rows || colIdx[i] < 0 || colIdx[i] >= cols {
			return nil, ErrIndexOutOfRange
		}
		triplets[i] = triplet{row: rowIdx[i], col: colIdx[i], val: vals[i]}
	}
	sort.Slice(triplets, func(i, j int) bool {
		if triplets[i].row != triplets[j].row {
			return triplets[i].row < triplets[j].row
		}
		return triplets[i].col < triplets[j].col
	})

	// Merge duplicates and build the compressed form in one pass.
	m := &CSR{rows: rows, cols: cols, rowPtr: make([]int, rows+1)}
	for i := 0; i < len(triplets); {
		j := i + 1
		sum := triplets[i].val
		for j < len(triplets) && triplets[j].row == triplets[i].row && triplets[j].col == triplets[i].col {
			sum += triplets[j].val
			j++
		}
		m.colIdx = append(m.colIdx, triplets[i].col)
		m.vals = append(m.vals, sum)
		m.rowPtr[triplets[i].row+1]++
		i = j
	}
	for r := 0; r < rows; r++ {
		m.rowPtr[r+1] += m.rowPtr[r]
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return m.cols }

// NNZ returns the number of stored entries after duplicate merging; an
// entry whose merged sum is zero is still stored and counted.
func (m *CSR) NNZ() int { return len(m.vals) }

// At returns the value at (row, col), or 0 if not stored.
func (m *CSR) At(row, col int) (float64, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, ErrIndexOutOfRange
	}
	lo, hi := m.rowPtr[row], m.rowPtr[row+1]
	for i := lo; i < hi; i++ {
		if m.colIdx[i] == col {
			return m.vals[i], nil
		}
	}

	return 0, nil
}

// RowNonzeros invokes fn(col, val) for every stored entry in row.
func (m *CSR) RowNonzeros(row int, fn func(col int, val float64)) {
	for i := m.rowPtr[row]; i < m.rowPtr[row+1]; i++ {
		fn(m.colIdx[i], m.vals[i])
	}
}

// Nonzeros invokes fn(row, col, val) for every stored entry in the matrix,
// in row-major order.
func (m *CSR) Nonzeros(fn func(row, col int, val float64)) {
	for r := 0; r < m.rows; r++ {
		m.RowNonzeros(r, func(col int, val float64) { fn(r, col, val) })
	}
}

// MatVec computes A*v. len(v) must equal Cols(); the result has length
// Rows().
func (m *CSR) MatVec(v []float64) ([]float64, error) {
	if len(v) != m.cols {
		return nil, ErrDimensionMismatch
	}
	out := make([]float64, m.rows)
	for r := 0; r < m.rows; r++ {
		var sum float64
		for i := m.rowPtr[r]; i < m.rowPtr[r+1]; i++ {
			sum += m.vals[i] * v[m.colIdx[i]]
		}
		out[r] = sum
	}

	return out, nil
}

// MatVecT computes A^T*v without materialising the transpose. len(v) must
// equal Rows(); the result has length Cols().
func (m *CSR) MatVecT(v []float64) ([]float64, error) {
	if len(v) != m.rows {
		return nil, ErrDimensionMismatch
	}
	out := make([]float64, m.cols)
	for r := 0; r < m.rows; r++ {
		if v[r] == 0 {
			continue
		}
		for i := m.rowPtr[r]; i < m.rowPtr[r+1]; i++ {
			out[m.colIdx[i]] += m.vals[i] * v[r]
		}
	}

	return out, nil
}

// RowSums returns the sum of each row, e.g. SC's per-source claim counts.
func (m *CSR) RowSums() []float64 {
	out := make([]float64, m.rows)
	for r := 0; r < m.rows; r++ {
		var sum float64
		for i := m.rowPtr[r]; i < m.rowPtr[r+1]; i++ {
			sum += m.vals[i]
		}
		out[r] = sum
	}

	return out
}

// RowNormalize returns a new CSR where every row has been divided by its own
// row sum (rows with a zero sum are left as all-zero). Used to build
// TruthFinder's row-normalised source-claim matrix.
func (m *CSR) RowNormalize() *CSR {
	sums := m.RowSums()
	out := &CSR{rows: m.rows, cols: m.cols, rowPtr: append([]int(nil), m.rowPtr...)}
	out.colIdx = append([]int(nil), m.colIdx...)
	out.vals = make([]float64, len(m.vals))
	for r := 0; r < m.rows; r++ {
		if sums[r] == 0 {
			continue
		}
		for i := m.rowPtr[r]; i < m.rowPtr[r+1]; i++ {
			out.vals[i] = m.vals[i] / sums[r]
		}
	}

	return out
}

// ScaleColumns returns a new CSR whose nonzero entry (r, c) has been
// multiplied by factor[c]. len(factor) must equal Cols(). This realises
// spec.md §9's Open Question resolution: Investment's trust update scales
// SC column-wise by 1/ci, not row-wise.
func (m *CSR) ScaleColumns(factor []float64) (*CSR, error) {
	if len(factor) != m.cols {
		return nil, ErrDimensionMismatch
	}
	out := &CSR{
		rows:   m.rows,
		cols:   m.cols,
		rowPtr: append([]int(nil), m.rowPtr...),
		colIdx: append([]int(nil), m.colIdx...),
		vals:   make([]float64, len(m.vals)),
	}
	for i, c := range m.colIdx {
		out.vals[i] = m.vals[i] * factor[c]
	}

	return out, nil
}

// IsSymmetric reports whether m is square and m[i][j] == m[j][i] for all
// stored entries (used to test MUT_EX's invariant).
func (m *CSR) IsSymmetric() bool {
	if m.rows != m.cols {
		return false
	}
	ok := true
	m.Nonzeros(func(row, col int, val float64) {
		other, err := m.At(col, row)
		if err != nil || other != val {
			ok = false
		}
	})

	return ok
}
