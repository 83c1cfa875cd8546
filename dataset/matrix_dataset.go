package dataset

import "strconv"

// MaskValue is the grid cell meaning "no claim here", per spec.md §6's
// matrix input format.
const MaskValue = ""

// NewMatrixDataset builds a Dataset from a masked 2-D grid: row i is
// source i's assertions, column j is variable j, and a cell equal to
// MaskValue means the source makes no claim about that variable. Source
// and variable labels are their row/column index, stringified, matching
// the Python reference implementation's MatrixDataset.
func NewMatrixDataset(grid [][]string, opts ...Option) (*Dataset, error) {
	triples, err := gridToTriples(grid)
	if err != nil {
		return nil, err
	}

	sourceLabels := make([]string, len(grid))
	for i := range grid {
		sourceLabels[i] = strconv.Itoa(i)
	}
	var varLabels []string
	if len(grid) > 0 {
		varLabels = make([]string, len(grid[0]))
		for j := range grid[0] {
			varLabels[j] = strconv.Itoa(j)
		}
	}

	return newFromTriples(triples, sourceLabels, varLabels, opts...)
}

func gridToTriples(grid [][]string) ([]Triple, error) {
	if len(grid) == 0 {
		return nil, nil
	}
	width := len(grid[0])
	var triples []Triple
	for i, row := range grid {
		if len(row) != width {
			return nil, ErrBadShape
		}
		source := strconv.Itoa(i)
		for j, val := range row {
			if val == MaskValue {
				continue
			}
			triples = append(triples, Triple{
				Source:   source,
				Variable: strconv.Itoa(j),
				Value:    val,
			})
		}
	}

	return triples, nil
}
