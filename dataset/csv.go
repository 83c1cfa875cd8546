package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// LoadCSV parses the unsupervised CSV format of spec.md §6 (one source per
// row, variables as columns, empty cells meaning no claim) and builds a
// Dataset from it.
func LoadCSV(r io.Reader, opts ...Option) (*Dataset, error) {
	grid, err := readGrid(r)
	if err != nil {
		return nil, err
	}

	return NewMatrixDataset(grid, opts...)
}

// LoadSupervisedCSV parses the supervised CSV variant of spec.md §6: the
// first row holds true values (empty cells allowed, meaning unknown),
// subsequent rows are sources. It returns the built Dataset together with
// the {variable_label: true_value} map evaluator.New expects.
func LoadSupervisedCSV(r io.Reader, opts ...Option) (*Dataset, map[string]string, error) {
	grid, err := readGrid(r)
	if err != nil {
		return nil, nil, err
	}
	if len(grid) == 0 {
		return nil, nil, ErrBadShape
	}

	truthRow := grid[0]
	sourceRows := grid[1:]

	d, err := NewMatrixDataset(sourceRows, opts...)
	if err != nil {
		return nil, nil, err
	}

	trueValues := make(map[string]string)
	for j, val := range truthRow {
		if val == MaskValue {
			continue
		}
		trueValues[fmt.Sprint(j)] = val
	}

	return d, trueValues, nil
}

func readGrid(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // validate width manually, so we can name the offending row
	reader.TrimLeadingSpace = true

	var grid [][]string
	width := -1
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: csv row %d: %w", row, err)
		}
		for i, cell := range record {
			record[i] = strings.TrimSpace(cell)
		}
		if width == -1 {
			width = len(record)
		} else if len(record) != width {
			return nil, fmt.Errorf("dataset: csv row %d: %w (expected %d entries, got %d)",
				row, ErrBadShape, width, len(record))
		}
		grid = append(grid, record)
		row++
	}

	return grid, nil
}

// ToCSV renders the dataset back into the unsupervised CSV format, using
// each claimed value's label as the cell text and empty cells for
// no-claim entries. Source and variable ordering follows their dense IDs.
func (d *Dataset) ToCSV(w io.Writer) error {
	grid := make([][]string, d.numSources)
	for i := range grid {
		grid[i] = make([]string, d.numVars)
	}

	var rangeErr error
	d.sc.Nonzeros(func(sourceID, claimID int, val float64) {
		if val == 0 || rangeErr != nil {
			return
		}
		key, err := d.claimIDs.LabelOf(claimID)
		if err != nil {
			rangeErr = err
			return
		}
		valLabel, err := d.valIDs.LabelOf(key.valID)
		if err != nil {
			rangeErr = err
			return
		}
		grid[sourceID][key.varID] = valLabel
	})
	if rangeErr != nil {
		return rangeErr
	}

	writer := csv.NewWriter(w)
	for _, row := range grid {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()

	return writer.Error()
}
