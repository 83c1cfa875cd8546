// See dataset.go for the core Dataset type and builder, matrix_dataset.go
// for the masked-grid constructor, and csv.go for the CSV wire format.
package dataset
