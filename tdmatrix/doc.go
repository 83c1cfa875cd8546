// See csr.go for the CSR type and vecops.go for the dense-vector helpers
// built on top of it.
package tdmatrix
