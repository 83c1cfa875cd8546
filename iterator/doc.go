// See iterator.go for the three Iterator implementations and distance.go
// for the distance measures and ranking-vector helper they share.
package iterator
