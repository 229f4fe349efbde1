// Package matrix provides a value-typed, copy-on-write dense matrix over a
// shared column-major buffer, together with the direct factorizations that
// operate on it in place: Householder QR, Cholesky (LLᵀ), Hessenberg
// similarity reduction, and triangular back/forward substitution.
//
// A Dense is deliberately a plain struct, not a pointer: assigning one Dense
// to another (`b := a`) copies the header (shape, stride, offset, CoW
// policy) but the two values keep pointing at the same underlying buffer
// until one of them is written through. Go has no copy constructors, so the
// places where the original algorithms relied on an aliasing assignment
// (the C++ source this package is adapted from) call Alias explicitly
// instead of a bare `:=`; see Dense.Alias.
package matrix
