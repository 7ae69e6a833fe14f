// Package matrix provides the validated square matrix value type used by the
// inverse cache.
//
// # Overview
//
// The package exports one main type and a handful of helpers around it:
//
//   - Matrix: an immutable, row-major, square dense matrix of float64
//   - Identity: the N×N identity, used as the right-hand side when inverting
//   - Fingerprint: a stable 64-bit identity for a matrix value
//
// Matrix values are constructed from [][]float64 input and validated up
// front: nil input, empty input, ragged rows, and non-square shapes are all
// rejected with ErrInvalidMatrix. Once constructed, a Matrix exposes no
// mutators — holders that need to change their matrix replace the whole
// value, which is what makes the cache-invalidation contract in the inverse
// package enforceable.
//
// # Copy Semantics
//
// Constructors deep-copy their input and accessors that return slices
// (Rows, Flat) deep-copy their output. Callers therefore never hold a
// mutable alias into a Matrix's backing storage, and no caller can bypass
// cache invalidation by mutating a matrix in place.
//
// # Fingerprints
//
// Fingerprint hashes a canonical msgpack encoding of the matrix with
// xxhash. Two matrices with the same shape and elements always produce the
// same fingerprint within a process and across processes. Fingerprints are
// used for diagnostics and log correlation, never for cache validity: the
// inverse package invalidates on replacement, not on content comparison.
//
// # Error Handling
//
// All validation failures wrap the ErrInvalidMatrix sentinel and all
// dimension failures wrap ErrDimensionMismatch, so callers can match with
// errors.Is regardless of the contextual message around them.
package matrix
