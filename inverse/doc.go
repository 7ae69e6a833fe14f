// Package inverse provides a memoized matrix-inversion helper: a Holder
// that owns a mutable square matrix together with an optional cached
// inverse, and a Solver that computes the inverse once and serves it from
// the cache until the matrix is replaced.
//
// # Overview
//
// The package exports three main pieces:
//
//   - Holder: owns the matrix and the single-slot inverse cache
//   - Solver: the memoized solve operation over a Holder
//   - LinearSolver: the pluggable solve primitive (A×X = B)
//
// The cache-invalidation contract is the heart of the package: whenever a
// Holder's matrix is replaced through SetMatrix, the cached inverse is
// cleared in the same critical section. The Solver trusts that contract
// completely — a cache hit is returned without re-checking the matrix,
// which is what makes the hit path O(1).
//
// # Basic Usage
//
//	holder, err := inverse.NewHolder([][]float64{{3, 0}, {1, 2}})
//	if err != nil {
//		return err
//	}
//
//	solver, err := inverse.NewSolver(inverse.DefaultConfig())
//	if err != nil {
//		return err
//	}
//
//	inv, err := solver.Solve(holder) // computes and caches
//	inv, err = solver.Solve(holder)  // served from cache, no recomputation
//
//	if err := holder.SetMatrix(next); err != nil { // clears the cache
//		return err
//	}
//	inv, err = solver.Solve(holder) // recomputes for the new matrix
//
// # Caching Behavior
//
// The cache is a single slot with no capacity, expiration or eviction
// semantics: a computed inverse is held until SetMatrix (or
// Solver.Invalidate) clears it. On a miss the Solver reads the matrix,
// builds the same-dimension identity and asks the LinearSolver for X such
// that matrix×X = identity, then stores X back into the Holder. On a hit
// it returns the stored value immediately.
//
// # Concurrency
//
// Holders are safe for concurrent use. Reads take a reader-biased lock
// (the hit path is read-only); SetMatrix and the Solver's miss path hold
// the write lock, so a concurrent matrix replacement can never interleave
// between computing an inverse and storing it. A stale inverse is therefore
// never cached against a newer matrix.
//
// # Diagnostics
//
// The Solver writes one structured log entry per call — "cache hit",
// "cache miss" or "cache invalidated" — tagged with the holder ID, the
// matrix dimension and the matrix fingerprint. The entries exist for
// observability and tests; they never influence return values.
//
// # Error Handling
//
// Invalid input to NewHolder or SetMatrix fails with
// matrix.ErrInvalidMatrix and leaves prior state untouched. A singular
// matrix surfaces from Solve as matrix.ErrSingular with the cache left
// absent, so a later call can retry after the caller repairs the matrix.
// Nothing is swallowed or retried internally.
package inverse
