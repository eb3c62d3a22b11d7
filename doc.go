// Package metis provides safe, idiomatic Go bindings for METIS, the
// multilevel graph and mesh partitioning library from the Karypis Lab.
//
// METIS itself is an unsafe C library: it takes flat integer/float arrays
// in a packed-adjacency (CSR-like) layout and will corrupt memory or crash
// the process on malformed input. This package is the safety layer in
// front of it. Before any C call it proves that the arrays describe a
// structurally valid graph or mesh, it marshals every optional argument
// with the exact pointer/length contract METIS expects, and it adopts any
// METIS-allocated output into an owning handle that frees it through the
// METIS allocator exactly once.
//
// # Quick start
//
// Partition a two-vertex graph with one edge into two parts:
//
//	xadj := []metis.Idx{0, 1, 2}
//	adjncy := []metis.Idx{1, 0}
//
//	g, err := metis.NewGraph(1, 2, xadj, adjncy)
//	if err != nil {
//		// the arrays do not describe a valid graph
//	}
//
//	part := make([]metis.Idx, 2)
//	edgecut, err := g.PartRecursive(part)
//	// part[0] != part[1], edgecut == 1
//
// # Safety contract
//
// A Graph or Mesh request holds the caller's arrays for its whole
// lifetime and is consumed by exactly one terminal Part* call. METIS may
// transiently mutate the adjacency arrays during a call and restores them
// before returning, so nothing else may touch them while a solve is in
// flight; the request enforces this with a runtime guard that panics on
// reuse or concurrent solving. Wrong-length attribute or output arrays
// are programming errors and panic immediately; only genuinely external
// problems (malformed input, solver failure, out of memory) surface as
// errors.
//
// Validation failures carry one of eight structural sentinel errors, all
// of which also match ErrInput under errors.Is for callers that do not
// need the detail.
//
// # Build requirements
//
// Requires CGo and libmetis built with the stock 32-bit index and real
// types (IDXTYPEWIDTH 32, REALTYPEWIDTH 32); other widths are rejected at
// compile time. Link with -lmetis (the default, see capi.go).
//
// The adapter for gonum graphs lives in the gonumadapter subpackage, and
// cmd/gpart is a small CLI over the METIS ASCII graph format.
package metis
