// Package gonumadapter bridges gonum graphs into metis partitioning
// requests.
//
// METIS wants a packed-adjacency (CSR-like) encoding, which gonum's
// graph types do not expose directly; this package flattens a
// graph.Graph into freshly allocated offsets/adjacency arrays and hands
// them to metis.NewGraph with the constraint count fixed at 1. Weighted
// graphs contribute their (integer-truncated) edge weights.
//
//	g := simple.NewUndirectedGraph()
//	// ... add nodes and edges ...
//	req, n, err := gonumadapter.NewGraph(g, 2)
//	part := make([]metis.Idx, n)
//	edgecut, err := req.PartKway(part)
package gonumadapter
