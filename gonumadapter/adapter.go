package gonumadapter

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"

	"github.com/gopartition/metis"
)

// ErrLoop indicates the gonum graph contains a self-loop, which METIS
// does not accept.
var ErrLoop = errors.New("gonumadapter: self-loops are not supported")

// NewGraph flattens g into packed-adjacency form and returns a validated
// metis partitioning request for nparts parts, along with the vertex
// count (the required length of the part output array).
//
// Node ids may be arbitrary int64 values; they are mapped onto dense
// zero-based METIS indices in ascending id order, so part i of the
// output corresponds to the i-th smallest node id. Undirected graphs
// yield the symmetric adjacency METIS expects; a directed graph is
// accepted but must itself be symmetric, which is not verified (the
// same contract the metis package documents for hand-built arrays).
//
// When g implements graph.Weighted, edge weights are attached via
// SetAdjwgt, truncated to integers; METIS requires strictly positive
// weights, so fractional weights below 1 round up to 1. The constraint
// count is fixed at 1.
func NewGraph(g graph.Graph, nparts metis.Idx) (*metis.Graph, int, error) {
	ids := denseIDs(g)
	n := len(ids)

	index := make(map[int64]metis.Idx, n)
	for i, id := range ids {
		index[id] = metis.Idx(i)
	}

	weighted, _ := g.(graph.Weighted)

	xadj := make([]metis.Idx, 1, n+1)
	adjncy := make([]metis.Idx, 0, n)
	var adjwgt []metis.Idx
	if weighted != nil {
		adjwgt = make([]metis.Idx, 0, n)
	}

	for _, id := range ids {
		to := g.From(id)
		// Deterministic neighbour order keeps the flattening
		// reproducible run to run. Len may be -1 for streaming
		// iterators.
		neighbours := make([]int64, 0, max(to.Len(), 0))
		for to.Next() {
			neighbours = append(neighbours, to.Node().ID())
		}
		sort.Slice(neighbours, func(i, j int) bool { return neighbours[i] < neighbours[j] })

		for _, nid := range neighbours {
			if nid == id {
				return nil, 0, fmt.Errorf("%w: node %d", ErrLoop, id)
			}
			adjncy = append(adjncy, index[nid])
			if weighted != nil {
				w, _ := weighted.Weight(id, nid)
				iw := metis.Idx(w)
				if iw < 1 {
					iw = 1
				}
				adjwgt = append(adjwgt, iw)
			}
		}
		xadj = append(xadj, metis.Idx(len(adjncy)))
	}

	req, err := metis.NewGraph(1, nparts, xadj, adjncy)
	if err != nil {
		return nil, 0, err
	}
	if adjwgt != nil {
		req.SetAdjwgt(adjwgt)
	}
	return req, n, nil
}

// denseIDs returns the graph's node ids in ascending order.
func denseIDs(g graph.Graph) []int64 {
	nodes := g.Nodes()
	ids := make([]int64, 0, max(nodes.Len(), 0))
	for nodes.Next() {
		ids = append(ids, nodes.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
