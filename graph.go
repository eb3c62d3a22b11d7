package metis

import (
	"fmt"
	"sync/atomic"
)

// Request lifecycle states. A request is built while idle, checked out
// for the duration of the single foreign call, and consumed afterwards.
const (
	stateIdle int32 = iota
	stateSolving
	stateConsumed
)

// Graph is a request to partition a graph, in the builder style: it
// holds the caller's packed-adjacency arrays, the optional attribute
// arrays, and the fine-tuning options, and is consumed by exactly one
// terminal call (PartRecursive or PartKway).
//
// The request borrows the caller's slices rather than copying them:
// METIS may transiently mutate the adjacency arrays during the call and
// restores them before returning, so the caller must not touch any
// attached array between construction and the terminal call. The
// lifecycle guard panics on mutation after consumption and on concurrent
// terminal calls, but it cannot see aliasing outside the request.
type Graph struct {
	// ncon is the number of balancing constraints.
	ncon Idx

	// nparts is the number of parts to partition into.
	nparts Idx

	// xadj and adjncy are the packed-adjacency arrays; run i of adjncy
	// (positions xadj[i]..xadj[i+1]) lists the neighbours of vertex i.
	xadj   []Idx
	adjncy []Idx

	// vwgt holds the computational vertex weights. Length ncon*nvtxs.
	vwgt []Idx

	// vsize holds the communication sizes of the vertices. Length nvtxs.
	vsize []Idx

	// adjwgt holds the edge weights. Length len(adjncy).
	adjwgt []Idx

	// tpwgts holds the target weight fractions. Length ncon*nparts.
	tpwgts []Real

	// ubvec holds the per-constraint imbalance tolerances. Length ncon.
	ubvec []Real

	// options is the fine-tuning vector, -1 meaning solver default.
	options [NOptions]Idx

	// state implements the single-writer / consume-once discipline.
	state int32
}

// NewGraph creates a partitioning request after fully validating the
// packed-adjacency structure (see CheckGraph). The returned request has
// no attribute arrays attached and all options at their solver defaults.
//
// The request keeps xadj and adjncy (not copies); see the Graph type for
// the aliasing contract.
func NewGraph(ncon, nparts Idx, xadj, adjncy []Idx) (*Graph, error) {
	if _, err := CheckGraph(ncon, nparts, xadj, adjncy); err != nil {
		return nil, err
	}
	return newGraph(ncon, nparts, xadj, adjncy), nil
}

// NewGraphUnchecked creates a partitioning request without the CheckGraph
// validation. The caller asserts the structure is valid; feeding an
// invalid graph to METIS can corrupt memory or crash the process.
//
// The cheap shape checks still run unconditionally and panic on
// violation, because pointer/length marshalling is unsound without them:
// ncon and nparts strictly positive, xadj non-empty, array lengths
// representable in Idx, len(adjncy) equal to the last offset.
func NewGraphUnchecked(ncon, nparts Idx, xadj, adjncy []Idx) *Graph {
	assertPositive("ncon", ncon)
	assertPositive("nparts", nparts)
	assertIdxLen("xadj", len(xadj))
	if len(xadj) == 0 {
		panic("metis: xadj must not be empty")
	}
	last := xadj[len(xadj)-1]
	if adjncyLen := assertIdxLen("adjncy", len(adjncy)); adjncyLen != last {
		panic(fmt.Sprintf("metis: adjncy length %d does not match last offset %d", adjncyLen, last))
	}
	return newGraph(ncon, nparts, xadj, adjncy)
}

func newGraph(ncon, nparts Idx, xadj, adjncy []Idx) *Graph {
	return &Graph{
		ncon:    ncon,
		nparts:  nparts,
		xadj:    xadj,
		adjncy:  adjncy,
		options: defaultOptions(),
	}
}

// vertexCount returns the number of vertices described by xadj.
func (g *Graph) vertexCount() Idx {
	return Idx(len(g.xadj) - 1)
}

// mutable panics unless the request is still idle; builder methods must
// not race with or follow the terminal call.
func (g *Graph) mutable(method string) {
	if atomic.LoadInt32(&g.state) != stateIdle {
		panic(fmt.Sprintf("metis: %s on a consumed or in-flight request", method))
	}
}

// checkout transitions idle→solving, panicking when the request is
// already solving or consumed. The matching consume is unconditional:
// one terminal attempt per request, successful or not.
func (g *Graph) checkout(method string) {
	if !atomic.CompareAndSwapInt32(&g.state, stateIdle, stateSolving) {
		panic(fmt.Sprintf("metis: %s on a consumed or in-flight request", method))
	}
}

// SetVwgt attaches the computational weights of the vertices. By default
// all vertices weigh the same. Panics unless len(vwgt) is ncon times the
// vertex count.
func (g *Graph) SetVwgt(vwgt []Idx) *Graph {
	g.mutable("SetVwgt")
	assertLen("vwgt", len(vwgt), g.ncon*g.vertexCount())
	g.vwgt = vwgt
	return g
}

// SetVsize attaches the communication sizes of the vertices. By default
// all vertices have the same size. Panics unless len(vsize) is the
// vertex count.
func (g *Graph) SetVsize(vsize []Idx) *Graph {
	g.mutable("SetVsize")
	assertLen("vsize", len(vsize), g.vertexCount())
	g.vsize = vsize
	return g
}

// SetAdjwgt attaches the edge weights. By default all edges weigh the
// same. Panics unless len(adjwgt) equals len(adjncy).
func (g *Graph) SetAdjwgt(adjwgt []Idx) *Graph {
	g.mutable("SetAdjwgt")
	assertLen("adjwgt", len(adjwgt), Idx(len(g.adjncy)))
	g.adjwgt = adjwgt
	return g
}

// SetTpwgts attaches the target weight fraction for each part and
// constraint. By default the graph is divided equally. Panics unless
// len(tpwgts) equals ncon times nparts.
func (g *Graph) SetTpwgts(tpwgts []Real) *Graph {
	g.mutable("SetTpwgts")
	assertLen("tpwgts", len(tpwgts), g.ncon*g.nparts)
	g.tpwgts = tpwgts
	return g
}

// SetUbvec attaches the load imbalance tolerance for each constraint.
// The METIS default is 1.001 for one constraint and 1.01 otherwise.
// Panics unless len(ubvec) equals ncon.
func (g *Graph) SetUbvec(ubvec []Real) *Graph {
	g.mutable("SetUbvec")
	assertLen("ubvec", len(ubvec), g.ncon)
	g.ubvec = ubvec
	return g
}

// SetOption sets one fine-tuning parameter. See the Option
// implementations for the available parameters; not every parameter
// applies to every partitioning method, and METIS is the authority on
// which combinations are meaningful.
func (g *Graph) SetOption(o Option) *Graph {
	g.mutable("SetOption")
	g.options[o.slot()] = o.encode()
	return g
}

// SetOptions replaces the whole fine-tuning vector. Slots at -1 keep the
// solver default; SetOption is the better fit for setting a few values.
func (g *Graph) SetOptions(options [NOptions]Idx) *Graph {
	g.mutable("SetOptions")
	g.options = options
	return g
}

// PartRecursive partitions the graph by multilevel recursive bisection
// (METIS_PartGraphRecursive) and stores the part of each vertex in part.
// It returns the edge-cut or, under ObjectiveVolume, the total
// communication volume of the solution.
//
// The request is consumed whether or not the call succeeds. Panics
// unless len(part) equals the vertex count.
func (g *Graph) PartRecursive(part []Idx) (Idx, error) {
	return g.part(false, part)
}

// PartKway partitions the graph by multilevel k-way partitioning
// (METIS_PartGraphKway) and stores the part of each vertex in part. It
// returns the edge-cut or, under ObjectiveVolume, the total
// communication volume of the solution.
//
// The request is consumed whether or not the call succeeds. Panics
// unless len(part) equals the vertex count.
func (g *Graph) PartKway(part []Idx) (Idx, error) {
	return g.part(true, part)
}

func (g *Graph) part(kway bool, part []Idx) (Idx, error) {
	method := "PartRecursive"
	if kway {
		method = "PartKway"
	}
	g.checkout(method)
	defer atomic.StoreInt32(&g.state, stateConsumed)

	assertLen("part", len(part), g.vertexCount())

	// All validated input is zero-based; override any caller-set
	// numbering.
	g.options[optNumbering] = NumberingC.encode()

	// METIS mishandles nparts == 1; the answer is trivial anyway.
	if g.nparts == 1 {
		zeroFill(part)
		return 0, nil
	}

	snap := snapshotArrays(g.xadj, g.adjncy)
	edgecut, err := partGraph(g, kway, part)
	verifyRestored(method, snap, g.xadj, g.adjncy)
	return edgecut, err
}

// zeroFill assigns every entry to part 0, the whole solution when only
// one part is requested.
func zeroFill(part []Idx) {
	for i := range part {
		part[i] = 0
	}
}
