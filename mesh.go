package metis

import (
	"fmt"
	"sync/atomic"
)

// Mesh is a request to partition a mesh, mirroring Graph. The
// packed-adjacency arrays here are the element-node arrays: run i of
// eind (positions eptr[i]..eptr[i+1]) lists the nodes composing element
// i. The node count is derived from the arrays (max node index + 1), not
// supplied; there is no constraint count for meshes.
type Mesh struct {
	// nn is the derived number of nodes in the mesh.
	nn Idx

	// nparts is the number of parts to partition into.
	nparts Idx

	// ncommon is the number of nodes two elements must share for an edge
	// to appear in the dual graph. Only dual-graph partitioning uses it.
	ncommon Idx

	// eptr and eind are the mesh element-node arrays.
	eptr []Idx
	eind []Idx

	// vwgt holds the computational element weights. Length ne.
	vwgt []Idx

	// vsize holds the communication sizes of the elements. Length ne.
	vsize []Idx

	// tpwgts holds the target weight fractions. Length nparts.
	tpwgts []Real

	// options is the fine-tuning vector, -1 meaning solver default.
	options [NOptions]Idx

	// state implements the single-writer / consume-once discipline.
	state int32
}

// NewMesh creates a mesh partitioning request after fully validating the
// element-node structure (see CheckMesh). The node count is derived from
// eind. The returned request has no attribute arrays attached, the
// shared-node threshold at its default of 1, and all options at their
// solver defaults.
//
// The request keeps eptr and eind (not copies); the aliasing contract of
// Graph applies.
func NewMesh(nparts Idx, eptr, eind []Idx) (*Mesh, error) {
	_, nn, err := CheckMesh(nparts, eptr, eind)
	if err != nil {
		return nil, err
	}
	return newMesh(nn, nparts, eptr, eind), nil
}

// NewMeshUnchecked creates a mesh partitioning request without the
// CheckMesh validation. The caller asserts the structure is valid;
// feeding an invalid mesh to METIS can corrupt memory or crash the
// process.
//
// The cheap shape checks still run unconditionally and panic on
// violation (positive nparts, non-empty eptr, lengths representable in
// Idx, len(eind) equal to the last offset). The node count is still
// derived by scanning eind, since output-array lengths depend on it.
func NewMeshUnchecked(nparts Idx, eptr, eind []Idx) *Mesh {
	assertPositive("nparts", nparts)
	assertIdxLen("eptr", len(eptr))
	if len(eptr) == 0 {
		panic("metis: eptr must not be empty")
	}
	last := eptr[len(eptr)-1]
	if eindLen := assertIdxLen("eind", len(eind)); eindLen != last {
		panic(fmt.Sprintf("metis: eind length %d does not match last offset %d", eindLen, last))
	}
	var nn Idx
	for _, v := range eind {
		if v >= nn {
			nn = v + 1
		}
	}
	return newMesh(nn, nparts, eptr, eind)
}

func newMesh(nn, nparts Idx, eptr, eind []Idx) *Mesh {
	return &Mesh{
		nn:      nn,
		nparts:  nparts,
		ncommon: 1,
		eptr:    eptr,
		eind:    eind,
		options: defaultOptions(),
	}
}

// elementCount returns the number of elements described by eptr.
func (m *Mesh) elementCount() Idx {
	return Idx(len(m.eptr) - 1)
}

func (m *Mesh) mutable(method string) {
	if atomic.LoadInt32(&m.state) != stateIdle {
		panic(fmt.Sprintf("metis: %s on a consumed or in-flight request", method))
	}
}

func (m *Mesh) checkout(method string) {
	if !atomic.CompareAndSwapInt32(&m.state, stateIdle, stateSolving) {
		panic(fmt.Sprintf("metis: %s on a consumed or in-flight request", method))
	}
}

// SetVwgt attaches the computational weights of the elements. By default
// all elements weigh the same. Panics unless len(vwgt) is the element
// count.
func (m *Mesh) SetVwgt(vwgt []Idx) *Mesh {
	m.mutable("SetVwgt")
	assertLen("vwgt", len(vwgt), m.elementCount())
	m.vwgt = vwgt
	return m
}

// SetVsize attaches the communication sizes of the elements. By default
// all elements have the same size. Panics unless len(vsize) is the
// element count.
func (m *Mesh) SetVsize(vsize []Idx) *Mesh {
	m.mutable("SetVsize")
	assertLen("vsize", len(vsize), m.elementCount())
	m.vsize = vsize
	return m
}

// SetTpwgts attaches the target weight fraction for each part. By
// default the mesh is divided equally. Panics unless len(tpwgts) equals
// nparts.
func (m *Mesh) SetTpwgts(tpwgts []Real) *Mesh {
	m.mutable("SetTpwgts")
	assertLen("tpwgts", len(tpwgts), m.nparts)
	m.tpwgts = tpwgts
	return m
}

// SetNcommon sets the number of nodes two elements must share for an
// edge to appear in the dual graph. Defaults to 1; PartNodal ignores it.
// Panics unless ncommon is strictly positive.
func (m *Mesh) SetNcommon(ncommon Idx) *Mesh {
	m.mutable("SetNcommon")
	assertPositive("ncommon", ncommon)
	m.ncommon = ncommon
	return m
}

// SetOption sets one fine-tuning parameter; see Graph.SetOption.
func (m *Mesh) SetOption(o Option) *Mesh {
	m.mutable("SetOption")
	m.options[o.slot()] = o.encode()
	return m
}

// SetOptions replaces the whole fine-tuning vector; see
// Graph.SetOptions.
func (m *Mesh) SetOptions(options [NOptions]Idx) *Mesh {
	m.mutable("SetOptions")
	m.options = options
	return m
}

// PartDual partitions the mesh through its dual graph
// (METIS_PartMeshDual), honouring the shared-node threshold. The part of
// each element lands in epart and the part of each node in npart; the
// return value is the objective value (edge-cut or communication volume)
// of the dual-graph solution.
//
// The request is consumed whether or not the call succeeds. Panics
// unless len(epart) is the element count and len(npart) the node count.
func (m *Mesh) PartDual(epart, npart []Idx) (Idx, error) {
	return m.part(false, epart, npart)
}

// PartNodal partitions the mesh through its nodal graph
// (METIS_PartMeshNodal). A previously set shared-node threshold is not
// used. Outputs and consumption behave as in PartDual.
func (m *Mesh) PartNodal(epart, npart []Idx) (Idx, error) {
	return m.part(true, epart, npart)
}

func (m *Mesh) part(nodal bool, epart, npart []Idx) (Idx, error) {
	method := "PartDual"
	if nodal {
		method = "PartNodal"
	}
	m.checkout(method)
	defer atomic.StoreInt32(&m.state, stateConsumed)

	assertLen("epart", len(epart), m.elementCount())
	assertLen("npart", len(npart), m.nn)

	// All validated input is zero-based; override any caller-set
	// numbering.
	m.options[optNumbering] = NumberingC.encode()

	// METIS mishandles nparts == 1; the answer is trivial anyway.
	if m.nparts == 1 {
		zeroFill(epart)
		zeroFill(npart)
		return 0, nil
	}

	snap := snapshotArrays(m.eptr, m.eind)
	edgecut, err := partMesh(m, nodal, epart, npart)
	verifyRestored(method, snap, m.eptr, m.eind)
	return edgecut, err
}
