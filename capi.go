package metis

// The foreign boundary. Everything that touches cgo lives in this file:
// the METIS entry points, the slot/encoding constants bridged from
// metis.h, pointer/length marshalling, and status interpretation.
//
// METIS takes most scalars by address and may transiently scribble on
// them, so every scalar is copied into a local C variable before the
// call; the Go-side request state is never handed out by address.

/*
#cgo LDFLAGS: -lmetis
#include <stdlib.h>
#include <metis.h>
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Compile-time width checks. These fail to build when libmetis was
// configured with IDXTYPEWIDTH or REALTYPEWIDTH other than 32, or when
// the options vector length disagrees with the installed metis.h.
var (
	_ = [1]struct{}{}[unsafe.Sizeof(Idx(0))-unsafe.Sizeof(C.idx_t(0))]
	_ = [1]struct{}{}[unsafe.Sizeof(Real(0))-unsafe.Sizeof(C.real_t(0))]
	_ = [1]struct{}{}[NOptions-C.METIS_NOPTIONS]
)

// Option slots, bridged from the moptions_et enum.
const (
	optPType     = int(C.METIS_OPTION_PTYPE)
	optObjType   = int(C.METIS_OPTION_OBJTYPE)
	optCType     = int(C.METIS_OPTION_CTYPE)
	optIPType    = int(C.METIS_OPTION_IPTYPE)
	optRType     = int(C.METIS_OPTION_RTYPE)
	optDbgLvl    = int(C.METIS_OPTION_DBGLVL)
	optNIter     = int(C.METIS_OPTION_NITER)
	optNCuts     = int(C.METIS_OPTION_NCUTS)
	optSeed      = int(C.METIS_OPTION_SEED)
	optNo2Hop    = int(C.METIS_OPTION_NO2HOP)
	optMinConn   = int(C.METIS_OPTION_MINCONN)
	optContig    = int(C.METIS_OPTION_CONTIG)
	optCompress  = int(C.METIS_OPTION_COMPRESS)
	optCCOrder   = int(C.METIS_OPTION_CCORDER)
	optPFactor   = int(C.METIS_OPTION_PFACTOR)
	optNSeps     = int(C.METIS_OPTION_NSEPS)
	optUFactor   = int(C.METIS_OPTION_UFACTOR)
	optNumbering = int(C.METIS_OPTION_NUMBERING)
)

// Enum encodings for the typed options.
const (
	ptypeRB   = Idx(C.METIS_PTYPE_RB)
	ptypeKway = Idx(C.METIS_PTYPE_KWAY)

	objtypeCut = Idx(C.METIS_OBJTYPE_CUT)
	objtypeVol = Idx(C.METIS_OBJTYPE_VOL)

	ctypeRM   = Idx(C.METIS_CTYPE_RM)
	ctypeShem = Idx(C.METIS_CTYPE_SHEM)

	iptypeGrow   = Idx(C.METIS_IPTYPE_GROW)
	iptypeRandom = Idx(C.METIS_IPTYPE_RANDOM)
	iptypeEdge   = Idx(C.METIS_IPTYPE_EDGE)
	iptypeNode   = Idx(C.METIS_IPTYPE_NODE)

	rtypeFM        = Idx(C.METIS_RTYPE_FM)
	rtypeGreedy    = Idx(C.METIS_RTYPE_GREEDY)
	rtypeSep2Sided = Idx(C.METIS_RTYPE_SEP2SIDED)
	rtypeSep1Sided = Idx(C.METIS_RTYPE_SEP1SIDED)
)

// idxPtr marshals an optional []Idx argument: absent means a null
// pointer, which METIS reads as "use the uniform default".
func idxPtr(s []Idx) *C.idx_t {
	if len(s) == 0 {
		return nil
	}
	return (*C.idx_t)(unsafe.Pointer(&s[0]))
}

// realPtr marshals an optional []Real argument the same way.
func realPtr(s []Real) *C.real_t {
	if len(s) == 0 {
		return nil
	}
	return (*C.real_t)(unsafe.Pointer(&s[0]))
}

// wrapStatus interprets a METIS return status. Exactly four codes are
// known; anything else means an incompatible libmetis and is fatal rather
// than silently coerced into a known error.
func wrapStatus(fn string, status C.int) error {
	switch status {
	case C.METIS_OK:
		return nil
	case C.METIS_ERROR_INPUT:
		return wrapStatusErr(fn, ErrInput)
	case C.METIS_ERROR_MEMORY:
		return wrapStatusErr(fn, ErrMemory)
	case C.METIS_ERROR:
		return wrapStatusErr(fn, ErrSolver)
	default:
		panic(fmt.Sprintf("metis: unexpected status %d from %s", int(status), fn))
	}
}

// partGraph performs the single foreign call for Graph.PartRecursive and
// Graph.PartKway. Scalars are passed by address into locals so METIS'
// transient mutation cannot leak back into the request.
func partGraph(g *Graph, kway bool, part []Idx) (Idx, error) {
	nvtxs := C.idx_t(g.vertexCount())
	ncon := C.idx_t(g.ncon)
	nparts := C.idx_t(g.nparts)
	var edgecut C.idx_t

	var fn string
	var status C.int
	if kway {
		fn = "METIS_PartGraphKway"
		status = C.METIS_PartGraphKway(
			&nvtxs, &ncon,
			idxPtr(g.xadj), idxPtr(g.adjncy),
			idxPtr(g.vwgt), idxPtr(g.vsize), idxPtr(g.adjwgt),
			&nparts,
			realPtr(g.tpwgts), realPtr(g.ubvec),
			idxPtr(g.options[:]),
			&edgecut, idxPtr(part),
		)
	} else {
		fn = "METIS_PartGraphRecursive"
		status = C.METIS_PartGraphRecursive(
			&nvtxs, &ncon,
			idxPtr(g.xadj), idxPtr(g.adjncy),
			idxPtr(g.vwgt), idxPtr(g.vsize), idxPtr(g.adjwgt),
			&nparts,
			realPtr(g.tpwgts), realPtr(g.ubvec),
			idxPtr(g.options[:]),
			&edgecut, idxPtr(part),
		)
	}
	if err := wrapStatus(fn, status); err != nil {
		return 0, err
	}
	return Idx(edgecut), nil
}

// partMesh performs the single foreign call for Mesh.PartDual and
// Mesh.PartNodal. The nodal entry point has no ncommon parameter; METIS
// ignores the threshold there by construction.
func partMesh(m *Mesh, nodal bool, epart, npart []Idx) (Idx, error) {
	ne := C.idx_t(m.elementCount())
	nn := C.idx_t(m.nn)
	ncommon := C.idx_t(m.ncommon)
	nparts := C.idx_t(m.nparts)
	var edgecut C.idx_t

	var fn string
	var status C.int
	if nodal {
		fn = "METIS_PartMeshNodal"
		status = C.METIS_PartMeshNodal(
			&ne, &nn,
			idxPtr(m.eptr), idxPtr(m.eind),
			idxPtr(m.vwgt), idxPtr(m.vsize),
			&nparts,
			realPtr(m.tpwgts),
			idxPtr(m.options[:]),
			&edgecut, idxPtr(epart), idxPtr(npart),
		)
	} else {
		fn = "METIS_PartMeshDual"
		status = C.METIS_PartMeshDual(
			&ne, &nn,
			idxPtr(m.eptr), idxPtr(m.eind),
			idxPtr(m.vwgt), idxPtr(m.vsize),
			&ncommon, &nparts,
			realPtr(m.tpwgts),
			idxPtr(m.options[:]),
			&edgecut, idxPtr(epart), idxPtr(npart),
		)
	}
	if err := wrapStatus(fn, status); err != nil {
		return 0, err
	}
	return Idx(edgecut), nil
}

// meshToDual performs the METIS_MeshToDual call and adopts the two
// arrays METIS allocates. On any non-OK status METIS allocates nothing,
// so there is nothing to free on the error path. The xadj length is
// known a priori (ne+1); the adjncy length is read from the last
// foreign-written offset rather than re-derived from unvalidated output.
func meshToDual(ne, nn, ncommon Idx, eptr, eind []Idx) (*Dual, error) {
	cne := C.idx_t(ne)
	cnn := C.idx_t(nn)
	cncommon := C.idx_t(ncommon)
	numflag := C.idx_t(NumberingC)
	var cxadj, cadjncy *C.idx_t

	status := C.METIS_MeshToDual(
		&cne, &cnn,
		idxPtr(eptr), idxPtr(eind),
		&cncommon, &numflag,
		&cxadj, &cadjncy,
	)
	if err := wrapStatus("METIS_MeshToDual", status); err != nil {
		return nil, err
	}

	xadj := unsafe.Slice((*Idx)(unsafe.Pointer(cxadj)), int(ne)+1)
	adjncy := unsafe.Slice((*Idx)(unsafe.Pointer(cadjncy)), int(xadj[len(xadj)-1]))
	d := &Dual{
		xadj:    xadj,
		adjncy:  adjncy,
		cxadj:   unsafe.Pointer(cxadj),
		cadjncy: unsafe.Pointer(cadjncy),
	}
	// Backstop for handles dropped without Close; Close is still the
	// contract, the finalizer only prevents leaks.
	runtime.SetFinalizer(d, (*Dual).free)
	return d, nil
}

// metisFree releases one METIS-allocated buffer through the METIS
// deallocator. Buffers adopted from METIS must never reach the Go or C
// standard allocators.
func metisFree(p unsafe.Pointer) {
	if p != nil {
		C.METIS_Free(p)
	}
}
