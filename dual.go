package metis

import (
	"runtime"
	"unsafe"
)

// Dual is the dual graph of a mesh, produced by MeshToDual. Its two
// packed-adjacency arrays were allocated by METIS, not by Go, so the
// handle is their exclusive owner: it releases both through METIS_Free
// exactly once, when Close is called (or, as a leak backstop, when the
// handle is collected unclosed). The views it exposes must not be used
// after Close, and must not be freed by anything else.
type Dual struct {
	xadj   []Idx
	adjncy []Idx

	// cxadj and cadjncy are the raw METIS-allocated pointers backing the
	// slices above; Close hands exactly these back to METIS_Free.
	cxadj   unsafe.Pointer
	cadjncy unsafe.Pointer

	closed bool
}

// Xadj returns the adjacency index array of the dual graph. The view is
// read-only by contract and valid until Close.
func (d *Dual) Xadj() []Idx {
	return d.xadj
}

// Adjncy returns the adjacency array of the dual graph. The view is
// read-only by contract and valid until Close.
func (d *Dual) Adjncy() []Idx {
	return d.adjncy
}

// Slices returns both arrays as mutable views, as a pair: the two must
// stay consistent with each other to remain a valid packed-adjacency
// structure, so there is deliberately no single-array mutable accessor.
// The views are valid until Close.
func (d *Dual) Slices() (xadj, adjncy []Idx) {
	return d.xadj, d.adjncy
}

// Close releases the two METIS-allocated arrays through the METIS
// deallocator. It is idempotent; only the first call frees. Always
// returns nil, existing to satisfy io.Closer.
func (d *Dual) Close() error {
	runtime.SetFinalizer(d, nil)
	d.free()
	return nil
}

// free is the single deallocation path, shared by Close and the
// finalizer backstop.
func (d *Dual) free() {
	if d.closed {
		return
	}
	d.closed = true
	d.xadj = nil
	d.adjncy = nil
	metisFree(d.cxadj)
	metisFree(d.cadjncy)
	d.cxadj = nil
	d.cadjncy = nil
}

// MeshToDual builds the dual graph of a mesh (METIS_MeshToDual): the
// graph whose vertices are the mesh elements, with an edge wherever two
// elements share at least ncommon nodes. The element-node structure is
// validated first (see CheckMesh) and the call uses zero-based
// numbering. METIS allocates the resulting arrays; the returned handle
// owns them and the caller should Close it when done.
//
// On a non-nil error METIS allocated nothing, and there is no handle to
// release.
func MeshToDual(eptr, eind []Idx, ncommon Idx) (*Dual, error) {
	assertPositive("ncommon", ncommon)
	// Part count does not participate in dual construction; validate the
	// structure alone.
	ne, nn, err := CheckMesh(1, eptr, eind)
	if err != nil {
		return nil, err
	}
	return meshToDual(ne, nn, ncommon, eptr, eind)
}
