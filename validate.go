package metis

// Structural validation of packed-adjacency (CSR-like) arrays. All checks
// are pure scans: no allocation, no foreign state, fixed check order so a
// given malformed input always reports the same violation.

// CheckGraph verifies that xadj and adjncy describe a structurally valid
// graph for the given constraint and part counts, and returns the vertex
// count. Checks run in a fixed order: constraint count, part count,
// offsets non-empty, last offset valid, adjacency length, offsets sorted,
// lengths representable in Idx, adjacency bounds (every entry in
// [0, nvtxs)).
//
// Symmetry of the adjacency relation is expected by METIS but not
// verified here; it is not decidable from bounds alone in a single
// allocation-free scan.
func CheckGraph(ncon, nparts Idx, xadj, adjncy []Idx) (Idx, error) {
	if ncon <= 0 {
		return 0, ErrBadNcon
	}
	nvtxs, err := checkAdjacency(nparts, xadj, adjncy)
	if err != nil {
		return 0, err
	}
	for _, v := range adjncy {
		if v < 0 || v >= nvtxs {
			return 0, ErrAdjncyOutOfBounds
		}
	}
	return nvtxs, nil
}

// CheckMesh verifies that eptr and eind describe a structurally valid
// mesh for the given part count, and returns the element count and the
// derived node count (max node index + 1). Mesh node indices are
// unbounded above, so unlike CheckGraph there is no upper-bounds check;
// negative indices are still reported as out of bounds.
func CheckMesh(nparts Idx, eptr, eind []Idx) (ne, nn Idx, err error) {
	ne, err = checkAdjacency(nparts, eptr, eind)
	if err != nil {
		return 0, 0, err
	}
	for _, v := range eind {
		if v < 0 {
			return 0, 0, ErrAdjncyOutOfBounds
		}
		if v >= nn {
			nn = v + 1
		}
	}
	return ne, nn, nil
}

// checkAdjacency performs the shape checks shared by graphs and meshes
// and returns the primary entity count (len(offsets) - 1).
func checkAdjacency(nparts Idx, offsets, items []Idx) (Idx, error) {
	if nparts <= 0 {
		return 0, ErrBadNparts
	}
	if len(offsets) == 0 {
		return 0, ErrEmptyXadj
	}
	last := offsets[len(offsets)-1]
	if last < 0 {
		return 0, ErrBadLastXadj
	}
	if int(last) != len(items) {
		return 0, ErrAdjncyLen
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return 0, ErrXadjNotSorted
		}
	}
	if len(offsets) > maxIdx || len(items) > maxIdx {
		return 0, ErrTooLarge
	}
	return Idx(len(offsets) - 1), nil
}
