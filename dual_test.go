package metis

import (
	"errors"
	"testing"
)

// triMesh2 is the smallest interesting mesh: two triangles sharing an
// edge (nodes 1 and 2).
func triMesh2() (eptr, eind []Idx) {
	return []Idx{0, 3, 6}, []Idx{0, 1, 2, 1, 2, 3}
}

// TestMeshToDual_RoundTrip converts a mesh to its dual and re-derives
// the counts from the adopted arrays: the dual has one vertex per mesh
// element, and its adjacency length is whatever the last adopted offset
// says.
func TestMeshToDual_RoundTrip(t *testing.T) {
	eptr, eind := triMesh2()
	d, err := MeshToDual(eptr, eind, 2)
	if err != nil {
		t.Fatalf("MeshToDual error: %v", err)
	}
	defer d.Close()

	xadj := d.Xadj()
	if len(xadj) != len(eptr) {
		t.Fatalf("dual xadj length = %d; want %d", len(xadj), len(eptr))
	}
	if got := Idx(len(xadj) - 1); got != 2 {
		t.Errorf("dual vertex count = %d; want the element count 2", got)
	}
	if got := xadj[len(xadj)-1]; int(got) != len(d.Adjncy()) {
		t.Errorf("last offset %d does not match adjncy length %d", got, len(d.Adjncy()))
	}

	// Two triangles sharing two nodes form one mutual dual edge.
	if want := []Idx{0, 1, 2}; !equalIdx(xadj, want) {
		t.Errorf("dual xadj = %v; want %v", xadj, want)
	}
	adjncy := d.Adjncy()
	if len(adjncy) != 2 || adjncy[0] != 1 || adjncy[1] != 0 {
		t.Errorf("dual adjncy = %v; want [1 0]", adjncy)
	}
}

// TestMeshToDual_Threshold verifies that a threshold higher than any
// shared-node count produces an edgeless dual.
func TestMeshToDual_Threshold(t *testing.T) {
	eptr, eind := triMesh2()
	d, err := MeshToDual(eptr, eind, 3)
	if err != nil {
		t.Fatalf("MeshToDual error: %v", err)
	}
	defer d.Close()
	if got := d.Xadj()[len(d.Xadj())-1]; got != 0 {
		t.Errorf("dual adjacency length = %d; want 0", got)
	}
}

// TestMeshToDual_RejectsMalformed verifies validation happens before the
// foreign call, so nothing is allocated or adopted.
func TestMeshToDual_RejectsMalformed(t *testing.T) {
	_, err := MeshToDual([]Idx{0, 4, 2}, []Idx{0, 1}, 1)
	if !errors.Is(err, ErrAdjncyLen) {
		t.Errorf("MeshToDual error = %v; want ErrAdjncyLen", err)
	}
}

// TestDualCloseOnce verifies the exactly-once release discipline: the
// first Close frees both arrays, later Closes are no-ops, and the views
// are gone so stale reads fail loudly rather than touch freed memory.
func TestDualCloseOnce(t *testing.T) {
	eptr, eind := triMesh2()
	d, err := MeshToDual(eptr, eind, 1)
	if err != nil {
		t.Fatalf("MeshToDual error: %v", err)
	}

	if err := d.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if !d.closed {
		t.Fatal("handle not marked closed after Close")
	}
	if d.cxadj != nil || d.cadjncy != nil {
		t.Fatal("raw pointers survived Close; a second free would be possible")
	}
	if d.Xadj() != nil || d.Adjncy() != nil {
		t.Fatal("views survived Close")
	}

	// Idempotent: freeing again must be a no-op, not a double free.
	if err := d.Close(); err != nil {
		t.Fatalf("second Close error: %v", err)
	}
}

// TestDualSlices verifies the paired mutable accessor hands back the
// same backing arrays as the read-only views.
func TestDualSlices(t *testing.T) {
	eptr, eind := triMesh2()
	d, err := MeshToDual(eptr, eind, 1)
	if err != nil {
		t.Fatalf("MeshToDual error: %v", err)
	}
	defer d.Close()

	xadj, adjncy := d.Slices()
	if &xadj[0] != &d.xadj[0] || len(adjncy) != len(d.adjncy) {
		t.Error("Slices must alias the adopted arrays, not copy them")
	}
}

func equalIdx(a, b []Idx) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
