package metis_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopartition/metis"
)

// quadMesh4 returns a 2×2 quadrilateral mesh over a 3×3 node grid:
// 4 elements, 9 nodes.
func quadMesh4() (eptr, eind []metis.Idx) {
	eptr = []metis.Idx{0, 4, 8, 12, 16}
	eind = []metis.Idx{
		0, 1, 4, 3,
		1, 2, 5, 4,
		3, 4, 7, 6,
		4, 5, 8, 7,
	}
	return eptr, eind
}

// TestNewMesh_DerivesNodeCount verifies that the node count comes from
// the arrays, not the caller.
func TestNewMesh_DerivesNodeCount(t *testing.T) {
	eptr, eind := quadMesh4()
	m, err := metis.NewMesh(2, eptr, eind)
	require.NoError(t, err)

	// The node count is not exported; observe it through the npart
	// length contract: 9 is accepted, 8 is a caller bug.
	epart := make([]metis.Idx, 4)
	assert.Panics(t, func() { _, _ = m.PartDual(epart, make([]metis.Idx, 8)) })
}

// TestNewMesh_RejectsMalformed mirrors the graph-side validation tests.
func TestNewMesh_RejectsMalformed(t *testing.T) {
	_, err := metis.NewMesh(2, []metis.Idx{0, 4, 2}, []metis.Idx{0, 1})
	assert.ErrorIs(t, err, metis.ErrAdjncyLen)

	_, err = metis.NewMesh(2, []metis.Idx{0, 2, 1, 3}, []metis.Idx{0, 1, 2})
	assert.ErrorIs(t, err, metis.ErrXadjNotSorted)
	assert.ErrorIs(t, err, metis.ErrInput)
}

// TestNewMeshUnchecked_MatchesValidated verifies observable equality of
// the two constructors on valid input, including the derived node count.
func TestNewMeshUnchecked_MatchesValidated(t *testing.T) {
	eptr, eind := quadMesh4()
	checked, err := metis.NewMesh(2, eptr, eind)
	require.NoError(t, err)
	unchecked := metis.NewMeshUnchecked(2, eptr, eind)
	if !reflect.DeepEqual(checked, unchecked) {
		t.Errorf("NewMeshUnchecked produced a different request than NewMesh")
	}
}

// TestMeshPartSinglePart verifies the nparts==1 fast path fills both
// output arrays without a solver call.
func TestMeshPartSinglePart(t *testing.T) {
	eptr, eind := quadMesh4()
	m, err := metis.NewMesh(1, eptr, eind)
	require.NoError(t, err)

	epart := []metis.Idx{5, 5, 5, 5}
	npart := []metis.Idx{5, 5, 5, 5, 5, 5, 5, 5, 5}
	edgecut, err := m.PartNodal(epart, npart)
	require.NoError(t, err)
	assert.Equal(t, metis.Idx(0), edgecut)
	for _, p := range epart {
		assert.Equal(t, metis.Idx(0), p)
	}
	for _, p := range npart {
		assert.Equal(t, metis.Idx(0), p)
	}
}

// TestMeshPartDual partitions the quad mesh through its dual graph and
// checks both assignment arrays are complete and in range.
func TestMeshPartDual(t *testing.T) {
	eptr, eind := quadMesh4()
	m, err := metis.NewMesh(2, eptr, eind)
	require.NoError(t, err)
	m.SetNcommon(2).SetOption(metis.Seed(42))

	epart := make([]metis.Idx, 4)
	npart := make([]metis.Idx, 9)
	_, err = m.PartDual(epart, npart)
	require.NoError(t, err)

	counts := map[metis.Idx]int{}
	for _, p := range epart {
		require.Contains(t, []metis.Idx{0, 1}, p)
		counts[p]++
	}
	assert.Len(t, counts, 2, "both parts must be used")
	for _, p := range npart {
		assert.Contains(t, []metis.Idx{0, 1}, p)
	}
}

// TestMeshPartNodal exercises the nodal entry point, which ignores the
// shared-node threshold entirely.
func TestMeshPartNodal(t *testing.T) {
	eptr, eind := quadMesh4()
	m, err := metis.NewMesh(2, eptr, eind)
	require.NoError(t, err)
	// An absurd threshold must be irrelevant for nodal partitioning.
	m.SetNcommon(1000)

	epart := make([]metis.Idx, 4)
	npart := make([]metis.Idx, 9)
	_, err = m.PartNodal(epart, npart)
	require.NoError(t, err)
	for _, p := range epart {
		assert.Contains(t, []metis.Idx{0, 1}, p)
	}
}

// TestMeshConsumeOnce verifies the consume-once lifecycle on the mesh
// side.
func TestMeshConsumeOnce(t *testing.T) {
	eptr, eind := quadMesh4()
	m, err := metis.NewMesh(1, eptr, eind)
	require.NoError(t, err)
	epart := make([]metis.Idx, 4)
	npart := make([]metis.Idx, 9)
	_, err = m.PartDual(epart, npart)
	require.NoError(t, err)

	assert.Panics(t, func() { _, _ = m.PartNodal(epart, npart) })
	assert.Panics(t, func() { m.SetNcommon(2) })
}

// TestMeshSetterPanics verifies fatal length checks on the mesh setters.
func TestMeshSetterPanics(t *testing.T) {
	eptr, eind := quadMesh4()
	cases := []struct {
		name string
		call func(m *metis.Mesh)
	}{
		{"Vwgt", func(m *metis.Mesh) { m.SetVwgt([]metis.Idx{1, 1}) }},
		{"Vsize", func(m *metis.Mesh) { m.SetVsize([]metis.Idx{1, 1, 1, 1, 1}) }},
		{"Tpwgts", func(m *metis.Mesh) { m.SetTpwgts([]metis.Real{1.0}) }},
		{"Ncommon", func(m *metis.Mesh) { m.SetNcommon(0) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := metis.NewMesh(2, eptr, eind)
			require.NoError(t, err)
			assert.Panics(t, func() { tc.call(m) })
		})
	}
}
