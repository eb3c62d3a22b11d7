package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopartition/metis"
)

// manualExample is the classic 7-vertex, 11-edge example graph from the
// METIS documentation.
const manualExample = `% a comment before the header
7 11
5 3 2
1 3 4
5 4 2 1
2 3 6 7
1 3 6
5 4 7
6 4
`

func TestParseGraph_Plain(t *testing.T) {
	gf, err := parseGraph(strings.NewReader(manualExample))
	require.NoError(t, err)

	assert.Equal(t, 7, gf.vertexCount())
	assert.Equal(t, metis.Idx(1), gf.ncon)
	assert.Equal(t, []metis.Idx{0, 3, 6, 10, 14, 17, 20, 22}, gf.xadj)
	// One-based file ids become zero-based indices.
	assert.Equal(t, []metis.Idx{4, 2, 1}, gf.adjncy[:3])
	assert.Nil(t, gf.vwgt)
	assert.Nil(t, gf.vsize)
	assert.Nil(t, gf.adjwgt)
}

func TestParseGraph_EdgeWeights(t *testing.T) {
	in := `3 2 001
2 7
1 7 3 5
2 5
`
	gf, err := parseGraph(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []metis.Idx{0, 1, 3, 4}, gf.xadj)
	assert.Equal(t, []metis.Idx{1, 0, 2, 1}, gf.adjncy)
	assert.Equal(t, []metis.Idx{7, 7, 5, 5}, gf.adjwgt)
}

func TestParseGraph_VertexWeightsMultiConstraint(t *testing.T) {
	// fmt 010 with ncon 2: two weights lead every vertex line.
	in := `2 1 010 2
1 4 2
3 9 1
`
	gf, err := parseGraph(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, metis.Idx(2), gf.ncon)
	assert.Equal(t, []metis.Idx{1, 4, 3, 9}, gf.vwgt)
	assert.Equal(t, []metis.Idx{1, 0}, gf.adjncy)
}

func TestParseGraph_VertexSizes(t *testing.T) {
	in := `2 1 100
10 2
20 1
`
	gf, err := parseGraph(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []metis.Idx{10, 20}, gf.vsize)
	assert.Nil(t, gf.vwgt)
}

func TestParseGraph_IsolatedVertex(t *testing.T) {
	// Vertex 2 has no neighbours: its line is empty but still present.
	in := "3 1\n3\n\n1\n"
	gf, err := parseGraph(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []metis.Idx{0, 1, 1, 2}, gf.xadj)
}

func TestParseGraph_Errors(t *testing.T) {
	cases := map[string]string{
		"EmptyInput":        "",
		"BadHeader":         "seven eleven\n",
		"BadFmt":            "2 1 017\n2\n1\n",
		"NeighbourZero":     "2 1\n0\n1\n",
		"NeighbourTooLarge": "2 1\n3\n1\n",
		"MissingVertexLine": "3 2\n2\n1 3\n",
		"MissingEdgeWeight": "2 1 001\n2 5\n1\n",
		"EdgeCountMismatch": "2 2\n2\n1\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseGraph(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestRequest_CarriesWeights(t *testing.T) {
	in := `2 1 011
3 2 9
5 1 9
`
	gf, err := parseGraph(strings.NewReader(in))
	require.NoError(t, err)

	g, err := gf.request(2)
	require.NoError(t, err)

	part := make([]metis.Idx, 2)
	_, err = g.PartKway(part)
	require.NoError(t, err)
	assert.NotEqual(t, part[0], part[1])
}

func TestWritePartition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.part.3")
	require.NoError(t, writePartition(path, []metis.Idx{2, 0, 1, 0}))

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2\n0\n1\n0\n", string(out))
}
