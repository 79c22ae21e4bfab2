package InputParameters

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fdsmesh/mesh"
	"github.com/notargets/fdsmesh/types"
)

var caseFile = []byte(`
Title: Test Case
Poisson: true
MPIProcesses: 4
Meshes:
  - ID: test_MESH_split_x
    FYI: Test info
    IJK: [11, 12, 14]
    XB: [3.5, 6.5, 4.5, 7.5, 5.5, 8.5]
    NSplits: [2, 1, 1]
    SplitExport: true
  - ID: by_cell_size
    XB: [0, 3, 0, 3, 0, 3]
    CellSize: [0.23, 0.23, 0.23]
  - ID: MULT_dx
    IJK: [10, 10, 10]
    XB: [0, 1, 0, 1, 0, 1]
    MULT:
      ID: row
      DX: 1.
      I_UPPER: 3
      I_LOWER_SKIP: 1
      I_UPPER_SKIP: 2
`)

func TestParse(t *testing.T) {
	var ip CaseParameters
	require.NoError(t, ip.Parse(caseFile))
	assert.Equal(t, "Test Case", ip.Title)
	assert.True(t, ip.Poisson)
	assert.Equal(t, 4, ip.MPIProcesses)
	assert.Equal(t, 3, len(ip.Meshes))
	assert.Equal(t, [3]int{11, 12, 14}, ip.Meshes[0].IJK)
	assert.Equal(t, [6]float64{3.5, 6.5, 4.5, 7.5, 5.5, 8.5}, ip.Meshes[0].XB)
	assert.Equal(t, "Test info", ip.Meshes[0].FYI)
	assert.Nil(t, ip.Meshes[0].Mult)
	assert.Equal(t, [3]float64{0.23, 0.23, 0.23}, *ip.Meshes[1].CellSize)
	mu := ip.Meshes[2].Mult
	require.NotNil(t, mu)
	assert.Equal(t, 1., mu.DX)
	assert.Equal(t, 3, mu.IUpper)
	assert.Equal(t, 1, *mu.ILowerSkip)
	assert.Nil(t, mu.JLowerSkip)

	var buf bytes.Buffer
	ip.Print(&buf)
	assert.Contains(t, buf.String(), "\"Test Case\"")
	assert.Contains(t, buf.String(), "Mesh[MULT_dx]")

	mp, err := ip.Find("by_cell_size")
	assert.NoError(t, err)
	assert.Equal(t, "by_cell_size", mp.ID)
	_, err = ip.Find("missing")
	assert.Error(t, err)
}

func TestParseRejects(t *testing.T) {
	for name, doc := range map[string]string{
		"no meshes":     "Title: empty\n",
		"short XB":      "Meshes:\n  - ID: a\n    IJK: [1, 1, 1]\n    XB: [0, 1, 0, 1]\n",
		"no IJK":        "Meshes:\n  - ID: a\n    XB: [0, 1, 0, 1, 0, 1]\n",
		"unknown field": "Meshes:\n  - ID: a\n    IJK: [1, 1, 1]\n    XB: [0, 1, 0, 1, 0, 1]\n    Color: red\n",
		"half skip": "Meshes:\n  - ID: a\n    IJK: [1, 1, 1]\n    XB: [0, 1, 0, 1, 0, 1]\n" +
			"    MULT:\n      I_UPPER: 2\n      I_LOWER_SKIP: 1\n",
		"quote in ID": "Meshes:\n  - ID: \"a'b\"\n    IJK: [1, 1, 1]\n    XB: [0, 1, 0, 1, 0, 1]\n",
		"bad yaml":    "Meshes: [\n",
	} {
		var ip CaseParameters
		assert.Error(t, ip.Parse([]byte(doc)), name)
	}
}

func TestMeshInputs(t *testing.T) {
	var ip CaseParameters
	require.NoError(t, ip.Parse(caseFile))
	cfg := mesh.DefaultConfig()
	inputs, err := ip.MeshInputs(cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, len(inputs))
	assert.Equal(t, mesh.SplitPlan{2, 1, 1}, inputs[0].NSplits)
	assert.True(t, inputs[0].SplitExport)
	// IJK derived from the cell size, Poisson rounded along y and z
	assert.Equal(t, types.IJK{13, 15, 15}, inputs[1].Mesh.IJK)
	require.NotNil(t, inputs[2].Mult)
	assert.Equal(t, [3]*mesh.Range{{Lower: 1, Upper: 2}, nil, nil}, inputs[2].Mult.Skip)

	geoms, err := cfg.ExpandAll(inputs)
	require.NoError(t, err)
	assert.Equal(t, []string{"test_MESH_split_x_s0", "test_MESH_split_x_s1"}, geoms[0].IDs)
	assert.Equal(t, []string{"MULT_dx_i0_j0_k0", "MULT_dx_i3_j0_k0"}, geoms[2].IDs)

	ip.Meshes = append(ip.Meshes, ip.Meshes[0])
	_, err = ip.MeshInputs(cfg)
	assert.Error(t, err)

	ip.Meshes = []MeshParameters{{ID: "flat", IJK: [3]int{1, 1, 1}, XB: [6]float64{0, 1, 0, 0, 0, 1}}}
	_, err = ip.MeshInputs(cfg)
	assert.True(t, errors.Is(err, mesh.ErrInvalidArgument))
}
