package mesh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/fdsmesh/types"
)

func TestMultiplier(t *testing.T) {
	base := NewMeshSpec("M", types.IJK{11, 12, 14}, testXB)
	checkLo := func(reps []MeshSpec, ax types.Axis, expected []float64) {
		t.Helper()
		assert.Equal(t, len(expected), len(reps))
		for n := range expected {
			assert.InDelta(t, expected[n], reps[n].XB.Lo(ax), 1e-9)
			assert.InDelta(t, expected[n]+3, reps[n].XB.Hi(ax), 1e-9)
			assert.Equal(t, base.IJK, reps[n].IJK)
		}
	}
	{ // DX
		mu := Multiplier{Delta: [3]float64{3, 0, 0}, Bounds: [3]Range{{0, 3}, {0, 0}, {0, 0}}}
		reps, err := mu.Replicate(base)
		assert.NoError(t, err)
		assert.Equal(t, []string{"M_i0_j0_k0", "M_i1_j0_k0", "M_i2_j0_k0", "M_i3_j0_k0"},
			[]string{reps[0].ID, reps[1].ID, reps[2].ID, reps[3].ID})
		checkLo(reps, types.X, []float64{3.5, 6.5, 9.5, 12.5})
		count, _ := mu.Count()
		assert.Equal(t, 4, count)
	}
	{ // DX, DX0 from a lower bound of 1
		mu := Multiplier{Delta: [3]float64{3, 0, 0}, Delta0: [3]float64{1, 0, 0},
			Bounds: [3]Range{{1, 3}, {0, 0}, {0, 0}}}
		reps, err := mu.Replicate(base)
		assert.NoError(t, err)
		assert.Equal(t, "M_i1_j0_k0", reps[0].ID)
		checkLo(reps, types.X, []float64{7.5, 10.5, 13.5})
	}
	{ // DY, DY0 with a skipped range
		mu := Multiplier{Delta: [3]float64{0, 3, 0}, Delta0: [3]float64{0, 1, 0},
			Bounds: [3]Range{{0, 0}, {1, 7}, {0, 0}},
			Skip:   [3]*Range{nil, {3, 5}, nil}}
		reps, err := mu.Replicate(base)
		assert.NoError(t, err)
		assert.Equal(t, "M_i0_j6_k0", reps[2].ID)
		checkLo(reps, types.Y, []float64{8.5, 11.5, 23.5, 26.5})
	}
	{ // DZ, DZ0 with a skipped range
		mu := Multiplier{Delta: [3]float64{0, 0, 3}, Delta0: [3]float64{0, 0, 1},
			Bounds: [3]Range{{0, 0}, {0, 0}, {1, 7}},
			Skip:   [3]*Range{nil, nil, {3, 5}}}
		reps, err := mu.Replicate(base)
		assert.NoError(t, err)
		assert.Equal(t, "M_i0_j0_k7", reps[3].ID)
		checkLo(reps, types.Z, []float64{9.5, 12.5, 24.5, 27.5})
	}
	{ // i outer, k inner
		small := NewMeshSpec("imp", types.IJK{24, 24, 24},
			types.XB{-0.12, -0.06, -0.12, -0.06, -0.12, -0.06})
		mu := Multiplier{ID: "mesh", Delta: [3]float64{0.06, 0.06, 0.06},
			Bounds: [3]Range{{0, 1}, {0, 1}, {0, 1}}}
		reps, err := mu.Replicate(small)
		assert.NoError(t, err)
		ids := make([]string, len(reps))
		for n, r := range reps {
			ids[n] = r.ID
		}
		assert.Equal(t, []string{
			"imp_i0_j0_k0", "imp_i0_j0_k1", "imp_i0_j1_k0", "imp_i0_j1_k1",
			"imp_i1_j0_k0", "imp_i1_j0_k1", "imp_i1_j1_k0", "imp_i1_j1_k1",
		}, ids)
		assert.InDelta(t, 0., reps[1].XB[5], 1e-12)
		assert.InDelta(t, -0.06, reps[4].XB[0], 1e-12)
	}
	{ // DXB grows the replicas
		mu := Multiplier{DXB: &[6]float64{1, 2, 0, 0, 0, 0},
			Bounds: [3]Range{{0, 2}, {0, 0}, {0, 0}}}
		reps, err := mu.Replicate(base)
		assert.NoError(t, err)
		assert.InDelta(t, 5.5, reps[2].XB[0], 1e-12)
		assert.InDelta(t, 10.5, reps[2].XB[1], 1e-12)
	}
	{ // Errors
		bad := []Multiplier{
			{Bounds: [3]Range{{2, 1}, {0, 0}, {0, 0}}},
			{Bounds: [3]Range{{0, 3}, {0, 0}, {0, 0}}, Skip: [3]*Range{{2, 4}, nil, nil}},
			{Bounds: [3]Range{{0, 3}, {0, 0}, {0, 0}}, Skip: [3]*Range{{2, 1}, nil, nil}},
			{Bounds: [3]Range{{0, 3}, {0, 0}, {0, 0}}, Skip: [3]*Range{{0, 3}, nil, nil}},
			{Bounds: [3]Range{{0, 0}, {0, 0}, {0, 0}}, Skip: [3]*Range{nil, nil, {0, 0}}},
			// shrinking replicas end up inverted
			{DXB: &[6]float64{0, -2, 0, 0, 0, 0}, Bounds: [3]Range{{0, 2}, {0, 0}, {0, 0}}},
		}
		for n, mu := range bad {
			_, err := mu.Replicate(base)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "case %d", n)
		}
		_, err := bad[0].Count()
		assert.Error(t, err)
	}
}
