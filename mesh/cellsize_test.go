package mesh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/fdsmesh/types"
)

// cube of side 3 centered in (5, 6, 7)
var testXB = types.XB{3.5, 6.5, 4.5, 7.5, 5.5, 8.5}

func TestCellSize(t *testing.T) {
	cfg := DefaultConfig()
	{
		m := NewMeshSpec("test", types.IJK{11, 12, 14}, testXB)
		assert.Equal(t, [3]float64{0.2727272727272727, 0.25, 0.21428571428571427}, m.CellSizes())
		assert.Equal(t, 1848, m.CellCount())
		aspect, err := CellAspect(m.CellSizes())
		assert.NoError(t, err)
		assert.Equal(t, 1.2727272727272727, aspect)
		aspect, _ = CellAspect([3]float64{0.5, 0.75, 1.})
		assert.Equal(t, 2., aspect)
		_, err = CellAspect([3]float64{0.5, 0, 1.})
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	}
	{ // Cell counts from wanted cell sizes
		ijk, err := cfg.IJKFromDesiredCS(testXB, [3]float64{0.5, 0.7, 0.9}, true)
		assert.NoError(t, err)
		assert.Equal(t, types.IJK{6, 4, 3}, ijk)
		ijk, _ = cfg.IJKFromDesiredCS(testXB, [3]float64{0.23, 0.23, 0.23}, false)
		assert.Equal(t, types.IJK{13, 13, 13}, ijk)
		ijk, _ = cfg.IJKFromDesiredCS(testXB, [3]float64{0.23, 0.23, 0.23}, true)
		assert.Equal(t, types.IJK{13, 15, 15}, ijk)
		ijk, _ = cfg.IJKFromDesiredCS(testXB, [3]float64{10, 10, 10}, false)
		assert.Equal(t, types.IJK{1, 1, 1}, ijk)
		_, err = cfg.IJKFromDesiredCS(testXB, [3]float64{0.1, 5e-324, 0.1}, false)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		_, err = cfg.IJKFromDesiredCS(testXB, [3]float64{1e-12, 0.1, 0.1}, false)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		_, err = cfg.IJKFromDesiredCS(testXB, [3]float64{0.1, 0, 0.1}, false)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		_, err = cfg.IJKFromDesiredCS(types.XB{1, 0, 0, 1, 0, 1}, [3]float64{0.1, 0.1, 0.1}, false)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	}
	{ // Suggested cell size
		p := FireParams{HRR: 2000, Density: 1.204, Cp: 1.005, TAmbient: 25, G: 9.81}
		s, err := SuggestCellSize(p, 8)
		assert.NoError(t, err)
		assert.InDelta(t, 1.257, s.DStar, 0.0005)
		assert.InDelta(t, 0.079, s.MinCS, 0.0005)
		assert.InDelta(t, 0.314, s.MaxCS, 0.0005)
		assert.InDelta(t, s.DStar/8, s.DesiredCS, 1e-12)
		cs := [3]float64{s.DesiredCS, s.DesiredCS, s.DesiredCS}
		ijk, err := cfg.IJKFromDesiredCS(testXB, cs, true)
		assert.NoError(t, err)
		assert.Equal(t, types.IJK{19, 20, 20}, ijk)
		assert.Equal(t, 7600, ijk.Count())
	}
	{ // No NaN or Inf out of bad physics
		for _, p := range []FireParams{
			{HRR: 2000, Density: 1.204, Cp: 1.005, TAmbient: 25, G: 0},
			{HRR: 2000, Density: 0, Cp: 1.005, TAmbient: 25, G: 9.81},
			{HRR: 2000, Density: 1.204, Cp: 0, TAmbient: 25, G: 9.81},
			{HRR: 0, Density: 1.204, Cp: 1.005, TAmbient: 25, G: 9.81},
			{HRR: 2000, Density: 1.204, Cp: 1.005, TAmbient: -300, G: 9.81},
		} {
			_, err := FireCharacteristicDiameter(p)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "%+v", p)
		}
		_, err := SuggestCellSize(DefaultFireParams(1000), 0)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	}
}
