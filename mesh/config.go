package mesh

import (
	"runtime"

	"go.uber.org/zap"
)

// Config holds the policy constants of the engine
type Config struct {
	// MagnetNCell is the snapping distance, in reference cells
	MagnetNCell float64
	// CoarserRatioMin is the smallest treated/reference cell size ratio accepted
	// by alignment; anything below 0.5 would round to a zero ratio
	CoarserRatioMin float64
	// MultipleTolerance decides whether a cell count is already a multiple
	MultipleTolerance float64
	// PoissonSearchCap bounds the upward search for an admissible cell count
	PoissonSearchCap int
	// NeighborTolerance is the face contact tolerance, in cells
	NeighborTolerance float64
	// Workers bounds the concurrent expansion of mesh inputs
	Workers int
	Logger  *zap.Logger
}

func DefaultConfig() *Config {
	return &Config{
		MagnetNCell:       2,
		CoarserRatioMin:   0.501,
		MultipleTolerance: 0.00001,
		PoissonSearchCap:  10000,
		NeighborTolerance: 0.01,
		Workers:           runtime.GOMAXPROCS(0),
		Logger:            zap.NewNop(),
	}
}

func (c *Config) log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Validate rejects policy values the engine cannot work with
func (c *Config) Validate() error {
	switch {
	case !(c.MagnetNCell >= 0):
		return invalidf("magnet_ncell must not be negative, have %g", c.MagnetNCell)
	case !(c.CoarserRatioMin > 0 && c.CoarserRatioMin <= 1):
		return invalidf("coarser_ratio_min must be in (0, 1], have %g", c.CoarserRatioMin)
	case !(c.MultipleTolerance >= 0):
		return invalidf("multiple_tolerance must not be negative, have %g", c.MultipleTolerance)
	case c.PoissonSearchCap < 1:
		return invalidf("poisson_search_cap must be at least 1, have %d", c.PoissonSearchCap)
	case !(c.NeighborTolerance >= 0):
		return invalidf("neighbor_tolerance must not be negative, have %g", c.NeighborTolerance)
	}
	return nil
}
