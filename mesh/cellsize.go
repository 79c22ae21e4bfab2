package mesh

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/fdsmesh/types"
	"github.com/notargets/fdsmesh/utils"
)

// CellAspect is the largest over the smallest cell size
func CellAspect(cs [3]float64) (aspect float64, err error) {
	var (
		cmin = floats.Min(cs[:])
		cmax = floats.Max(cs[:])
	)
	if !(cmin > 0) || math.IsInf(cmax, 0) {
		err = invalidf("cell sizes must be positive and finite, have %v", cs)
		return
	}
	aspect = cmax / cmin
	return
}

/*
IJKFromDesiredCS converts a wanted cell size into cell counts for the box xb,
never less than one cell per axis. With poisson set the y and z counts are
rounded up to solver admissible values.
*/
func (c *Config) IJKFromDesiredCS(xb types.XB, desiredCS [3]float64, poisson bool) (ijk types.IJK, err error) {
	if err = xb.Validate(); err != nil {
		err = invalidf("%v", err)
		return
	}
	for _, ax := range types.Axes {
		if !(desiredCS[ax] > 0) || math.IsInf(desiredCS[ax], 0) {
			err = invalidf("desired cell size along %s axis must be positive, have %g",
				ax, desiredCS[ax])
			return
		}
		q := xb.Span(ax) / desiredCS[ax]
		if q > math.MaxInt32 {
			err = invalidf("desired cell size %g gives %g cells along %s axis", desiredCS[ax], q, ax)
			return
		}
		ijk[ax] = max(utils.Round(q), 1)
	}
	if poisson {
		ijk, err = c.PoissonIJK(ijk)
	}
	return
}

const celsiusToKelvin = 273.15

// FireParams are the ambient and fire inputs of the D* plume scaling
type FireParams struct {
	HRR      float64 // kW
	Density  float64 // kg/m³
	Cp       float64 // kJ/(kg·K)
	TAmbient float64 // °C
	G        float64 // m/s²
}

func DefaultFireParams(hrr float64) FireParams {
	return FireParams{
		HRR:      hrr,
		Density:  1.204,
		Cp:       1.005,
		TAmbient: 20.,
		G:        9.81,
	}
}

/*
FireCharacteristicDiameter is the characteristic fire diameter
D* = (Q / (ρ·cp·T·√g))^(2/5), NUREG 1824.
*/
func FireCharacteristicDiameter(p FireParams) (dstar float64, err error) {
	var (
		tk = p.TAmbient + celsiusToKelvin
	)
	switch {
	case !(p.HRR > 0):
		err = invalidf("heat release rate must be positive, have %g", p.HRR)
	case !(p.Density > 0):
		err = invalidf("density must be positive, have %g", p.Density)
	case !(p.Cp > 0):
		err = invalidf("specific heat must be positive, have %g", p.Cp)
	case !(tk > 0):
		err = invalidf("ambient temperature must be above absolute zero, have %g °C", p.TAmbient)
	case !(p.G > 0):
		err = invalidf("gravitational acceleration must be positive, have %g", p.G)
	}
	if err != nil {
		return
	}
	dstar = math.Pow(p.HRR/(p.Density*p.Cp*tk*math.Sqrt(p.G)), 2./5.)
	return
}

type CellSizeSuggestion struct {
	DStar     float64
	MinCS     float64 // D*/16
	MaxCS     float64 // D*/4
	DesiredCS float64 // D*/ncell
}

// SuggestCellSize resolves D* with ncellPerDStar cells
func SuggestCellSize(p FireParams, ncellPerDStar int) (s CellSizeSuggestion, err error) {
	if ncellPerDStar < 1 {
		err = invalidf("cells per D* must be at least 1, have %d", ncellPerDStar)
		return
	}
	if s.DStar, err = FireCharacteristicDiameter(p); err != nil {
		return
	}
	s.MinCS = s.DStar / 16
	s.MaxCS = s.DStar / 4
	s.DesiredCS = s.DStar / float64(ncellPerDStar)
	return
}
