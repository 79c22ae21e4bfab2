package types

import (
	"fmt"
	"math"
)

// IJK holds the cell counts along x, y and z
type IJK [3]int

// Count is the total number of cells
func (ijk IJK) Count() int {
	return ijk[0] * ijk[1] * ijk[2]
}

func (ijk IJK) Validate() error {
	for _, ax := range Axes {
		if ijk[ax] <= 0 {
			return fmt.Errorf("non-positive cell count %d along %s axis", ijk[ax], ax)
		}
	}
	return nil
}

/*
XB is an axis aligned bounding box stored the FDS way:
xmin, xmax, ymin, ymax, zmin, zmax
*/
type XB [6]float64

func (xb XB) Lo(ax Axis) float64   { return xb[2*ax] }
func (xb XB) Hi(ax Axis) float64   { return xb[2*ax+1] }
func (xb XB) Span(ax Axis) float64 { return xb[2*ax+1] - xb[2*ax] }

// Translate returns a copy of the box moved by d
func (xb XB) Translate(d [3]float64) XB {
	for _, ax := range Axes {
		xb[2*ax] += d[ax]
		xb[2*ax+1] += d[ax]
	}
	return xb
}

func (xb XB) Validate() error {
	for _, ax := range Axes {
		lo, hi := xb.Lo(ax), xb.Hi(ax)
		if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			return fmt.Errorf("non-finite bounds [%g, %g] along %s axis", lo, hi, ax)
		}
		if lo >= hi {
			return fmt.Errorf("coordinate order error along %s axis: %g >= %g", ax, lo, hi)
		}
	}
	return nil
}
