package mesh

import (
	"fmt"

	"github.com/notargets/fdsmesh/types"
)

// Range is an inclusive integer interval
type Range struct {
	Lower, Upper int
}

func (r Range) Contains(n int) bool { return n >= r.Lower && n <= r.Upper }

/*
Multiplier replicates a mesh on a lattice, the FDS MULT namelist. Replica
(i, j, k) is the base box moved by i*DX + DX0 along x, likewise along y and
z. When DXB is set its six increments replace DX, DY and DZ, one per box
coordinate, so replicas may also grow.
*/
type Multiplier struct {
	ID     string
	Delta  [3]float64 // DX, DY, DZ
	Delta0 [3]float64 // DX0, DY0, DZ0
	DXB    *[6]float64
	Bounds [3]Range  // I, J, K lower/upper
	Skip   [3]*Range // optional excluded sub-ranges
}

func (mu Multiplier) indices(ax types.Axis) (idx []int, err error) {
	var (
		b    = mu.Bounds[ax]
		skip = mu.Skip[ax]
	)
	if b.Lower > b.Upper {
		err = invalidf("MULT %q: lower bound %d above upper bound %d along %s axis",
			mu.ID, b.Lower, b.Upper, ax)
		return
	}
	if skip != nil {
		if skip.Lower > skip.Upper || !b.Contains(skip.Lower) || !b.Contains(skip.Upper) {
			err = invalidf("MULT %q: skip range [%d, %d] not within [%d, %d] along %s axis",
				mu.ID, skip.Lower, skip.Upper, b.Lower, b.Upper, ax)
			return
		}
		if skip.Lower == b.Lower && skip.Upper == b.Upper {
			err = invalidf("MULT %q: skip range covers every index, no replicas along %s axis",
				mu.ID, ax)
			return
		}
	}
	for n := b.Lower; n <= b.Upper; n++ {
		if skip != nil && skip.Contains(n) {
			continue
		}
		idx = append(idx, n)
	}
	return
}

func (mu Multiplier) replicaXB(base types.XB, ijk [3]int) (xb types.XB) {
	var d [3]float64
	if mu.DXB == nil {
		for _, ax := range types.Axes {
			d[ax] = mu.Delta0[ax] + float64(ijk[ax])*mu.Delta[ax]
		}
		return base.Translate(d)
	}
	xb = base
	for _, ax := range types.Axes {
		var (
			n      = float64(ijk[ax])
			lo, hi = 2 * ax, 2*ax + 1
		)
		xb[lo] += mu.Delta0[ax] + n*mu.DXB[lo]
		xb[hi] += mu.Delta0[ax] + n*mu.DXB[hi]
	}
	return
}

// Count is the number of replicas Replicate produces
func (mu Multiplier) Count() (count int, err error) {
	count = 1
	for _, ax := range types.Axes {
		var idx []int
		if idx, err = mu.indices(ax); err != nil {
			return 0, err
		}
		count *= len(idx)
	}
	return
}

/*
Replicate returns one mesh per lattice index, i outer, k inner, named
{id}_i{i}_j{j}_k{k}.
*/
func (mu Multiplier) Replicate(base MeshSpec) (replicas []MeshSpec, err error) {
	var idx [3][]int
	if err = validateMesh(base); err != nil {
		return
	}
	for _, ax := range types.Axes {
		if idx[ax], err = mu.indices(ax); err != nil {
			return
		}
	}
	replicas = make([]MeshSpec, 0, len(idx[0])*len(idx[1])*len(idx[2]))
	for _, i := range idx[0] {
		for _, j := range idx[1] {
			for _, k := range idx[2] {
				xb := mu.replicaXB(base.XB, [3]int{i, j, k})
				if err = xb.Validate(); err != nil {
					err = invalidf("MULT %q: replica i=%d j=%d k=%d: %v", mu.ID, i, j, k, err)
					return nil, err
				}
				replicas = append(replicas, NewMeshSpec(
					fmt.Sprintf("%s_i%d_j%d_k%d", base.ID, i, j, k), base.IJK, xb))
			}
		}
	}
	return
}
