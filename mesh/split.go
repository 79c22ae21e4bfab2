package mesh

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/notargets/fdsmesh/types"
	"github.com/notargets/fdsmesh/utils"
)

// SplitPlan is the number of pieces per axis, 0 and 1 meaning no split
type SplitPlan [3]int

func (sp SplitPlan) IsTrivial() bool {
	return sp[0] <= 1 && sp[1] <= 1 && sp[2] <= 1
}

/*
SplitCells partitions ncell into nsplit nearly equal parts summing to ncell.
The first ncell%nsplit parts hold one extra cell.
*/
func SplitCells(ncell, nsplit int) (cells []int, err error) {
	if ncell < 1 {
		err = invalidf("cell count must be positive, have %d", ncell)
		return
	}
	if nsplit <= 1 {
		cells = []int{ncell}
		return
	}
	var pm *utils.PartitionMap
	if pm, err = utils.NewPartitionMap(nsplit, ncell); err != nil {
		err = invalidf("%v", err)
		return
	}
	cells = pm.BucketDimensions()
	return
}

type SplitResult struct {
	IDs       []string
	IJKs      []types.IJK
	XBs       []types.XB
	NCell     int // cells in the first, largest, piece
	NCellTot  int
	CellSizes [3]float64 // of the parent
	NSplit    int
	Export    bool
	pms       [3]*utils.PartitionMap
}

/*
SplitMesh cuts a mesh into the Cartesian product of its per axis partitions,
x outer, z inner, naming the pieces {hid}_s{n}. Boundaries along an axis are
computed once and shared by neighbouring pieces, the last one is the parent
upper bound, so the pieces tile the parent box exactly.
*/
func (c *Config) SplitMesh(hid string, ijk types.IJK, export bool, nsplits SplitPlan,
	xb types.XB) (sr SplitResult, err error) {
	var (
		parent = NewMeshSpec(hid, ijk, xb)
		edges  [3][]float64
		cells  [3][]int
	)
	if err = validateMesh(parent); err != nil {
		return
	}
	sr.Export = export
	sr.CellSizes = parent.CellSizes()
	for _, ax := range types.Axes {
		if nsplits[ax] < 0 {
			err = invalidf("negative split count %d along %s axis", nsplits[ax], ax)
			return
		}
		if sr.pms[ax], err = utils.NewPartitionMap(max(nsplits[ax], 1), ijk[ax]); err != nil {
			err = &AxisError{Axis: ax, Err: ErrInvalidArgument, Msg: err.Error()}
			return
		}
		cells[ax] = sr.pms[ax].BucketDimensions()
		edges[ax] = splitEdges(xb.Lo(ax), xb.Hi(ax), sr.pms[ax])
	}
	sr.NSplit = len(cells[0]) * len(cells[1]) * len(cells[2])
	sr.IDs = make([]string, 0, sr.NSplit)
	sr.IJKs = make([]types.IJK, 0, sr.NSplit)
	sr.XBs = make([]types.XB, 0, sr.NSplit)
	for i := range cells[0] {
		for j := range cells[1] {
			for k := range cells[2] {
				id := hid
				if sr.NSplit > 1 {
					id = fmt.Sprintf("%s_s%d", hid, len(sr.IDs))
				}
				sub := types.IJK{cells[0][i], cells[1][j], cells[2][k]}
				sr.IDs = append(sr.IDs, id)
				sr.IJKs = append(sr.IJKs, sub)
				sr.XBs = append(sr.XBs, types.XB{
					edges[0][i], edges[0][i+1],
					edges[1][j], edges[1][j+1],
					edges[2][k], edges[2][k+1],
				})
				sr.NCellTot += sub.Count()
			}
		}
	}
	sr.NCell = sr.IJKs[0].Count()
	c.log().Debug("mesh split",
		zap.String("id", hid),
		zap.Int("pieces", sr.NSplit),
		zap.Int("ncell_tot", sr.NCellTot))
	return
}

func splitEdges(lo, hi float64, pm *utils.PartitionMap) (edges []float64) {
	var (
		span = hi - lo
		n    = float64(pm.MaxIndex)
	)
	edges = make([]float64, pm.ParallelDegree+1)
	for b := 0; b < pm.ParallelDegree; b++ {
		start, _ := pm.GetBucketRange(b)
		edges[b] = lo + span*float64(start)/n
	}
	edges[0], edges[pm.ParallelDegree] = lo, hi
	return
}

// Meshes returns the pieces as mesh specs
func (sr SplitResult) Meshes() (meshes []MeshSpec) {
	meshes = make([]MeshSpec, len(sr.IDs))
	for n := range sr.IDs {
		meshes[n] = NewMeshSpec(sr.IDs[n], sr.IJKs[n], sr.XBs[n])
	}
	return
}

// Owner returns the index of the piece holding the parent cell (i, j, k)
func (sr SplitResult) Owner(cell types.IJK) (n int, err error) {
	var b [3]int
	if sr.pms[0] == nil || sr.pms[1] == nil || sr.pms[2] == nil {
		err = invalidf("split result holds no partitions")
		return
	}
	for _, ax := range types.Axes {
		if b[ax], _, _ = sr.pms[ax].GetBucket(cell[ax]); b[ax] < 0 {
			err = invalidf("cell index %d outside the mesh along %s axis", cell[ax], ax)
			return
		}
	}
	n = (b[0]*sr.pms[1].ParallelDegree+b[1])*sr.pms[2].ParallelDegree + b[2]
	return
}
