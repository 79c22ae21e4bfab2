package mesh

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/notargets/fdsmesh/utils"
)

// CostFunc weighs a mesh for load balancing
type CostFunc func(m MeshSpec) float64

func CellCountCost(m MeshSpec) float64 {
	return float64(m.CellCount())
}

// BalanceReport is the assignment of meshes to processes and its quality
type BalanceReport struct {
	Bins          []utils.Bin[int] // mesh indices per process
	Process       []int            // process per mesh
	Loads         []float64
	MeanLoad      float64
	MaxLoad       float64
	MinLoad       float64
	StdDev        float64
	Imbalance     float64 // max/mean - 1
	CutInterfaces int
	CommVolume    float64
}

/*
Balance assigns meshes to nproc MPI processes by bin packing their costs,
then measures the load spread and the mesh interfaces cut between processes.
*/
func (c *Config) Balance(meshes []MeshSpec, nproc int, cost CostFunc) (br *BalanceReport, err error) {
	var (
		items = make([]utils.BinItem[int], len(meshes))
		adj   *Adjacency
	)
	if nproc < 1 {
		err = invalidf("number of processes must be at least 1, have %d", nproc)
		return
	}
	if cost == nil {
		cost = CellCountCost
	}
	if adj, err = c.Neighbors(meshes); err != nil {
		return
	}
	for i, m := range meshes {
		items[i] = utils.BinItem[int]{Weight: cost(m), Payload: i}
	}
	br = &BalanceReport{
		Process: make([]int, len(meshes)),
		Loads:   make([]float64, nproc),
	}
	if br.Bins, err = utils.BinPack(nproc, items); err != nil {
		err = invalidf("%v", err)
		return nil, err
	}
	for p, bin := range br.Bins {
		br.Loads[p] = bin.Weight
		for _, i := range bin.Payloads {
			br.Process[i] = p
		}
	}
	br.MeanLoad = stat.Mean(br.Loads, nil)
	br.MaxLoad = floats.Max(br.Loads)
	br.MinLoad = floats.Min(br.Loads)
	br.StdDev = math.Sqrt(stat.PopVariance(br.Loads, nil))
	if br.MeanLoad > 0 {
		br.Imbalance = br.MaxLoad/br.MeanLoad - 1
	}
	for i := range meshes {
		for _, j := range adj.Neighbors(i) {
			if j > i && br.Process[i] != br.Process[j] {
				br.CutInterfaces++
				br.CommVolume += adj.Weight(i, j)
			}
		}
	}
	c.log().Info("partition analysis",
		zap.Int("nmesh", len(meshes)),
		zap.Int("nproc", nproc),
		zap.Float64("imbalance", br.Imbalance),
		zap.Float64("max_load", br.MaxLoad),
		zap.Float64("min_load", br.MinLoad),
		zap.Int("cut_interfaces", br.CutInterfaces),
		zap.Float64("comm_volume", br.CommVolume))
	return
}
