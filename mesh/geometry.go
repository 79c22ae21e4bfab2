package mesh

import (
	"golang.org/x/sync/errgroup"
	"go.uber.org/zap"

	"github.com/notargets/fdsmesh/types"
)

// MeshInput is a mesh as authored, before replication and splitting
type MeshInput struct {
	Mesh        MeshSpec
	Mult        *Multiplier
	NSplits     SplitPlan
	SplitExport bool
}

// Geometry is the flat list of meshes a MeshInput expands to, with metrics
type Geometry struct {
	IDs        []string
	IJKs       []types.IJK
	XBs        []types.XB
	NMesh      int
	NSplit     int
	NMult      int
	NCellTot   int
	NCell      int // cells per mesh, the first piece when split
	CellSizes  [3]float64
	Aspect     float64
	HasGoodIJK string // "Yes" when the authored mesh is Poisson admissible
}

func (g Geometry) Meshes() (meshes []MeshSpec) {
	meshes = make([]MeshSpec, len(g.IDs))
	for n := range g.IDs {
		meshes[n] = NewMeshSpec(g.IDs[n], g.IJKs[n], g.XBs[n])
	}
	return
}

/*
MeshGeometry expands a mesh input, replicating it first when a multiplier is
set, then splitting each replica when a split is exported.
*/
func (c *Config) MeshGeometry(in MeshInput) (g Geometry, err error) {
	var (
		replicas = []MeshSpec{in.Mesh}
	)
	if err = validateMesh(in.Mesh); err != nil {
		return
	}
	if in.Mult != nil {
		if replicas, err = in.Mult.Replicate(in.Mesh); err != nil {
			return
		}
	}
	g.NMult = len(replicas)
	g.NSplit = 1
	g.NCell = in.Mesh.CellCount()
	for _, rep := range replicas {
		if in.SplitExport && !in.NSplits.IsTrivial() {
			var sr SplitResult
			if sr, err = c.SplitMesh(rep.ID, rep.IJK, in.SplitExport, in.NSplits, rep.XB); err != nil {
				return
			}
			g.IDs = append(g.IDs, sr.IDs...)
			g.IJKs = append(g.IJKs, sr.IJKs...)
			g.XBs = append(g.XBs, sr.XBs...)
			g.NSplit, g.NCell = sr.NSplit, sr.NCell
			continue
		}
		g.IDs = append(g.IDs, rep.ID)
		g.IJKs = append(g.IJKs, rep.IJK)
		g.XBs = append(g.XBs, rep.XB)
	}
	g.NMesh = len(g.IDs)
	for _, ijk := range g.IJKs {
		g.NCellTot += ijk.Count()
	}
	g.CellSizes = in.Mesh.CellSizes()
	if g.Aspect, err = CellAspect(g.CellSizes); err != nil {
		return
	}
	g.HasGoodIJK = "No"
	if IsPoissonIJK(in.Mesh.IJK) {
		g.HasGoodIJK = "Yes"
	}
	c.log().Debug("mesh geometry",
		zap.String("id", in.Mesh.ID),
		zap.Int("nmesh", g.NMesh),
		zap.Int("nmult", g.NMult),
		zap.Int("nsplit", g.NSplit),
		zap.Int("ncell_tot", g.NCellTot))
	return
}

// ExpandAll runs MeshGeometry over inputs concurrently, keeping their order
func (c *Config) ExpandAll(inputs []MeshInput) (geoms []Geometry, err error) {
	var eg errgroup.Group
	if c.Workers > 0 {
		eg.SetLimit(c.Workers)
	}
	geoms = make([]Geometry, len(inputs))
	for n := range inputs {
		eg.Go(func() (err error) {
			geoms[n], err = c.MeshGeometry(inputs[n])
			return
		})
	}
	if err = eg.Wait(); err != nil {
		geoms = nil
	}
	return
}
