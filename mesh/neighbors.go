package mesh

import (
	"math"
	"sort"

	"github.com/james-bowman/sparse"

	"github.com/notargets/fdsmesh/types"
)

/*
Adjacency is the symmetric mesh to mesh contact matrix. The weight of a
contact is the shared face area over the face area of the finer cell, about
the number of cells exchanged across the interface.
*/
type Adjacency struct {
	N   int
	csr *sparse.CSR
}

func (a *Adjacency) Weight(i, j int) float64 {
	return a.csr.At(i, j)
}

// Neighbors lists the meshes in contact with mesh i, ascending
func (a *Adjacency) Neighbors(i int) (nbrs []int) {
	raw := a.csr.RawMatrix()
	for p := raw.Indptr[i]; p < raw.Indptr[i+1]; p++ {
		nbrs = append(nbrs, raw.Ind[p])
	}
	sort.Ints(nbrs)
	return
}

// Interfaces is the number of contacts, each pair counted once
func (a *Adjacency) Interfaces() int {
	return len(a.csr.RawMatrix().Ind) / 2
}

// Neighbors finds the meshes sharing a face
func (c *Config) Neighbors(meshes []MeshSpec) (adj *Adjacency, err error) {
	var (
		n   = len(meshes)
		dok = sparse.NewDOK(max(n, 1), max(n, 1))
		cs  = make([][3]float64, n)
	)
	for i, m := range meshes {
		if err = validateMesh(m); err != nil {
			return
		}
		cs[i] = m.CellSizes()
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w := c.contact(meshes[i], meshes[j], cs[i], cs[j]); w > 0 {
				dok.Set(i, j, w)
				dok.Set(j, i, w)
			}
		}
	}
	adj = &Adjacency{N: n, csr: dok.ToCSR()}
	return
}

func (c *Config) contact(a, b MeshSpec, csa, csb [3]float64) (w float64) {
	for _, ax := range types.Axes {
		tol := c.NeighborTolerance * math.Min(csa[ax], csb[ax])
		if math.Abs(a.XB.Hi(ax)-b.XB.Lo(ax)) > tol && math.Abs(b.XB.Hi(ax)-a.XB.Lo(ax)) > tol {
			continue
		}
		var (
			area     = 1.
			cellArea = 1.
		)
		for _, o := range types.Axes {
			if o == ax {
				continue
			}
			overlap := math.Min(a.XB.Hi(o), b.XB.Hi(o)) - math.Max(a.XB.Lo(o), b.XB.Lo(o))
			if overlap <= c.NeighborTolerance*math.Min(csa[o], csb[o]) {
				area = 0
				break
			}
			area *= overlap
			cellArea *= math.Min(csa[o], csb[o])
		}
		if area > 0 {
			return area / cellArea
		}
	}
	return 0
}
