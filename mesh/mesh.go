package mesh

import (
	"github.com/notargets/fdsmesh/types"
)

// MeshSpec is one structured rectilinear FDS MESH
type MeshSpec struct {
	ID  string
	IJK types.IJK
	XB  types.XB
}

func NewMeshSpec(id string, ijk types.IJK, xb types.XB) MeshSpec {
	return MeshSpec{ID: id, IJK: ijk, XB: xb}
}

// CellSizes is span/ijk along each axis
func (m MeshSpec) CellSizes() (cs [3]float64) {
	for _, ax := range types.Axes {
		cs[ax] = m.XB.Span(ax) / float64(m.IJK[ax])
	}
	return
}

func (m MeshSpec) CellCount() int {
	return m.IJK.Count()
}

func (m MeshSpec) Validate() error {
	return validateMesh(m)
}
