package fds

import (
	"fmt"
	"strings"

	"github.com/notargets/fdsmesh/mesh"
	"github.com/notargets/fdsmesh/types"
)

const (
	LineWidth = 80
	indent    = "      "
)

// Namelist is one FDS namelist group, parameters kept in output order
type Namelist struct {
	Group  string
	Params []string
}

func NewNamelist(group string, params ...string) *Namelist {
	return &Namelist{Group: group, Params: params}
}

func (nl *Namelist) Add(format string, args ...any) *Namelist {
	nl.Params = append(nl.Params, fmt.Sprintf(format, args...))
	return nl
}

/*
String renders the namelist, starting a new indented line whenever the next
parameter would push the current one past LineWidth. The closing slash is
not counted.
*/
func (nl *Namelist) String() string {
	var (
		b    strings.Builder
		line = "&" + nl.Group
	)
	for _, p := range nl.Params {
		if len(line)+1+len(p) > LineWidth {
			b.WriteString(line + "\n")
			line = indent + p
			continue
		}
		line += " " + p
	}
	b.WriteString(line + " /")
	return b.String()
}

func quote(s string) string { return "'" + s + "'" }

func formatIJK(ijk types.IJK) string {
	return fmt.Sprintf("IJK=%d,%d,%d", ijk[0], ijk[1], ijk[2])
}

func formatXB(xb types.XB) string {
	return fmt.Sprintf("XB=%.3f,%.3f,%.3f,%.3f,%.3f,%.3f", xb[0], xb[1], xb[2], xb[3], xb[4], xb[5])
}

// Comment is the diagnostic line written above each MESH namelist
func Comment(ncell int, g mesh.Geometry) string {
	cs := g.CellSizes
	return fmt.Sprintf("Cell Qty: %d | Size: %.3f·%.3f·%.3fm | Aspect: %.1f | Poisson: %s",
		ncell, cs[0], cs[1], cs[2], g.Aspect, g.HasGoodIJK)
}

/*
MeshNamelists renders every mesh of an expanded geometry as a comment line
followed by its MESH namelist. An unexpanded mesh carries its FYI right after
the ID, expanded ones after XB. process, when not nil, holds the MPI process
of each mesh in g.
*/
func MeshNamelists(g mesh.Geometry, fyi string, process []int) (lines []string, err error) {
	if process != nil && len(process) != g.NMesh {
		err = fmt.Errorf("%d MPI processes given for %d meshes", len(process), g.NMesh)
		return
	}
	expanded := g.NMesh > 1 || g.NMult > 1 || g.NSplit > 1
	for n := range g.IDs {
		nl := NewNamelist("MESH", "ID="+quote(g.IDs[n]))
		if fyi != "" && !expanded {
			nl.Add("FYI=%s", quote(fyi))
		}
		nl.Params = append(nl.Params, formatIJK(g.IJKs[n]), formatXB(g.XBs[n]))
		if fyi != "" && expanded {
			nl.Add("FYI=%s", quote(fyi))
		}
		if process != nil {
			nl.Add("MPI_PROCESS=%d", process[n])
		}
		lines = append(lines, Comment(g.IJKs[n].Count(), g), nl.String())
	}
	return
}

func MeshString(g mesh.Geometry, fyi string, process []int) (s string, err error) {
	var lines []string
	if lines, err = MeshNamelists(g, fyi, process); err != nil {
		return
	}
	return strings.Join(lines, "\n"), nil
}
