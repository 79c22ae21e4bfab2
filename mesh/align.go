package mesh

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/notargets/fdsmesh/types"
	"github.com/notargets/fdsmesh/utils"
)

/*
Mesh alignment along an axis:

	Before:
	  |   |rcs|   |   | ri  ref mesh
	  ·---·---·---·---·
	 rx0   <-rl->    rx1
	mx0      <-ml->      mx1
	 ·------·------·------·
	 |      | mcs  |      | mi  other mesh

	After:
	 |   |   |   |   |
	 ·---·---·---·---·-------·
	 |       |       |       |

Every coarse cell is covered by a whole number of reference cells. Either the
reference length rl or its cell size rcs is protected, ml and mcs change.
*/

const FarApartMessage = "far apart, no alignment"

type AlignmentRequest struct {
	Ref  MeshSpec // reference mesh, the finer one
	Mesh MeshSpec // treated mesh
	// Poisson keeps y and z cell counts solver admissible
	Poisson    bool
	ProtectRXB bool
	ProtectRCS bool
}

// NewAlignmentRequest protects the reference box and cell size
func NewAlignmentRequest(ref, m MeshSpec) AlignmentRequest {
	return AlignmentRequest{
		Ref:        ref,
		Mesh:       m,
		ProtectRXB: true,
		ProtectRCS: true,
	}
}

type AlignmentResult struct {
	Ref      MeshSpec
	Mesh     MeshSpec
	Messages []string
	FarApart bool
}

// Message joins the adjustments made, empty when nothing was resized
func (r AlignmentResult) Message() string {
	return strings.Join(r.Messages, ", ")
}

type axisAlignment struct {
	ri       int
	rx0, rx1 float64
	mi       int
	mx0, mx1 float64
	msg      string
}

/*
Align moves and resizes the treated mesh, and when allowed the reference
mesh, so that their cells match where they meet. Meshes farther apart than
MagnetNCell reference cells are returned untouched. Faces closer than that
are snapped together; along the other axes the coarse cells are aligned to the
reference grid.
*/
func (c *Config) Align(req AlignmentRequest) (res AlignmentResult, err error) {
	var (
		rijk, rxb = req.Ref.IJK, req.Ref.XB
		mijk, mxb = req.Mesh.IJK, req.Mesh.XB
		deltas    [3]float64
		lg        = c.log().With(zap.String("ref", req.Ref.ID), zap.String("mesh", req.Mesh.ID))
	)
	if err = validateMesh(req.Ref); err != nil {
		return
	}
	if err = validateMesh(req.Mesh); err != nil {
		return
	}
	res.Ref, res.Mesh = req.Ref, req.Mesh
	for _, ax := range types.Axes {
		deltas[ax] = math.Abs(rxb.Hi(ax)-rxb.Lo(ax)) / float64(rijk[ax]) * c.MagnetNCell
	}
	if isFar(rxb, mxb, deltas) {
		lg.Debug(FarApartMessage)
		res.FarApart = true
		res.Messages = []string{FarApartMessage}
		return
	}
	for _, ax := range types.Axes {
		var (
			lo, hi = 2 * ax, 2*ax + 1
			aa     axisAlignment
		)
		switch {
		case math.Abs(rxb[lo]-mxb[hi]) <= deltas[ax]:
			lg.Debug("ref lower face snapped", zap.Stringer("axis", ax))
			mxb[hi] = rxb[lo]
		case math.Abs(mxb[lo]-rxb[hi]) <= deltas[ax]:
			lg.Debug("ref upper face snapped", zap.Stringer("axis", ax))
			mxb[lo] = rxb[hi]
		default:
			aa, err = c.alignAlongAxis(ax,
				rijk[ax], rxb[lo], rxb[hi],
				mijk[ax], mxb[lo], mxb[hi],
				req.Poisson && ax != types.X, // not needed along x
				req.ProtectRXB, req.ProtectRCS)
			if err != nil {
				return
			}
			rijk[ax], rxb[lo], rxb[hi] = aa.ri, aa.rx0, aa.rx1
			mijk[ax], mxb[lo], mxb[hi] = aa.mi, aa.mx0, aa.mx1
			if aa.msg != "" {
				res.Messages = append(res.Messages, fmt.Sprintf("%s along %s axis", aa.msg, ax))
			}
			lg.Debug("axis aligned", zap.Stringer("axis", ax), zap.String("msg", aa.msg))
		}
	}
	res.Ref = NewMeshSpec(req.Ref.ID, rijk, rxb)
	res.Mesh = NewMeshSpec(req.Mesh.ID, mijk, mxb)
	return
}

/*
	rx0 rx1
	 .---.
	      delta .----.
	           mx0  mx1
*/
func isFar(rxb, mxb types.XB, deltas [3]float64) bool {
	for _, ax := range types.Axes {
		if rxb.Lo(ax)-mxb.Hi(ax) > deltas[ax] || mxb.Lo(ax)-rxb.Hi(ax) > deltas[ax] {
			return true
		}
	}
	return false
}

func (c *Config) alignAlongAxis(ax types.Axis, ri int, rx0, rx1 float64, mi int, mx0, mx1 float64,
	poisson, protectRXB, protectRCS bool) (aa axisAlignment, err error) {
	var (
		rl, ml   = rx1 - rx0, mx1 - mx0
		rcs, mcs = rl / float64(ri), ml / float64(mi)
		rim, n   int
	)
	// Coarsening ratio, same or coarser, with room for float error
	if mcs/rcs < c.CoarserRatioMin {
		err = &AxisError{Axis: ax, Err: ErrAlignmentRefused,
			Msg: fmt.Sprintf("aligned mesh should be coarser than reference: %g > %g", mcs, rcs)}
		return
	}
	n = utils.Round(mcs / rcs)

	// Reference cell count multiple of n, so that ref cells cover coarse cells
	rim = max(utils.Round(float64(ri)/float64(n)), 1) * n
	if poisson {
		if rim, err = c.NForPoisson(rim); err != nil {
			return
		}
	}
	if math.Abs(float64(ri-rim)) > c.MultipleTolerance {
		if protectRCS {
			if protectRXB {
				err = &AxisError{Axis: ax, Err: ErrAlignmentImpossible,
					Msg: "reference cell size and size both protected, allow resizing reference"}
				return
			}
			rl = rcs * float64(rim)
			rx1 = rx0 + rl
			aa.msg = "increased ref size"
		} else {
			rcs = rl / float64(rim)
			aa.msg = "decreased ref cell size"
		}
	}

	// Coarse cell size from ref cell size, keeping ml as close as possible
	mcs = rcs * float64(n)
	if mi = utils.Round(ml / mcs); mi < 1 {
		err = &AxisError{Axis: ax, Err: ErrInvalidArgument,
			Msg: fmt.Sprintf("treated mesh shorter than one coarse cell %g", mcs)}
		return
	}
	if poisson {
		if mi, err = c.NForPoisson(mi); err != nil {
			return
		}
	}

	// Align coarse mesh positions to the ref mesh
	mx0 = rx0 + float64(utils.Round((mx0-rx0)/mcs))*mcs
	ml = mcs * float64(mi)
	mx1 = mx0 + ml

	aa.ri, aa.rx0, aa.rx1 = rim, rx0, rx1
	aa.mi, aa.mx0, aa.mx1 = mi, mx0, mx1
	return
}
