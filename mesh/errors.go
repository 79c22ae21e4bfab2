package mesh

import (
	"errors"
	"fmt"

	"github.com/notargets/fdsmesh/types"
)

var (
	// ErrInvalidArgument flags malformed geometry or parameters
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAlignmentImpossible flags protection constraints that cannot hold together
	ErrAlignmentImpossible = errors.New("alignment impossible")
	// ErrAlignmentRefused flags a treated mesh finer than the reference
	ErrAlignmentRefused = errors.New("alignment refused")
)

type AxisError struct {
	Axis types.Axis
	Err  error
	Msg  string
}

func (e *AxisError) Error() string {
	return fmt.Sprintf("%v along %s axis: %s", e.Err, e.Axis, e.Msg)
}

func (e *AxisError) Unwrap() error { return e.Err }

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func validateMesh(m MeshSpec) error {
	if err := m.IJK.Validate(); err != nil {
		return invalidf("mesh %q: %v", m.ID, err)
	}
	if err := m.XB.Validate(); err != nil {
		return invalidf("mesh %q: %v", m.ID, err)
	}
	return nil
}
