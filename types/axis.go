package types

import (
	"fmt"
)

type Axis uint8

const (
	X Axis = iota
	Y
	Z
)

var Axes = [3]Axis{X, Y, Z}

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}
