package shader

import "fmt"

// Handle is an opaque identifier assigned by the graphics driver to a stage
// or a program. The zero value is the sentinel for "no usable program".
type Handle uint32

const Invalid Handle = 0

type Stage int

const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}
