package component

import "github.com/jakecoffman/cp"

// Transform places a body in world space. Y grows upwards.
type Transform struct {
	Pos      cp.Vector
	Rotation float64
	Scale    float64
}

var TransformComponent = NewComponent[Transform]()
