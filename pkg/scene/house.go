package scene

import "github.com/go-gl/mathgl/mgl32"

// housePositions is a 2x2x2 block of cubes with a two-cube roof on top.
var housePositions = []mgl32.Vec3{
	{-0.5, -0.5, -0.5},
	{0.5, -0.5, -0.5},
	{-0.5, -0.5, 0.5},
	{0.5, -0.5, 0.5},
	{-0.5, 0.5, -0.5},
	{0.5, 0.5, -0.5},
	{-0.5, 0.5, 0.5},
	{0.5, 0.5, 0.5},
	{0.0, 1.5, -0.5},
	{0.0, 1.5, 0.5},
}

// House returns the house made of instances of the named model. Each cube
// is half size and turned 20° more than the previous one around (1,1,1).
func House(model string) []Object {
	objects := make([]Object, 0, len(housePositions))
	for i, pos := range housePositions {
		o := NewObject(model)
		o.Position = pos
		o.Rotation = mgl32.Vec3{1, 1, 1}
		o.Scale = mgl32.Vec3{0.5, 0.5, 0.5}
		o.Angle = mgl32.DegToRad(20 * float32(i))
		objects = append(objects, o)
	}
	return objects
}
