package scene

import "github.com/go-gl/mathgl/mgl32"

// Object places a named model in the world. Rotation is the axis Angle
// (radians) turns around; it need not be normalised.
type Object struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
	Angle    float32
}

func NewObject(name string) Object {
	return Object{
		Name:     name,
		Rotation: mgl32.Vec3{0, 1, 0},
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Model returns the model matrix translate · rotate · scale.
func (o Object) Model() mgl32.Mat4 {
	translate := mgl32.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z())
	scale := mgl32.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z())
	rotate := mgl32.Ident4()
	if o.Angle != 0 && o.Rotation.Len() > 0 {
		rotate = mgl32.HomogRotate3D(o.Angle, o.Rotation.Normalize())
	}
	return translate.Mul4(rotate).Mul4(scale)
}
