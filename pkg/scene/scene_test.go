package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHouse(t *testing.T) {
	objects := House("cube")
	require.Len(t, objects, 10)

	for i, o := range objects {
		assert.Equal(t, "cube", o.Name)
		assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, o.Scale)
		assert.Equal(t, mgl32.Vec3{1, 1, 1}, o.Rotation)
		assert.InDelta(t, mgl32.DegToRad(20*float32(i)), o.Angle, 1e-6)
	}
	assert.Equal(t, mgl32.Vec3{-0.5, -0.5, -0.5}, objects[0].Position)
	assert.Equal(t, mgl32.Vec3{0, 1.5, 0.5}, objects[9].Position)
}

func TestObject_ModelOrder(t *testing.T) {
	o := NewObject("cube")
	o.Position = mgl32.Vec3{1, 2, 3}
	o.Scale = mgl32.Vec3{2, 2, 2}
	o.Rotation = mgl32.Vec3{0, 0, 1}
	o.Angle = mgl32.DegToRad(90)

	// scale, then rotate 90° about Z, then translate
	got := o.Model().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.True(t, mgl32.Vec4{1, 4, 3, 1}.ApproxEqualThreshold(got, 1e-5), "got %v", got)
}

func TestObject_IdentityWithoutAngle(t *testing.T) {
	o := NewObject("cube")
	assert.Equal(t, mgl32.Ident4(), o.Model())
}
