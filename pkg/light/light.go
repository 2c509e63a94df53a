// Package light keeps the light sources of a scene and uploads them as
// shader uniforms.
package light

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights must match the size of the lightSources array in the fragment
// shader.
const MaxLights = 10

type Type int32

const (
	Point Type = iota + 1
	Spot
	Directional
)

type Light struct {
	Type      Type
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Colour    mgl32.Vec3
	Constant  float32
	Linear    float32
	Quadratic float32
	// Cutoff is the cosine of the spot cone half angle.
	Cutoff float32
}

var ErrTooManyLights = errors.New("too many light sources")

type Set struct {
	lights []Light
}

func (s *Set) Len() int { return len(s.lights) }

func (s *Set) Lights() []Light { return s.lights }

func (s *Set) add(l Light) error {
	if len(s.lights) >= MaxLights {
		return fmt.Errorf("%w: limit is %d", ErrTooManyLights, MaxLights)
	}
	s.lights = append(s.lights, l)
	return nil
}

func (s *Set) AddPointLight(position, colour mgl32.Vec3, constant, linear, quadratic float32) error {
	return s.add(Light{
		Type:      Point,
		Position:  position,
		Colour:    colour,
		Constant:  constant,
		Linear:    linear,
		Quadratic: quadratic,
	})
}

func (s *Set) AddSpotLight(position, direction, colour mgl32.Vec3, constant, linear, quadratic, cutoff float32) error {
	return s.add(Light{
		Type:      Spot,
		Position:  position,
		Direction: direction.Normalize(),
		Colour:    colour,
		Constant:  constant,
		Linear:    linear,
		Quadratic: quadratic,
		Cutoff:    cutoff,
	})
}

func (s *Set) AddDirectionalLight(direction, colour mgl32.Vec3) error {
	return s.add(Light{
		Type:      Directional,
		Direction: direction.Normalize(),
		Colour:    colour,
	})
}

// UniformSink writes named uniforms of the currently used program.
type UniformSink interface {
	Uniform1i(name string, v int32)
	Uniform1f(name string, v float32)
	Uniform3f(name string, v mgl32.Vec3)
}

// Upload writes every light with positions and directions transformed into
// view space.
func (s *Set) Upload(sink UniformSink, view mgl32.Mat4) {
	sink.Uniform1i("numLights", int32(len(s.lights)))
	for i, l := range s.lights {
		prefix := fmt.Sprintf("lightSources[%d].", i)
		viewPosition := view.Mul4x1(l.Position.Vec4(1)).Vec3()
		viewDirection := view.Mul4x1(l.Direction.Vec4(0)).Vec3()

		sink.Uniform1i(prefix+"type", int32(l.Type))
		sink.Uniform3f(prefix+"colour", l.Colour)
		sink.Uniform3f(prefix+"position", viewPosition)
		sink.Uniform3f(prefix+"direction", viewDirection)
		sink.Uniform1f(prefix+"constant", l.Constant)
		sink.Uniform1f(prefix+"linear", l.Linear)
		sink.Uniform1f(prefix+"quadratic", l.Quadratic)
		sink.Uniform1f(prefix+"cosPhi", l.Cutoff)
	}
}
