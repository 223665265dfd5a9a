// Package builtin holds the shaders shipped with shaderbox.
package builtin

import (
	"math"

	"shaderbox/shader"
	"shaderbox/vec"
)

var catalog = []struct {
	name string
	fn   shader.Shader
}{
	{"breathe", Breathe},
	{"flompy", Flompy},
	{"gradient", Gradient},
	{"hypnotoad", Hypnotoad},
	{"rainbow_swirl", RainbowSwirl},
	{"time_warp", TimeWarp},
}

// Register adds every built-in shader to r.
func Register(r *shader.Registry) error {
	for _, c := range catalog {
		if err := r.Register(c.name, c.fn); err != nil {
			return err
		}
	}
	return nil
}

// Registry returns a new registry populated with the built-in shaders.
func Registry() *shader.Registry {
	r := shader.NewRegistry()
	if err := Register(r); err != nil {
		panic(err)
	}
	return r
}

// centered maps a pixel to [-aspect, aspect] x [-1, 1] with the origin at the
// middle of the screen.
func centered(fragCoord, resolution vec.Vec) vec.Vec {
	return fragCoord.Mul(2.0).Sub(resolution).Div(resolution.Y())
}

// polar returns the angle and radius of p around the origin.
func polar(p vec.Vec) (a, r float64) {
	a = math.Atan2(p.Y(), p.X())
	r = math.Pow(p.X()*p.X()+p.Y()*p.Y(), 0.5)
	return a, r
}

func gray(v float64) vec.Vec { return vec.Vec3(v, v, v) }
