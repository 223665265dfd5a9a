package builtin

import (
	"math"

	"shaderbox/vec"
)

var gradientPhase = vec.Vec3(0, 2, 4)

// Gradient is the classic shadertoy starter: a slowly cycling uv gradient.
func Gradient(fragCoord, resolution vec.Vec, time float64) vec.Vec {
	uv := vec.Vec2(fragCoord.X()/resolution.X(), fragCoord.Y()/resolution.Y())
	wave := uv.Swizzle("xyx").Add(gradientPhase).Map(func(c float64) float64 {
		return math.Cos(time + c)
	})
	return wave.Mul(0.5).Add(vec.Vec3(0.5, 0.5, 0.5))
}
