package builtin

import (
	"math"

	"shaderbox/vec"
)

// Flompy overlays pulsing concentric circles with rotating spokes on a blue
// base.
func Flompy(fragCoord, resolution vec.Vec, time float64) vec.Vec {
	p := centered(fragCoord, resolution)
	a, r := polar(p)

	t := time / 5.0
	scale := math.Sin(t * 1.0)

	circles := gray(math.Sin(r * scale * 40.0))
	radii := gray(math.Sin(a*60.0 + t*60.0))

	return circles.Mix(radii, 0.5).Add(vec.Vec3(0.0, 0.0, 1.0))
}
