package builtin

import (
	"math"

	"shaderbox/vec"
)

// Hypnotoad draws a fast grey spiral.
func Hypnotoad(fragCoord, resolution vec.Vec, time float64) vec.Vec {
	a, r := polar(centered(fragCoord, resolution))
	t := time * 10.0
	return gray(math.Sin(r*40.0+a-t) + 0.5)
}
