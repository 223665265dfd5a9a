package builtin

import (
	"github.com/tanema/gween/ease"

	"shaderbox/vec"
)

const breathePeriod = 8.0

var breatheColor = vec.Vec3(0.15, 0.45, 0.95)

// Breathe slowly pulses a soft blue glow using an ease-in-out curve.
func Breathe(fragCoord, resolution vec.Vec, time float64) vec.Vec {
	phase := vec.Fractf(time / breathePeriod)

	var level float32
	if phase < 0.5 {
		level = ease.InOutSine(float32(phase*2), 0, 1, 1)
	} else {
		level = ease.InOutSine(float32((phase-0.5)*2), 1, -1, 1)
	}

	falloff := 1.0 - vec.Clampf(vec.Norm(centered(fragCoord, resolution)), 0, 1)*0.6
	return breatheColor.Mul(float64(level) * falloff)
}
