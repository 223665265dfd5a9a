package builtin

import "shaderbox/vec"

const timeWarpRings = 8

// TimeWarp draws eight rainbow rings expanding from the centre and wrapping
// around every three radius units.
func TimeWarp(fragCoord, resolution vec.Vec, time float64) vec.Vec {
	p := centered(fragCoord, resolution)
	t := time * 2.0

	result := vec.Vec3(0, 0, 0)
	for i := 0; i < timeWarpRings; i++ {
		ringR := floatMod(t*0.5+float64(i)*0.5, 3.0)
		circle := annulus(p, vec.Vec2(0, 0), ringR, 0.1)
		colour := hsv2rgb(vec.Vec3(float64(i)/(timeWarpRings-1), 1.0, 1.0))
		result = result.Add(colour.Mul(circle))
	}
	return result
}

func annulus(p, centre vec.Vec, radius, thickness float64) float64 {
	r := vec.Norm(p.Sub(centre))
	if r > radius-thickness/2.0 && r < radius+thickness/2.0 {
		return 1.0
	}
	return 0.0
}

func floatMod(a, b float64) float64 {
	return vec.Fractf(a/b) * b
}

func hsv2rgb(c vec.Vec) vec.Vec {
	k := vec.Vec4(1.0, 2.0/3.0, 1.0/3.0, 3.0)
	p := vec.Abs(c.XXX().Add(k.XYZ()).Fract().Mul(6.0).Sub(k.WWW()))
	// Mix takes the weight of its first argument, so the saturated color
	// goes first.
	return p.Sub(k.XXX()).Clamp(0.0, 1.0).Mix(k.XXX(), c.Y()).Mul(c.Z())
}
