package builtin

import (
	"math"

	"shaderbox/vec"
)

func RainbowSwirl(fragCoord, resolution vec.Vec, time float64) vec.Vec {
	a, r := polar(centered(fragCoord, resolution))
	t := time / 5.0

	col1 := vec.Vec3(
		1.0*math.Sin(4.0*(r-t)+a),
		1.0*math.Sin(4.0*(r-t)+a+3.14/3.0),
		1.0*math.Sin(4.0*(r-t*2.0)+a+3.14*2.0/3.0),
	)
	col2 := vec.Vec3(
		1.0*math.Sin(4.0*(r*0.5+t*0.2)+a+3.14/3.0),
		1.0*math.Sin(4.0*(r*0.5+t*0.5)+a+3.14*2.0/3.0),
		1.0*math.Sin(4.0*(r*0.5+t*0.5)+a),
	)
	return col1.Mix(col2, 0.5)
}
