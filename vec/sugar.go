package vec

// The methods below panic instead of returning errors so that shader bodies
// can chain them. The panic value is the same error the package function
// would have returned.

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func (a Vec) Add(b Vec) Vec            { return must(Add(a, b)) }
func (a Vec) Sub(b Vec) Vec            { return must(Sub(a, b)) }
func (a Vec) Mul(s float64) Vec        { return Scale(a, s) }
func (a Vec) Div(s float64) Vec        { return Divide(a, s) }
func (a Vec) Neg() Vec                 { return Negate(a) }
func (a Vec) Dot(b Vec) float64        { return must(Dot(a, b)) }
func (a Vec) Dist(b Vec) float64       { return must(Distance(a, b)) }
func (a Vec) Mix(b Vec, t float64) Vec { return must(Mix(a, b, t)) }
func (a Vec) Norm() float64            { return Norm(a) }
func (a Vec) Abs() Vec                 { return Abs(a) }
func (a Vec) Floor() Vec               { return Floor(a) }
func (a Vec) Fract() Vec               { return Fract(a) }
func (a Vec) Clamp(lo, hi float64) Vec { return Clamp(a, lo, hi) }
