package vec

import "math"

// Operand is implemented by Scalar and Vec. The elementwise helpers below
// accept either and return the same kind.
type Operand[T any] interface {
	Scalar | Vec
	Map(f func(float64) float64) T
}

func Abs[T Operand[T]](x T) T   { return x.Map(math.Abs) }
func Floor[T Operand[T]](x T) T { return x.Map(math.Floor) }
func Fract[T Operand[T]](x T) T { return x.Map(Fractf) }

func Clamp[T Operand[T]](x T, lo, hi float64) T {
	return x.Map(func(c float64) float64 { return Clampf(c, lo, hi) })
}

func Absf(x float64) float64   { return math.Abs(x) }
func Floorf(x float64) float64 { return math.Floor(x) }

// Fractf returns x - floor(x).
func Fractf(x float64) float64 { return x - math.Floor(x) }

// Clampf returns min(max(x, lo), hi).
func Clampf(x, lo, hi float64) float64 { return math.Min(math.Max(x, lo), hi) }

// Mixf returns a*t + b*(1-t).
func Mixf(a, b, t float64) float64 { return a*t + b*(1.0-t) }
