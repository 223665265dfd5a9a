package vec

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrConstructorArity = errors.New("vec: wrong number of components")
	ErrLengthMismatch   = errors.New("vec: length mismatch")
	ErrInvalidSwizzle   = errors.New("vec: invalid swizzle")
)

// Vec is an immutable vector of 2, 3 or 4 components.
//
// The zero Vec has length 0 and is not a well-formed vector.
type Vec struct {
	n uint8
	c [4]float64
}

// Vec2, Vec3 and Vec4 build vectors of a fixed length.
func Vec2(x, y float64) Vec       { return Vec{n: 2, c: [4]float64{x, y}} }
func Vec3(x, y, z float64) Vec    { return Vec{n: 3, c: [4]float64{x, y, z}} }
func Vec4(x, y, z, w float64) Vec { return Vec{n: 4, c: [4]float64{x, y, z, w}} }

// New builds an n-component vector from exactly n values.
func New(n int, vals ...float64) (Vec, error) {
	if n < 2 || n > 4 {
		return Vec{}, errors.Wrapf(ErrConstructorArity, "vec%d is not a vector type", n)
	}
	if len(vals) != n {
		return Vec{}, errors.Wrapf(ErrConstructorArity, "vec%d takes %d values, got %d", n, n, len(vals))
	}
	v := Vec{n: uint8(n)}
	copy(v.c[:], vals)
	return v, nil
}

// Len returns the number of components (2, 3 or 4).
func (v Vec) Len() int { return int(v.n) }

// Components returns a copy of the components in xyzw order.
func (v Vec) Components() []float64 {
	out := make([]float64, v.n)
	copy(out, v.c[:v.n])
	return out
}

func (v Vec) String() string {
	var sb strings.Builder
	sb.WriteString("vec")
	sb.WriteString(strconv.Itoa(int(v.n)))
	sb.WriteByte('(')
	for i := 0; i < int(v.n); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v.c[i], 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Map applies f to every component.
func (v Vec) Map(f func(float64) float64) Vec {
	out := Vec{n: v.n}
	for i := 0; i < int(v.n); i++ {
		out.c[i] = f(v.c[i])
	}
	return out
}

func (Vec) isValue() {}

func sameLen(op string, a, b Vec) error {
	if a.n != b.n {
		return errors.Wrapf(ErrLengthMismatch, "%s: vec%d and vec%d", op, a.n, b.n)
	}
	return nil
}

func zip(a, b Vec, f func(x, y float64) float64) Vec {
	out := Vec{n: a.n}
	for i := 0; i < int(a.n); i++ {
		out.c[i] = f(a.c[i], b.c[i])
	}
	return out
}

// Add returns a+b componentwise; lengths must match.
func Add(a, b Vec) (Vec, error) {
	if err := sameLen("add", a, b); err != nil {
		return Vec{}, err
	}
	return zip(a, b, func(x, y float64) float64 { return x + y }), nil
}

// Sub returns a-b componentwise; lengths must match.
func Sub(a, b Vec) (Vec, error) {
	if err := sameLen("sub", a, b); err != nil {
		return Vec{}, err
	}
	return zip(a, b, func(x, y float64) float64 { return x - y }), nil
}

// Scale multiplies every component by s.
func Scale(a Vec, s float64) Vec {
	return a.Map(func(x float64) float64 { return x * s })
}

// Divide divides every component by s. A zero s is not guarded.
func Divide(a Vec, s float64) Vec {
	return a.Map(func(x float64) float64 { return x / s })
}

// Negate flips the sign of every component.
func Negate(a Vec) Vec {
	return a.Map(func(x float64) float64 { return -x })
}

// Equal reports exact componentwise equality. Comparing vectors of different
// lengths is an error, not false.
func Equal(a, b Vec) (bool, error) {
	if err := sameLen("equal", a, b); err != nil {
		return false, err
	}
	for i := 0; i < int(a.n); i++ {
		if a.c[i] != b.c[i] {
			return false, nil
		}
	}
	return true, nil
}

// Dot returns the dot product of two vectors of the same length.
func Dot(a, b Vec) (float64, error) {
	if err := sameLen("dot", a, b); err != nil {
		return 0, err
	}
	var sum float64
	for i := 0; i < int(a.n); i++ {
		sum += a.c[i] * b.c[i]
	}
	return sum, nil
}

// Norm returns the Euclidean length of v.
func Norm(v Vec) float64 {
	var sum float64
	for i := 0; i < int(v.n); i++ {
		sum += v.c[i] * v.c[i]
	}
	return math.Sqrt(sum)
}

func Distance(a, b Vec) (float64, error) {
	d, err := Sub(a, b)
	if err != nil {
		return 0, errors.Wrap(err, "distance")
	}
	return Norm(d), nil
}

// Mix returns a*t + b*(1-t).
//
// Note the argument order: t=1 yields a and t=0 yields b, the reverse of
// GLSL's mix.
func Mix(a, b Vec, t float64) (Vec, error) {
	if err := sameLen("mix", a, b); err != nil {
		return Vec{}, err
	}
	return zip(a, b, func(x, y float64) float64 { return Mixf(x, y, t) }), nil
}
