package vec

import (
	"strings"

	"github.com/pkg/errors"
)

const componentNames = "xyzw"

// Value is the result of a swizzle: a Scalar for one-letter requests, a Vec
// otherwise. The set of implementations is closed.
type Value interface {
	Len() int
	isValue()
}

// Scalar is a single component selected by a one-letter swizzle.
type Scalar float64

func (Scalar) Len() int { return 1 }
func (Scalar) isValue() {}

// Map applies f to the scalar.
func (s Scalar) Map(f func(float64) float64) Scalar { return Scalar(f(float64(s))) }

// Elements selects components of v by name, e.g. "xy", "zzyx" or "w".
//
// The request must be 1 to 4 letters long and may only name components that
// exist in v. Names may repeat and appear in any order. A single letter
// yields a Scalar, anything longer yields a Vec of the request's length.
func Elements(v Vec, req string) (Value, error) {
	out, err := pick(v, req)
	if err != nil {
		return nil, err
	}
	if out.n == 1 {
		return Scalar(out.c[0]), nil
	}
	return out, nil
}

// Elements is the method form of Elements.
func (v Vec) Elements(req string) (Value, error) { return Elements(v, req) }

func pick(v Vec, req string) (Vec, error) {
	if len(req) < 1 || len(req) > 4 {
		return Vec{}, errors.Wrapf(ErrInvalidSwizzle, "%q: length %d outside 1..4", req, len(req))
	}
	valid := componentNames[:v.n]
	out := Vec{n: uint8(len(req))}
	for i := 0; i < len(req); i++ {
		idx := strings.IndexByte(valid, req[i])
		if idx < 0 {
			return Vec{}, errors.Wrapf(ErrInvalidSwizzle, "%q: no component %q in vec%d", req, req[i], v.n)
		}
		out.c[i] = v.c[idx]
	}
	return out, nil
}

func (v Vec) mustScalar(name string) float64 {
	out, err := pick(v, name)
	if err != nil {
		panic(err)
	}
	return out.c[0]
}

func (v Vec) mustVec(req string) Vec {
	out, err := pick(v, req)
	if err != nil {
		panic(err)
	}
	return out
}

// Swizzle is the panicking form of Elements for requests of 2 to 4 letters.
func (v Vec) Swizzle(req string) Vec {
	if len(req) == 1 {
		panic(errors.Wrapf(ErrInvalidSwizzle, "%q: single component, use X/Y/Z/W or Elements", req))
	}
	return v.mustVec(req)
}

// X, Y, Z and W return one component. They panic with ErrInvalidSwizzle
// when the vector is too short, as Elements would fail.
func (v Vec) X() float64 { return v.mustScalar("x") }
func (v Vec) Y() float64 { return v.mustScalar("y") }
func (v Vec) Z() float64 { return v.mustScalar("z") }
func (v Vec) W() float64 { return v.mustScalar("w") }

// The named swizzles below are Swizzle with a fixed request.
func (v Vec) XY() Vec   { return v.mustVec("xy") }
func (v Vec) YX() Vec   { return v.mustVec("yx") }
func (v Vec) XZ() Vec   { return v.mustVec("xz") }
func (v Vec) YZ() Vec   { return v.mustVec("yz") }
func (v Vec) XYZ() Vec  { return v.mustVec("xyz") }
func (v Vec) ZYX() Vec  { return v.mustVec("zyx") }
func (v Vec) XXX() Vec  { return v.mustVec("xxx") }
func (v Vec) YYY() Vec  { return v.mustVec("yyy") }
func (v Vec) ZZZ() Vec  { return v.mustVec("zzz") }
func (v Vec) WWW() Vec  { return v.mustVec("www") }
func (v Vec) XYZW() Vec { return v.mustVec("xyzw") }
