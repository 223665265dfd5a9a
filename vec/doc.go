// Package vec is a small fixed-arity vector library for writing per-pixel
// shaders in a compact, GLSL-like style.
//
// A Vec holds 2, 3 or 4 float64 components addressed by a prefix of "xyzw".
// Vectors are values: every operation returns a new Vec.
//
// Two calling styles are provided:
//
//	sum, err := vec.Add(a, b) // package functions return errors
//	sum := a.Add(b)           // methods panic with the same error
//
// The method form keeps shader bodies short. The render loop recovers such
// panics and reports them as frame errors.
//
// Numeric edge cases are not special-cased: dividing by a zero scalar yields
// IEEE infinities or NaN, exactly as float64 division does.
package vec
