package vec

import (
	"errors"
	"math"
	"testing"
)

func mustEqual(t *testing.T, got, want Vec) {
	t.Helper()
	eq, err := Equal(got, want)
	if err != nil {
		t.Fatalf("Equal(%v, %v): %v", got, want, err)
	}
	if !eq {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNewArity(t *testing.T) {
	tests := []struct {
		n    int
		vals []float64
		ok   bool
	}{
		{2, []float64{1, 2}, true},
		{3, []float64{1, 2, 3}, true},
		{4, []float64{1, 2, 3, 4}, true},
		{2, []float64{1}, false},
		{3, []float64{1, 2, 3, 4}, false},
		{1, []float64{1}, false},
		{5, []float64{1, 2, 3, 4, 5}, false},
	}
	for _, tt := range tests {
		v, err := New(tt.n, tt.vals...)
		if tt.ok {
			if err != nil {
				t.Fatalf("New(%d, %v): %v", tt.n, tt.vals, err)
			}
			if v.Len() != tt.n {
				t.Fatalf("New(%d, %v).Len() = %d, want %d", tt.n, tt.vals, v.Len(), tt.n)
			}
			continue
		}
		if !errors.Is(err, ErrConstructorArity) {
			t.Fatalf("New(%d, %v) err = %v, want ErrConstructorArity", tt.n, tt.vals, err)
		}
	}
}

func TestAddCommutativeAssociative(t *testing.T) {
	a := Vec3(1, -2, 0.5)
	b := Vec3(4, 8, -16)
	c := Vec3(0.25, 3, 7)

	ab, _ := Add(a, b)
	ba, _ := Add(b, a)
	mustEqual(t, ab, ba)

	abc, _ := Add(ab, c)
	bc, _ := Add(b, c)
	abc2, _ := Add(a, bc)
	mustEqual(t, abc, abc2)
}

func TestScaleDistributes(t *testing.T) {
	a := Vec4(1, 2, 3, 4)
	b := Vec4(-4, 0.5, 8, 2)
	const s = 2.5

	sum, _ := Add(a, b)
	left := Scale(sum, s)
	right, _ := Add(Scale(a, s), Scale(b, s))
	mustEqual(t, left, right)
}

func TestLengthMismatch(t *testing.T) {
	a := Vec2(1, 1)
	b := Vec3(1, 1, 1)

	if _, err := Add(a, b); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Add(vec2, vec3) err = %v, want ErrLengthMismatch", err)
	}
	if _, err := Sub(a, b); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Sub(vec2, vec3) err = %v, want ErrLengthMismatch", err)
	}
	if _, err := Equal(a, b); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Equal(vec2, vec3) err = %v, want ErrLengthMismatch", err)
	}
	if _, err := Distance(a, b); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Distance(vec2, vec3) err = %v, want ErrLengthMismatch", err)
	}
	if _, err := Mix(a, b, 0.5); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Mix(vec2, vec3) err = %v, want ErrLengthMismatch", err)
	}
}

func TestMethodPanicsWithError(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrLengthMismatch) {
			t.Fatalf("recover() = %v, want ErrLengthMismatch", r)
		}
	}()
	_ = Vec2(1, 1).Add(Vec3(1, 1, 1))
	t.Fatalf("Add did not panic")
}

func TestSwizzleIdentity(t *testing.T) {
	for _, v := range []Vec{Vec2(1, 2), Vec3(1, 2, 3), Vec4(1, 2, 3, 4)} {
		got, err := Elements(v, componentNames[:v.Len()])
		if err != nil {
			t.Fatalf("Elements(%v): %v", v, err)
		}
		mustEqual(t, got.(Vec), v)
	}
}

func TestSwizzleReorder(t *testing.T) {
	v := Vec4(1, 2, 3, 4)

	got, err := Elements(v, "zzyx")
	if err != nil {
		t.Fatalf("Elements(zzyx): %v", err)
	}
	mustEqual(t, got.(Vec), Vec4(3, 3, 2, 1))

	y, err := Elements(v, "y")
	if err != nil {
		t.Fatalf("Elements(y): %v", err)
	}
	s, ok := y.(Scalar)
	if !ok || s != 2 {
		t.Fatalf("Elements(y) = %#v, want Scalar(2)", y)
	}

	mustEqual(t, v.Swizzle("wx"), Vec2(4, 1))
	mustEqual(t, Vec3(1, 2, 3).XXX(), Vec3(1, 1, 1))
	mustEqual(t, Vec3(1, 2, 3).ZYX(), Vec3(3, 2, 1))
	if v.W() != 4 {
		t.Fatalf("W() = %v, want 4", v.W())
	}
}

func TestSwizzleInvalid(t *testing.T) {
	tests := []struct {
		v   Vec
		req string
	}{
		{Vec2(1, 2), ""},
		{Vec2(1, 2), "xyxyx"},
		{Vec2(1, 2), "z"},
		{Vec3(1, 2, 3), "xw"},
		{Vec4(1, 2, 3, 4), "xa"},
		{Vec4(1, 2, 3, 4), "rgb"},
	}
	for _, tt := range tests {
		if _, err := Elements(tt.v, tt.req); !errors.Is(err, ErrInvalidSwizzle) {
			t.Fatalf("Elements(%v, %q) err = %v, want ErrInvalidSwizzle", tt.v, tt.req, err)
		}
	}
}

func TestNamedAccessorValidates(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, ErrInvalidSwizzle) {
			t.Fatalf("recover() = %v, want ErrInvalidSwizzle", err)
		}
	}()
	_ = Vec2(1, 2).XYZ()
	t.Fatalf("XYZ on vec2 did not panic")
}

func TestMixConvention(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(-5, 10, 0.5)

	got, _ := Mix(a, b, 1.0)
	mustEqual(t, got, a)
	got, _ = Mix(a, b, 0.0)
	mustEqual(t, got, b)

	if got := Mixf(2, 4, 0.25); got != 3.5 {
		t.Fatalf("Mixf(2, 4, 0.25) = %v, want 3.5", got)
	}
}

func TestElementwiseHelpers(t *testing.T) {
	v := Vec3(-1.25, 0.5, 2.75)

	mustEqual(t, Abs(v), Vec3(1.25, 0.5, 2.75))
	mustEqual(t, Floor(v), Vec3(-2, 0, 2))
	mustEqual(t, Fract(v), Vec3(0.75, 0.5, 0.75))
	mustEqual(t, Clamp(v, 0, 1), Vec3(0, 0.5, 1))

	if got := Abs(Scalar(-3)); got != 3 {
		t.Fatalf("Abs(Scalar(-3)) = %v, want 3", got)
	}
	if got := Clampf(7, 0, 5); got != 5 {
		t.Fatalf("Clampf(7, 0, 5) = %v, want 5", got)
	}
	if got := Floorf(-0.5); got != -1 {
		t.Fatalf("Floorf(-0.5) = %v, want -1", got)
	}
}

func TestNormDistance(t *testing.T) {
	if got := Norm(Vec2(3, 4)); got != 5 {
		t.Fatalf("Norm(vec2(3, 4)) = %v, want 5", got)
	}
	d, err := Distance(Vec3(1, 1, 1), Vec3(1, 1, 3))
	if err != nil || d != 2 {
		t.Fatalf("Distance = %v, %v; want 2, nil", d, err)
	}
}

func TestDivideByZeroUnguarded(t *testing.T) {
	got := Divide(Vec2(1, -1), 0)
	if !math.IsInf(got.X(), 1) || !math.IsInf(got.Y(), -1) {
		t.Fatalf("Divide(vec2(1, -1), 0) = %v, want (+Inf, -Inf)", got)
	}
}

func TestString(t *testing.T) {
	if got := Vec3(1, 0.5, -2).String(); got != "vec3(1, 0.5, -2)" {
		t.Fatalf("String() = %q", got)
	}
}
