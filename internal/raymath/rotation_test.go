package raymath

import (
	"math"
	"testing"
)

func TestRotFromAngles_IsOrthonormal(t *testing.T) {
	R := rotFromAngles(Rot3{
		X: math.Pi / 6,
		Y: math.Pi / 7,
		Z: math.Pi / 5,
	})

	RT := R.Transpose()
	// Check R^T R ~ I
	if r, c, ok := matAlmostEq(RT.Mul(R), I4(), 1e-6); !ok {
		t.Fatalf("R^T R != I at (%d,%d)", r, c)
	}
}

func TestAxisRotations(t *testing.T) {
	// 90° around each axis rotates the next basis vector into place.
	cases := []struct {
		M        Mat4
		in, want Vector3
	}{
		{rotX(math.Pi / 2), Up3(), Forward3()},
		{rotY(math.Pi / 2), Forward3(), Left3()},
		{rotZ(math.Pi / 2), Left3(), Up3()},
	}
	for i, c := range cases {
		o := c.M.TransformDir(c.in)
		if !vecAlmostEq(o, c.want, 1e-6) {
			t.Fatalf("#%d: %v -> %v, want %v", i, c.in, o, c.want)
		}
		if !nearly(o.Len(), 1, 1e-6) {
			t.Fatalf("#%d: rotation broke length: %g", i, o.Len())
		}
	}
}

func TestTranslateScale(t *testing.T) {
	p := translate(Vector3{1, 2, 3}).TransformPoint(Vector3{1, 1, 1})
	if p != (Vector3{2, 3, 4}) {
		t.Fatalf("translate point: %v", p)
	}
	if d := translate(Vector3{1, 2, 3}).TransformDir(Vector3{1, 1, 1}); d != (Vector3{1, 1, 1}) {
		t.Fatalf("translate must not move directions: %v", d)
	}
	if s := scale(Vector3{2, 3, 4}).TransformPoint(Vector3{1, 1, 1}); s != (Vector3{2, 3, 4}) {
		t.Fatalf("scale: %v", s)
	}
}
