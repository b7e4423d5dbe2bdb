package raymath

import (
	"math"

	"github.com/chewxy/math32"
)

// Vector3 is a point or direction in 3D space.
type Vector3 struct {
	X, Y, Z Real
}

func NewVector3(x, y, z Real) Vector3 { return Vector3{x, y, z} }

func Zero3() Vector3    { return Vector3{} }
func Up3() Vector3      { return Vector3{0, 1, 0} }
func Left3() Vector3    { return Vector3{1, 0, 0} }
func Forward3() Vector3 { return Vector3{0, 0, 1} }

// NewNormalized returns a unit-length copy of v (see Normalized).
func NewNormalized(v Vector3) Vector3 { return v.Normalized() }

// Vector functions
func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector3) Scale(s Real) Vector3  { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Neg() Vector3          { return Vector3{-v.X, -v.Y, -v.Z} }

// Div divides every component by s. Division by zero yields Inf/NaN components.
func (v Vector3) Div(s Real) Vector3 { return Vector3{v.X / s, v.Y / s, v.Z / s} }

// Dot returns the dot product between two 3D vectors.
func (a Vector3) Dot(b Vector3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns a × b.
func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length. The square root is taken in float64.
func (v Vector3) Len() Real {
	return Real(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalized returns a unit-length version of the vector.
// If the length is below 1e-6 the vector is returned unchanged.
func (v Vector3) Normalized() Vector3 {
	l := v.Len()
	if math32.Abs(l) < normEps {
		return v
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// Normalize is the in-place variant of Normalized.
func (v *Vector3) Normalize() { *v = v.Normalized() }

// Reflect mirrors v around n: n*(2*(n·v)) - v.
// n should be unit length, it is not normalized here.
func (v Vector3) Reflect(n Vector3) Vector3 {
	return n.Scale(2 * n.Dot(v)).Sub(v)
}

// Refract bends v through a surface with normal n going from a medium with
// index n1 into one with index n2 (Snell's law in vector form). Both vectors
// are normalized first; n is expected to face against v.
// Returns false (and a zero vector) on total internal reflection.
func (v Vector3) Refract(n Vector3, n1, n2 Real) (Vector3, bool) {
	nn := n.Normalized()
	d := v.Normalized()
	c1 := d.Dot(nn)
	ratio := n1 / n2
	k := 1 - ratio*ratio*(1-c1*c1)
	if k < 0 {
		DebugLog("Refract: total internal reflection, d=%v n=%v ratio=%f k=%f", d, nn, ratio, k)
		return Zero3(), false
	}
	return d.Scale(ratio).Sub(nn.Scale(c1*ratio + math32.Sqrt(k))), true
}

// Lerp interpolates from v to o, t is clamped to [0,1].
func (v Vector3) Lerp(o Vector3, t Real) Vector3 {
	t = clamp01(t)
	return Vector3{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
	}
}

func (v Vector3) String() string {
	return "(" + fmtReal(v.X) + ", " + fmtReal(v.Y) + ", " + fmtReal(v.Z) + ")"
}
