package raymath

// Vector4 is a homogeneous coordinate: w=1 for points, w=0 for directions.
type Vector4 struct {
	X, Y, Z, W Real
}

func NewVector4(x, y, z, w Real) Vector4 { return Vector4{x, y, z, w} }

func Vector4FromVector3(v Vector3, w Real) Vector4 { return Vector4{v.X, v.Y, v.Z, w} }

// Vec3 drops w without dividing by it.
func (v Vector4) Vec3() Vector3 { return Vector3{v.X, v.Y, v.Z} }

func (v Vector4) String() string {
	return "(" + fmtReal(v.X) + ", " + fmtReal(v.Y) + ", " + fmtReal(v.Z) + ", " + fmtReal(v.W) + ")"
}
