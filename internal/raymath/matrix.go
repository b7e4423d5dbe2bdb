package raymath

import "fmt"

// 4×4 matrix (row-major)
type Mat4 struct {
	M [4][4]Real
}

func I4() Mat4 {
	return Mat4{M: [4][4]Real{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

func NewMat4(data [4][4]Real) Mat4 { return Mat4{M: data} }

// SetIdentity resets A to the identity in place.
func (A *Mat4) SetIdentity() { *A = I4() }

func (A Mat4) Mul(B Mat4) Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = A.M[r][0]*B.M[0][c] +
				A.M[r][1]*B.M[1][c] +
				A.M[r][2]*B.M[2][c] +
				A.M[r][3]*B.M[3][c]
		}
	}
	return R
}

// MulVec multiplies A by the column vector v and keeps the first three rows.
// The fourth output row is assumed to be [0 0 0 1] (affine use), so no
// homogeneous divide happens.
func (A Mat4) MulVec(v Vector4) Vector3 {
	return Vector3{
		A.M[0][0]*v.X + A.M[0][1]*v.Y + A.M[0][2]*v.Z + A.M[0][3]*v.W,
		A.M[1][0]*v.X + A.M[1][1]*v.Y + A.M[1][2]*v.Z + A.M[1][3]*v.W,
		A.M[2][0]*v.X + A.M[2][1]*v.Y + A.M[2][2]*v.Z + A.M[2][3]*v.W,
	}
}

func (A Mat4) TransformPoint(p Vector3) Vector3 { return A.MulVec(Vector4FromVector3(p, 1)) }
func (A Mat4) TransformDir(d Vector3) Vector3   { return A.MulVec(Vector4FromVector3(d, 0)) }

func (A Mat4) Transpose() Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}

func (A Mat4) String() string {
	s := ""
	for r := 0; r < 4; r++ {
		s += fmt.Sprintf("[%5.2f, %5.2f, %5.2f, %5.2f]\n", A.M[r][0], A.M[r][1], A.M[r][2], A.M[r][3])
	}
	return s
}
