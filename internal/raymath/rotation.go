package raymath

import "github.com/chewxy/math32"

// Angles in radians for rotations around the coordinate axes.
type Rot3 struct {
	X, Y, Z Real
}

func rotX(a Real) Mat4 {
	c, s := math32.Cos(a), math32.Sin(a)
	M := I4()
	M.M[1][1], M.M[1][2] = c, -s
	M.M[2][1], M.M[2][2] = s, c
	return M
}
func rotY(a Real) Mat4 {
	c, s := math32.Cos(a), math32.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][2] = c, s
	M.M[2][0], M.M[2][2] = -s, c
	return M
}
func rotZ(a Real) Mat4 {
	c, s := math32.Cos(a), math32.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][1] = c, -s
	M.M[1][0], M.M[1][1] = s, c
	return M
}

// Compose rotation from angles (X first, then Y, then Z).
func rotFromAngles(r Rot3) Mat4 {
	R := I4()
	R = rotX(r.X).Mul(R)
	R = rotY(r.Y).Mul(R)
	R = rotZ(r.Z).Mul(R)
	return R
}

// translation lives in column 3, matching MulVec
func translate(t Vector3) Mat4 {
	M := I4()
	M.M[0][3], M.M[1][3], M.M[2][3] = t.X, t.Y, t.Z
	return M
}

func scale(s Vector3) Mat4 {
	M := I4()
	M.M[0][0], M.M[1][1], M.M[2][2] = s.X, s.Y, s.Z
	return M
}
