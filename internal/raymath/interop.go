package raymath

import "golang.org/x/image/math/f32"

// Conversions to the golang.org/x/image float32 types (row-major, m[4*r+c]).

func (v Vector3) F32() f32.Vec3         { return f32.Vec3{v.X, v.Y, v.Z} }
func Vector3FromF32(v f32.Vec3) Vector3 { return Vector3{v[0], v[1], v[2]} }

func (v Vector4) F32() f32.Vec4         { return f32.Vec4{v.X, v.Y, v.Z, v.W} }
func Vector4FromF32(v f32.Vec4) Vector4 { return Vector4{v[0], v[1], v[2], v[3]} }

func (A Mat4) F32() f32.Mat4 {
	var m f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[4*r+c] = A.M[r][c]
		}
	}
	return m
}

func Mat4FromF32(m f32.Mat4) Mat4 {
	var A Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			A.M[r][c] = m[4*r+c]
		}
	}
	return A
}
