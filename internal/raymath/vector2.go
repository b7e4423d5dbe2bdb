package raymath

// Vector2 is a 2D vector (texture coordinates and the like).
type Vector2 struct {
	X, Y Real
}

func NewVector2(x, y Real) Vector2 { return Vector2{x, y} }

func (v Vector2) String() string { return "(" + fmtReal(v.X) + ", " + fmtReal(v.Y) + ")" }
