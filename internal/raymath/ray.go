package raymath

// Ray is a half-line from Origin along Dir (not necessarily unit length).
// Far and Transmittance are updated while the ray travels through a scene.
type Ray struct {
	Origin        Vector3
	Dir           Vector3
	Far           Real
	Transmittance Spectrum
}

func NewRay(origin, dir Vector3) Ray {
	return Ray{
		Origin:        origin,
		Dir:           dir,
		Far:           DefaultFar,
		Transmittance: Black(),
	}
}

// At returns Origin + Dir*t.
func (r Ray) At(t Real) Vector3 { return r.Origin.Add(r.Dir.Scale(t)) }

// Transform maps the ray through M: the origin as a point, the direction as
// a direction. Far and Transmittance are carried over unchanged.
func (r Ray) Transform(M Mat4) Ray {
	r.Origin = M.TransformPoint(r.Origin)
	r.Dir = M.TransformDir(r.Dir)
	return r
}

func (r Ray) String() string {
	return "Ray\n\tPos: " + r.Origin.String() + "\n\tDir: " + r.Dir.String()
}
