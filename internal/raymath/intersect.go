package raymath

// Material is whatever a surface is made of. The kernel never looks inside.
type Material interface {
	Name() string
}

// Intersect records where a ray met a surface.
type Intersect struct {
	Position Vector3
	Normal   Vector3
	Material Material
	Ray      Ray
}

func NewIntersect(pos, normal Vector3, mat Material, ray Ray) Intersect {
	return Intersect{Position: pos, Normal: normal, Material: mat, Ray: ray}
}

func (h Intersect) materialName() string {
	if h.Material == nil {
		return ""
	}
	return h.Material.Name()
}

func (h Intersect) String() string {
	return "Intersect\n\tPos: " + h.Position.String() +
		"\n\tNormal: " + h.Normal.String() +
		"\n\tMaterial: " + h.materialName() +
		"\n\t" + h.Ray.String()
}
