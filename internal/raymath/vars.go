package raymath

var (
	Debug = false // set to true for verbose debug output
	// Compile time checks to ensure that the stringers are implemented by all printable types
	_ interface{ String() string } = Vector2{}
	_ interface{ String() string } = Vector3{}
	_ interface{ String() string } = Vector4{}
	_ interface{ String() string } = Mat4{}
	_ interface{ String() string } = Spectrum{}
	_ interface{ String() string } = Ray{}
)
