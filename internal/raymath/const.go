package raymath

// Real is the scalar type of the whole kernel (single precision).
type Real = float32

const (
	DefaultFar = 1000.0 // default ray far distance
	normEps    = 1e-6   // below this length Normalize is a no-op
	detEps     = 1e-6   // affine inverse: |det/(pos-neg)| below this is treated as singular
	pivotEps   = 1e-5   // general inverse: pivot below this fraction of its row's largest entry is singular
)
