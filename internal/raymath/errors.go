package raymath

import "errors"

// ErrSingular is returned by Mat4.Inverse when the matrix cannot be inverted.
// The matrix returned alongside it is the unmodified input.
var ErrSingular = errors.New("raymath: matrix is singular")
