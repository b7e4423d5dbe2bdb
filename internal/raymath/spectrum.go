package raymath

import "fmt"

// Spectrum is an RGB color or transmittance with an opacity channel A.
type Spectrum struct {
	R, G, B, A Real
}

func NewSpectrum(r, g, b, a Real) Spectrum { return Spectrum{r, g, b, a} }

// Black is opaque black.
func Black() Spectrum { return Spectrum{0, 0, 0, 1} }

// Add sums the color channels. Alpha is not accumulated: the sum is always
// opaque (A = 1).
func (s Spectrum) Add(o Spectrum) Spectrum {
	return Spectrum{s.R + o.R, s.G + o.G, s.B + o.B, 1}
}

func (s Spectrum) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s)", fmtReal(s.R), fmtReal(s.G), fmtReal(s.B), fmtReal(s.A))
}
