package raymath

import "testing"

func TestSpectrumChannels(t *testing.T) {
	c := NewSpectrum(0, 1, 0, 0)
	if c.G != 1 {
		t.Fatalf("green channel: %g", c.G)
	}
	if Black() != (Spectrum{0, 0, 0, 1}) {
		t.Fatalf("Black: %+v", Black())
	}
}

func TestSpectrumAddResetsAlpha(t *testing.T) {
	s := NewSpectrum(0.25, 0.5, 1, 0.3).Add(NewSpectrum(0.25, 0.25, 0.5, 0.4))
	if s != (Spectrum{0.5, 0.75, 1.5, 1}) {
		t.Fatalf("Add: %+v", s)
	}
	if s := NewSpectrum(1, 1, 1, 0).Add(NewSpectrum(0, 0, 0, 0)); s.A != 1 {
		t.Fatalf("alpha should be opaque after Add: %g", s.A)
	}
	if str := s.String(); str != "(0.5, 0.75, 1.5, 1)" {
		t.Fatalf("String: %q", str)
	}
}
