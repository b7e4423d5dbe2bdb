package raymath

import (
	"strings"
	"testing"
)

type glass struct{}

func (glass) Name() string { return "glass" }

func TestIntersect(t *testing.T) {
	r := NewRay(Zero3(), Vector3{0, 0, -1})
	h := NewIntersect(r.At(2), Forward3(), glass{}, r)
	if h.Position != (Vector3{0, 0, -2}) || h.Normal != Forward3() || h.Ray != r {
		t.Fatalf("NewIntersect: %+v", h)
	}
	if !strings.Contains(h.String(), "Material: glass") {
		t.Fatalf("String: %q", h.String())
	}
	h.Material = nil
	if h.materialName() != "" {
		t.Fatal("nil material should have no name")
	}
}
