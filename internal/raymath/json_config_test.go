package raymath

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestRot3DegRadians(t *testing.T) {
	r := Rot3Deg{X: 90, Y: 180, Z: -45}.Radians()
	if !nearly(r.X, math.Pi/2, 1e-6) || !nearly(r.Y, math.Pi, 1e-6) || !nearly(r.Z, -math.Pi/4, 1e-6) {
		t.Fatalf("degree->radian conversion wrong: %+v", r)
	}
}

func TestTransformCfgBuild(t *testing.T) {
	M, err := (TransformCfg{
		Translate: Vector3{1, 2, 3},
		Scale:     Vector3{2, 0, 0}, // Y,Z default to 1
	}).Build()
	if err != nil {
		t.Fatal(err)
	}
	if p := M.TransformPoint(Vector3{1, 1, 1}); !vecAlmostEq(p, Vector3{3, 3, 4}, 1e-6) {
		t.Fatalf("Build: %v", p)
	}

	raw := [4][4]Real{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {4, 5, 6, 0}}
	M, err = (TransformCfg{Raw: &raw}).Build()
	if err != nil || M.M != raw {
		t.Fatalf("raw: %v %v", M, err)
	}
	raw[0][0] = Real(math.NaN())
	if _, err := (TransformCfg{Name: "bad", Raw: &raw}).Build(); err == nil {
		t.Fatal("expected error for NaN entry")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"transforms": [{"name": "a", "translate": {"x": 1, "y": 2, "z": 3}, "rotDeg": {"z": 90}}],
		"rays": [{"origin": {"x": 0, "y": 0, "z": 0}, "dir": {"x": 0, "y": 0, "z": -1}}]
	}`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Transforms) != 1 || cfg.Transforms[0].Translate != (Vector3{1, 2, 3}) || cfg.Transforms[0].RotDeg.Z != 90 {
		t.Fatalf("transforms: %+v", cfg.Transforms)
	}
	if len(cfg.Rays) != 1 || cfg.Rays[0].Dir != (Vector3{0, 0, -1}) {
		t.Fatalf("rays: %+v", cfg.Rays)
	}

	if _, err := loadConfig(writeConfig(t, `{"transforms": []}`)); err == nil {
		t.Fatal("expected error for empty transforms")
	}
	if _, err := loadConfig(writeConfig(t, `{`)); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected read error")
	}
}
