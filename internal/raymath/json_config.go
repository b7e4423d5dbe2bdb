package raymath

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Rotation in degrees for JSON (friendlier than radians).
type Rot3Deg struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

func (r Rot3Deg) Radians() Rot3 {
	k := Real(math.Pi / 180)
	return Rot3{X: r.X * k, Y: r.Y * k, Z: r.Z * k}
}

// TransformCfg describes scale, then rotation, then translation.
type TransformCfg struct {
	Name      string  `json:"name"`
	Translate Vector3 `json:"translate"`
	Scale     Vector3 `json:"scale,omitempty"` // zero components default to 1
	RotDeg    Rot3Deg `json:"rotDeg"`
	// Raw, when set, is used as-is instead of the fields above.
	Raw *[4][4]Real `json:"raw,omitempty"`
}

type RayCfg struct {
	Origin Vector3 `json:"origin"`
	Dir    Vector3 `json:"dir"`
}

type Config struct {
	Transforms []TransformCfg `json:"transforms"`
	Rays       []RayCfg       `json:"rays,omitempty"`
}

// Build composes the transform matrix.
func (c TransformCfg) Build() (Mat4, error) {
	if c.Raw != nil {
		M := NewMat4(*c.Raw)
		for _, row := range M.M {
			for _, x := range row {
				if !isFinite(x) {
					return Mat4{}, fmt.Errorf("transform %q: non-finite raw entry", c.Name)
				}
			}
		}
		return M, nil
	}
	s := c.Scale
	if s.X == 0 {
		s.X = 1
	}
	if s.Y == 0 {
		s.Y = 1
	}
	if s.Z == 0 {
		s.Z = 1
	}
	M := translate(c.Translate).Mul(rotFromAngles(c.RotDeg.Radians())).Mul(scale(s))
	DebugLog("Built transform %q:\n%v", c.Name, M)
	return M, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Transforms) == 0 {
		return nil, fmt.Errorf("config %s: no transforms", path)
	}
	DebugLog("Loaded config %s: %d transforms, %d rays", path, len(cfg.Transforms), len(cfg.Rays))
	return &cfg, nil
}
