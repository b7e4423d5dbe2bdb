package raymath

import (
	"errors"
	"fmt"
	"io"
)

// Run prints the built-in demo when cfgPath is empty, otherwise inverts every
// transform from the config and pushes the configured rays through it.
func Run(w io.Writer, cfgPath string) error {
	if cfgPath == "" {
		demo(w)
		return nil
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	for i, tc := range cfg.Transforms {
		M, err := tc.Build()
		if err != nil {
			return err
		}
		name := tc.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		fmt.Fprintf(w, "Transform %s\n%v", name, M)
		inv, err := M.Inverse()
		switch {
		case errors.Is(err, ErrSingular):
			fmt.Fprintf(w, "Inverse: %v\n", err)
		case err != nil:
			return err
		default:
			fmt.Fprintf(w, "Inverse\n%v", inv)
		}
		for _, rc := range cfg.Rays {
			r := NewRay(rc.Origin, rc.Dir).Transform(M)
			fmt.Fprintf(w, "%v\n", r)
		}
	}
	return nil
}

func demo(w io.Writer) {
	v := NewVector3(0, 2, 0)
	fmt.Fprintf(w, "Vector: %v\n", v)
	fmt.Fprintf(w, "Normalized: %v\n", NewNormalized(v))
	c := NewSpectrum(0, 1, 0, 0)
	fmt.Fprintf(w, "Green: %v\n", fmtReal(c.G))
	fmt.Fprintf(w, "%v\n", I4())
	fmt.Fprintf(w, "%v\n", NewRay(NewVector3(0, 0, 0), NewVector3(0, 0, -1)))
}
