package inspiral

import "math"

// Constants holds the physical constants the formulas depend on.
type Constants struct {
	G float64 // gravitational constant, m^3 kg^-1 s^-2
	C float64 // speed of light, m/s
}

// SI is the CODATA 2018 set used by the package-level functions.
var SI = Constants{
	G: 6.67430e-11,
	C: 299792458,
}

// Validate checks that both constants are positive and finite.
func (k Constants) Validate() error {
	if !positiveFinite(k.G) || !positiveFinite(k.C) {
		return ErrInvalidConstants
	}
	return nil
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
