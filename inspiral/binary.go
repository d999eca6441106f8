package inspiral

import (
	"math"

	"github.com/cwbudde/algo-gw/units"
)

// Binary describes a two-body system as seen by a distant observer.
type Binary struct {
	Mass1    float64 // kg
	Mass2    float64 // kg
	Distance float64 // observer distance, m
}

// DefaultBinary returns two 30 solar-mass black holes at 1e9 parsecs.
func DefaultBinary() Binary {
	return Binary{
		Mass1:    units.SolarMasses(30),
		Mass2:    units.SolarMasses(30),
		Distance: units.Parsecs(1e9),
	}
}

// Validate checks that the masses and the distance are positive and finite.
func (b Binary) Validate() error {
	if !positiveFinite(b.Mass1) || !positiveFinite(b.Mass2) {
		return ErrInvalidMass
	}

	if !positiveFinite(b.Distance) {
		return ErrInvalidDistance
	}

	return nil
}

// TotalMass returns m1 + m2 in kg.
func (b Binary) TotalMass() float64 {
	return b.Mass1 + b.Mass2
}

// ChirpMass returns the chirp mass of the system in kg.
func (b Binary) ChirpMass() float64 {
	return ChirpMass(b.Mass1, b.Mass2)
}

// SymmetricMassRatio returns eta = m1 m2 / (m1+m2)^2, in (0, 1/4].
func (b Binary) SymmetricMassRatio() float64 {
	m := b.TotalMass()
	return b.Mass1 * b.Mass2 / (m * m)
}

// finite reports whether x is neither NaN nor infinite.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
