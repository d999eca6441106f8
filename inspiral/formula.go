package inspiral

import "math"

// ChirpMass returns (m1*m2)^(3/5) / (m1+m2)^(1/5).
//
// The result is symmetric in its arguments and has the unit of its inputs.
func ChirpMass(m1, m2 float64) float64 {
	return math.Pow(m1*m2, 3.0/5) / math.Pow(m1+m2, 1.0/5)
}

// OrbitalFrequency returns the orbital frequency in Hz at t seconds before
// merger for a system of chirp mass mc, using SI constants.
func OrbitalFrequency(t, mc float64) float64 {
	return SI.OrbitalFrequency(t, mc)
}

// Amplitude returns the strain amplitude of a system with masses m1, m2 (kg)
// at distance r (m) radiating at orbital frequency fOrb (Hz), using SI
// constants.
func Amplitude(m1, m2, r, fOrb float64) float64 {
	return SI.Amplitude(m1, m2, r, fOrb)
}

// WaveFrequency returns the gravitational wave frequency for an orbital
// frequency. Quadrupole radiation is emitted at twice the orbital rate.
func WaveFrequency(fOrb float64) float64 {
	return 2 * fOrb
}

// OrbitalFrequency evaluates
//
//	f_orb = (5 / (256 t))^(3/8) * (G mc / c^3)^(-5/8)
//
// It decreases monotonically in t and diverges as t -> 0+. t = 0 yields
// +Inf and t < 0 yields NaN; no clamping is applied.
func (k Constants) OrbitalFrequency(t, mc float64) float64 {
	tc := k.G * mc / (k.C * k.C * k.C)
	return math.Pow(5/(256*t), 3.0/8) * math.Pow(tc, -5.0/8)
}

// Amplitude evaluates
//
//	A = 4 G^2 m1 m2 / (c^4 r) * (pi fOrb)^(2/3)
func (k Constants) Amplitude(m1, m2, r, fOrb float64) float64 {
	c2 := k.C * k.C
	return 4 * k.G * k.G * m1 * m2 / (c2 * c2 * r) * math.Pow(math.Pi*fOrb, 2.0/3)
}
