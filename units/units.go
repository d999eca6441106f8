// Package units holds the astronomical unit conversions used to describe a
// binary system in SI units (kilograms, meters, seconds).
package units

// Astronomical reference values.
const (
	SolarMass = 1.989e30 // kg
	Parsec    = 3.086e16 // m
)

// SolarMasses converts a mass in solar masses to kilograms.
func SolarMasses(n float64) float64 { return n * SolarMass }

// Parsecs converts a distance in parsecs to meters.
func Parsecs(n float64) float64 { return n * Parsec }

// Megaparsecs converts a distance in megaparsecs to meters.
func Megaparsecs(n float64) float64 { return n * 1e6 * Parsec }

// Gigaparsecs converts a distance in gigaparsecs to meters.
func Gigaparsecs(n float64) float64 { return n * 1e9 * Parsec }

// ToSolarMasses converts kilograms to solar masses.
func ToSolarMasses(kg float64) float64 { return kg / SolarMass }
