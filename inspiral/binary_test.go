package inspiral

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-gw/units"
)

func TestBinaryValidation(t *testing.T) {
	m := units.SolarMasses(30)
	r := units.Parsecs(1e9)

	tests := []struct {
		name    string
		binary  Binary
		wantErr error
	}{
		{"valid", Binary{m, m, r}, nil},
		{"zero mass1", Binary{0, m, r}, ErrInvalidMass},
		{"negative mass2", Binary{m, -m, r}, ErrInvalidMass},
		{"NaN mass", Binary{math.NaN(), m, r}, ErrInvalidMass},
		{"infinite mass", Binary{math.Inf(1), m, r}, ErrInvalidMass},
		{"zero distance", Binary{m, m, 0}, ErrInvalidDistance},
		{"negative distance", Binary{m, m, -r}, ErrInvalidDistance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.binary.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConstantsValidation(t *testing.T) {
	if err := SI.Validate(); err != nil {
		t.Fatalf("SI.Validate() = %v", err)
	}
	if err := (Constants{}).Validate(); err != ErrInvalidConstants {
		t.Errorf("zero Constants.Validate() = %v, want ErrInvalidConstants", err)
	}
	if err := (Constants{G: SI.G, C: math.NaN()}).Validate(); err != ErrInvalidConstants {
		t.Errorf("NaN c Validate() = %v, want ErrInvalidConstants", err)
	}
}

func TestBinaryDerivedQuantities(t *testing.T) {
	b := DefaultBinary()

	if got := b.SymmetricMassRatio(); math.Abs(got-0.25) > 1e-15 {
		t.Errorf("SymmetricMassRatio() = %v, want 0.25", got)
	}
	if got, want := b.TotalMass(), units.SolarMasses(60); math.Abs(got-want) > 1e-12*want {
		t.Errorf("TotalMass() = %g, want %g", got, want)
	}

	u := Binary{Mass1: units.SolarMasses(36), Mass2: units.SolarMasses(29), Distance: units.Megaparsecs(410)}
	if u.ChirpMass() != ChirpMass(u.Mass2, u.Mass1) {
		t.Error("chirp mass changed after swapping masses")
	}
	if eta := u.SymmetricMassRatio(); eta >= 0.25 || eta <= 0 {
		t.Errorf("SymmetricMassRatio() = %v, want in (0, 0.25)", eta)
	}
}
