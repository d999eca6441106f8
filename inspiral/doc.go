// Package inspiral computes the leading-order post-Newtonian gravitational
// wave strain of a compact binary during its late inspiral.
//
// Time t is measured in seconds before an assumed merger at t = 0. The
// formulas are closed-form approximations that only hold far from merger;
// they diverge as t approaches zero and are undefined for t <= 0. The
// scalar functions reproduce that divergence under IEEE-754 rules (+Inf or
// NaN), while the slice evaluators reject such inputs with an error.
//
// # Formulas
//
//	Mc    = (m1*m2)^(3/5) / (m1+m2)^(1/5)
//	f_orb = (5 / (256 t))^(3/8) * (G Mc / c^3)^(-5/8)
//	A     = 4 G^2 m1 m2 / (c^4 r) * (pi f_orb)^(2/3)
//	f_gw  = 2 f_orb
//	h(t)  = A(t) * sin(2 pi f_gw(t) t)
//
// # Usage
//
//	w := inspiral.NewWaveform(inspiral.DefaultBinary())
//	s, _ := w.Generate(inspiral.DefaultGrid())
//	// s.Time and s.Strain are co-indexed
package inspiral
