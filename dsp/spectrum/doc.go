// Package spectrum estimates the one-sided amplitude spectrum of a real,
// uniformly sampled series.
//
// Samples are tapered with a Hann window, zero-padded to a power of two and
// transformed with algo-fft. Magnitudes are scaled by the window's coherent
// gain so that a bin-centred sinusoid of amplitude A reads as A.
package spectrum
