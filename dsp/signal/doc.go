// Package signal provides sample-grid construction and simple slice
// transforms shared by the waveform generator and the exporters.
package signal
