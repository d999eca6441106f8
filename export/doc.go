// Package export writes strain series to interchange formats: CSV tables
// and WAV audio.
package export
