// Package render draws strain time series and spectra as static charts.
//
// Charts are built with gonum/plot and can be written to any format it
// supports (png, svg, pdf, eps, jpg, tif) or rasterised in memory for
// interactive display.
package render
