// Package facefilter implements elliptical weighted average (EWA) filtering
// of per-face textures over triangular faces.
//
// # Overview
//
// A triangular face stores its texels in a square grid of RowLen columns;
// row vi holds RowLen - vi valid texels. Given an elliptical footprint that
// has already been derived from surface derivatives and clipped to the face,
// the filter sums the Gaussian-weighted values of every texel whose centre
// lies inside the ellipse:
//
//	result := make([]float64, texels.NChan())
//	fp := facefilter.Footprint{ /* ellipse and clipped bounds */ }
//	facefilter.Accumulate(&fp, result, texels)
//	for c := range result {
//	    result[c] /= fp.Weight
//	}
//
// # Storage
//
// Texels are read through a [Texels] view over a caller-owned slice of one
// of four representations: [Uint8], [Uint16], [Half] and [Float]. Integer
// data is normalized to [0, 1]. A view may skip stored channels that are not
// filtered (NTxChan > NChan); packed and strided views produce identical
// results.
//
// # Constant faces
//
// When a face is known to hold a single value, [AccumulateConstant] walks the
// same footprint but only sums weights, then applies the value once.
//
// # Concurrency
//
// The kernel does not allocate, block or log. Calls on distinct footprints
// and results may share a view from any number of goroutines; [Batch] runs
// many requests on a worker pool.
//
// # Contract
//
// The kernel trusts its footprint. Bounds that leave the texel buffer panic
// with a slice bounds error; they are never reported as errors.
package facefilter
