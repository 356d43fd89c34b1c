package facefilter

// Accumulate adds the Gaussian-weighted texels inside fp to result using
// the default filter. See Filter.Accumulate.
func Accumulate(fp *Footprint, result []float64, texels Texels) {
	defaultFilter.Accumulate(fp, result, texels)
}

// AccumulateConstant accumulates fp over a face whose texels all equal
// texel, using the default filter. See Filter.AccumulateConstant.
func AccumulateConstant(fp *Footprint, result []float64, texel Texels) {
	defaultFilter.AccumulateConstant(fp, result, texel)
}

// Accumulate scans the rows of fp over texels, and for every texel with
// Q < 1 adds its weight to fp.Weight and weight*value to result, channel by
// channel. Texels with Q >= 1 are skipped.
//
// result must hold texels.NChan() values and is normally zeroed by the
// caller. The caller divides by fp.Weight to obtain the filtered value.
//
// Accumulate does not validate fp: bounds outside the texel buffer panic.
func (f *Filter) Accumulate(fp *Footprint, result []float64, texels Texels) {
	// Packed views have NTxChan == NChan, so the stored stride addresses
	// both layouts.
	nChan, stride := texels.nChan, texels.nTxChan
	switch texels.typ {
	case Uint8:
		apply(f, fp, result, texels.u8, nChan, stride, decodeUint8)
	case Uint16:
		apply(f, fp, result, texels.u16, nChan, stride, decodeUint16)
	case Half:
		apply(f, fp, result, texels.f16, nChan, stride, decodeHalf)
	case Float:
		apply(f, fp, result, texels.f32, nChan, stride, decodeFloat)
	}
}

// AccumulateConstant performs the same traversal as Accumulate but sums
// only weights, then adds the summed weight times the decoded value of
// texel to result once. The outcome equals Accumulate over a buffer in
// which every texel equals texel.
func (f *Filter) AccumulateConstant(fp *Footprint, result []float64, texel Texels) {
	ddq := 2 * fp.A
	sum := 0.0
	for vi := fp.V1; vi < fp.V2; vi++ {
		x1, x2, q, dq := fp.row(vi)
		for x := x1; x < x2; x++ {
			if q < 1 {
				sum += f.Weight(q)
			}
			q += dq
			dq += ddq
		}
	}
	fp.Weight += sum

	accumPixel(result[:texel.nChan], texel, sum)
}

// accumPixel adds w times each channel of the first texel of t to dst.
func accumPixel(dst []float64, t Texels, w float64) {
	switch t.typ {
	case Uint8:
		for c := range dst {
			dst[c] += w * decodeUint8(t.u8[c])
		}
	case Uint16:
		for c := range dst {
			dst[c] += w * decodeUint16(t.u16[c])
		}
	case Half:
		for c := range dst {
			dst[c] += w * decodeHalf(t.f16[c])
		}
	case Float:
		for c := range dst {
			dst[c] += w * decodeFloat(t.f32[c])
		}
	}
}
